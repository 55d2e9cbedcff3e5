package cli

import (
	"encoding/json"
	"io"
)

// writeJSON prints v as indented JSON, for --json output
func writeJSON(out io.Writer, v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
