package environment

import (
	"os"
	"strings"

	"github.com/soccerdao/dao-cli/internal/usecase"
)

// ReaderAdapter exposes process environment variables. The .env files are
// loaded into the process environment by the config provider beforehand.
type ReaderAdapter struct{}

// NewReaderAdapter creates a new environment reader
func NewReaderAdapter() *ReaderAdapter {
	return &ReaderAdapter{}
}

// Lookup returns the trimmed value of key, or "" when unset
func (r *ReaderAdapter) Lookup(key string) string {
	value, _ := os.LookupEnv(key)
	return strings.TrimSpace(value)
}

var _ usecase.EnvironmentReader = (*ReaderAdapter)(nil)
