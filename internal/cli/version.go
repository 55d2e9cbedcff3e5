package cli

import (
	"fmt"

	"github.com/soccerdao/dao-cli/internal/config"
	"github.com/spf13/cobra"
)

// NewVersionCmd creates the version command
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of dao",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "dao version %s (commit %s, built %s)\n", config.Version, config.Commit, config.Date)
		},
	}
}
