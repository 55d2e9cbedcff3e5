package cli

import (
	"github.com/soccerdao/dao-cli/internal/server"
	"github.com/spf13/cobra"
)

// NewServeCmd creates the serve command
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the read-only member API",
		Long: `Serve the member API over HTTP.

  GET /api/v1/membership/{address}     membership status of an address
  GET /api/v1/members?address=0x..     member directory (members only)
  GET /api/v1/proposals?address=0x..   proposals (members only)
  GET /healthz, /readyz, /metrics

The API never signs transactions. Stop it with Ctrl+C.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			srv := server.New(app.Log, app.CheckMembership, app.ListMembers, app.ListProposals, app.CheckContracts)
			return srv.Run(cmd.Context(), app.Config.ListenAddr)
		},
	}

	cmd.Flags().String("listen", "", "Listen address (default from [server].listen in dao.toml, or :8080)")

	return cmd
}
