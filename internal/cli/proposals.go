package cli

import (
	"github.com/soccerdao/dao-cli/internal/cli/render"
	"github.com/soccerdao/dao-cli/internal/usecase"
	"github.com/spf13/cobra"
)

// NewProposalsCmd creates the proposals command
func NewProposalsCmd() *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "proposals",
		Short: "Show the governance proposals",
		Long: `Show the proposals of the vote contract with their state, and whether
the connected wallet already voted. Only members can see proposals.

Examples:
  dao proposals
  dao proposals --search treasury`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			session, err := connect(cmd, app)
			if err != nil {
				return err
			}
			defer app.ConnectWallet.Close(cmd.Context(), session)

			result, err := app.ListProposals.Run(cmd.Context(), usecase.ListProposalsParams{
				Session: session,
				Search:  search,
			})
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			return render.NewProposalsRenderer(cmd.OutOrStdout()).Render(result)
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Fuzzy filter proposals by description")

	return cmd
}
