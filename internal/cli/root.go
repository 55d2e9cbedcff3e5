package cli

import (
	"context"
	"fmt"

	"github.com/soccerdao/dao-cli/internal/adapters/progress"
	"github.com/soccerdao/dao-cli/internal/app"
	"github.com/soccerdao/dao-cli/internal/config"
	"github.com/soccerdao/dao-cli/internal/usecase"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dao",
		Short: "SoccerDAO member and operator CLI",
		Long: `dao is the command line front end of SoccerDAO, a token-gated DAO on Rinkeby.

Members connect a wallet, claim the membership NFT, browse the member
directory and vote on proposals. Operators provision the DAO contracts
with the provision commands.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if skipsApp(cmd) {
				return nil
			}

			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				return err
			}

			v := config.SetupViper(projectRoot)
			bindGlobalFlags(v, cmd)

			appInstance, err := app.InitApp(v, newSink(v))
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			// Long running commands manage their own lifetime
			if appInstance.Config.Timeout > 0 && !isLongRunning(cmd) {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				cmd.PostRun = func(cmd *cobra.Command, args []string) {
					cancel()
				}
			}

			cmd.SetContext(ctx)
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().Bool("json", false, "Output in JSON format where supported")
	rootCmd.PersistentFlags().String("rpc-url", "", "Ethereum JSON-RPC endpoint (overrides dao.toml)")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "member",
		Title: "Member Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "governance",
		Title: "Governance Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "provisioning",
		Title: "Provisioning Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	// Member commands
	appCmd := NewAppCmd()
	appCmd.GroupID = "member"
	rootCmd.AddCommand(appCmd)

	memberCmd := NewMemberCmd()
	memberCmd.GroupID = "member"
	rootCmd.AddCommand(memberCmd)

	// Governance commands
	proposalsCmd := NewProposalsCmd()
	proposalsCmd.GroupID = "governance"
	rootCmd.AddCommand(proposalsCmd)

	voteCmd := NewVoteCmd()
	voteCmd.GroupID = "governance"
	rootCmd.AddCommand(voteCmd)

	// Provisioning commands
	provisionCmd := NewProvisionCmd()
	provisionCmd.GroupID = "provisioning"
	rootCmd.AddCommand(provisionCmd)

	// Management commands
	configCmd := NewConfigCmd()
	configCmd.GroupID = "management"
	rootCmd.AddCommand(configCmd)

	serveCmd := NewServeCmd()
	serveCmd.GroupID = "management"
	rootCmd.AddCommand(serveCmd)

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// skipsApp reports whether cmd runs without project config
func skipsApp(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "version", "help", "completion", "__complete":
		return true
	}
	return cmd.Parent() != nil && cmd.Parent().Name() == "completion"
}

func isLongRunning(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "serve", "app":
		return true
	}
	return false
}

// newSink picks the progress reporter. Spinners only make sense on an
// interactive terminal with human readable output.
func newSink(v *viper.Viper) usecase.ProgressSink {
	if v.GetBool("non_interactive") || v.GetBool("json") {
		return progress.NewQuietSink()
	}
	return progress.NewSpinnerProgressReporter()
}

// bindGlobalFlags binds command flags to viper
func bindGlobalFlags(v *viper.Viper, cmd *cobra.Command) {
	// Only bind flags that exist and have been changed
	if f := cmd.Flag("debug"); f != nil && f.Changed {
		v.Set("debug", f.Value.String())
	}
	if f := cmd.Flag("non-interactive"); f != nil && f.Changed {
		v.Set("non_interactive", f.Value.String())
	}
	if f := cmd.Flag("json"); f != nil && f.Changed {
		v.Set("json", f.Value.String())
	}
	if f := cmd.Flag("rpc-url"); f != nil && f.Changed {
		v.Set("rpc_url", f.Value.String())
	}
	if f := cmd.Flag("listen"); f != nil && f.Changed {
		v.Set("listen", f.Value.String())
	}
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}
