package cli

import (
	"github.com/samber/lo"
	"github.com/soccerdao/dao-cli/internal/app"
	"github.com/soccerdao/dao-cli/internal/cli/render"
	"github.com/soccerdao/dao-cli/internal/domain/config"
	"github.com/soccerdao/dao-cli/internal/usecase"
	"github.com/spf13/cobra"
)

const localConfigHelp = `The local config lives in .dao/config.local.json, next to dao.toml. It
remembers the wallet picked by "dao app" and an RPC endpoint. Both lose to
WALLET_ADDRESS, --rpc-url and DAO_RPC_URL when those are set.

Keys: wallet (alias: address), rpc-url (alias: rpc)`

// NewConfigCmd creates the config command. Without a subcommand it shows
// the local config.
func NewConfigCmd() *cobra.Command {
	show := newConfigShowCmd()

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change the local wallet and RPC settings",
		Long:  localConfigHelp,
		Args:  cobra.NoArgs,
		RunE:  show.RunE,
	}
	cmd.AddCommand(show, newConfigSetCmd(), newConfigRemoveCmd())
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the local config and the network in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(a *app.App) error {
				result, err := a.ShowConfig.Run(cmd.Context())
				if err != nil {
					return err
				}
				if a.Config.JSON {
					return writeJSON(cmd.OutOrStdout(), result)
				}
				return render.NewConfigRenderer(cmd.OutOrStdout()).RenderConfig(result)
			})
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Save a wallet address or RPC URL",
		Example: `  dao config set wallet 0x8ba1f109551bD432803012645Ac136ddd64DBA72
  dao config set rpc-url https://eth-sepolia.g.alchemy.com/v2/<key>`,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completeConfigKey,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app.App) error {
				result, err := a.SetConfig.Run(cmd.Context(), usecase.SetConfigParams{Key: args[0], Value: args[1]})
				if err != nil {
					return err
				}
				if a.Config.JSON {
					return writeJSON(cmd.OutOrStdout(), result)
				}
				return render.NewConfigRenderer(cmd.OutOrStdout()).RenderSet(result)
			})
		},
	}
}

func newConfigRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <key>",
		Aliases: []string{"rm", "unset"},
		Short:   "Forget a saved value",
		Long: `Removing wallet disconnects it until WALLET_ADDRESS is set or "dao app" asks again.
Removing rpc-url falls back to [network].rpc_url in dao.toml, then ALCHEMY_API_URL.`,
		Example:           "  dao config remove rpc-url",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeConfigKey,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app.App) error {
				result, err := a.RemoveConfig.Run(cmd.Context(), usecase.RemoveConfigParams{Key: args[0]})
				if err != nil {
					return err
				}
				if a.Config.JSON {
					return writeJSON(cmd.OutOrStdout(), result)
				}
				return render.NewConfigRenderer(cmd.OutOrStdout()).RenderRemove(result)
			})
		},
	}
}

// completeConfigKey completes the first argument with the known keys
func completeConfigKey(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	keys := lo.Map(config.ValidConfigKeys(), func(k config.ConfigKey, _ int) string { return string(k) })
	return keys, cobra.ShellCompDirectiveNoFileComp
}

func withApp(cmd *cobra.Command, run func(*app.App) error) error {
	a, err := getApp(cmd)
	if err != nil {
		return err
	}
	return run(a)
}
