package cli

import (
	"errors"
	"fmt"

	"github.com/soccerdao/dao-cli/internal/cli/render"
	"github.com/soccerdao/dao-cli/internal/domain"
	"github.com/soccerdao/dao-cli/internal/usecase"
	"github.com/spf13/cobra"
)

// NewMemberCmd creates the member command
func NewMemberCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "member",
		Short: "Membership NFT commands",
		Long: `Check, claim and list SoccerDAO memberships.

Membership is holding at least one membership NFT (token id 0 of the
drop contract). It is read from the chain on every command.`,
	}

	cmd.AddCommand(newMemberStatusCmd())
	cmd.AddCommand(newMemberMintCmd())
	cmd.AddCommand(newMemberListCmd())

	return cmd
}

func newMemberStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status [address]",
		Short: "Check whether an address holds the membership NFT",
		Long: `Check whether an address holds the membership NFT.
Without an address the connected wallet is checked.

Examples:
  dao member status
  dao member status 0x8ba1f109551bD432803012645Ac136ddd64DBA72`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			address, ok, err := parseAddressArg(args)
			if err != nil {
				return err
			}
			if !ok {
				session, err := connect(cmd, app)
				if err != nil {
					return err
				}
				defer app.ConnectWallet.Close(cmd.Context(), session)
				address = session.Address
			}

			status := app.CheckMembership.Run(cmd.Context(), address)
			if status.Err != nil {
				return fmt.Errorf("failed to get membership balance: %w", status.Err)
			}

			if app.Config.JSON {
				return writeJSON(cmd.OutOrStdout(), map[string]interface{}{
					"address": status.Address.Hex(),
					"member":  status.Holds,
					"balance": status.Balance.String(),
				})
			}

			out := cmd.OutOrStdout()
			if status.Holds {
				fmt.Fprintf(out, "🌟 %s already has a membership NFT!\n", status.Address.Hex())
				return nil
			}
			fmt.Fprintf(out, "😭 %s doesn't have a membership NFT.\n", status.Address.Hex())
			return nil
		},
	}
}

func newMemberMintCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "mint",
		Short: "Claim the free membership NFT",
		Long: `Claim one membership NFT for the connected wallet.
Requires PRIVATE_KEY; the claim is a transaction on the drop contract.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			session, err := connectSigner(cmd, app)
			if err != nil {
				return err
			}
			defer app.ConnectWallet.Close(cmd.Context(), session)

			status := app.CheckMembership.Run(cmd.Context(), session.Address)
			if status.Holds {
				fmt.Fprintln(cmd.OutOrStdout(), "🌟 this user already has a membership NFT!")
				return nil
			}

			screens := render.NewScreenRenderer(cmd.OutOrStdout())
			screens.RenderMintScreen()

			if !yes {
				ok, err := app.Selector.Confirm(render.MintButtonLabel(app.MintMembership.IsClaiming()))
				if err != nil {
					return fmt.Errorf("confirmation failed (use --yes in non-interactive mode): %w", err)
				}
				if !ok {
					return nil
				}
			}

			result, err := app.MintMembership.Run(cmd.Context(), session)
			if err != nil {
				return err
			}

			screens.RenderMinted(result.MarketURL)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func newMemberListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the DAO members and their token balances",
		Long: `List every membership holder with their governance token balance.
Only members can see the list.`,
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
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

			dir, err := app.ListMembers.Run(cmd.Context(), usecase.ListMembersParams{Session: session})
			if err != nil {
				if errors.Is(err, domain.ErrNotMember) {
					render.NewScreenRenderer(cmd.OutOrStdout()).RenderMintScreen()
				}
				return err
			}

			if app.Config.JSON {
				return writeJSON(cmd.OutOrStdout(), dir)
			}
			return render.NewMembersRenderer(cmd.OutOrStdout()).Render(dir)
		},
	}
}
