package cli

import (
	"errors"
	"fmt"

	"github.com/soccerdao/dao-cli/internal/app"
	"github.com/soccerdao/dao-cli/internal/cli/render"
	"github.com/soccerdao/dao-cli/internal/domain"
	"github.com/soccerdao/dao-cli/internal/domain/models"
	"github.com/soccerdao/dao-cli/internal/usecase"
	"github.com/spf13/cobra"
)

// NewAppCmd creates the interactive member page
func NewAppCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "app",
		Short: "Open the interactive SoccerDAO page",
		Long: `Open the interactive SoccerDAO page.

Without a wallet you are asked for an address to connect. Non-members
are offered the free membership NFT. Members see the member list and
the proposals, and can vote on them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			if app.Config.NonInteractive {
				return fmt.Errorf("the app command needs an interactive terminal")
			}
			return runPage(cmd, app)
		},
	}
}

// runPage walks the page states: connect, mint, member page
func runPage(cmd *cobra.Command, a *app.App) error {
	session, err := connectPage(cmd, a)
	if err != nil || session == nil {
		return err
	}
	defer a.ConnectWallet.Close(cmd.Context(), session)

	status := a.CheckMembership.Run(cmd.Context(), session.Address)
	if status.Err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), render.FormatWarning("failed to get membership balance: "+status.Err.Error()))
	}

	if !status.Holds {
		status, err = mintPage(cmd, a, session)
		if err != nil || status == nil {
			return err
		}
	}

	return memberPage(cmd, a, session, status)
}

// connectPage connects the wallet, asking for an address once when none is
// configured. A nil session without error means the user gave up.
func connectPage(cmd *cobra.Command, a *app.App) (*models.Session, error) {
	session, err := connect(cmd, a)
	if !errors.Is(err, domain.ErrWalletNotConnected) {
		return session, err
	}

	if err := promptWallet(cmd, a); err != nil {
		if errors.Is(err, domain.ErrInvalidAddress) {
			return nil, err
		}
		return nil, nil
	}
	return connect(cmd, a)
}

// mintPage offers the membership NFT. It returns the optimistic status
// after a claim, or nil when the user declined.
func mintPage(cmd *cobra.Command, a *app.App, session *models.Session) (*models.MembershipStatus, error) {
	screens := render.NewScreenRenderer(cmd.OutOrStdout())
	screens.RenderMintScreen()

	if !session.CanSign() {
		fmt.Fprintln(cmd.OutOrStdout(), "Set PRIVATE_KEY in .env to mint with this wallet.")
		return nil, nil
	}

	ok, err := a.Selector.Confirm(render.MintButtonLabel(a.MintMembership.IsClaiming()))
	if err != nil || !ok {
		return nil, err
	}

	result, err := a.MintMembership.Run(cmd.Context(), session)
	if err != nil {
		return nil, err
	}
	screens.RenderMinted(result.MarketURL)
	return result.Status, nil
}

func memberPage(cmd *cobra.Command, a *app.App, session *models.Session, status *models.MembershipStatus) error {
	out := cmd.OutOrStdout()
	render.NewScreenRenderer(out).RenderMemberHeader()
	fmt.Fprintln(out)

	dir, err := a.ListMembers.Run(cmd.Context(), usecase.ListMembersParams{Session: session, Status: status})
	if err != nil {
		return err
	}
	if err := render.NewMembersRenderer(out).Render(dir); err != nil {
		return err
	}

	proposals, err := a.ListProposals.Run(cmd.Context(), usecase.ListProposalsParams{Session: session, Status: status})
	if err != nil {
		return err
	}
	if err := render.NewProposalsRenderer(out).Render(proposals); err != nil {
		return err
	}

	if len(proposals.Proposals) == 0 || proposals.HasVoted {
		return nil
	}
	if !session.CanSign() {
		fmt.Fprintln(out, "Set PRIVATE_KEY in .env to vote with this wallet.")
		return nil
	}

	votes, err := runVoteForm(proposals.Proposals, proposals.HasVoted)
	if err != nil || votes == nil {
		return err
	}
	return submitVotes(cmd, a, session, votes, proposals.Proposals)
}
