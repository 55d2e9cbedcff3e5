package cli

import (
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/soccerdao/dao-cli/internal/app"
	"github.com/soccerdao/dao-cli/internal/cli/render"
	"github.com/soccerdao/dao-cli/internal/domain/models"
	"github.com/soccerdao/dao-cli/internal/usecase"
	"github.com/spf13/cobra"
)

var errAlreadyVoted = errors.New("already voted")

// NewVoteCmd creates the vote command
func NewVoteCmd() *cobra.Command {
	var choices []string

	cmd := &cobra.Command{
		Use:   "vote",
		Short: "Vote on the open proposals",
		Long: `Vote on every proposal in one submission.

Your voting power is delegated to yourself first if it was never
delegated. Proposals that are not active are skipped, and proposals that
succeeded are executed after voting.

Without --choice an interactive form is shown. Every proposal without a
choice gets Abstain.

Examples:
  dao vote
  dao vote --choice 1234=for --choice 5678=against`,
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

			snapshot, err := app.ListProposals.Run(cmd.Context(), usecase.ListProposalsParams{Session: session})
			if err != nil {
				return err
			}
			if snapshot.Err != nil {
				return fmt.Errorf("failed to get proposals: %w", snapshot.Err)
			}

			var votes []models.VoteSubmission
			if len(choices) > 0 || app.Config.NonInteractive {
				if snapshot.HasVoted {
					return errAlreadyVoted
				}
				votes, err = parseChoices(choices, snapshot.Proposals)
			} else {
				votes, err = runVoteForm(snapshot.Proposals, snapshot.HasVoted)
			}
			if err != nil {
				return err
			}
			if votes == nil {
				return nil
			}

			return submitVotes(cmd, app, session, votes, snapshot.Proposals)
		},
	}

	cmd.Flags().StringArrayVar(&choices, "choice", nil, "Vote as <proposal-id>=for|against|abstain (repeatable)")

	return cmd
}

func submitVotes(cmd *cobra.Command, a *app.App, session *models.Session, votes []models.VoteSubmission, proposals []*models.Proposal) error {
	result, err := a.SubmitVotes.Run(cmd.Context(), usecase.SubmitVotesParams{
		Session:   session,
		Votes:     votes,
		Proposals: proposals,
	})
	if a.Config.JSON && result != nil {
		if jerr := writeJSON(cmd.OutOrStdout(), result); jerr != nil {
			return jerr
		}
	} else if rerr := render.NewProposalsRenderer(cmd.OutOrStdout()).RenderVoteResult(result); rerr != nil {
		return rerr
	}
	return err
}

// parseChoices builds a submission covering every proposal, Abstain unless
// a --choice names it
func parseChoices(flags []string, proposals []*models.Proposal) ([]models.VoteSubmission, error) {
	picked := make(map[string]models.VoteChoice, len(flags))
	for _, f := range flags {
		id, choice, ok := strings.Cut(f, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --choice %q: expected <proposal-id>=for|against|abstain", f)
		}
		n, ok := new(big.Int).SetString(strings.TrimSpace(id), 10)
		if !ok {
			return nil, fmt.Errorf("invalid proposal id %q", id)
		}
		c, err := parseVoteChoice(choice)
		if err != nil {
			return nil, err
		}
		picked[n.String()] = c
	}

	votes := make([]models.VoteSubmission, 0, len(proposals))
	for _, p := range proposals {
		choice, ok := picked[p.Key()]
		if !ok {
			choice = models.DefaultVoteChoice
		}
		delete(picked, p.Key())
		votes = append(votes, models.VoteSubmission{ProposalID: p.ID, Choice: choice})
	}

	if len(picked) > 0 {
		unknown := lo.Keys(picked)
		sort.Strings(unknown)
		return nil, fmt.Errorf("unknown proposal(s): %s", strings.Join(unknown, ", "))
	}
	if len(votes) == 0 {
		return nil, fmt.Errorf("no proposals to vote on")
	}
	return votes, nil
}

func parseVoteChoice(s string) (models.VoteChoice, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "for", "yes", "1":
		return models.VoteFor, nil
	case "against", "no", "0":
		return models.VoteAgainst, nil
	case "abstain", "2":
		return models.VoteAbstain, nil
	default:
		return 0, fmt.Errorf("invalid vote choice %q: use for, against or abstain", s)
	}
}
