package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/common"
	"github.com/samber/lo"
	"github.com/soccerdao/dao-cli/internal/domain"
	"github.com/soccerdao/dao-cli/internal/domain/models"
	"golang.org/x/sync/errgroup"
)

// VoteOutcome is what happened to one proposal during a submission
type VoteOutcome string

const (
	OutcomeVoted    VoteOutcome = "voted"
	OutcomeSkipped  VoteOutcome = "skipped"
	OutcomeExecuted VoteOutcome = "executed"
)

// SubmitVotesParams contains the vote form submission
type SubmitVotesParams struct {
	Session *models.Session
	Votes   []models.VoteSubmission

	// Proposals is the page snapshot, used for the execute payload
	Proposals []*models.Proposal
}

// SubmitVotesResult contains the result of a vote submission
type SubmitVotesResult struct {
	Delegated bool
	Outcomes  map[string][]VoteOutcome
	HasVoted  bool
}

// SubmitVotes runs delegate -> vote -> execute for one form submission
type SubmitVotes struct {
	token  GovernanceToken
	vote   GovernanceVote
	sink   ProgressSink
	log    *slog.Logger
	voting atomic.Bool
}

// NewSubmitVotes creates a new SubmitVotes use case
func NewSubmitVotes(token GovernanceToken, vote GovernanceVote, sink ProgressSink, log *slog.Logger) *SubmitVotes {
	return &SubmitVotes{
		token: token,
		vote:  vote,
		sink:  sink,
		log:   log,
	}
}

// IsVoting reports whether a submission is in flight
func (uc *SubmitVotes) IsVoting() bool {
	return uc.voting.Load()
}

// Run submits the votes.
//
// Delegation to self happens first, at most once, and completes before any
// vote is sent. Votes go out concurrently, only for proposals whose fresh
// state is open for voting. If any vote fails the execute step is skipped.
// Executions go out concurrently, only for proposals whose fresh state is
// ready to execute. HasVoted is set once the whole sequence succeeds.
func (uc *SubmitVotes) Run(ctx context.Context, params SubmitVotesParams) (*SubmitVotesResult, error) {
	session := params.Session
	if !session.CanSign() {
		return nil, domain.ErrNoSigner
	}
	if !uc.voting.CompareAndSwap(false, true) {
		return nil, domain.ErrVoteInProgress
	}
	defer uc.voting.Store(false)

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "voting", Message: "Voting...", Spinner: true})
	defer uc.sink.OnProgress(ctx, ProgressEvent{Stage: "complete"})

	result := &SubmitVotesResult{Outcomes: make(map[string][]VoteOutcome)}

	delegated, err := uc.ensureDelegation(ctx, session)
	if err != nil {
		uc.log.Error("failed to delegate tokens", "error", err)
		return result, fmt.Errorf("failed to delegate tokens: %w", err)
	}
	result.Delegated = delegated

	votes := lo.UniqBy(params.Votes, func(v models.VoteSubmission) string { return v.ProposalID.String() })

	voted, err := uc.castVotes(ctx, session, votes)
	uc.record(result, votes, voted, OutcomeVoted, OutcomeSkipped)
	if err != nil {
		uc.log.Error("failed to vote", "error", err)
		return result, fmt.Errorf("failed to vote: %w", err)
	}

	executed, err := uc.executeReady(ctx, session, votes, params.Proposals)
	uc.record(result, votes, executed, OutcomeExecuted, "")
	if err != nil {
		uc.log.Error("failed to execute votes", "error", err)
		return result, fmt.Errorf("failed to execute votes: %w", err)
	}

	result.HasVoted = true
	uc.log.Info("successfully voted", "address", session.Address.Hex())
	return result, nil
}

// ensureDelegation delegates the session's voting power to itself when no
// delegate is set yet. It returns whether a delegation was sent.
func (uc *SubmitVotes) ensureDelegation(ctx context.Context, session *models.Session) (bool, error) {
	delegation, err := uc.token.Delegates(ctx, session.Address)
	if err != nil {
		return false, err
	}
	if delegation != (common.Address{}) {
		return false, nil
	}

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "delegating", Message: "Delegating voting power...", Spinner: true})
	if _, err := uc.token.Delegate(ctx, session, session.Address); err != nil {
		return false, err
	}
	return true, nil
}

// castVotes votes on every open proposal concurrently and waits for all of
// them. A failed vote does not cancel its siblings.
func (uc *SubmitVotes) castVotes(ctx context.Context, session *models.Session, votes []models.VoteSubmission) ([]bool, error) {
	done := make([]bool, len(votes))

	var g errgroup.Group
	for i, v := range votes {
		g.Go(func() error {
			state, err := uc.vote.ProposalState(ctx, v.ProposalID)
			if err != nil {
				return fmt.Errorf("proposal %s: %w", v.ProposalID, err)
			}
			if !state.IsOpenForVoting() {
				uc.log.Debug("skipping proposal not open for voting", "proposal", v.ProposalID.String(), "state", state.String())
				return nil
			}
			if _, err := uc.vote.CastVote(ctx, session, v.ProposalID, v.Choice); err != nil {
				return fmt.Errorf("proposal %s: %w", v.ProposalID, err)
			}
			done[i] = true
			return nil
		})
	}

	return done, g.Wait()
}

// executeReady executes every proposal that is ready to execute.
func (uc *SubmitVotes) executeReady(ctx context.Context, session *models.Session, votes []models.VoteSubmission, snapshot []*models.Proposal) ([]bool, error) {
	byID := lo.KeyBy(snapshot, func(p *models.Proposal) string { return p.Key() })
	done := make([]bool, len(votes))

	var g errgroup.Group
	for i, v := range votes {
		g.Go(func() error {
			state, err := uc.vote.ProposalState(ctx, v.ProposalID)
			if err != nil {
				return fmt.Errorf("proposal %s: %w", v.ProposalID, err)
			}
			if !state.IsReadyToExecute() {
				return nil
			}
			proposal, ok := byID[v.ProposalID.String()]
			if !ok {
				// execute needs the original targets and description
				uc.log.Warn("not executing proposal missing from the page", "proposal", v.ProposalID.String())
				return nil
			}
			if _, err := uc.vote.Execute(ctx, session, proposal); err != nil {
				return fmt.Errorf("proposal %s: %w", v.ProposalID, err)
			}
			done[i] = true
			return nil
		})
	}

	return done, g.Wait()
}

func (uc *SubmitVotes) record(result *SubmitVotesResult, votes []models.VoteSubmission, done []bool, yes, no VoteOutcome) {
	for i, v := range votes {
		key := v.ProposalID.String()
		switch {
		case done[i]:
			result.Outcomes[key] = append(result.Outcomes[key], yes)
		case no != "":
			result.Outcomes[key] = append(result.Outcomes[key], no)
		}
	}
}
