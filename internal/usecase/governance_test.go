package usecase_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/soccerdao/dao-cli/internal/domain"
	"github.com/soccerdao/dao-cli/internal/domain/models"
	"github.com/soccerdao/dao-cli/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func proposal(id int64, description string, state models.ProposalState) *models.Proposal {
	return &models.Proposal{
		ID:          big.NewInt(id),
		Proposer:    alice,
		Description: description,
		State:       state,
		Votes:       models.StandardVoteOptions(),
		Targets:     []common.Address{tokenAddress},
		Values:      []*big.Int{big.NewInt(0)},
		Calldatas:   [][]byte{{0x01}},
	}
}

func memberStatus(addr common.Address) *models.MembershipStatus {
	return &models.MembershipStatus{Address: addr, Holds: true, Balance: big.NewInt(1)}
}

func TestListProposals(t *testing.T) {
	ctx := context.Background()

	t.Run("checks has-voted on the first proposal only", func(t *testing.T) {
		vote := new(MockVote)
		proposals := []*models.Proposal{
			proposal(1, "Should the DAO mint an additional 420,000 tokens into the treasury?", models.ProposalStateActive),
			proposal(2, "Should the DAO transfer 6,900 tokens from the treasury to Alice?", models.ProposalStateActive),
		}
		vote.On("Proposals", ctx).Return(proposals, nil)
		vote.On("HasVoted", ctx, bigEq(big.NewInt(1)), bob).Return(true, nil).Once()

		uc := usecase.NewListProposals(usecase.NewCheckMembership(testConfig(), new(MockDrop), testLogger()), vote, testLogger())
		result, err := uc.Run(ctx, usecase.ListProposalsParams{Session: readOnlySession(bob), Status: memberStatus(bob)})

		require.NoError(t, err)
		assert.Len(t, result.Proposals, 2)
		assert.True(t, result.HasVoted)
		vote.AssertNumberOfCalls(t, "HasVoted", 1)
	})

	t.Run("failed query yields an empty list", func(t *testing.T) {
		vote := new(MockVote)
		vote.On("Proposals", ctx).Return(nil, errors.New("execution reverted"))

		uc := usecase.NewListProposals(usecase.NewCheckMembership(testConfig(), new(MockDrop), testLogger()), vote, testLogger())
		result, err := uc.Run(ctx, usecase.ListProposalsParams{Session: readOnlySession(bob), Status: memberStatus(bob)})

		require.NoError(t, err)
		assert.Empty(t, result.Proposals)
		assert.False(t, result.HasVoted)
		assert.Error(t, result.Err)
	})

	t.Run("failed has-voted query yields false", func(t *testing.T) {
		vote := new(MockVote)
		vote.On("Proposals", ctx).Return([]*models.Proposal{proposal(1, "a", models.ProposalStateActive)}, nil)
		vote.On("HasVoted", ctx, mock.Anything, bob).Return(false, errors.New("rpc down"))

		uc := usecase.NewListProposals(usecase.NewCheckMembership(testConfig(), new(MockDrop), testLogger()), vote, testLogger())
		result, err := uc.Run(ctx, usecase.ListProposalsParams{Session: readOnlySession(bob), Status: memberStatus(bob)})

		require.NoError(t, err)
		assert.Len(t, result.Proposals, 1)
		assert.False(t, result.HasVoted)
	})

	t.Run("non-member is refused", func(t *testing.T) {
		drop := new(MockDrop)
		drop.On("BalanceOf", ctx, bob, mock.Anything).Return(big.NewInt(0), nil)
		vote := new(MockVote)

		uc := usecase.NewListProposals(usecase.NewCheckMembership(testConfig(), drop, testLogger()), vote, testLogger())
		_, err := uc.Run(ctx, usecase.ListProposalsParams{Session: readOnlySession(bob)})

		assert.ErrorIs(t, err, domain.ErrNotMember)
		vote.AssertNotCalled(t, "Proposals", mock.Anything)
	})
}

func TestFilterProposals(t *testing.T) {
	proposals := []*models.Proposal{
		proposal(1, "Mint more tokens into the treasury", models.ProposalStateActive),
		proposal(2, "Transfer tokens to Alice", models.ProposalStateActive),
	}

	assert.Equal(t, proposals, usecase.FilterProposals(proposals, ""))

	filtered := usecase.FilterProposals(proposals, "alice")
	require.Len(t, filtered, 1)
	assert.Equal(t, int64(2), filtered[0].ID.Int64())

	assert.Empty(t, usecase.FilterProposals(proposals, "zzzz"))
}

func TestSubmitVotes(t *testing.T) {
	ctx := context.Background()

	t.Run("delegates, votes on active and executes succeeded", func(t *testing.T) {
		session := signingSession(alice)
		token := new(MockToken)
		vote := new(MockVote)

		p1 := proposal(1, "first", models.ProposalStateActive)
		p2 := proposal(2, "second", models.ProposalStateActive)

		token.On("Delegates", ctx, alice).Return(common.Address{}, nil).Once()
		token.On("Delegate", ctx, session, alice).Return(okTx("delegate"), nil).Once()

		vote.On("ProposalState", ctx, bigEq(big.NewInt(1))).Return(models.ProposalStateActive, nil).Once()
		vote.On("ProposalState", ctx, bigEq(big.NewInt(1))).Return(models.ProposalStateSucceeded, nil).Once()
		vote.On("ProposalState", ctx, bigEq(big.NewInt(2))).Return(models.ProposalStateActive, nil).Once()
		vote.On("ProposalState", ctx, bigEq(big.NewInt(2))).Return(models.ProposalStateActive, nil).Once()

		vote.On("CastVote", ctx, session, bigEq(big.NewInt(1)), models.VoteFor).Return(okTx("castVote"), nil).Once()
		vote.On("CastVote", ctx, session, bigEq(big.NewInt(2)), models.VoteAbstain).Return(okTx("castVote"), nil).Once()
		vote.On("Execute", ctx, session, p1).Return(okTx("execute"), nil).Once()

		uc := usecase.NewSubmitVotes(token, vote, &MockProgressSink{}, testLogger())
		result, err := uc.Run(ctx, usecase.SubmitVotesParams{
			Session: session,
			Votes: []models.VoteSubmission{
				{ProposalID: big.NewInt(1), Choice: models.VoteFor},
				{ProposalID: big.NewInt(2), Choice: models.VoteAbstain},
			},
			Proposals: []*models.Proposal{p1, p2},
		})

		require.NoError(t, err)
		assert.True(t, result.HasVoted)
		assert.True(t, result.Delegated)
		assert.Equal(t, []usecase.VoteOutcome{usecase.OutcomeVoted, usecase.OutcomeExecuted}, result.Outcomes["1"])
		assert.Equal(t, []usecase.VoteOutcome{usecase.OutcomeVoted}, result.Outcomes["2"])
		assert.False(t, uc.IsVoting())
		token.AssertExpectations(t)
		vote.AssertExpectations(t)
	})

	t.Run("existing delegation is kept", func(t *testing.T) {
		session := signingSession(alice)
		token := new(MockToken)
		vote := new(MockVote)

		token.On("Delegates", ctx, alice).Return(bob, nil)
		vote.On("ProposalState", ctx, mock.Anything).Return(models.ProposalStateDefeated, nil)

		uc := usecase.NewSubmitVotes(token, vote, &MockProgressSink{}, testLogger())
		result, err := uc.Run(ctx, usecase.SubmitVotesParams{
			Session: session,
			Votes:   []models.VoteSubmission{{ProposalID: big.NewInt(1), Choice: models.VoteAgainst}},
		})

		require.NoError(t, err)
		assert.False(t, result.Delegated)
		assert.Equal(t, []usecase.VoteOutcome{usecase.OutcomeSkipped}, result.Outcomes["1"])
		token.AssertNotCalled(t, "Delegate", mock.Anything, mock.Anything, mock.Anything)
		vote.AssertNotCalled(t, "CastVote", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		vote.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("mixed batch votes only on the active proposal", func(t *testing.T) {
		session := signingSession(alice)
		token := new(MockToken)
		vote := new(MockVote)

		token.On("Delegates", ctx, alice).Return(alice, nil)
		vote.On("ProposalState", ctx, bigEq(big.NewInt(1))).Return(models.ProposalStateActive, nil)
		vote.On("ProposalState", ctx, bigEq(big.NewInt(2))).Return(models.ProposalStateDefeated, nil)
		vote.On("CastVote", ctx, session, bigEq(big.NewInt(1)), models.VoteFor).Return(okTx("castVote"), nil).Once()

		uc := usecase.NewSubmitVotes(token, vote, &MockProgressSink{}, testLogger())
		result, err := uc.Run(ctx, usecase.SubmitVotesParams{
			Session: session,
			Votes: []models.VoteSubmission{
				{ProposalID: big.NewInt(1), Choice: models.VoteFor},
				{ProposalID: big.NewInt(2), Choice: models.VoteAgainst},
			},
			Proposals: []*models.Proposal{
				proposal(1, "open", models.ProposalStateActive),
				proposal(2, "closed", models.ProposalStateDefeated),
			},
		})

		require.NoError(t, err)
		assert.True(t, result.HasVoted)
		assert.Equal(t, []usecase.VoteOutcome{usecase.OutcomeVoted}, result.Outcomes["1"])
		assert.Equal(t, []usecase.VoteOutcome{usecase.OutcomeSkipped}, result.Outcomes["2"])
		vote.AssertCalled(t, "CastVote", ctx, session, bigEq(big.NewInt(1)), models.VoteFor)
		vote.AssertNotCalled(t, "CastVote", ctx, session, bigEq(big.NewInt(2)), mock.Anything)
		vote.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("ready proposal missing from the page is not executed", func(t *testing.T) {
		session := signingSession(alice)
		token := new(MockToken)
		vote := new(MockVote)

		token.On("Delegates", ctx, alice).Return(alice, nil)
		vote.On("ProposalState", ctx, bigEq(big.NewInt(7))).Return(models.ProposalStateSucceeded, nil)

		uc := usecase.NewSubmitVotes(token, vote, &MockProgressSink{}, testLogger())
		result, err := uc.Run(ctx, usecase.SubmitVotesParams{
			Session: session,
			Votes:   []models.VoteSubmission{{ProposalID: big.NewInt(7), Choice: models.VoteFor}},
		})

		require.NoError(t, err)
		assert.True(t, result.HasVoted)
		assert.Equal(t, []usecase.VoteOutcome{usecase.OutcomeSkipped}, result.Outcomes["7"])
		vote.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("failed delegation sends no votes", func(t *testing.T) {
		session := signingSession(alice)
		token := new(MockToken)
		vote := new(MockVote)

		token.On("Delegates", ctx, alice).Return(common.Address{}, nil)
		token.On("Delegate", ctx, session, alice).Return(nil, errors.New("user rejected"))

		uc := usecase.NewSubmitVotes(token, vote, &MockProgressSink{}, testLogger())
		result, err := uc.Run(ctx, usecase.SubmitVotesParams{
			Session: session,
			Votes:   []models.VoteSubmission{{ProposalID: big.NewInt(1), Choice: models.VoteFor}},
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to delegate tokens")
		assert.False(t, result.HasVoted)
		vote.AssertNotCalled(t, "ProposalState", mock.Anything, mock.Anything)
	})

	t.Run("failed vote skips execution", func(t *testing.T) {
		session := signingSession(alice)
		token := new(MockToken)
		vote := new(MockVote)

		token.On("Delegates", ctx, alice).Return(alice, nil)
		vote.On("ProposalState", ctx, bigEq(big.NewInt(1))).Return(models.ProposalStateActive, nil)
		vote.On("ProposalState", ctx, bigEq(big.NewInt(2))).Return(models.ProposalStateActive, nil)
		vote.On("CastVote", ctx, session, bigEq(big.NewInt(1)), models.VoteFor).Return(nil, errors.New("execution reverted"))
		vote.On("CastVote", ctx, session, bigEq(big.NewInt(2)), models.VoteFor).Return(okTx("castVote"), nil)

		uc := usecase.NewSubmitVotes(token, vote, &MockProgressSink{}, testLogger())
		result, err := uc.Run(ctx, usecase.SubmitVotesParams{
			Session: session,
			Votes: []models.VoteSubmission{
				{ProposalID: big.NewInt(1), Choice: models.VoteFor},
				{ProposalID: big.NewInt(2), Choice: models.VoteFor},
			},
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to vote")
		assert.False(t, result.HasVoted)
		vote.AssertNumberOfCalls(t, "CastVote", 2)
		vote.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("failed execution leaves has-voted unset", func(t *testing.T) {
		session := signingSession(alice)
		token := new(MockToken)
		vote := new(MockVote)

		token.On("Delegates", ctx, alice).Return(alice, nil)
		vote.On("ProposalState", ctx, mock.Anything).Return(models.ProposalStateSucceeded, nil)
		vote.On("Execute", ctx, session, mock.Anything).Return(nil, errors.New("timelock"))

		uc := usecase.NewSubmitVotes(token, vote, &MockProgressSink{}, testLogger())
		result, err := uc.Run(ctx, usecase.SubmitVotesParams{
			Session:   session,
			Votes:     []models.VoteSubmission{{ProposalID: big.NewInt(7), Choice: models.VoteFor}},
			Proposals: []*models.Proposal{proposal(7, "seventh", models.ProposalStateSucceeded)},
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to execute votes")
		assert.False(t, result.HasVoted)
	})

	t.Run("duplicate submissions collapse to one vote", func(t *testing.T) {
		session := signingSession(alice)
		token := new(MockToken)
		vote := new(MockVote)

		token.On("Delegates", ctx, alice).Return(alice, nil)
		vote.On("ProposalState", ctx, bigEq(big.NewInt(1))).Return(models.ProposalStateActive, nil)
		vote.On("CastVote", ctx, session, bigEq(big.NewInt(1)), models.VoteFor).Return(okTx("castVote"), nil)

		uc := usecase.NewSubmitVotes(token, vote, &MockProgressSink{}, testLogger())
		_, err := uc.Run(ctx, usecase.SubmitVotesParams{
			Session: session,
			Votes: []models.VoteSubmission{
				{ProposalID: big.NewInt(1), Choice: models.VoteFor},
				{ProposalID: big.NewInt(1), Choice: models.VoteAgainst},
			},
		})

		require.NoError(t, err)
		vote.AssertNumberOfCalls(t, "CastVote", 1)
	})

	t.Run("read-only session cannot vote", func(t *testing.T) {
		uc := usecase.NewSubmitVotes(new(MockToken), new(MockVote), &MockProgressSink{}, testLogger())
		_, err := uc.Run(ctx, usecase.SubmitVotesParams{Session: readOnlySession(alice)})

		assert.ErrorIs(t, err, domain.ErrNoSigner)
	})
}
