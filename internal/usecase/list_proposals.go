package usecase

import (
	"context"
	"log/slog"

	"github.com/sahilm/fuzzy"
	"github.com/soccerdao/dao-cli/internal/domain/models"
)

// ListProposalsParams contains parameters for listing proposals
type ListProposalsParams struct {
	Session *models.Session
	Status  *models.MembershipStatus

	// Search fuzzy-filters proposals by description
	Search string
}

// ProposalsResult contains the proposals snapshot for one page load
type ProposalsResult struct {
	Proposals []*models.Proposal

	// HasVoted is whether the session already voted on the first proposal
	HasVoted bool

	Err error
}

// ListProposals loads the proposals shown on the member page
type ListProposals struct {
	gate *CheckMembership
	vote GovernanceVote
	log  *slog.Logger
}

// NewListProposals creates a new ListProposals use case
func NewListProposals(gate *CheckMembership, vote GovernanceVote, log *slog.Logger) *ListProposals {
	return &ListProposals{
		gate: gate,
		vote: vote,
		log:  log,
	}
}

// Run returns the proposals snapshot. A failed proposal query yields an
// empty list; a failed has-voted query yields false.
func (uc *ListProposals) Run(ctx context.Context, params ListProposalsParams) (*ProposalsResult, error) {
	if err := requireMember(ctx, uc.gate, params.Session, params.Status); err != nil {
		return nil, err
	}

	result := &ProposalsResult{Proposals: []*models.Proposal{}}

	proposals, err := uc.vote.Proposals(ctx)
	if err != nil {
		uc.log.Error("failed to get proposals", "error", err)
		result.Err = err
		return result, nil
	}
	uc.log.Debug("🌈 Proposals", "count", len(proposals))

	if len(proposals) > 0 {
		voted, err := uc.vote.HasVoted(ctx, proposals[0].ID, params.Session.Address)
		if err != nil {
			uc.log.Error("failed to check if wallet has voted", "error", err)
		} else {
			result.HasVoted = voted
			if voted {
				uc.log.Info("🥵 User has already voted")
			}
		}
	}

	result.Proposals = FilterProposals(proposals, params.Search)
	return result, nil
}

// FilterProposals keeps proposals whose description fuzzy-matches search,
// best match first. An empty search returns proposals unchanged.
func FilterProposals(proposals []*models.Proposal, search string) []*models.Proposal {
	if search == "" {
		return proposals
	}

	descriptions := make([]string, len(proposals))
	for i, p := range proposals {
		descriptions[i] = p.Description
	}

	matches := fuzzy.Find(search, descriptions)
	filtered := make([]*models.Proposal, 0, len(matches))
	for _, match := range matches {
		filtered = append(filtered, proposals[match.Index])
	}
	return filtered
}
