package blockchain

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/soccerdao/dao-cli/internal/adapters/abi/bindings"
	"github.com/soccerdao/dao-cli/internal/domain"
	"github.com/soccerdao/dao-cli/internal/domain/config"
	"github.com/soccerdao/dao-cli/internal/domain/models"
	"github.com/soccerdao/dao-cli/internal/usecase"
	"golang.org/x/sync/errgroup"
)

// proposalStateConcurrency bounds the state lookups made per listing
const proposalStateConcurrency = 8

// Vote is the Governor contract
type Vote struct {
	client  *Client
	address common.Address
	binding *bindings.VoteERC20
	log     *slog.Logger
}

// NewVote creates a new vote adapter at the configured address
func NewVote(client *Client, cfg *config.RuntimeConfig, log *slog.Logger) *Vote {
	return &Vote{
		client:  client,
		address: cfg.Contracts.Vote,
		binding: bindings.NewVoteERC20(),
		log:     log,
	}
}

func (v *Vote) Address() common.Address {
	return v.address
}

func (v *Vote) instance(ctx context.Context) (*bind.BoundContract, error) {
	if v.address == (common.Address{}) {
		return nil, fmt.Errorf("%w: vote", domain.ErrContractNotConfigured)
	}
	backend, err := v.client.Backend(ctx)
	if err != nil {
		return nil, err
	}
	return v.binding.Instance(backend, v.address), nil
}

// Proposals returns every proposal with its current state
func (v *Vote) Proposals(ctx context.Context) ([]*models.Proposal, error) {
	contract, err := v.instance(ctx)
	if err != nil {
		return nil, err
	}

	raw, err := bind.Call(contract, v.client.callOpts(ctx), v.binding.PackGetAllProposals(), v.binding.UnpackGetAllProposals)
	if err != nil {
		return nil, err
	}

	proposals := make([]*models.Proposal, len(raw))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(proposalStateConcurrency)
	for i, p := range raw {
		proposals[i] = toProposal(p)
		g.Go(func() error {
			state, err := v.ProposalState(gctx, p.ProposalId)
			if err != nil {
				return fmt.Errorf("proposal %s: %w", p.ProposalId, err)
			}
			proposals[i].State = state
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return proposals, nil
}

func toProposal(p bindings.VoteERC20Proposal) *models.Proposal {
	return &models.Proposal{
		ID:          p.ProposalId,
		Proposer:    p.Proposer,
		Description: p.Description,
		Votes:       models.StandardVoteOptions(),
		Targets:     p.Targets,
		Values:      p.Values,
		Calldatas:   p.Calldatas,
		StartBlock:  p.StartBlock,
		EndBlock:    p.EndBlock,
	}
}

func (v *Vote) ProposalState(ctx context.Context, proposalID *big.Int) (models.ProposalState, error) {
	contract, err := v.instance(ctx)
	if err != nil {
		return 0, err
	}
	state, err := bind.Call(contract, v.client.callOpts(ctx), v.binding.PackState(proposalID), v.binding.UnpackState)
	if err != nil {
		return 0, err
	}
	return models.ProposalState(state), nil
}

func (v *Vote) HasVoted(ctx context.Context, proposalID *big.Int, account common.Address) (bool, error) {
	contract, err := v.instance(ctx)
	if err != nil {
		return false, err
	}
	return bind.Call(contract, v.client.callOpts(ctx), v.binding.PackHasVoted(proposalID, account), v.binding.UnpackHasVoted)
}

func (v *Vote) CastVote(ctx context.Context, session *models.Session, proposalID *big.Int, choice models.VoteChoice) (*models.Transaction, error) {
	contract, err := v.instance(ctx)
	if err != nil {
		return nil, err
	}
	return v.client.transact(ctx, session, contract, "castVote", v.binding.PackCastVote(proposalID, uint8(choice)))
}

// Execute executes a succeeded proposal with the payload it was created with
func (v *Vote) Execute(ctx context.Context, session *models.Session, proposal *models.Proposal) (*models.Transaction, error) {
	contract, err := v.instance(ctx)
	if err != nil {
		return nil, err
	}
	values := make([]*big.Int, len(proposal.Values))
	for i, value := range proposal.Values {
		values[i] = orZero(value)
	}
	data := v.binding.PackExecute(proposal.Targets, values, proposal.Calldatas, proposal.DescriptionHash())
	return v.client.transact(ctx, session, contract, "execute", data)
}

var _ usecase.GovernanceVote = (*Vote)(nil)
