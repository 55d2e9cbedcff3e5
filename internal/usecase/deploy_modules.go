package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/soccerdao/dao-cli/internal/domain/config"
	"github.com/soccerdao/dao-cli/internal/domain/models"
)

// DefaultTokenModuleParams is the governance token of the DAO
func DefaultTokenModuleParams() models.TokenModuleParams {
	return models.TokenModuleParams{
		Name:   "Token for SoccerDAO",
		Symbol: "SDT",
	}
}

// DefaultVoteModuleParams votes immediately for 24 hours, without quorum
// or proposal threshold.
func DefaultVoteModuleParams(token common.Address) models.VoteModuleParams {
	return models.VoteModuleParams{
		Name:                                 "SoccerDAO's Epic Proposals",
		VotingTokenAddress:                   token,
		ProposalStartWaitTimeInSeconds:       0,
		ProposalVotingTimeInSeconds:          24 * 60 * 60,
		VotingQuorumFraction:                 0,
		MinimumNumberOfTokensNeededToPropose: new(big.Int),
	}
}

// DeployModuleResult contains the address of a deployed module
type DeployModuleResult struct {
	Address     common.Address
	Transaction *models.Transaction
}

// DeployTokenModule deploys the ERC-20 governance token through the app factory
type DeployTokenModule struct {
	factory ModuleFactory
	sink    ProgressSink
	log     *slog.Logger
}

// NewDeployTokenModule creates a new DeployTokenModule use case
func NewDeployTokenModule(factory ModuleFactory, sink ProgressSink, log *slog.Logger) *DeployTokenModule {
	return &DeployTokenModule{factory: factory, sink: sink, log: log}
}

// Run deploys the token module
func (uc *DeployTokenModule) Run(ctx context.Context, session *models.Session, params models.TokenModuleParams) (*DeployModuleResult, error) {
	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "deploy-token", Message: "Deploying token module...", Spinner: true})
	tx, err := uc.factory.DeployTokenModule(ctx, session, params)
	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "complete"})
	if err != nil {
		uc.log.Error("failed to deploy the token module", "error", err)
		return nil, fmt.Errorf("failed to deploy the token module: %w", err)
	}
	return deployedModule(tx)
}

// DeployVoteModule deploys the governance contract through the app factory
type DeployVoteModule struct {
	config  *config.RuntimeConfig
	factory ModuleFactory
	sink    ProgressSink
	log     *slog.Logger
}

// NewDeployVoteModule creates a new DeployVoteModule use case
func NewDeployVoteModule(cfg *config.RuntimeConfig, factory ModuleFactory, sink ProgressSink, log *slog.Logger) *DeployVoteModule {
	return &DeployVoteModule{config: cfg, factory: factory, sink: sink, log: log}
}

// Run deploys the vote module. Failures are logged and returned rather than
// swallowed.
func (uc *DeployVoteModule) Run(ctx context.Context, session *models.Session, params models.VoteModuleParams) (*DeployModuleResult, error) {
	if params.VotingTokenAddress == (common.Address{}) {
		params.VotingTokenAddress = uc.config.Contracts.Token
	}

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "deploy-vote", Message: "Deploying vote module...", Spinner: true})
	tx, err := uc.factory.DeployVoteModule(ctx, session, params)
	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "complete"})
	if err != nil {
		uc.log.Error("failed to deploy the vote module", "error", err)
		return nil, fmt.Errorf("failed to deploy the vote module: %w", err)
	}
	return deployedModule(tx)
}

func deployedModule(tx *models.Transaction) (*DeployModuleResult, error) {
	if tx.CreatedAddress == nil {
		return nil, fmt.Errorf("deployment %s did not report a module address", tx.Hash.Hex())
	}
	return &DeployModuleResult{Address: *tx.CreatedAddress, Transaction: tx}, nil
}
