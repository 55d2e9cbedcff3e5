package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/soccerdao/dao-cli/internal/domain/config"
	"github.com/soccerdao/dao-cli/internal/domain/models"
)

// MinterRole is the token role granted to the vote contract
const MinterRole = "MINTER_ROLE"

// TreasuryPercent of the operator balance moved into the vote contract
const TreasuryPercent = 90

// SetupVoteResult reports both halves of the treasury setup
type SetupVoteResult struct {
	RoleGranted bool
	RoleErr     error

	Transferred *big.Int
	TransferErr error
}

// Err returns the first failure, if any
func (r *SetupVoteResult) Err() error {
	if r.RoleErr != nil {
		return r.RoleErr
	}
	return r.TransferErr
}

// SetupVote grants the vote contract minting rights and moves most of the
// operator's tokens into its treasury. Each half is attempted and reported
// on its own.
type SetupVote struct {
	config *config.RuntimeConfig
	token  GovernanceToken
	vote   GovernanceVote
	sink   ProgressSink
	log    *slog.Logger
}

// NewSetupVote creates a new SetupVote use case
func NewSetupVote(cfg *config.RuntimeConfig, token GovernanceToken, vote GovernanceVote, sink ProgressSink, log *slog.Logger) *SetupVote {
	return &SetupVote{config: cfg, token: token, vote: vote, sink: sink, log: log}
}

// Run performs the setup
func (uc *SetupVote) Run(ctx context.Context, session *models.Session) *SetupVoteResult {
	result := &SetupVoteResult{}
	treasury := uc.vote.Address()

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "grant-role", Message: "Granting minter role...", Spinner: true})
	if _, err := uc.token.GrantRole(ctx, session, MinterRole, treasury); err != nil {
		uc.log.Error("failed to grant vote module permissions on token module", "error", err)
		result.RoleErr = fmt.Errorf("failed to grant minter role: %w", err)
	} else {
		result.RoleGranted = true
		uc.log.Info("Successfully gave vote module permissions to act on token module")
	}

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "treasury", Message: "Transferring tokens to the treasury...", Spinner: true})
	amount, err := uc.transferTreasury(ctx, session)
	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "complete"})
	if err != nil {
		uc.log.Error("failed to transfer tokens to vote contract", "error", err)
		result.TransferErr = err
		return result
	}

	result.Transferred = amount
	uc.log.Info("✅ Successfully transferred tokens to vote module", "amount", models.FormatUnits(amount, uc.config.TokenDecimals))
	return result
}

func (uc *SetupVote) transferTreasury(ctx context.Context, session *models.Session) (*big.Int, error) {
	balance, err := uc.token.BalanceOf(ctx, session.Address)
	if err != nil {
		return nil, fmt.Errorf("failed to read token balance: %w", err)
	}

	amount := new(big.Int).Mul(balance, big.NewInt(TreasuryPercent))
	amount.Quo(amount, big.NewInt(100))

	if _, err := uc.token.Transfer(ctx, session, uc.vote.Address(), amount); err != nil {
		return nil, fmt.Errorf("failed to transfer tokens: %w", err)
	}
	return amount, nil
}
