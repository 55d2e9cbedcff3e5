package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"math/rand/v2"

	"github.com/samber/lo"
	"github.com/soccerdao/dao-cli/internal/domain"
	"github.com/soccerdao/dao-cli/internal/domain/config"
	"github.com/soccerdao/dao-cli/internal/domain/models"
)

// Whole-token bounds of a random airdrop amount, both inclusive
const (
	MinAirdropAmount = 1000
	MaxAirdropAmount = 10000
)

// RandomAirdropAmount draws uniformly from [MinAirdropAmount, MaxAirdropAmount]
func RandomAirdropAmount() int64 {
	return MinAirdropAmount + rand.Int64N(MaxAirdropAmount-MinAirdropAmount+1)
}

// AirdropResult contains the transfers sent to members
type AirdropResult struct {
	Targets     []models.AirdropTarget
	Transaction *models.Transaction
}

// AirdropToken sends every membership claimer a random amount of tokens
// in one batch transaction.
type AirdropToken struct {
	config *config.RuntimeConfig
	drop   MembershipDrop
	token  GovernanceToken
	pick   AmountPicker
	sink   ProgressSink
	log    *slog.Logger
}

// NewAirdropToken creates a new AirdropToken use case
func NewAirdropToken(
	cfg *config.RuntimeConfig,
	drop MembershipDrop,
	token GovernanceToken,
	pick AmountPicker,
	sink ProgressSink,
	log *slog.Logger,
) *AirdropToken {
	if pick == nil {
		pick = RandomAirdropAmount
	}
	return &AirdropToken{
		config: cfg,
		drop:   drop,
		token:  token,
		pick:   pick,
		sink:   sink,
		log:    log,
	}
}

// Run airdrops to the current claimers. It returns domain.ErrNoClaims when
// nobody has claimed the membership token yet.
func (uc *AirdropToken) Run(ctx context.Context, session *models.Session) (*AirdropResult, error) {
	claimers, err := uc.drop.ClaimerAddresses(ctx, big.NewInt(uc.config.MembershipTokenID))
	if err != nil {
		uc.log.Error("Failed to airdrop tokens", "error", err)
		return nil, fmt.Errorf("failed to get claimer addresses: %w", err)
	}
	claimers = lo.Uniq(claimers)

	if len(claimers) == 0 {
		uc.log.Info("No NFTs have been claimed yet!!!")
		uc.sink.Info("No NFTs have been claimed yet, maybe get some friends to claim your free NFTs!")
		return &AirdropResult{}, domain.ErrNoClaims
	}

	targets := make([]models.AirdropTarget, 0, len(claimers))
	for _, addr := range claimers {
		whole := uc.pick()
		uc.log.Info("✅ Going to airdrop", "amount", whole, "to", addr.Hex())
		targets = append(targets, models.AirdropTarget{
			Address: addr,
			Amount:  models.ScaleUnits(whole, uc.config.TokenDecimals),
		})
	}

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "airdrop", Message: "Starting airdrop...", Spinner: true, Total: len(targets)})
	tx, err := uc.token.TransferBatch(ctx, session, targets)
	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "complete"})
	if err != nil {
		uc.log.Error("Failed to airdrop tokens", "error", err)
		return nil, fmt.Errorf("failed to airdrop tokens: %w", err)
	}

	uc.log.Info("✅ Successfully airdropped tokens to all the holders of the NFT!", "recipients", len(targets))
	return &AirdropResult{Targets: targets, Transaction: tx}, nil
}
