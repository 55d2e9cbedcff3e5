package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"sync/atomic"

	"github.com/soccerdao/dao-cli/internal/domain"
	"github.com/soccerdao/dao-cli/internal/domain/config"
	"github.com/soccerdao/dao-cli/internal/domain/models"
)

// MintResult contains the result of claiming the membership NFT
type MintResult struct {
	// Status is set optimistically to Holds=true after a successful claim;
	// the chain is not re-read until the next full load.
	Status      *models.MembershipStatus
	Transaction *models.Transaction
	MarketURL   string
}

// MintMembership claims one membership NFT for the connected wallet
type MintMembership struct {
	config   *config.RuntimeConfig
	drop     MembershipDrop
	sink     ProgressSink
	log      *slog.Logger
	claiming atomic.Bool
}

// NewMintMembership creates a new MintMembership use case
func NewMintMembership(cfg *config.RuntimeConfig, drop MembershipDrop, sink ProgressSink, log *slog.Logger) *MintMembership {
	return &MintMembership{
		config: cfg,
		drop:   drop,
		sink:   sink,
		log:    log,
	}
}

// IsClaiming reports whether a claim is in flight
func (uc *MintMembership) IsClaiming() bool {
	return uc.claiming.Load()
}

// Run claims quantity 1 of the membership token. Duplicate submissions
// while a claim is pending are rejected. There is no retry.
func (uc *MintMembership) Run(ctx context.Context, session *models.Session) (*MintResult, error) {
	if !session.CanSign() {
		return nil, domain.ErrNoSigner
	}
	if !uc.claiming.CompareAndSwap(false, true) {
		return nil, domain.ErrClaimInProgress
	}
	defer uc.claiming.Store(false)

	tokenID := big.NewInt(uc.config.MembershipTokenID)

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "claiming",
		Message: "Minting...",
		Spinner: true,
	})

	tx, err := uc.drop.Claim(ctx, session, tokenID, 1)

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "complete"})

	if err != nil {
		uc.log.Error("Failed to claim", "address", session.Address.Hex(), "error", err)
		return nil, fmt.Errorf("failed to claim membership NFT: %w", err)
	}

	result := &MintResult{
		Status: &models.MembershipStatus{
			Address: session.Address,
			Holds:   true,
			Balance: big.NewInt(1),
		},
		Transaction: tx,
		MarketURL:   uc.marketURL(tokenID),
	}

	uc.log.Info("🌊 Successfully Minted!", "tx", tx.Hash.Hex(), "market", result.MarketURL)
	return result, nil
}

func (uc *MintMembership) marketURL(tokenID *big.Int) string {
	if uc.config.Network == nil || uc.config.Network.MarketURL == "" {
		return ""
	}
	return fmt.Sprintf("%s/assets/%s/%s", uc.config.Network.MarketURL, uc.drop.Address().Hex(), tokenID)
}
