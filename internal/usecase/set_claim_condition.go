package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/soccerdao/dao-cli/internal/domain/config"
	"github.com/soccerdao/dao-cli/internal/domain/models"
)

// Default claim phase of the membership drop
const (
	DefaultClaimMaxQuantity    = 50_000
	DefaultClaimPerTransaction = 1
)

// SetClaimConditionParams contains parameters for setting the claim phase
type SetClaimConditionParams struct {
	Session *models.Session

	StartTime                 time.Time
	MaxQuantity               int64
	MaxQuantityPerTransaction int64
}

// SetClaimConditionResult contains the result of setting the claim phase
type SetClaimConditionResult struct {
	Phase       models.ClaimPhase
	Transaction *models.Transaction
}

// SetClaimCondition opens the claim window of the membership token
type SetClaimCondition struct {
	config *config.RuntimeConfig
	drop   MembershipDrop
	sink   ProgressSink
	log    *slog.Logger
}

// NewSetClaimCondition creates a new SetClaimCondition use case
func NewSetClaimCondition(cfg *config.RuntimeConfig, drop MembershipDrop, sink ProgressSink, log *slog.Logger) *SetClaimCondition {
	return &SetClaimCondition{
		config: cfg,
		drop:   drop,
		sink:   sink,
		log:    log,
	}
}

// Run replaces the claim conditions of the membership token with one phase
func (uc *SetClaimCondition) Run(ctx context.Context, params SetClaimConditionParams) (*SetClaimConditionResult, error) {
	if params.StartTime.IsZero() {
		params.StartTime = time.Now()
	}
	if params.MaxQuantity <= 0 {
		params.MaxQuantity = DefaultClaimMaxQuantity
	}
	if params.MaxQuantityPerTransaction <= 0 {
		params.MaxQuantityPerTransaction = DefaultClaimPerTransaction
	}

	phase := models.NewClaimPhase(params.StartTime, params.MaxQuantity, params.MaxQuantityPerTransaction)

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "claim-condition", Message: "Setting claim condition...", Spinner: true})
	tx, err := uc.drop.SetClaimConditions(ctx, params.Session, big.NewInt(uc.config.MembershipTokenID), []models.ClaimPhase{phase})
	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "complete"})
	if err != nil {
		uc.log.Error("Failed to set claim condition", "error", err)
		return nil, fmt.Errorf("failed to set claim condition: %w", err)
	}

	uc.log.Info("✅ Successfully set claim condition", "drop", uc.drop.Address().Hex())
	return &SetClaimConditionResult{Phase: phase, Transaction: tx}, nil
}
