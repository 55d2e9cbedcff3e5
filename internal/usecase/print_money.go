package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/soccerdao/dao-cli/internal/domain/config"
	"github.com/soccerdao/dao-cli/internal/domain/models"
)

// DefaultMintSupply is the number of whole tokens minted to the deployer
const DefaultMintSupply = 1_000_000

// PrintMoneyResult contains the minted amount and the resulting supply
type PrintMoneyResult struct {
	Minted      *big.Int
	TotalSupply *big.Int
	Formatted   string
	Transaction *models.Transaction
}

// PrintMoney mints the initial governance token supply to the operator
type PrintMoney struct {
	config *config.RuntimeConfig
	token  GovernanceToken
	sink   ProgressSink
	log    *slog.Logger
}

// NewPrintMoney creates a new PrintMoney use case
func NewPrintMoney(cfg *config.RuntimeConfig, token GovernanceToken, sink ProgressSink, log *slog.Logger) *PrintMoney {
	return &PrintMoney{config: cfg, token: token, sink: sink, log: log}
}

// Run mints wholeTokens (scaled by the token decimals) to the session address
func (uc *PrintMoney) Run(ctx context.Context, session *models.Session, wholeTokens int64) (*PrintMoneyResult, error) {
	if wholeTokens <= 0 {
		wholeTokens = DefaultMintSupply
	}
	amount := models.ScaleUnits(wholeTokens, uc.config.TokenDecimals)

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "mint", Message: "Minting tokens...", Spinner: true})
	tx, err := uc.token.Mint(ctx, session, session.Address, amount)
	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "complete"})
	if err != nil {
		uc.log.Error("Failed to print money", "error", err)
		return nil, fmt.Errorf("failed to print money: %w", err)
	}

	supply, err := uc.token.TotalSupply(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read total supply: %w", err)
	}

	formatted := models.FormatUnits(supply, uc.config.TokenDecimals)
	uc.log.Info("✅ There now is "+formatted+" $SDT in circulation", "token", uc.token.Address().Hex())

	return &PrintMoneyResult{
		Minted:      amount,
		TotalSupply: supply,
		Formatted:   formatted,
		Transaction: tx,
	}, nil
}
