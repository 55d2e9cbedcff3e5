package usecase

import (
	"context"
	"log/slog"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/soccerdao/dao-cli/internal/domain/config"
	"github.com/soccerdao/dao-cli/internal/domain/models"
)

// CheckMembership is the membership gate: an address is a member iff it
// holds at least one membership NFT.
type CheckMembership struct {
	config *config.RuntimeConfig
	drop   MembershipDrop
	log    *slog.Logger
}

// NewCheckMembership creates a new CheckMembership use case
func NewCheckMembership(cfg *config.RuntimeConfig, drop MembershipDrop, log *slog.Logger) *CheckMembership {
	return &CheckMembership{
		config: cfg,
		drop:   drop,
		log:    log,
	}
}

// Run evaluates the gate for address. It never fails: a query error closes
// the gate and is attached to the status for diagnostics.
func (uc *CheckMembership) Run(ctx context.Context, address common.Address) *models.MembershipStatus {
	status := &models.MembershipStatus{
		Address: address,
		Balance: new(big.Int),
	}

	if address == (common.Address{}) {
		return status
	}

	balance, err := uc.drop.BalanceOf(ctx, address, uc.tokenID())
	if err != nil {
		uc.log.Error("failed to get NFT balance", "address", address.Hex(), "error", err)
		status.Err = err
		return status
	}

	status.Balance = balance
	status.Holds = balance != nil && balance.Sign() > 0
	if status.Holds {
		uc.log.Info("🌟 this user has a membership NFT!", "address", address.Hex())
	} else {
		uc.log.Info("😭 this user doesn't have a membership NFT.", "address", address.Hex())
	}

	return status
}

func (uc *CheckMembership) tokenID() *big.Int {
	return big.NewInt(uc.config.MembershipTokenID)
}
