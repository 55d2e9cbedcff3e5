package usecase

import (
	"context"
	"log/slog"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/samber/lo"
	"github.com/soccerdao/dao-cli/internal/domain"
	"github.com/soccerdao/dao-cli/internal/domain/config"
	"github.com/soccerdao/dao-cli/internal/domain/models"
)

// ListMembersParams contains parameters for listing members
type ListMembersParams struct {
	Session *models.Session

	// Status is the gate result already known to the caller (for instance
	// the optimistic status after a mint). When nil the gate is evaluated.
	Status *models.MembershipStatus
}

// ListMembers builds the member directory for a gated session
type ListMembers struct {
	config *config.RuntimeConfig
	gate   *CheckMembership
	drop   MembershipDrop
	token  GovernanceToken
	log    *slog.Logger
}

// NewListMembers creates a new ListMembers use case
func NewListMembers(cfg *config.RuntimeConfig, gate *CheckMembership, drop MembershipDrop, token GovernanceToken, log *slog.Logger) *ListMembers {
	return &ListMembers{
		config: cfg,
		gate:   gate,
		drop:   drop,
		token:  token,
		log:    log,
	}
}

// Run fetches holders and balances independently and joins them. Either
// fetch may fail; the directory is then partial, never an error.
func (uc *ListMembers) Run(ctx context.Context, params ListMembersParams) (*models.MemberDirectory, error) {
	if err := requireMember(ctx, uc.gate, params.Session, params.Status); err != nil {
		return nil, err
	}

	var (
		wg       sync.WaitGroup
		holders  []common.Address
		balances map[common.Address]*big.Int
		dir      models.MemberDirectory
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		addrs, err := uc.drop.ClaimerAddresses(ctx, big.NewInt(uc.config.MembershipTokenID))
		if err != nil {
			uc.log.Error("failed to get claimer addresses", "error", err)
			dir.HoldersErr = err
			return
		}
		uc.log.Debug("🚀 Members addresses", "count", len(addrs))
		holders = addrs
	}()
	go func() {
		defer wg.Done()
		amounts, err := uc.token.HolderBalances(ctx)
		if err != nil {
			uc.log.Error("failed to get token amounts", "error", err)
			dir.BalancesErr = err
			return
		}
		uc.log.Debug("👜 Amounts", "count", len(amounts))
		balances = amounts
	}()
	wg.Wait()

	dir.Members = JoinMembers(holders, balances, uc.decimals(), params.Session.Address)
	return &dir, nil
}

func (uc *ListMembers) decimals() int {
	if uc.config.TokenDecimals > 0 {
		return uc.config.TokenDecimals
	}
	return models.DefaultDecimals
}

// JoinMembers produces one row per unique holder, in holder order. Holders
// missing from balances show zero; addresses that only appear in balances
// are never listed.
func JoinMembers(holders []common.Address, balances map[common.Address]*big.Int, decimals int, self common.Address) []models.Member {
	return lo.Map(lo.Uniq(holders), func(address common.Address, _ int) models.Member {
		return models.Member{
			Address:     address,
			TokenAmount: models.FormatUnits(balances[address], decimals),
			IsSelf:      self != (common.Address{}) && address == self,
		}
	})
}

// requireMember enforces that member-only views are revealed only when the
// gate is true for the current session.
func requireMember(ctx context.Context, gate *CheckMembership, session *models.Session, status *models.MembershipStatus) error {
	if !session.IsConnected() {
		return domain.ErrWalletNotConnected
	}
	if status == nil || status.Address != session.Address {
		status = gate.Run(ctx, session.Address)
	}
	if !status.Holds {
		return domain.ErrNotMember
	}
	return nil
}
