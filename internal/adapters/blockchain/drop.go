package blockchain

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/samber/lo"
	"github.com/soccerdao/dao-cli/internal/adapters/abi/bindings"
	"github.com/soccerdao/dao-cli/internal/domain"
	"github.com/soccerdao/dao-cli/internal/domain/config"
	"github.com/soccerdao/dao-cli/internal/domain/models"
	"github.com/soccerdao/dao-cli/internal/usecase"
)

// Drop is the ERC-1155 membership drop
type Drop struct {
	client  *Client
	address common.Address
	binding *bindings.DropERC1155
	log     *slog.Logger
}

// NewDrop creates a new drop adapter at the configured address
func NewDrop(client *Client, cfg *config.RuntimeConfig, log *slog.Logger) *Drop {
	return &Drop{
		client:  client,
		address: cfg.Contracts.Drop,
		binding: bindings.NewDropERC1155(),
		log:     log,
	}
}

func (d *Drop) Address() common.Address {
	return d.address
}

func (d *Drop) instance(ctx context.Context) (*bind.BoundContract, error) {
	if d.address == (common.Address{}) {
		return nil, fmt.Errorf("%w: drop", domain.ErrContractNotConfigured)
	}
	backend, err := d.client.Backend(ctx)
	if err != nil {
		return nil, err
	}
	return d.binding.Instance(backend, d.address), nil
}

// BalanceOf returns how many of tokenID owner holds
func (d *Drop) BalanceOf(ctx context.Context, owner common.Address, tokenID *big.Int) (*big.Int, error) {
	contract, err := d.instance(ctx)
	if err != nil {
		return nil, err
	}
	return bind.Call(contract, d.client.callOpts(ctx), d.binding.PackBalanceOf(owner, tokenID), d.binding.UnpackBalanceOf)
}

// Claim claims quantity of tokenID for the session address under the free
// native-currency phase.
func (d *Drop) Claim(ctx context.Context, session *models.Session, tokenID *big.Int, quantity int64) (*models.Transaction, error) {
	contract, err := d.instance(ctx)
	if err != nil {
		return nil, err
	}
	data := d.binding.PackClaim(
		session.Address,
		tokenID,
		big.NewInt(quantity),
		models.NativeTokenAddress,
		new(big.Int),
		[][32]byte{},
		new(big.Int),
	)
	return d.client.transact(ctx, session, contract, "claim", data)
}

// ClaimerAddresses replays TokensClaimed logs for tokenID
func (d *Drop) ClaimerAddresses(ctx context.Context, tokenID *big.Int) ([]common.Address, error) {
	if d.address == (common.Address{}) {
		return nil, fmt.Errorf("%w: drop", domain.ErrContractNotConfigured)
	}

	topics := [][]common.Hash{
		{eventID(&bindings.DropERC1155MetaData, bindings.DropERC1155TokensClaimedEventName)},
		nil,
		{common.BigToHash(tokenID)},
	}
	logs, err := d.client.filterLogs(ctx, d.address, topics)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch claim logs: %w", err)
	}

	records := make([]ClaimRecord, 0, len(logs))
	for i := range logs {
		ev, err := d.binding.UnpackTokensClaimedEvent(&logs[i])
		if err != nil {
			d.log.Warn("skipping undecodable claim log", "tx", logs[i].TxHash.Hex(), "error", err)
			continue
		}
		records = append(records, ClaimRecord{Claimer: ev.Claimer, Receiver: ev.Receiver, Quantity: ev.QuantityClaimed})
	}

	return ReplayClaimers(records), nil
}

// LazyMint registers amount new token ids under baseURI
func (d *Drop) LazyMint(ctx context.Context, session *models.Session, amount int64, baseURI string) (*models.Transaction, error) {
	contract, err := d.instance(ctx)
	if err != nil {
		return nil, err
	}
	return d.client.transact(ctx, session, contract, "lazyMint", d.binding.PackLazyMint(big.NewInt(amount), baseURI))
}

// SetClaimConditions replaces the claim phases of tokenID
func (d *Drop) SetClaimConditions(ctx context.Context, session *models.Session, tokenID *big.Int, phases []models.ClaimPhase) (*models.Transaction, error) {
	contract, err := d.instance(ctx)
	if err != nil {
		return nil, err
	}
	conditions := lo.Map(phases, func(p models.ClaimPhase, _ int) bindings.IDropClaimConditionClaimCondition {
		return bindings.IDropClaimConditionClaimCondition{
			StartTimestamp:                 big.NewInt(p.StartTime.Unix()),
			MaxClaimableSupply:             orZero(p.MaxQuantity),
			SupplyClaimed:                  new(big.Int),
			QuantityLimitPerTransaction:    orZero(p.MaxQuantityPerTransaction),
			WaitTimeInSecondsBetweenClaims: orZero(p.WaitBetweenClaims),
			MerkleRoot:                     p.MerkleRoot,
			PricePerToken:                  orZero(p.Price),
			Currency:                       p.Currency,
		}
	})
	return d.client.transact(ctx, session, contract, "setClaimConditions", d.binding.PackSetClaimConditions(tokenID, conditions, false))
}

func orZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}

var _ usecase.MembershipDrop = (*Drop)(nil)
