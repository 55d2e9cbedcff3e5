package blockchain

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/samber/lo"
	"github.com/soccerdao/dao-cli/internal/adapters/abi/bindings"
	"github.com/soccerdao/dao-cli/internal/domain"
	"github.com/soccerdao/dao-cli/internal/domain/config"
	"github.com/soccerdao/dao-cli/internal/domain/models"
	"github.com/soccerdao/dao-cli/internal/usecase"
)

// Token is the ERC-20 votes governance token
type Token struct {
	client  *Client
	address common.Address
	binding *bindings.TokenERC20
	log     *slog.Logger
}

// NewToken creates a new token adapter at the configured address
func NewToken(client *Client, cfg *config.RuntimeConfig, log *slog.Logger) *Token {
	return &Token{
		client:  client,
		address: cfg.Contracts.Token,
		binding: bindings.NewTokenERC20(),
		log:     log,
	}
}

func (t *Token) Address() common.Address {
	return t.address
}

func (t *Token) instance(ctx context.Context) (*bind.BoundContract, error) {
	if t.address == (common.Address{}) {
		return nil, fmt.Errorf("%w: token", domain.ErrContractNotConfigured)
	}
	backend, err := t.client.Backend(ctx)
	if err != nil {
		return nil, err
	}
	return t.binding.Instance(backend, t.address), nil
}

func (t *Token) BalanceOf(ctx context.Context, owner common.Address) (*big.Int, error) {
	contract, err := t.instance(ctx)
	if err != nil {
		return nil, err
	}
	return bind.Call(contract, t.client.callOpts(ctx), t.binding.PackBalanceOf(owner), t.binding.UnpackBalanceOf)
}

func (t *Token) TotalSupply(ctx context.Context) (*big.Int, error) {
	contract, err := t.instance(ctx)
	if err != nil {
		return nil, err
	}
	return bind.Call(contract, t.client.callOpts(ctx), t.binding.PackTotalSupply(), t.binding.UnpackTotalSupply)
}

// HolderBalances replays every Transfer log of the token into current
// balances.
func (t *Token) HolderBalances(ctx context.Context) (map[common.Address]*big.Int, error) {
	if t.address == (common.Address{}) {
		return nil, fmt.Errorf("%w: token", domain.ErrContractNotConfigured)
	}

	topics := [][]common.Hash{{eventID(&bindings.TokenERC20MetaData, bindings.TokenERC20TransferEventName)}}
	logs, err := t.client.filterLogs(ctx, t.address, topics)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transfer logs: %w", err)
	}

	records := make([]TransferRecord, 0, len(logs))
	for i := range logs {
		ev, err := t.binding.UnpackTransferEvent(&logs[i])
		if err != nil {
			t.log.Warn("skipping undecodable transfer log", "tx", logs[i].TxHash.Hex(), "error", err)
			continue
		}
		records = append(records, TransferRecord{From: ev.From, To: ev.To, Value: ev.Value})
	}

	return ReplayBalances(records), nil
}

func (t *Token) Delegates(ctx context.Context, account common.Address) (common.Address, error) {
	contract, err := t.instance(ctx)
	if err != nil {
		return common.Address{}, err
	}
	return bind.Call(contract, t.client.callOpts(ctx), t.binding.PackDelegates(account), t.binding.UnpackDelegates)
}

func (t *Token) Delegate(ctx context.Context, session *models.Session, delegatee common.Address) (*models.Transaction, error) {
	contract, err := t.instance(ctx)
	if err != nil {
		return nil, err
	}
	return t.client.transact(ctx, session, contract, "delegate", t.binding.PackDelegate(delegatee))
}

func (t *Token) Mint(ctx context.Context, session *models.Session, to common.Address, amount *big.Int) (*models.Transaction, error) {
	contract, err := t.instance(ctx)
	if err != nil {
		return nil, err
	}
	return t.client.transact(ctx, session, contract, "mintTo", t.binding.PackMintTo(to, amount))
}

func (t *Token) Transfer(ctx context.Context, session *models.Session, to common.Address, amount *big.Int) (*models.Transaction, error) {
	contract, err := t.instance(ctx)
	if err != nil {
		return nil, err
	}
	return t.client.transact(ctx, session, contract, "transfer", t.binding.PackTransfer(to, amount))
}

// TransferBatch sends all transfers in one multicall transaction
func (t *Token) TransferBatch(ctx context.Context, session *models.Session, targets []models.AirdropTarget) (*models.Transaction, error) {
	contract, err := t.instance(ctx)
	if err != nil {
		return nil, err
	}
	calls := lo.Map(targets, func(target models.AirdropTarget, _ int) []byte {
		return t.binding.PackTransfer(target.Address, target.Amount)
	})
	return t.client.transact(ctx, session, contract, "multicall", t.binding.PackMulticall(calls))
}

func (t *Token) GrantRole(ctx context.Context, session *models.Session, role string, account common.Address) (*models.Transaction, error) {
	contract, err := t.instance(ctx)
	if err != nil {
		return nil, err
	}
	return t.client.transact(ctx, session, contract, "grantRole", t.binding.PackGrantRole(RoleID(role), account))
}

// RoleID maps an AccessControl role name to its bytes32 id.
// DEFAULT_ADMIN_ROLE is the zero id; every other role is keccak256(name).
func RoleID(role string) [32]byte {
	if role == "" || role == "DEFAULT_ADMIN_ROLE" {
		return [32]byte{}
	}
	return crypto.Keccak256Hash([]byte(role))
}

var _ usecase.GovernanceToken = (*Token)(nil)
