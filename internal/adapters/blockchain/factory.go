package blockchain

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/soccerdao/dao-cli/internal/adapters/abi/bindings"
	"github.com/soccerdao/dao-cli/internal/domain"
	"github.com/soccerdao/dao-cli/internal/domain/config"
	"github.com/soccerdao/dao-cli/internal/domain/models"
	"github.com/soccerdao/dao-cli/internal/usecase"
)

// Module types registered in the app factory
const (
	ModuleTypeToken = "TokenERC20"
	ModuleTypeVote  = "VoteERC20"
)

// Factory deploys pre-built module proxies through the app factory
type Factory struct {
	client  *Client
	address common.Address
	binding *bindings.TWFactory
	token   *bindings.TokenERC20
	vote    *bindings.VoteERC20
	log     *slog.Logger
}

// NewFactory creates a new factory adapter for the configured app
func NewFactory(client *Client, cfg *config.RuntimeConfig, log *slog.Logger) *Factory {
	return &Factory{
		client:  client,
		address: cfg.Contracts.App,
		binding: bindings.NewTWFactory(),
		token:   bindings.NewTokenERC20(),
		vote:    bindings.NewVoteERC20(),
		log:     log,
	}
}

// DeployTokenModule deploys a TokenERC20 proxy administered by the session
func (f *Factory) DeployTokenModule(ctx context.Context, session *models.Session, params models.TokenModuleParams) (*models.Transaction, error) {
	init := f.token.PackInitialize(
		session.Address,
		params.Name,
		params.Symbol,
		"",
		[]common.Address{},
		session.Address,
		session.Address,
		new(big.Int),
	)
	return f.deploy(ctx, session, ModuleTypeToken, init)
}

// DeployVoteModule deploys a VoteERC20 proxy voting with params.VotingTokenAddress
func (f *Factory) DeployVoteModule(ctx context.Context, session *models.Session, params models.VoteModuleParams) (*models.Transaction, error) {
	init := f.vote.PackInitialize(
		params.Name,
		"",
		[]common.Address{},
		params.VotingTokenAddress,
		new(big.Int).SetUint64(params.ProposalStartWaitTimeInSeconds),
		new(big.Int).SetUint64(params.ProposalVotingTimeInSeconds),
		orZero(params.MinimumNumberOfTokensNeededToPropose),
		new(big.Int).SetUint64(params.VotingQuorumFraction),
	)
	return f.deploy(ctx, session, ModuleTypeVote, init)
}

func (f *Factory) deploy(ctx context.Context, session *models.Session, moduleType string, init []byte) (*models.Transaction, error) {
	if f.address == (common.Address{}) {
		return nil, fmt.Errorf("%w: app", domain.ErrContractNotConfigured)
	}
	backend, err := f.client.Backend(ctx)
	if err != nil {
		return nil, err
	}
	contract := f.binding.Instance(backend, f.address)

	tx, receipt, err := f.client.send(ctx, session, contract, "deployProxy", f.binding.PackDeployProxy(ModuleTypeID(moduleType), init))
	if err != nil {
		return nil, err
	}

	proxy, ok := f.deployedProxy(receipt)
	if !ok {
		return nil, fmt.Errorf("deployProxy %s: no ProxyDeployed event in receipt", tx.Hash.Hex())
	}
	tx.CreatedAddress = &proxy
	f.log.Info("module deployed", "type", moduleType, "address", proxy.Hex())
	return tx, nil
}

func (f *Factory) deployedProxy(receipt *types.Receipt) (common.Address, bool) {
	id := eventID(&bindings.TWFactoryMetaData, bindings.TWFactoryProxyDeployedEventName)
	for _, l := range receipt.Logs {
		if l.Address != f.address || len(l.Topics) == 0 || l.Topics[0] != id {
			continue
		}
		ev, err := f.binding.UnpackProxyDeployedEvent(l)
		if err != nil {
			f.log.Warn("undecodable ProxyDeployed log", "error", err)
			continue
		}
		return ev.Proxy, true
	}
	return common.Address{}, false
}

// ModuleTypeID is the factory's bytes32 module type: the name, right padded
func ModuleTypeID(name string) [32]byte {
	var id [32]byte
	copy(id[:], name)
	return id
}

var _ usecase.ModuleFactory = (*Factory)(nil)
