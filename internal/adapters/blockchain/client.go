package blockchain

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/soccerdao/dao-cli/internal/domain/config"
)

// Client is the RPC connection shared by the wallet connector and the
// contract adapters. It dials on first use so commands that never touch
// the chain do not need an RPC URL.
type Client struct {
	cfg *config.RuntimeConfig
	log *slog.Logger

	mu      sync.Mutex
	backend RPCBackend
	closeFn func()

	// nonceMu serializes submissions so concurrent sends from one signer
	// get consecutive nonces
	nonceMu sync.Mutex
	nonces  map[common.Address]uint64
}

// RPCBackend is what the adapters need from a node. *ethclient.Client and
// the simulated backend's client both satisfy it.
type RPCBackend interface {
	bind.Backend
	ethereum.ChainIDReader
}

// NewClient creates a new lazily dialed RPC client
func NewClient(cfg *config.RuntimeConfig, log *slog.Logger) *Client {
	return &Client{cfg: cfg, log: log, nonces: make(map[common.Address]uint64)}
}

// RPCURL returns the endpoint the client dials
func (c *Client) RPCURL() string {
	if c.cfg.Network != nil && c.cfg.Network.RPCURL != "" {
		return c.cfg.Network.RPCURL
	}
	return c.cfg.Wallet.RPCURL
}

// Backend returns the connected ethclient, dialing it if needed
func (c *Client) Backend(ctx context.Context) (RPCBackend, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.backend != nil {
		return c.backend, nil
	}

	url := c.RPCURL()
	if url == "" {
		return nil, fmt.Errorf("no RPC URL configured: set ALCHEMY_API_URL or [network].rpc_url in dao.toml")
	}

	backend, err := ethclient.DialContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC: %w", err)
	}
	c.log.Debug("connected to RPC", "network", c.networkName())
	c.backend = backend
	c.closeFn = backend.Close
	return backend, nil
}

// Close closes the connection if it was opened
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closeFn != nil {
		c.closeFn()
	}
	c.backend, c.closeFn = nil, nil
}

func (c *Client) networkName() string {
	if c.cfg.Network == nil {
		return ""
	}
	return c.cfg.Network.Name
}

// callOpts returns read options bound to ctx
func (c *Client) callOpts(ctx context.Context) *bind.CallOpts {
	return &bind.CallOpts{Context: ctx}
}

// filterLogs scans address for logs matching topics from the configured
// start block to the chain head.
func (c *Client) filterLogs(ctx context.Context, address common.Address, topics [][]common.Hash) ([]types.Log, error) {
	backend, err := c.Backend(ctx)
	if err != nil {
		return nil, err
	}
	query := ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(c.cfg.Contracts.FromBlock),
		Addresses: []common.Address{address},
		Topics:    topics,
	}
	return backend.FilterLogs(ctx, query)
}

// eventID returns the topic of a named event in a binding's ABI
func eventID(meta *bind.MetaData, name string) common.Hash {
	parsed, err := meta.ParseABI()
	if err != nil {
		panic(fmt.Errorf("invalid ABI for %s: %w", meta.ID, err))
	}
	return parsed.Events[name].ID
}
