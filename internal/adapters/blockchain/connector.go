package blockchain

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/soccerdao/dao-cli/internal/domain"
	"github.com/soccerdao/dao-cli/internal/domain/config"
	"github.com/soccerdao/dao-cli/internal/domain/models"
	"github.com/soccerdao/dao-cli/internal/usecase"
)

// Connector opens wallet sessions from the credentials in the environment.
// PRIVATE_KEY yields a signing session; WALLET_ADDRESS alone yields a
// read-only one.
type Connector struct {
	client *Client
	cfg    *config.RuntimeConfig
	log    *slog.Logger
}

// NewConnector creates a new wallet connector
func NewConnector(client *Client, cfg *config.RuntimeConfig, log *slog.Logger) *Connector {
	return &Connector{client: client, cfg: cfg, log: log}
}

// Connect verifies the chain and builds the session
func (c *Connector) Connect(ctx context.Context) (*models.Session, error) {
	wallet := c.cfg.Wallet
	if wallet.PrivateKey == "" && wallet.WalletAddress == "" {
		return nil, domain.ErrWalletNotConnected
	}

	backend, err := c.client.Backend(ctx)
	if err != nil {
		return nil, err
	}

	chainID, err := backend.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}

	if c.cfg.Network != nil && c.cfg.Network.ChainID != 0 && chainID.Uint64() != c.cfg.Network.ChainID {
		return nil, domain.ChainMismatchErr{
			Expected: c.cfg.Network.ChainID,
			Actual:   chainID.Uint64(),
			Network:  c.cfg.Network.Name,
		}
	}

	var expected common.Address
	if wallet.WalletAddress != "" {
		if !common.IsHexAddress(wallet.WalletAddress) {
			return nil, fmt.Errorf("%w: WALLET_ADDRESS %q", domain.ErrInvalidAddress, wallet.WalletAddress)
		}
		expected = common.HexToAddress(wallet.WalletAddress)
	}

	if wallet.PrivateKey == "" {
		return &models.Session{Address: expected, ChainID: chainID}, nil
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(wallet.PrivateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid PRIVATE_KEY: %w", err)
	}
	signer := bind.NewKeyedTransactor(key, chainID)

	if expected != (common.Address{}) && expected != signer.From {
		return nil, fmt.Errorf("%w: key is for %s, WALLET_ADDRESS is %s", domain.ErrWalletMismatch, signer.From.Hex(), expected.Hex())
	}

	return &models.Session{
		Address: signer.From,
		ChainID: chainID,
		Signer:  signer,
	}, nil
}

// Disconnect closes the RPC connection
func (c *Connector) Disconnect(ctx context.Context, session *models.Session) error {
	c.client.Close()
	return nil
}

// Ensure the adapter implements the interface
var _ usecase.WalletConnector = (*Connector)(nil)
