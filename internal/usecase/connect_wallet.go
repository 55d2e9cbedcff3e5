package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/soccerdao/dao-cli/internal/domain"
	"github.com/soccerdao/dao-cli/internal/domain/models"
)

// ConnectWallet opens the wallet session every member flow runs with
type ConnectWallet struct {
	connector WalletConnector
	log       *slog.Logger
}

// NewConnectWallet creates a new ConnectWallet use case
func NewConnectWallet(connector WalletConnector, log *slog.Logger) *ConnectWallet {
	return &ConnectWallet{
		connector: connector,
		log:       log,
	}
}

// Run connects the wallet. Wrong-network and not-connected errors are
// returned as-is so callers can render the dedicated screens.
func (uc *ConnectWallet) Run(ctx context.Context) (*models.Session, error) {
	session, err := uc.connector.Connect(ctx)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnsupportedChain):
			uc.log.Warn("wallet connected to unsupported network", "error", err)
		case errors.Is(err, domain.ErrWalletNotConnected):
			uc.log.Debug("no wallet configured")
		default:
			uc.log.Error("failed to connect wallet", "error", err)
		}
		return nil, err
	}

	uc.log.Debug("👋 Address", "address", session.Address.Hex(), "signer", session.CanSign())
	return session, nil
}

// Close tears the session down
func (uc *ConnectWallet) Close(ctx context.Context, session *models.Session) {
	if err := uc.connector.Disconnect(ctx, session); err != nil {
		uc.log.Warn("failed to disconnect wallet", "error", err)
	}
}
