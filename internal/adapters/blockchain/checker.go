package blockchain

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/soccerdao/dao-cli/internal/usecase"
)

const checkTimeout = 5 * time.Second

// CheckerAdapter implements the ContractChecker interface using ethclient
type CheckerAdapter struct {
	client *Client
}

// NewCheckerAdapter creates a new blockchain checker adapter
func NewCheckerAdapter(client *Client) *CheckerAdapter {
	return &CheckerAdapter{client: client}
}

// CheckDeploymentExists checks if a contract exists at the given address
func (c *CheckerAdapter) CheckDeploymentExists(ctx context.Context, address common.Address) (exists bool, reason string, err error) {
	if address == (common.Address{}) {
		return false, "address not configured", nil
	}

	backend, err := c.client.Backend(ctx)
	if err != nil {
		return false, "", err
	}

	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	code, err := backend.CodeAt(ctx, address, nil)
	if err != nil {
		return false, fmt.Sprintf("failed to check code: %v", err), nil
	}

	// If no code at address, contract doesn't exist
	if len(code) == 0 {
		return false, "no code at address", nil
	}

	return true, "", nil
}

// Ensure the adapter implements the interface
var _ usecase.ContractChecker = (*CheckerAdapter)(nil)
