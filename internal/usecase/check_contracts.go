package usecase

import (
	"context"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"
	"github.com/soccerdao/dao-cli/internal/domain/config"
)

// ContractStatus reports whether one configured contract has code on-chain
type ContractStatus struct {
	Name     string
	Address  common.Address
	Deployed bool
	Reason   string
}

// CheckContracts verifies the configured drop, token, vote and app
// factory addresses have code on the connected chain
type CheckContracts struct {
	config  *config.RuntimeConfig
	checker ContractChecker
	log     *slog.Logger
}

// NewCheckContracts creates a new CheckContracts use case
func NewCheckContracts(cfg *config.RuntimeConfig, checker ContractChecker, log *slog.Logger) *CheckContracts {
	return &CheckContracts{
		config:  cfg,
		checker: checker,
		log:     log,
	}
}

// Run checks every configured contract. It stops at the first RPC error.
func (uc *CheckContracts) Run(ctx context.Context) ([]ContractStatus, error) {
	contracts := []ContractStatus{
		{Name: "drop", Address: uc.config.Contracts.Drop},
		{Name: "token", Address: uc.config.Contracts.Token},
		{Name: "vote", Address: uc.config.Contracts.Vote},
		{Name: "app", Address: uc.config.Contracts.App},
	}

	for i := range contracts {
		c := &contracts[i]
		exists, reason, err := uc.checker.CheckDeploymentExists(ctx, c.Address)
		if err != nil {
			return nil, err
		}
		c.Deployed = exists
		c.Reason = reason
		if !exists {
			uc.log.Warn("contract not deployed", "contract", c.Name, "address", c.Address.Hex(), "reason", reason)
		}
	}

	return contracts, nil
}

// AllDeployed reports whether every contract has code
func AllDeployed(statuses []ContractStatus) bool {
	for _, s := range statuses {
		if !s.Deployed {
			return false
		}
	}
	return true
}
