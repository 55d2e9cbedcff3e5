package usecase

import (
	"context"
	"fmt"

	"github.com/soccerdao/dao-cli/internal/domain/config"
)

// ShowConfigResult is the saved local config next to what the current run
// actually resolved
type ShowConfigResult struct {
	Config       *config.LocalConfig `json:"config"`
	ConfigPath   string              `json:"configPath"`
	Exists       bool                `json:"exists"`
	ConfigSource string              `json:"configSource"`

	// Effective values after env, flags and dao.toml were applied
	Network string `json:"network,omitempty"`
	RPCURL  string `json:"rpcUrl,omitempty"`
}

// ShowConfig reports the local config
type ShowConfig struct {
	config *config.RuntimeConfig
	store  LocalConfigStore
}

// NewShowConfig creates a new ShowConfig use case
func NewShowConfig(cfg *config.RuntimeConfig, store LocalConfigStore) *ShowConfig {
	return &ShowConfig{config: cfg, store: store}
}

func (uc *ShowConfig) Run(ctx context.Context) (*ShowConfigResult, error) {
	local, err := uc.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load local config: %w", err)
	}

	result := &ShowConfigResult{
		Config:       local,
		ConfigPath:   uc.store.GetPath(),
		Exists:       uc.store.Exists(),
		ConfigSource: uc.config.ConfigSource,
	}
	if n := uc.config.Network; n != nil {
		result.Network = n.Name
		result.RPCURL = n.RPCURL
	}
	return result, nil
}
