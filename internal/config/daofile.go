package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
	"github.com/soccerdao/dao-cli/internal/domain/config"
)

// DaoFileName is the project configuration file
const DaoFileName = "dao.toml"

// loadEnvFiles loads .env and .env.local into the process environment.
// Variables already set in the environment win.
func loadEnvFiles(projectRoot string) {
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				// Log warning but don't fail
				fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
			}
		}
	}
}

// loadDaoConfig loads and parses dao.toml if it exists.
// Returns (nil, nil) when dao.toml does not exist.
func loadDaoConfig(projectRoot string) (*config.DaoFileConfig, error) {
	daoPath := filepath.Join(projectRoot, DaoFileName)

	if _, err := os.Stat(daoPath); os.IsNotExist(err) {
		return nil, nil
	}

	var cfg config.DaoFileConfig
	if _, err := toml.DecodeFile(daoPath, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", DaoFileName, err)
	}

	// Expand environment variables, e.g. rpc_url = "${ALCHEMY_API_URL}"
	if cfg.Network != nil {
		cfg.Network.RPCURL = os.ExpandEnv(cfg.Network.RPCURL)
	}
	cfg.Contracts.Drop = os.ExpandEnv(cfg.Contracts.Drop)
	cfg.Contracts.Token = os.ExpandEnv(cfg.Contracts.Token)
	cfg.Contracts.Vote = os.ExpandEnv(cfg.Contracts.Vote)
	cfg.Contracts.App = os.ExpandEnv(cfg.Contracts.App)

	return &cfg, nil
}

// resolveContracts overlays the [contracts] section on the defaults
func resolveContracts(file *config.DaoFileConfig) (config.Contracts, error) {
	contracts := config.Contracts{
		Drop:  common.HexToAddress(DefaultDropAddress),
		Token: common.HexToAddress(DefaultTokenAddress),
		Vote:  common.HexToAddress(DefaultVoteAddress),
		App:   common.HexToAddress(DefaultAppAddress),
	}
	if file == nil {
		return contracts, nil
	}

	overrides := []struct {
		name   string
		value  string
		target *common.Address
	}{
		{"drop", file.Contracts.Drop, &contracts.Drop},
		{"token", file.Contracts.Token, &contracts.Token},
		{"vote", file.Contracts.Vote, &contracts.Vote},
		{"app", file.Contracts.App, &contracts.App},
	}
	for _, o := range overrides {
		if o.value == "" {
			continue
		}
		if !common.IsHexAddress(o.value) {
			return contracts, fmt.Errorf("invalid [contracts].%s address in %s: %q", o.name, DaoFileName, o.value)
		}
		*o.target = common.HexToAddress(o.value)
	}
	contracts.FromBlock = file.Contracts.FromBlock

	return contracts, nil
}

// resolveNetwork overlays the [network] section on the defaults
func resolveNetwork(file *config.DaoFileConfig) *config.Network {
	network := &config.Network{
		ChainID:     DefaultChainID,
		Name:        DefaultNetworkName,
		ExplorerURL: DefaultExplorerURL,
		MarketURL:   DefaultMarketURL,
	}
	if file == nil || file.Network == nil {
		return network
	}

	n := file.Network
	if n.ChainID != 0 {
		network.ChainID = n.ChainID
	}
	if n.Name != "" {
		network.Name = n.Name
	}
	if n.RPCURL != "" {
		network.RPCURL = n.RPCURL
	}
	if n.ExplorerURL != "" {
		network.ExplorerURL = n.ExplorerURL
	}
	if n.MarketURL != "" {
		network.MarketURL = n.MarketURL
	}
	return network
}
