package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/soccerdao/dao-cli/internal/domain/config"
	"github.com/spf13/viper"
)

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	// Get project root from viper
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	// Load .env files first so dao.toml can reference them
	loadEnvFiles(projectRoot)

	daoConfig, err := loadDaoConfig(projectRoot)
	if err != nil {
		return nil, err
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:       projectRoot,
		DataDir:           filepath.Join(projectRoot, ".dao"),
		Network:           resolveNetwork(daoConfig),
		MembershipTokenID: DefaultMembershipTokenID,
		TokenDecimals:     DefaultTokenDecimals,
		Debug:             v.GetBool("debug"),
		NonInteractive:    v.GetBool("non_interactive"),
		JSON:              v.GetBool("json"),
		Timeout:           v.GetDuration("timeout"),
		ListenAddr:        DefaultListenAddr,
		ConfigSource:      "defaults",
		DaoConfig:         daoConfig,
	}

	cfg.Contracts, err = resolveContracts(daoConfig)
	if err != nil {
		return nil, err
	}

	if daoConfig != nil {
		cfg.ConfigSource = DaoFileName
		if daoConfig.Drop.TokenID != nil {
			cfg.MembershipTokenID = *daoConfig.Drop.TokenID
		}
		if daoConfig.Token.Decimals != nil {
			cfg.TokenDecimals = *daoConfig.Token.Decimals
		}
		if daoConfig.Server.Listen != "" {
			cfg.ListenAddr = daoConfig.Server.Listen
		}
	}
	if listen := v.GetString("listen"); listen != "" {
		cfg.ListenAddr = listen
	}

	// RPC precedence: --rpc-url / DAO_RPC_URL, then .dao/config.local.json,
	// then [network].rpc_url. ALCHEMY_API_URL is the last resort.
	if rpc := firstNonEmpty(v.GetString("rpc_url"), v.GetString("rpcurl")); rpc != "" {
		cfg.Network.RPCURL = rpc
	}

	cfg.Wallet = config.WalletEnv{
		PrivateKey:    strings.TrimSpace(os.Getenv(EnvPrivateKey)),
		RPCURL:        strings.TrimSpace(os.Getenv(EnvRPCURL)),
		WalletAddress: firstNonEmpty(strings.TrimSpace(os.Getenv(EnvWalletAddress)), v.GetString("wallet")),
	}

	return cfg, nil
}

// FindProjectRoot walks up from current directory to find dao.toml. Outside
// a project the current directory is used and the defaults apply.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := cwd
	for {
		if _, err := os.Stat(filepath.Join(dir, DaoFileName)); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, nil
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string) *viper.Viper {
	v := viper.New()

	// Set up config file
	v.SetConfigName("config.local")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(projectRoot, ".dao"))

	// Set up environment variables
	v.SetEnvPrefix("DAO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("timeout", DefaultTimeout)
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("json", false)
	v.SetDefault("project_root", projectRoot)

	// Try to read config file (ignore error if not found)
	_ = v.ReadInConfig()

	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
