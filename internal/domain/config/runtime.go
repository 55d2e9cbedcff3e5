package config

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	DataDir     string

	// Context settings
	Network   *Network
	Contracts Contracts

	// Membership credential and governance token parameters
	MembershipTokenID int64
	TokenDecimals     int

	// Wallet credentials, loaded from the environment (.env)
	Wallet WalletEnv

	// Execution settings
	Debug          bool
	NonInteractive bool
	JSON           bool // Output in JSON format
	Timeout        time.Duration

	// Server settings (dao serve)
	ListenAddr string

	// Config source tracking
	ConfigSource string // "dao.toml" or "defaults"

	// Resolved configurations
	DaoConfig *DaoFileConfig
}

// Network represents network configuration
type Network struct {
	ChainID     uint64 `json:"chainId" toml:"chain_id"`
	Name        string `json:"name" toml:"name"`
	RPCURL      string `json:"rpcUrl" toml:"rpc_url"`
	ExplorerURL string `json:"explorerUrl,omitempty" toml:"explorer_url,omitempty"`
	MarketURL   string `json:"marketUrl,omitempty" toml:"market_url,omitempty"`
}

// Contracts holds the addresses of the deployed DAO contracts
type Contracts struct {
	Drop  common.Address
	Token common.Address
	Vote  common.Address
	App   common.Address

	// FromBlock is where event log scans (claimers, holders) start
	FromBlock uint64
}

// WalletEnv holds the operator/member credentials read from the environment.
// Values are kept raw; validation happens when a session is opened.
type WalletEnv struct {
	PrivateKey    string
	RPCURL        string
	WalletAddress string
}
