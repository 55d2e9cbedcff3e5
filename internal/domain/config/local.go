package config

// LocalConfig represents the local dao configuration in .dao/config.local.json
type LocalConfig struct {
	// Wallet is the address used for read-only sessions when WALLET_ADDRESS
	// is not set
	Wallet string `json:"wallet,omitempty"`
	// RPCURL overrides [network].rpc_url from dao.toml
	RPCURL string `json:"rpcUrl,omitempty"`
}

// ConfigKey represents a configuration key
type ConfigKey string

const (
	ConfigKeyWallet ConfigKey = "wallet"
	ConfigKeyRPCURL ConfigKey = "rpc-url"
)

// DefaultLocalConfig returns the default local configuration
func DefaultLocalConfig() *LocalConfig {
	return &LocalConfig{}
}

// ValidConfigKeys returns all valid configuration keys
func ValidConfigKeys() []ConfigKey {
	return []ConfigKey{
		ConfigKeyWallet,
		ConfigKeyRPCURL,
	}
}

// IsValidConfigKey checks if a key is valid
func IsValidConfigKey(key string) bool {
	normalized := NormalizeConfigKey(key)
	for _, validKey := range ValidConfigKeys() {
		if validKey == normalized {
			return true
		}
	}
	return false
}

// NormalizeConfigKey normalizes a config key (e.g., "rpc" -> "rpc-url")
func NormalizeConfigKey(key string) ConfigKey {
	switch key {
	case "rpc", "rpc_url", "rpcurl":
		return ConfigKeyRPCURL
	case "address", "wallet-address":
		return ConfigKeyWallet
	}
	return ConfigKey(key)
}

// Get returns the value stored under key
func (c *LocalConfig) Get(key ConfigKey) string {
	switch key {
	case ConfigKeyWallet:
		return c.Wallet
	case ConfigKeyRPCURL:
		return c.RPCURL
	}
	return ""
}

// Set stores value under key
func (c *LocalConfig) Set(key ConfigKey, value string) {
	switch key {
	case ConfigKeyWallet:
		c.Wallet = value
	case ConfigKeyRPCURL:
		c.RPCURL = value
	}
}
