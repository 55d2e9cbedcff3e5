package config

// DaoFileConfig represents the full dao.toml configuration file
type DaoFileConfig struct {
	Network   *Network        `toml:"network,omitempty"`
	Contracts ContractsConfig `toml:"contracts"`
	Drop      DropConfig      `toml:"drop"`
	Token     TokenConfig     `toml:"token"`
	Server    ServerConfig    `toml:"server"`
}

// ContractsConfig represents the [contracts] section in dao.toml
type ContractsConfig struct {
	Drop  string `toml:"drop,omitempty"`
	Token string `toml:"token,omitempty"`
	Vote  string `toml:"vote,omitempty"`
	App   string `toml:"app,omitempty"`

	FromBlock uint64 `toml:"from_block,omitempty"`
}

// DropConfig represents the [drop] section in dao.toml
type DropConfig struct {
	TokenID *int64 `toml:"token_id,omitempty"`
}

// TokenConfig represents the [token] section in dao.toml
type TokenConfig struct {
	Decimals *int `toml:"decimals,omitempty"`
}

// ServerConfig represents the [server] section in dao.toml
type ServerConfig struct {
	Listen string `toml:"listen,omitempty"`
}
