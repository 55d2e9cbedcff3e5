package render

import (
	"fmt"
	"io"

	"github.com/soccerdao/dao-cli/internal/usecase"
)

// ConfigRenderer renders config-related output
type ConfigRenderer struct {
	out io.Writer
}

// NewConfigRenderer creates a new config renderer
func NewConfigRenderer(out io.Writer) *ConfigRenderer {
	return &ConfigRenderer{
		out: out,
	}
}

// RenderConfig renders the configuration display
func (r *ConfigRenderer) RenderConfig(result *usecase.ShowConfigResult) error {
	if !result.Exists {
		fmt.Fprintf(r.out, "❌ No .dao/config.local.json file found\n")
		fmt.Fprintf(r.out, "⚠️  Without config, the wallet comes from WALLET_ADDRESS/PRIVATE_KEY and the RPC from dao.toml or ALCHEMY_API_URL\n")
		return nil
	}

	fmt.Fprintln(r.out, "📋 Current config:")
	fmt.Fprintf(r.out, "Wallet:  %s\n", valueOrUnset(result.Config.Wallet))
	fmt.Fprintf(r.out, "RPC URL: %s\n", valueOrUnset(result.Config.RPCURL))
	if result.Network != "" {
		fmt.Fprintf(r.out, "\n🌐 Using %s via %s\n", result.Network, valueOrUnset(result.RPCURL))
	}

	if result.ConfigSource != "" {
		fmt.Fprintf(r.out, "\n📦 Config source: %s\n", result.ConfigSource)
	}
	fmt.Fprintf(r.out, "📁 config file: %s\n", getRelativePath(result.ConfigPath))

	return nil
}

// RenderSet renders the result of setting a configuration value
func (r *ConfigRenderer) RenderSet(result *usecase.SetConfigResult) error {
	fmt.Fprintf(r.out, "✅ Set %s to: %s\n", result.Key, result.Value)
	fmt.Fprintf(r.out, "📁 config saved to: %s\n", getRelativePath(result.ConfigPath))
	return nil
}

// RenderRemove renders the result of removing a configuration value
func (r *ConfigRenderer) RenderRemove(result *usecase.RemoveConfigResult) error {
	if result.RemovedValue == "" {
		fmt.Fprintf(r.out, "⚠️  %s was not set\n", result.Key)
	} else {
		fmt.Fprintf(r.out, "✅ Removed %s from config\n", result.Key)
	}

	fmt.Fprintf(r.out, "📁 config saved to: %s\n", getRelativePath(result.ConfigPath))
	return nil
}

func valueOrUnset(v string) string {
	if v == "" {
		return "(not set)"
	}
	return v
}
