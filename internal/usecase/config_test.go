package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/soccerdao/dao-cli/internal/domain"
	"github.com/soccerdao/dao-cli/internal/domain/config"
	"github.com/soccerdao/dao-cli/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryConfigStore keeps the local config in memory
type memoryConfigStore struct {
	cfg     *config.LocalConfig
	saveErr error
}

func (s *memoryConfigStore) Exists() bool { return s.cfg != nil }

func (s *memoryConfigStore) Load(context.Context) (*config.LocalConfig, error) {
	if s.cfg == nil {
		return config.DefaultLocalConfig(), nil
	}
	copied := *s.cfg
	return &copied, nil
}

func (s *memoryConfigStore) Save(_ context.Context, cfg *config.LocalConfig) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	copied := *cfg
	s.cfg = &copied
	return nil
}

func (s *memoryConfigStore) GetPath() string { return ".dao/config.local.json" }

func TestShowConfig(t *testing.T) {
	store := &memoryConfigStore{}
	runtime := &config.RuntimeConfig{
		ConfigSource: "dao.toml",
		Network:      &config.Network{Name: "sepolia", RPCURL: "https://rpc.example"},
	}
	result, err := usecase.NewShowConfig(runtime, store).Run(context.Background())
	require.NoError(t, err)
	assert.False(t, result.Exists)
	assert.Equal(t, ".dao/config.local.json", result.ConfigPath)
	assert.Equal(t, "dao.toml", result.ConfigSource)
	assert.Equal(t, "sepolia", result.Network)
	assert.Equal(t, "https://rpc.example", result.RPCURL)

	store.cfg = &config.LocalConfig{RPCURL: "http://localhost:8545"}
	result, err = usecase.NewShowConfig(&config.RuntimeConfig{}, store).Run(context.Background())
	require.NoError(t, err)
	assert.True(t, result.Exists)
	assert.Equal(t, "http://localhost:8545", result.Config.RPCURL)
	assert.Empty(t, result.Network)
}

func TestSetConfig(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantKey config.ConfigKey
		want    string
		wantErr error
		errText string
	}{
		{name: "rpc url", key: "rpc-url", value: " http://localhost:8545 ", wantKey: config.ConfigKeyRPCURL, want: "http://localhost:8545"},
		{name: "rpc alias", key: "RPC", value: "http://node", wantKey: config.ConfigKeyRPCURL, want: "http://node"},
		{name: "wallet checksummed", key: "wallet", value: "0x70997970c51812dc3a010c7d01b50e0d17dc79c8", wantKey: config.ConfigKeyWallet, want: "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"},
		{name: "invalid wallet", key: "wallet", value: "not-an-address", wantErr: domain.ErrInvalidAddress},
		{name: "unknown key", key: "namespace", value: "x", errText: "unknown config key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &memoryConfigStore{}
			result, err := usecase.NewSetConfig(store).Run(context.Background(), usecase.SetConfigParams{Key: tt.key, Value: tt.value})

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, store.Exists())
			case tt.errText != "":
				assert.ErrorContains(t, err, tt.errText)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.wantKey, result.Key)
				assert.Equal(t, tt.want, result.Value)
				assert.Equal(t, tt.want, store.cfg.Get(tt.wantKey))
			}
		})
	}
}

func TestSetConfig_SaveFailure(t *testing.T) {
	store := &memoryConfigStore{saveErr: errors.New("read-only filesystem")}
	_, err := usecase.NewSetConfig(store).Run(context.Background(), usecase.SetConfigParams{Key: "rpc-url", Value: "http://node"})
	assert.ErrorContains(t, err, "failed to save config")
}

func TestRemoveConfig(t *testing.T) {
	t.Run("no config file", func(t *testing.T) {
		_, err := usecase.NewRemoveConfig(&memoryConfigStore{}).Run(context.Background(), usecase.RemoveConfigParams{Key: "wallet"})
		assert.ErrorContains(t, err, "no config file found")
	})

	t.Run("removes value", func(t *testing.T) {
		store := &memoryConfigStore{cfg: &config.LocalConfig{Wallet: alice.Hex(), RPCURL: "http://node"}}
		result, err := usecase.NewRemoveConfig(store).Run(context.Background(), usecase.RemoveConfigParams{Key: "wallet"})
		require.NoError(t, err)
		assert.Equal(t, alice.Hex(), result.RemovedValue)
		assert.Empty(t, store.cfg.Wallet)
		assert.Equal(t, "http://node", store.cfg.RPCURL)
	})
}
