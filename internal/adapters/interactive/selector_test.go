package interactive

import (
	"testing"

	"github.com/soccerdao/dao-cli/internal/domain/config"
	"github.com/stretchr/testify/assert"
)

func TestFuzzySearch(t *testing.T) {
	items := []string{"Vote on proposals", "Refresh", "Disconnect"}
	search := createFuzzySearchFunc(items)

	assert.True(t, search("", 1))
	assert.True(t, search("vote", 0))
	assert.True(t, search("vtprp", 0))
	assert.False(t, search("vote", 1))
}

func TestNonInteractive(t *testing.T) {
	s := NewSelectorAdapter(&config.RuntimeConfig{NonInteractive: true})

	_, err := s.Confirm("Mint your NFT (free)!")
	assert.ErrorIs(t, err, ErrNonInteractive)

	_, err = s.Select("Next", []string{"a"})
	assert.ErrorIs(t, err, ErrNonInteractive)

	_, err = s.Prompt("Wallet address", nil)
	assert.ErrorIs(t, err, ErrNonInteractive)
}
