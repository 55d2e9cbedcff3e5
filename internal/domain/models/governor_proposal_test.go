package models

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProposalJSON_LargeIDsAreStrings(t *testing.T) {
	id, ok := new(big.Int).SetString("73956442349151424312945453547380498466612376025435133578637735405513733542316", 10)
	require.True(t, ok)

	p := &Proposal{
		ID:          id,
		Proposer:    common.HexToAddress("0x1111111111111111111111111111111111111111"),
		Description: "Should the DAO mint an additional 420,000 tokens into the treasury?",
		State:       ProposalStateActive,
		Values:      []*big.Int{big.NewInt(0), nil},
	}

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, id.String(), got["proposalId"])
	assert.Equal(t, []any{"0", "0"}, got["values"])
	assert.Equal(t, p.Description, got["description"])
	assert.Equal(t, float64(ProposalStateActive), got["state"])
}

func TestProposalJSON_EmptyValuesOmitted(t *testing.T) {
	data, err := json.Marshal(Proposal{ID: big.NewInt(7)})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"proposalId":"7"`)
	assert.NotContains(t, string(data), `"values"`)
}
