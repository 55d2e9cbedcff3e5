package render

import (
	"bytes"
	"errors"
	"math/big"
	"os"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/soccerdao/dao-cli/internal/domain/config"
	"github.com/soccerdao/dao-cli/internal/domain/models"
	"github.com/soccerdao/dao-cli/internal/usecase"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func TestVoteButtonLabel(t *testing.T) {
	tests := []struct {
		voting, hasVoted bool
		label            string
		disabled         bool
	}{
		{false, false, "Submit Vote!", false},
		{true, false, "Voting...", true},
		{false, true, "Already Voted!!!", true},
		{true, true, "Voting...", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.label, VoteButtonLabel(tt.voting, tt.hasVoted))
		assert.Equal(t, tt.disabled, VoteButtonDisabled(tt.voting, tt.hasVoted))
	}

	assert.Equal(t, "Mint your NFT (free)!", MintButtonLabel(false))
	assert.Equal(t, "Minting...", MintButtonLabel(true))
}

func TestFormatError(t *testing.T) {
	assert.Equal(t, "❌ Connection refused", FormatError("failed to vote: proposal 1: connection refused"))
	assert.Equal(t, "✅ done", FormatSuccess("done"))
	assert.Equal(t, "⚠️  gone", FormatWarning("wrapped: gone"))
}

func TestFormatTransaction(t *testing.T) {
	tx := &models.Transaction{Hash: common.HexToHash("0x01")}
	network := &config.Network{ExplorerURL: "https://rinkeby.etherscan.io/"}

	assert.Equal(t, "https://rinkeby.etherscan.io/tx/"+tx.Hash.Hex(), FormatTransaction(network, tx))
	assert.Equal(t, tx.Hash.Hex(), FormatTransaction(&config.Network{}, tx))
	assert.Empty(t, FormatTransaction(network, nil))
}

func TestMembersRenderer(t *testing.T) {
	self := common.HexToAddress("0x1111111111111111111111111111111111111111")
	other := common.HexToAddress("0x2222222222222222222222222222222222222222")

	var buf bytes.Buffer
	err := NewMembersRenderer(&buf).Render(&models.MemberDirectory{
		Members: []models.Member{
			{Address: self, TokenAmount: "10.0", IsSelf: true},
			{Address: other, TokenAmount: "0.0"},
		},
		BalancesErr: errors.New("rpc timeout"),
	})
	assert.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Member List")
	assert.Contains(t, out, "Token Amount (SDT)")
	assert.Contains(t, out, "👉")
	assert.Contains(t, out, "⚽")
	assert.Contains(t, out, "0x111111...1111")
	assert.Contains(t, out, "10.0")
	assert.Contains(t, out, "rpc timeout")
	assert.NotContains(t, out, self.Hex())
}

func TestProposalsRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := NewProposalsRenderer(&buf)

	assert.NoError(t, r.Render(&usecase.ProposalsResult{}))
	assert.Contains(t, buf.String(), "No proposals yet.")

	buf.Reset()
	assert.NoError(t, r.Render(&usecase.ProposalsResult{
		Proposals: []*models.Proposal{
			{ID: big.NewInt(7), Description: "Should the DAO mint an additional 420,000 tokens?", State: models.ProposalStateActive},
		},
		HasVoted: true,
	}))
	out := buf.String()
	assert.Contains(t, out, "Active proposals")
	assert.Contains(t, out, "Active")
	assert.Contains(t, out, "420,000 tokens")
	assert.Contains(t, out, "already voted")

	buf.Reset()
	assert.NoError(t, r.RenderVoteResult(&usecase.SubmitVotesResult{
		Delegated: true,
		Outcomes: map[string][]usecase.VoteOutcome{
			"1": {usecase.OutcomeVoted, usecase.OutcomeExecuted},
			"2": {usecase.OutcomeSkipped},
		},
		HasVoted: true,
	}))
	out = buf.String()
	assert.Contains(t, out, "Delegated")
	assert.Contains(t, out, "Voted on proposal 1")
	assert.Contains(t, out, "Executed proposal 1")
	assert.Contains(t, out, "Skipped proposal 2")
	assert.Contains(t, out, "successfully voted")
}

func TestScreenRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := NewScreenRenderer(&buf)

	r.RenderWrongNetwork("rinkeby", nil)
	assert.Contains(t, buf.String(), "Please connect to Rinkeby")

	buf.Reset()
	r.RenderMinted("https://testnets.opensea.io/assets/0xabc/0")
	assert.Equal(t, "🌊 Successfully Minted! Check it out on OpenSea: https://testnets.opensea.io/assets/0xabc/0\n", buf.String())
}

func TestProvisionRenderer_SetupVote(t *testing.T) {
	var buf bytes.Buffer
	r := NewProvisionRenderer(&buf, &config.RuntimeConfig{Network: &config.Network{}, TokenDecimals: 18})

	r.RenderSetupVote(&usecase.SetupVoteResult{
		RoleErr:     errors.New("missing role"),
		Transferred: models.ScaleUnits(900, 18),
	})
	out := buf.String()
	assert.Contains(t, out, "Missing role")
	assert.Contains(t, out, "Successfully transferred 900.0 tokens")
}

func TestConfigRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := NewConfigRenderer(&buf)

	assert.NoError(t, r.RenderConfig(&usecase.ShowConfigResult{Exists: false}))
	assert.Contains(t, buf.String(), "No .dao/config.local.json file found")

	buf.Reset()
	assert.NoError(t, r.RenderConfig(&usecase.ShowConfigResult{
		Config:       &config.LocalConfig{Wallet: "0x8ba1f109551bD432803012645Ac136ddd64DBA72"},
		ConfigPath:   "/tmp/.dao/config.local.json",
		Exists:       true,
		ConfigSource: "dao.toml",
	}))
	out := buf.String()
	assert.Contains(t, out, "Wallet:  0x8ba1f109551bD432803012645Ac136ddd64DBA72")
	assert.Contains(t, out, "RPC URL: (not set)")
	assert.Contains(t, out, "Config source: dao.toml")

	buf.Reset()
	assert.NoError(t, r.RenderRemove(&usecase.RemoveConfigResult{Key: "rpc-url", ConfigPath: "/tmp/.dao/config.local.json"}))
	assert.Contains(t, buf.String(), "rpc-url was not set")
}
