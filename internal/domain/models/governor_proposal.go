package models

import (
	"encoding/json"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// ProposalState mirrors the Governor ProposalState enum
type ProposalState uint8

const (
	ProposalStatePending   ProposalState = 0
	ProposalStateActive    ProposalState = 1
	ProposalStateCanceled  ProposalState = 2
	ProposalStateDefeated  ProposalState = 3
	ProposalStateSucceeded ProposalState = 4
	ProposalStateQueued    ProposalState = 5
	ProposalStateExpired   ProposalState = 6
	ProposalStateExecuted  ProposalState = 7
)

func (s ProposalState) String() string {
	switch s {
	case ProposalStatePending:
		return "pending"
	case ProposalStateActive:
		return "active"
	case ProposalStateCanceled:
		return "canceled"
	case ProposalStateDefeated:
		return "defeated"
	case ProposalStateSucceeded:
		return "succeeded"
	case ProposalStateQueued:
		return "queued"
	case ProposalStateExpired:
		return "expired"
	case ProposalStateExecuted:
		return "executed"
	default:
		return "unknown"
	}
}

// IsOpenForVoting is true only for state 1.
func (s ProposalState) IsOpenForVoting() bool {
	return s == ProposalStateActive
}

// IsReadyToExecute is true only for state 4.
func (s ProposalState) IsReadyToExecute() bool {
	return s == ProposalStateSucceeded
}

// VoteChoice is the Governor support value passed to castVote
type VoteChoice uint8

const (
	VoteAgainst VoteChoice = 0
	VoteFor     VoteChoice = 1
	VoteAbstain VoteChoice = 2
)

// DefaultVoteChoice is preselected on the vote form.
const DefaultVoteChoice = VoteAbstain

// VoteOption is one radio button of a proposal.
type VoteOption struct {
	Choice VoteChoice `json:"type"`
	Label  string     `json:"label"`
}

// StandardVoteOptions returns the three Governor vote options in order.
func StandardVoteOptions() []VoteOption {
	return []VoteOption{
		{Choice: VoteAgainst, Label: "Against"},
		{Choice: VoteFor, Label: "For"},
		{Choice: VoteAbstain, Label: "Abstain"},
	}
}

// Proposal is a read-only snapshot of a governance proposal.
type Proposal struct {
	ID          *big.Int       `json:"proposalId"`
	Proposer    common.Address `json:"proposer"`
	Description string         `json:"description"`
	State       ProposalState  `json:"state"`
	Votes       []VoteOption   `json:"votes"`

	// Execution payload, required to call execute
	Targets   []common.Address `json:"targets,omitempty"`
	Values    []*big.Int       `json:"values,omitempty"`
	Calldatas [][]byte         `json:"calldatas,omitempty"`

	StartBlock *big.Int `json:"startBlock,omitempty"`
	EndBlock   *big.Int `json:"endBlock,omitempty"`
}

// MarshalJSON writes the id and values as decimal strings. Proposal ids are
// 256-bit hashes that JSON numbers cannot carry without losing precision.
func (p Proposal) MarshalJSON() ([]byte, error) {
	type plain Proposal
	values := make([]string, len(p.Values))
	for i, v := range p.Values {
		values[i] = decimal(v)
	}
	return json.Marshal(struct {
		plain
		ID     string   `json:"proposalId"`
		Values []string `json:"values,omitempty"`
	}{plain: plain(p), ID: decimal(p.ID), Values: values})
}

func decimal(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}

// Key returns the proposal id as a decimal string, used as a map key.
func (p *Proposal) Key() string {
	if p == nil || p.ID == nil {
		return ""
	}
	return p.ID.String()
}

// DescriptionHash is keccak256(description) as expected by execute.
func (p *Proposal) DescriptionHash() common.Hash {
	return crypto.Keccak256Hash([]byte(p.Description))
}

// VoteSubmission is built from the vote form at submit time and never stored.
type VoteSubmission struct {
	ProposalID *big.Int
	Choice     VoteChoice
}
