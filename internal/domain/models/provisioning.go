package models

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// NFTMetadata is one entry of the membership drop, as listed in the
// metadata manifest (yaml) and written out as ERC-1155 metadata JSON.
type NFTMetadata struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	Image       string `yaml:"image" json:"image"`
}

// NativeTokenAddress is the currency sentinel used for free/native claims.
var NativeTokenAddress = common.HexToAddress("0xEeeeeEeeeEeEeeEeEeEeeEEEeeeeEeeeeeeeEEeE")

// ClaimPhase configures one claim window of the drop.
type ClaimPhase struct {
	StartTime                 time.Time
	MaxQuantity               *big.Int
	MaxQuantityPerTransaction *big.Int
	WaitBetweenClaims         *big.Int
	MerkleRoot                common.Hash
	Price                     *big.Int
	Currency                  common.Address
}

// NewClaimPhase returns a free phase starting at start.
func NewClaimPhase(start time.Time, maxQuantity, perTransaction int64) ClaimPhase {
	return ClaimPhase{
		StartTime:                 start,
		MaxQuantity:               big.NewInt(maxQuantity),
		MaxQuantityPerTransaction: big.NewInt(perTransaction),
		WaitBetweenClaims:         new(big.Int),
		Price:                     new(big.Int),
		Currency:                  NativeTokenAddress,
	}
}

// TokenModuleParams configures the governance token deployment.
type TokenModuleParams struct {
	Name   string
	Symbol string
}

// VoteModuleParams configures the governance (vote) contract deployment.
type VoteModuleParams struct {
	Name                                 string
	VotingTokenAddress                   common.Address
	ProposalStartWaitTimeInSeconds       uint64
	ProposalVotingTimeInSeconds          uint64
	VotingQuorumFraction                 uint64
	MinimumNumberOfTokensNeededToPropose *big.Int
}

// AirdropTarget is one recipient of a batch transfer.
type AirdropTarget struct {
	Address common.Address
	Amount  *big.Int
}
