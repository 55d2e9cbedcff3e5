package models

import (
	"github.com/ethereum/go-ethereum/common"
)

// TransactionStatus represents the status of a mined transaction
type TransactionStatus string

const (
	TransactionStatusExecuted TransactionStatus = "EXECUTED"
	TransactionStatusFailed   TransactionStatus = "FAILED"
)

// Transaction represents a transaction sent by a session and observed on-chain
type Transaction struct {
	Hash        common.Hash       `json:"hash"`
	Method      string            `json:"method"` // e.g. "claim", "castVote"
	Status      TransactionStatus `json:"status"`
	BlockNumber uint64            `json:"blockNumber,omitempty"`
	Sender      common.Address    `json:"sender"`
	Target      common.Address    `json:"target"`

	// Contract created by this transaction, if any (factory deployments)
	CreatedAddress *common.Address `json:"createdAddress,omitempty"`
}
