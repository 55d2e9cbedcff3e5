package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain operations
var (
	// ErrWalletNotConnected is returned when no wallet address or key is configured
	ErrWalletNotConnected = errors.New("wallet not connected")

	// ErrUnsupportedChain is returned when the RPC endpoint serves a different chain
	ErrUnsupportedChain = errors.New("unsupported chain")

	// ErrWalletMismatch is returned when the private key does not belong to WALLET_ADDRESS
	ErrWalletMismatch = errors.New("private key does not match wallet address")

	// ErrNoSigner is returned when a write is attempted with a read-only session
	ErrNoSigner = errors.New("session has no signer")

	// ErrNotMember is returned when a member-only view is requested without the credential
	ErrNotMember = errors.New("address does not hold the membership NFT")

	// ErrClaimInProgress is returned when a mint is submitted while another is pending
	ErrClaimInProgress = errors.New("claim already in progress")

	// ErrVoteInProgress is returned when votes are submitted while another submission is pending
	ErrVoteInProgress = errors.New("vote submission already in progress")

	// ErrNoClaims is returned when an airdrop finds no credential holders
	ErrNoClaims = errors.New("no NFTs have been claimed yet")

	// ErrContractNotConfigured is returned when a contract address is missing from dao.toml
	ErrContractNotConfigured = errors.New("contract address not configured")

	// ErrInvalidAddress is returned when an Ethereum address is invalid
	ErrInvalidAddress = errors.New("invalid address")
)

// ChainMismatchErr reports the chain the wallet session is actually connected to.
type ChainMismatchErr struct {
	Expected uint64
	Actual   uint64
	Network  string
}

func (e ChainMismatchErr) Error() string {
	return fmt.Sprintf("connected to chain %d, expected %s (chain %d)", e.Actual, e.Network, e.Expected)
}

func (e ChainMismatchErr) Is(target error) bool {
	return target == ErrUnsupportedChain
}

// TxFailedErr is returned when a transaction was mined but reverted.
type TxFailedErr struct {
	Method string
	TxHash string
}

func (e TxFailedErr) Error() string {
	return fmt.Sprintf("transaction %s reverted: %s", e.Method, e.TxHash)
}
