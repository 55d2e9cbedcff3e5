package models

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind/v2"
	"github.com/ethereum/go-ethereum/common"
)

// Session is a connected wallet. It is created by the wallet connector and
// threaded explicitly through every flow; nothing holds it globally.
type Session struct {
	Address common.Address
	ChainID *big.Int

	// Signer is nil for read-only sessions (address known, no key).
	Signer *bind.TransactOpts
}

// CanSign reports whether the session can submit transactions.
func (s *Session) CanSign() bool {
	return s != nil && s.Signer != nil
}

// IsConnected reports whether the session has an address.
func (s *Session) IsConnected() bool {
	return s != nil && s.Address != (common.Address{})
}

// MembershipStatus is the result of the membership gate for one address.
// It is recomputed from the chain on every load and never persisted.
type MembershipStatus struct {
	Address common.Address
	Holds   bool
	Balance *big.Int

	// Err is set when the balance query failed; Holds is then false.
	Err error
}
