package blockchain

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/samber/lo"
)

// ClaimRecord is one TokensClaimed log, reduced to what the directory needs
type ClaimRecord struct {
	Claimer  common.Address
	Receiver common.Address
	Quantity *big.Int
}

// TransferRecord is one ERC-20 Transfer log
type TransferRecord struct {
	From  common.Address
	To    common.Address
	Value *big.Int
}

// ReplayClaimers returns the unique addresses that received the membership
// token, in first-claim order.
func ReplayClaimers(records []ClaimRecord) []common.Address {
	receivers := lo.FilterMap(records, func(r ClaimRecord, _ int) (common.Address, bool) {
		if r.Receiver == (common.Address{}) {
			return r.Claimer, r.Claimer != (common.Address{})
		}
		return r.Receiver, true
	})
	return lo.Uniq(receivers)
}

// ReplayBalances folds Transfer logs into current balances. Mints come from
// the zero address and burns go to it; the zero address itself and empty
// balances are omitted.
func ReplayBalances(records []TransferRecord) map[common.Address]*big.Int {
	balances := make(map[common.Address]*big.Int)

	adjust := func(addr common.Address, delta *big.Int, add bool) {
		if addr == (common.Address{}) {
			return
		}
		current, ok := balances[addr]
		if !ok {
			current = new(big.Int)
			balances[addr] = current
		}
		if add {
			current.Add(current, delta)
		} else {
			current.Sub(current, delta)
		}
	}

	for _, r := range records {
		if r.Value == nil {
			continue
		}
		adjust(r.From, r.Value, false)
		adjust(r.To, r.Value, true)
	}

	return lo.PickBy(balances, func(_ common.Address, v *big.Int) bool {
		return v.Sign() > 0
	})
}
