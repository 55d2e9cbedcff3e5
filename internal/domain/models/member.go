package models

import (
	"github.com/ethereum/go-ethereum/common"
)

// Member is one row of the member directory.
type Member struct {
	Address     common.Address `json:"address"`
	TokenAmount string         `json:"tokenAmount"`

	// IsSelf marks the row of the connected address.
	IsSelf bool `json:"isSelf,omitempty"`
}

// MemberDirectory is the joined view of credential holders and governance
// token balances. Either source may have failed independently; the
// directory is then partial rather than absent.
type MemberDirectory struct {
	Members []Member `json:"members"`

	HoldersErr  error `json:"-"`
	BalancesErr error `json:"-"`
}

// Partial reports whether one of the two sources failed.
func (d *MemberDirectory) Partial() bool {
	return d.HoldersErr != nil || d.BalancesErr != nil
}
