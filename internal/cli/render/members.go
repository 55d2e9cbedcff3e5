package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/soccerdao/dao-cli/internal/domain/models"
)

// Rank markers of the member table
const (
	SelfMarker   = "👉"
	MemberMarker = "⚽"
)

// MembersRenderer renders the member directory
type MembersRenderer struct {
	out io.Writer
}

// NewMembersRenderer creates a new members renderer
func NewMembersRenderer(out io.Writer) *MembersRenderer {
	return &MembersRenderer{out: out}
}

// Render renders the member list table
func (r *MembersRenderer) Render(dir *models.MemberDirectory) error {
	color.New(color.Bold).Fprintln(r.out, "Member List")

	if dir.HoldersErr != nil {
		fmt.Fprintln(r.out, FormatWarning("failed to get claimer addresses: "+dir.HoldersErr.Error()))
	}
	if dir.BalancesErr != nil {
		fmt.Fprintln(r.out, FormatWarning("failed to get token amounts: "+dir.BalancesErr.Error()))
	}

	t := newTable()
	t.AppendHeader(table.Row{"@", "Address", "Token Amount (SDT)"})
	for _, m := range dir.Members {
		t.AppendRow(table.Row{Marker(m), models.ShortenAddress(m.Address.Hex()), m.TokenAmount})
	}

	fmt.Fprintln(r.out, t.Render())
	return nil
}

// Marker returns the rank marker of a member row
func Marker(m models.Member) string {
	if m.IsSelf {
		return SelfMarker
	}
	return MemberMarker
}
