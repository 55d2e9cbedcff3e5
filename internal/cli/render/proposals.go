package render

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/soccerdao/dao-cli/internal/domain/models"
	"github.com/soccerdao/dao-cli/internal/usecase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ProposalsRenderer renders governance proposals and vote outcomes
type ProposalsRenderer struct {
	out io.Writer
}

// NewProposalsRenderer creates a new proposals renderer
func NewProposalsRenderer(out io.Writer) *ProposalsRenderer {
	return &ProposalsRenderer{out: out}
}

// StateLabel returns the display label of a proposal state
func StateLabel(state models.ProposalState) string {
	label := cases.Title(language.English).String(state.String())
	switch {
	case state.IsOpenForVoting():
		return color.New(color.FgGreen).Sprint(label)
	case state.IsReadyToExecute():
		return color.New(color.FgCyan).Sprint(label)
	default:
		return color.New(color.Faint).Sprint(label)
	}
}

// Render renders the proposal list
func (r *ProposalsRenderer) Render(result *usecase.ProposalsResult) error {
	color.New(color.Bold).Fprintln(r.out, "Active proposals")

	if result.Err != nil {
		fmt.Fprintln(r.out, FormatWarning("failed to get proposals: "+result.Err.Error()))
	}
	if len(result.Proposals) == 0 {
		fmt.Fprintln(r.out, "No proposals yet.")
		return nil
	}

	t := newTable()
	t.AppendHeader(table.Row{"Proposal", "State", "Description"})
	for _, p := range result.Proposals {
		t.AppendRow(table.Row{models.ShortenAddress(p.Key()), StateLabel(p.State), p.Description})
	}
	fmt.Fprintln(r.out, t.Render())

	if result.HasVoted {
		fmt.Fprintln(r.out, "🥵 You have already voted")
	}
	return nil
}

// RenderVoteResult renders what happened to each proposal in a submission
func (r *ProposalsRenderer) RenderVoteResult(result *usecase.SubmitVotesResult) error {
	if result == nil {
		return nil
	}
	if result.Delegated {
		fmt.Fprintln(r.out, FormatSuccess("Delegated your voting power to yourself"))
	}

	keys := make([]string, 0, len(result.Outcomes))
	for k := range result.Outcomes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		for _, outcome := range result.Outcomes[k] {
			switch outcome {
			case usecase.OutcomeVoted:
				fmt.Fprintf(r.out, "🗳  Voted on proposal %s\n", models.ShortenAddress(k))
			case usecase.OutcomeExecuted:
				fmt.Fprintf(r.out, "🚀 Executed proposal %s\n", models.ShortenAddress(k))
			case usecase.OutcomeSkipped:
				fmt.Fprintf(r.out, "⏭  Skipped proposal %s (not open for voting)\n", models.ShortenAddress(k))
			}
		}
	}

	if result.HasVoted {
		fmt.Fprintln(r.out, FormatSuccess("successfully voted"))
	}
	return nil
}
