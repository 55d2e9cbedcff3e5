package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/soccerdao/dao-cli/internal/cli/render"
	"github.com/soccerdao/dao-cli/internal/domain/models"
)

// voteFormModel is the bubbletea model of the proposals form: one radio
// group per proposal and a submit button below them
type voteFormModel struct {
	proposals []*models.Proposal
	choices   []int // index into proposal.Votes
	cursor    int   // len(proposals) is the submit button
	hasVoted  bool
	submitted bool
	cancelled bool
}

// newVoteFormModel preselects Abstain on every proposal
func newVoteFormModel(proposals []*models.Proposal, hasVoted bool) voteFormModel {
	choices := make([]int, len(proposals))
	for i, p := range proposals {
		choices[i] = defaultOption(p)
	}
	return voteFormModel{
		proposals: proposals,
		choices:   choices,
		hasVoted:  hasVoted,
	}
}

func defaultOption(p *models.Proposal) int {
	for i, v := range p.Votes {
		if v.Choice == models.DefaultVoteChoice {
			return i
		}
	}
	return 0
}

// Init is the initial command for bubbletea
func (m voteFormModel) Init() tea.Cmd {
	return nil
}

func (m voteFormModel) onButton() bool {
	return m.cursor == len(m.proposals)
}

// Update handles messages and updates the model
func (m voteFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "q", "esc":
		m.cancelled = true
		return m, tea.Quit
	case "up", "k", "shift+tab":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j", "tab":
		if m.cursor < len(m.proposals) {
			m.cursor++
		}
	case "left", "h":
		if !m.onButton() && m.choices[m.cursor] > 0 {
			m.choices[m.cursor]--
		}
	case "right", "l":
		if !m.onButton() && m.choices[m.cursor] < len(m.proposals[m.cursor].Votes)-1 {
			m.choices[m.cursor]++
		}
	case "enter":
		if !m.onButton() {
			m.cursor++
			return m, nil
		}
		if render.VoteButtonDisabled(false, m.hasVoted) {
			return m, nil
		}
		m.submitted = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the UI
func (m voteFormModel) View() string {
	if m.submitted || m.cancelled {
		return ""
	}

	var b strings.Builder
	for i, p := range m.proposals {
		cursor := " "
		if m.cursor == i {
			cursor = color.New(color.FgCyan).Sprint("▸")
		}
		b.WriteString(fmt.Sprintf("%s %s\n", cursor, color.New(color.Bold).Sprint(p.Description)))

		options := make([]string, len(p.Votes))
		for j, v := range p.Votes {
			radio := "○"
			if m.choices[i] == j {
				radio = color.New(color.FgGreen).Sprint("◉")
			}
			options[j] = radio + " " + v.Label
		}
		b.WriteString("    " + strings.Join(options, "   ") + "\n\n")
	}

	label := "[ " + render.VoteButtonLabel(false, m.hasVoted) + " ]"
	switch {
	case render.VoteButtonDisabled(false, m.hasVoted):
		label = color.New(color.Faint).Sprint(label)
	case m.onButton():
		label = color.New(color.FgCyan, color.Bold).Sprint("▸ " + label)
	}
	b.WriteString(label + "\n\n")
	b.WriteString(color.New(color.FgYellow).Sprint("↑/↓: move  ←/→: choose  Enter: submit  q: quit\n"))

	return b.String()
}

// Submissions returns one vote per proposal from the current selection
func (m voteFormModel) Submissions() []models.VoteSubmission {
	votes := make([]models.VoteSubmission, 0, len(m.proposals))
	for i, p := range m.proposals {
		if len(p.Votes) == 0 {
			continue
		}
		votes = append(votes, models.VoteSubmission{
			ProposalID: p.ID,
			Choice:     p.Votes[m.choices[i]].Choice,
		})
	}
	return votes
}

// runVoteForm shows the vote form and returns the submitted votes, or nil
// when the form was cancelled
func runVoteForm(proposals []*models.Proposal, hasVoted bool) ([]models.VoteSubmission, error) {
	if len(proposals) == 0 {
		return nil, fmt.Errorf("no proposals to vote on")
	}

	p := tea.NewProgram(newVoteFormModel(proposals, hasVoted))
	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("vote form failed: %w", err)
	}

	m := finalModel.(voteFormModel)
	if !m.submitted {
		return nil, nil
	}
	return m.Submissions(), nil
}
