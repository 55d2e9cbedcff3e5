package render

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/soccerdao/dao-cli/internal/domain/config"
	"github.com/soccerdao/dao-cli/internal/domain/models"
	"github.com/soccerdao/dao-cli/internal/usecase"
)

// StepResult is one row of the provisioning summary
type StepResult struct {
	Name     string
	Err      error
	Skipped  bool
	Duration time.Duration
}

// ProvisionRenderer renders the operator provisioning steps
type ProvisionRenderer struct {
	out     io.Writer
	network *config.Network
	decimal int
}

// NewProvisionRenderer creates a new provisioning renderer
func NewProvisionRenderer(out io.Writer, cfg *config.RuntimeConfig) *ProvisionRenderer {
	return &ProvisionRenderer{out: out, network: cfg.Network, decimal: cfg.TokenDecimals}
}

func (r *ProvisionRenderer) tx(tx *models.Transaction) {
	if tx != nil {
		fmt.Fprintf(r.out, "   tx: %s\n", FormatTransaction(r.network, tx))
	}
}

// RenderEnvironment renders the credential check
func (r *ProvisionRenderer) RenderEnvironment(report *usecase.EnvironmentReport) {
	missing := make(map[string]bool, len(report.Missing))
	for _, key := range report.Missing {
		missing[key] = true
	}
	for _, key := range report.Checked {
		if !missing[key] {
			fmt.Fprintln(r.out, FormatSuccess(key+" found"))
		}
	}
	if report.OK() {
		fmt.Fprintln(r.out, "👀 All credentials present")
	}
}

// RenderContracts renders the deployment status of the configured contracts
func (r *ProvisionRenderer) RenderContracts(statuses []usecase.ContractStatus) {
	t := newTable()
	t.AppendHeader(table.Row{"Contract", "Address", "Status"})
	for _, s := range statuses {
		status := color.New(color.FgGreen).Sprint("deployed")
		if !s.Deployed {
			status = color.New(color.FgRed).Sprint(s.Reason)
		}
		t.AppendRow(table.Row{s.Name, s.Address.Hex(), status})
	}
	fmt.Fprintln(r.out, t.Render())
}

// RenderDropBatch renders the lazy-minted batch
func (r *ProvisionRenderer) RenderDropBatch(result *usecase.CreateDropBatchResult) {
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Successfully created %d new NFT(s) in the drop!", len(result.Items))))
	for _, f := range result.Files {
		fmt.Fprintf(r.out, "   📄 %s\n", getRelativePath(f))
	}
	r.tx(result.Transaction)
}

// RenderClaimCondition renders the claim phase that was set
func (r *ProvisionRenderer) RenderClaimCondition(result *usecase.SetClaimConditionResult) {
	fmt.Fprintln(r.out, FormatSuccess("Successfully set claim condition!"))
	fmt.Fprintf(r.out, "   starts: %s, max: %s, per tx: %s\n",
		result.Phase.StartTime.Format(time.RFC3339),
		result.Phase.MaxQuantity,
		result.Phase.MaxQuantityPerTransaction)
	r.tx(result.Transaction)
}

// RenderDeployed renders a deployed module address
func (r *ProvisionRenderer) RenderDeployed(module string, result *usecase.DeployModuleResult) {
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Successfully deployed %s module, address: %s", module, result.Address.Hex())))
	r.tx(result.Transaction)
}

// RenderPrintMoney renders the minted supply
func (r *ProvisionRenderer) RenderPrintMoney(result *usecase.PrintMoneyResult) {
	fmt.Fprintf(r.out, "✅ There now is %s $SDT in circulation\n", result.Formatted)
	r.tx(result.Transaction)
}

// RenderAirdrop renders the airdrop targets
func (r *ProvisionRenderer) RenderAirdrop(result *usecase.AirdropResult) {
	for _, target := range result.Targets {
		fmt.Fprintf(r.out, "✅ Going to airdrop %s tokens to %s\n", models.FormatUnits(target.Amount, r.decimal), target.Address.Hex())
	}
	fmt.Fprintln(r.out, FormatSuccess("Successfully airdropped tokens to all the holders of the NFT!"))
	r.tx(result.Transaction)
}

// RenderSetupVote renders both halves of the treasury setup
func (r *ProvisionRenderer) RenderSetupVote(result *usecase.SetupVoteResult) {
	if result.RoleErr != nil {
		fmt.Fprintln(r.out, FormatError("failed to grant vote module permissions on token module: "+result.RoleErr.Error()))
	} else {
		fmt.Fprintln(r.out, FormatSuccess("Successfully gave vote module permissions to act on token module"))
	}

	if result.TransferErr != nil {
		fmt.Fprintln(r.out, FormatError("failed to transfer tokens to vote module: "+result.TransferErr.Error()))
	} else {
		fmt.Fprintf(r.out, "✅ Successfully transferred %s tokens to vote module\n", models.FormatUnits(result.Transferred, r.decimal))
	}
}

// RenderSummary renders the outcome of every step of a full run
func (r *ProvisionRenderer) RenderSummary(steps []StepResult) {
	t := newTable()
	t.AppendHeader(table.Row{"Step", "Result", "Time"})
	for _, s := range steps {
		var result string
		switch {
		case s.Skipped:
			result = color.New(color.Faint).Sprint("skipped")
		case s.Err != nil:
			result = color.New(color.FgRed).Sprint(s.Err.Error())
		default:
			result = color.New(color.FgGreen).Sprint("ok")
		}
		t.AppendRow(table.Row{s.Name, result, s.Duration.Round(time.Millisecond)})
	}
	fmt.Fprintln(r.out, t.Render())
}
