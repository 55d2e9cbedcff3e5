package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/soccerdao/dao-cli/internal/app"
	"github.com/soccerdao/dao-cli/internal/cli/render"
	"github.com/soccerdao/dao-cli/internal/domain"
	"github.com/soccerdao/dao-cli/internal/domain/models"
	"github.com/soccerdao/dao-cli/internal/usecase"
	"github.com/spf13/cobra"
)

// errStepSkipped marks a step of provision all that had nothing to do
var errStepSkipped = errors.New("skipped")

// provisionOptions holds the flags shared by the provisioning steps
type provisionOptions struct {
	manifest string
	baseURI  string

	claimStart  string
	claimMax    int64
	claimPerTx  int64
	mintAmount  int64
	tokenName   string
	tokenSymbol string
	voteName    string
	votingHours uint64
}

// provisionStep is one operator step. It renders its own result.
type provisionStep struct {
	name   string
	short  string
	signer bool
	run    func(cmd *cobra.Command, a *app.App, session *models.Session, opts *provisionOptions, r *render.ProvisionRenderer) error
}

var provisionSteps = []provisionStep{
	{name: "check-env", short: "Check the operator credentials in the environment", run: runCheckEnv},
	{name: "status", short: "Check the configured contracts are deployed", run: runContractStatus},
	{name: "config-nft", short: "Create the membership NFT in the drop", signer: true, run: runConfigNFT},
	{name: "set-claim-condition", short: "Open the claim phase of the membership NFT", signer: true, run: runSetClaimCondition},
	{name: "deploy-token", short: "Deploy the governance token module", signer: true, run: runDeployToken},
	{name: "print-money", short: "Mint the initial token supply to the operator", signer: true, run: runPrintMoney},
	{name: "airdrop", short: "Airdrop tokens to every membership holder", signer: true, run: runAirdrop},
	{name: "deploy-vote", short: "Deploy the vote module", signer: true, run: runDeployVote},
	{name: "setup-vote", short: "Fund the vote treasury and grant it minting rights", signer: true, run: runSetupVote},
}

// allSteps is the sequence run by provision all. Deployments are left out
// because their new addresses must be written to dao.toml before the
// following steps can use them.
var allSteps = []string{"check-env", "status", "config-nft", "set-claim-condition", "print-money", "airdrop", "setup-vote"}

// NewProvisionCmd creates the provision command
func NewProvisionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "provision",
		Short: "Operator commands that set up the DAO contracts",
		Long: `Operator commands that set up the DAO contracts.

Each step is a one-shot run against the contracts in dao.toml and needs
PRIVATE_KEY in the environment (.env). Deploy the modules first, copy
their addresses into dao.toml, then run the remaining steps or "all".`,
	}

	for _, step := range provisionSteps {
		cmd.AddCommand(newProvisionStepCmd(step))
	}
	cmd.AddCommand(newProvisionAllCmd())

	return cmd
}

func newProvisionStepCmd(step provisionStep) *cobra.Command {
	opts := &provisionOptions{}

	cmd := &cobra.Command{
		Use:   step.name,
		Short: step.short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			var session *models.Session
			if step.signer {
				if session, err = connectSigner(cmd, app); err != nil {
					return err
				}
				defer app.ConnectWallet.Close(cmd.Context(), session)
			}

			r := render.NewProvisionRenderer(cmd.OutOrStdout(), app.Config)
			err = step.run(cmd, app, session, opts, r)
			if errors.Is(err, errStepSkipped) {
				return nil
			}
			return err
		},
	}

	addProvisionFlags(cmd, step.name, opts)
	return cmd
}

func newProvisionAllCmd() *cobra.Command {
	opts := &provisionOptions{}

	cmd := &cobra.Command{
		Use:   "all",
		Short: "Run every post-deployment provisioning step in order",
		Long: `Run check-env, status, config-nft, set-claim-condition, print-money,
airdrop and setup-vote in order. The run stops at the first failing
step and prints a summary. config-nft is skipped without --manifest.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			session, err := connectSigner(cmd, app)
			if err != nil {
				return err
			}
			defer app.ConnectWallet.Close(cmd.Context(), session)

			r := render.NewProvisionRenderer(cmd.OutOrStdout(), app.Config)
			results, err := runSteps(cmd, app, session, opts, r, allSteps)
			r.RenderSummary(results)
			return err
		},
	}

	for _, name := range allSteps {
		addProvisionFlags(cmd, name, opts)
	}
	return cmd
}

// runSteps runs the named steps until one fails. The remaining steps are
// reported as skipped.
func runSteps(cmd *cobra.Command, a *app.App, session *models.Session, opts *provisionOptions, r *render.ProvisionRenderer, names []string) ([]render.StepResult, error) {
	byName := make(map[string]provisionStep, len(provisionSteps))
	for _, s := range provisionSteps {
		byName[s.name] = s
	}

	results := make([]render.StepResult, 0, len(names))
	var failed error
	for _, name := range names {
		if failed != nil {
			results = append(results, render.StepResult{Name: name, Skipped: true})
			continue
		}

		step, ok := byName[name]
		if !ok {
			return results, fmt.Errorf("unknown provisioning step %q", name)
		}

		start := time.Now()
		err := step.run(cmd, a, session, opts, r)
		result := render.StepResult{Name: name, Duration: time.Since(start)}
		switch {
		case errors.Is(err, errStepSkipped):
			result.Skipped = true
		case err != nil:
			result.Err = err
			failed = fmt.Errorf("%s: %w", name, err)
		}
		results = append(results, result)
	}
	return results, failed
}

func addProvisionFlags(cmd *cobra.Command, step string, opts *provisionOptions) {
	f := cmd.Flags()
	switch step {
	case "config-nft":
		f.StringVar(&opts.manifest, "manifest", "", "YAML list of {name, description, image} to create")
		f.StringVar(&opts.baseURI, "base-uri", "", "Where the written metadata is served from, e.g. ipfs://<cid>/")
	case "set-claim-condition":
		f.StringVar(&opts.claimStart, "start", "", "Claim phase start (RFC3339, default now)")
		f.Int64Var(&opts.claimMax, "max", usecase.DefaultClaimMaxQuantity, "Maximum number of NFTs that can be claimed")
		f.Int64Var(&opts.claimPerTx, "per-tx", usecase.DefaultClaimPerTransaction, "Maximum NFTs claimed per transaction")
	case "deploy-token":
		defaults := usecase.DefaultTokenModuleParams()
		f.StringVar(&opts.tokenName, "name", defaults.Name, "Token name")
		f.StringVar(&opts.tokenSymbol, "symbol", defaults.Symbol, "Token symbol")
	case "print-money":
		f.Int64Var(&opts.mintAmount, "amount", usecase.DefaultMintSupply, "Whole tokens to mint")
	case "deploy-vote":
		defaults := usecase.DefaultVoteModuleParams(models.NativeTokenAddress)
		f.StringVar(&opts.voteName, "name", defaults.Name, "Vote module name")
		f.Uint64Var(&opts.votingHours, "voting-hours", defaults.ProposalVotingTimeInSeconds/3600, "How long proposals stay open")
	}
}

func runCheckEnv(cmd *cobra.Command, a *app.App, _ *models.Session, _ *provisionOptions, r *render.ProvisionRenderer) error {
	r.RenderEnvironment(a.CheckEnvironment.Run(cmd.Context()))
	return nil
}

func runContractStatus(cmd *cobra.Command, a *app.App, _ *models.Session, _ *provisionOptions, r *render.ProvisionRenderer) error {
	statuses, err := a.CheckContracts.Run(cmd.Context())
	if err != nil {
		return err
	}
	r.RenderContracts(statuses)
	if !usecase.AllDeployed(statuses) {
		return fmt.Errorf("%w: check [contracts] in dao.toml", domain.ErrContractNotConfigured)
	}
	return nil
}

func runConfigNFT(cmd *cobra.Command, a *app.App, session *models.Session, opts *provisionOptions, r *render.ProvisionRenderer) error {
	if opts.manifest == "" {
		if cmd.Name() == "all" {
			return errStepSkipped
		}
		return fmt.Errorf("--manifest is required")
	}

	result, err := a.CreateDropBatch.Run(cmd.Context(), usecase.CreateDropBatchParams{
		Session:      session,
		ManifestPath: opts.manifest,
		BaseURI:      opts.baseURI,
	})
	if err != nil {
		return err
	}
	r.RenderDropBatch(result)
	return nil
}

func runSetClaimCondition(cmd *cobra.Command, a *app.App, session *models.Session, opts *provisionOptions, r *render.ProvisionRenderer) error {
	params := usecase.SetClaimConditionParams{
		Session:                   session,
		MaxQuantity:               opts.claimMax,
		MaxQuantityPerTransaction: opts.claimPerTx,
	}
	if opts.claimStart != "" {
		start, err := time.Parse(time.RFC3339, opts.claimStart)
		if err != nil {
			return fmt.Errorf("invalid --start: %w", err)
		}
		params.StartTime = start
	}

	result, err := a.SetClaimCondition.Run(cmd.Context(), params)
	if err != nil {
		return err
	}
	r.RenderClaimCondition(result)
	return nil
}

func runDeployToken(cmd *cobra.Command, a *app.App, session *models.Session, opts *provisionOptions, r *render.ProvisionRenderer) error {
	params := usecase.DefaultTokenModuleParams()
	if opts.tokenName != "" {
		params.Name = opts.tokenName
	}
	if opts.tokenSymbol != "" {
		params.Symbol = opts.tokenSymbol
	}

	result, err := a.DeployTokenModule.Run(cmd.Context(), session, params)
	if err != nil {
		return err
	}
	r.RenderDeployed("token", result)
	fmt.Fprintf(cmd.OutOrStdout(), "👉 set token = %q under [contracts] in dao.toml\n", result.Address.Hex())
	return nil
}

func runPrintMoney(cmd *cobra.Command, a *app.App, session *models.Session, opts *provisionOptions, r *render.ProvisionRenderer) error {
	result, err := a.PrintMoney.Run(cmd.Context(), session, opts.mintAmount)
	if err != nil {
		return err
	}
	r.RenderPrintMoney(result)
	return nil
}

func runAirdrop(cmd *cobra.Command, a *app.App, session *models.Session, _ *provisionOptions, r *render.ProvisionRenderer) error {
	result, err := a.AirdropToken.Run(cmd.Context(), session)
	if errors.Is(err, domain.ErrNoClaims) {
		fmt.Fprintln(cmd.OutOrStdout(), "No NFTs have been claimed yet, maybe get some friends to claim your free NFTs!")
		return errStepSkipped
	}
	if err != nil {
		return err
	}
	r.RenderAirdrop(result)
	return nil
}

func runDeployVote(cmd *cobra.Command, a *app.App, session *models.Session, opts *provisionOptions, r *render.ProvisionRenderer) error {
	params := usecase.DefaultVoteModuleParams(a.Config.Contracts.Token)
	if opts.voteName != "" {
		params.Name = opts.voteName
	}
	if opts.votingHours > 0 {
		params.ProposalVotingTimeInSeconds = opts.votingHours * 3600
	}

	result, err := a.DeployVoteModule.Run(cmd.Context(), session, params)
	if err != nil {
		return err
	}
	r.RenderDeployed("vote", result)
	fmt.Fprintf(cmd.OutOrStdout(), "👉 set vote = %q under [contracts] in dao.toml\n", result.Address.Hex())
	return nil
}

func runSetupVote(cmd *cobra.Command, a *app.App, session *models.Session, _ *provisionOptions, r *render.ProvisionRenderer) error {
	result := a.SetupVote.Run(cmd.Context(), session)
	r.RenderSetupVote(result)
	return result.Err()
}
