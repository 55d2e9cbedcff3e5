package app

import (
	"log/slog"

	"github.com/soccerdao/dao-cli/internal/domain/config"
	"github.com/soccerdao/dao-cli/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Log    *slog.Logger

	// Shared dependencies
	Selector usecase.InteractiveSelector
	Sink     usecase.ProgressSink

	// Member flows
	ConnectWallet   *usecase.ConnectWallet
	CheckMembership *usecase.CheckMembership
	MintMembership  *usecase.MintMembership
	ListMembers     *usecase.ListMembers
	ListProposals   *usecase.ListProposals
	SubmitVotes     *usecase.SubmitVotes

	// Operator provisioning
	CheckEnvironment  *usecase.CheckEnvironment
	CheckContracts    *usecase.CheckContracts
	CreateDropBatch   *usecase.CreateDropBatch
	SetClaimCondition *usecase.SetClaimCondition
	DeployTokenModule *usecase.DeployTokenModule
	DeployVoteModule  *usecase.DeployVoteModule
	PrintMoney        *usecase.PrintMoney
	AirdropToken      *usecase.AirdropToken
	SetupVote         *usecase.SetupVote

	// Local configuration
	ShowConfig   *usecase.ShowConfig
	SetConfig    *usecase.SetConfig
	RemoveConfig *usecase.RemoveConfig
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	selector usecase.InteractiveSelector,
	sink usecase.ProgressSink,
	connectWallet *usecase.ConnectWallet,
	checkMembership *usecase.CheckMembership,
	mintMembership *usecase.MintMembership,
	listMembers *usecase.ListMembers,
	listProposals *usecase.ListProposals,
	submitVotes *usecase.SubmitVotes,
	checkEnvironment *usecase.CheckEnvironment,
	checkContracts *usecase.CheckContracts,
	createDropBatch *usecase.CreateDropBatch,
	setClaimCondition *usecase.SetClaimCondition,
	deployTokenModule *usecase.DeployTokenModule,
	deployVoteModule *usecase.DeployVoteModule,
	printMoney *usecase.PrintMoney,
	airdropToken *usecase.AirdropToken,
	setupVote *usecase.SetupVote,
	showConfig *usecase.ShowConfig,
	setConfig *usecase.SetConfig,
	removeConfig *usecase.RemoveConfig,
) (*App, error) {
	return &App{
		Config:            cfg,
		Log:               log,
		Selector:          selector,
		Sink:              sink,
		ConnectWallet:     connectWallet,
		CheckMembership:   checkMembership,
		MintMembership:    mintMembership,
		ListMembers:       listMembers,
		ListProposals:     listProposals,
		SubmitVotes:       submitVotes,
		CheckEnvironment:  checkEnvironment,
		CheckContracts:    checkContracts,
		CreateDropBatch:   createDropBatch,
		SetClaimCondition: setClaimCondition,
		DeployTokenModule: deployTokenModule,
		DeployVoteModule:  deployVoteModule,
		PrintMoney:        printMoney,
		AirdropToken:      airdropToken,
		SetupVote:         setupVote,
		ShowConfig:        showConfig,
		SetConfig:         setConfig,
		RemoveConfig:      removeConfig,
	}, nil
}
