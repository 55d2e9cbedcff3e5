package usecase

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/soccerdao/dao-cli/internal/domain/config"
	"github.com/soccerdao/dao-cli/internal/domain/models"
)

// WalletConnector opens and closes wallet sessions
type WalletConnector interface {
	// Connect verifies the chain and returns a signing or read-only session
	Connect(ctx context.Context) (*models.Session, error)
	// Disconnect releases the underlying RPC connection
	Disconnect(ctx context.Context, session *models.Session) error
}

// MembershipDrop is the ERC-1155 drop holding the membership credential
type MembershipDrop interface {
	Address() common.Address
	BalanceOf(ctx context.Context, owner common.Address, tokenID *big.Int) (*big.Int, error)
	Claim(ctx context.Context, session *models.Session, tokenID *big.Int, quantity int64) (*models.Transaction, error)
	ClaimerAddresses(ctx context.Context, tokenID *big.Int) ([]common.Address, error)
	LazyMint(ctx context.Context, session *models.Session, amount int64, baseURI string) (*models.Transaction, error)
	SetClaimConditions(ctx context.Context, session *models.Session, tokenID *big.Int, phases []models.ClaimPhase) (*models.Transaction, error)
}

// GovernanceToken is the ERC-20 votes token
type GovernanceToken interface {
	Address() common.Address
	BalanceOf(ctx context.Context, owner common.Address) (*big.Int, error)
	TotalSupply(ctx context.Context) (*big.Int, error)
	HolderBalances(ctx context.Context) (map[common.Address]*big.Int, error)
	Delegates(ctx context.Context, account common.Address) (common.Address, error)
	Delegate(ctx context.Context, session *models.Session, delegatee common.Address) (*models.Transaction, error)
	Mint(ctx context.Context, session *models.Session, to common.Address, amount *big.Int) (*models.Transaction, error)
	Transfer(ctx context.Context, session *models.Session, to common.Address, amount *big.Int) (*models.Transaction, error)
	TransferBatch(ctx context.Context, session *models.Session, targets []models.AirdropTarget) (*models.Transaction, error)
	GrantRole(ctx context.Context, session *models.Session, role string, account common.Address) (*models.Transaction, error)
}

// GovernanceVote is the Governor contract
type GovernanceVote interface {
	Address() common.Address
	Proposals(ctx context.Context) ([]*models.Proposal, error)
	ProposalState(ctx context.Context, proposalID *big.Int) (models.ProposalState, error)
	HasVoted(ctx context.Context, proposalID *big.Int, account common.Address) (bool, error)
	CastVote(ctx context.Context, session *models.Session, proposalID *big.Int, choice models.VoteChoice) (*models.Transaction, error)
	Execute(ctx context.Context, session *models.Session, proposal *models.Proposal) (*models.Transaction, error)
}

// ModuleFactory deploys pre-built contract modules for the app
type ModuleFactory interface {
	DeployTokenModule(ctx context.Context, session *models.Session, params models.TokenModuleParams) (*models.Transaction, error)
	DeployVoteModule(ctx context.Context, session *models.Session, params models.VoteModuleParams) (*models.Transaction, error)
}

// MetadataStore persists NFT metadata documents for upload
type MetadataStore interface {
	// LoadManifest reads the metadata entries to create
	LoadManifest(ctx context.Context, path string) ([]models.NFTMetadata, error)
	// WriteBatch writes one document per entry and returns the written paths
	WriteBatch(ctx context.Context, items []models.NFTMetadata) ([]string, error)
}

// EnvironmentReader exposes the raw credential environment
type EnvironmentReader interface {
	Lookup(key string) string
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage    string
	Current  int
	Total    int
	Message  string
	Spinner  bool
	Metadata interface{}
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}

// AmountPicker draws a whole-token airdrop amount
type AmountPicker func() int64

// LocalConfigStore manages .dao/config.local.json
type LocalConfigStore interface {
	Exists() bool
	Load(ctx context.Context) (*config.LocalConfig, error)
	Save(ctx context.Context, cfg *config.LocalConfig) error
	GetPath() string
}

// ContractChecker verifies what is deployed on-chain
type ContractChecker interface {
	CheckDeploymentExists(ctx context.Context, address common.Address) (exists bool, reason string, err error)
}

// InteractiveSelector asks the user to confirm or pick
type InteractiveSelector interface {
	Confirm(label string) (bool, error)
	Select(label string, items []string) (int, error)
	Prompt(label string, validate func(string) error) (string, error)
}
