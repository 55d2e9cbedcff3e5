package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi/bind/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/soccerdao/dao-cli/internal/domain/config"
	"github.com/soccerdao/dao-cli/internal/domain/models"
	"github.com/soccerdao/dao-cli/internal/usecase"
	"github.com/stretchr/testify/mock"
)

var (
	dropAddress  = common.HexToAddress("0x4f87e29bA7Ee65e997adDb20BA84bCC4d64A8d5a")
	tokenAddress = common.HexToAddress("0x6A71E4Ce8E12fAf65D0cF8E1ae935DAc9cF334b0")
	voteAddress  = common.HexToAddress("0x91165ce03cb75EC9CE650BD89C5Ef4f02cB41D9E")

	alice = common.HexToAddress("0x1111111111111111111111111111111111111111")
	bob   = common.HexToAddress("0x2222222222222222222222222222222222222222")
	carol = common.HexToAddress("0x3333333333333333333333333333333333333333")
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.RuntimeConfig {
	return &config.RuntimeConfig{
		Network: &config.Network{
			ChainID:   4,
			Name:      "rinkeby",
			MarketURL: "https://testnets.opensea.io",
		},
		Contracts: config.Contracts{
			Drop:  dropAddress,
			Token: tokenAddress,
			Vote:  voteAddress,
		},
		MembershipTokenID: 0,
		TokenDecimals:     18,
	}
}

func signingSession(addr common.Address) *models.Session {
	return &models.Session{
		Address: addr,
		ChainID: big.NewInt(4),
		Signer:  &bind.TransactOpts{From: addr},
	}
}

func readOnlySession(addr common.Address) *models.Session {
	return &models.Session{Address: addr, ChainID: big.NewInt(4)}
}

func tokens(n int64) *big.Int {
	return models.ScaleUnits(n, 18)
}

// bigEq matches a *big.Int argument by value
func bigEq(n *big.Int) interface{} {
	return mock.MatchedBy(func(v *big.Int) bool { return v != nil && v.Cmp(n) == 0 })
}

func okTx(method string) *models.Transaction {
	return &models.Transaction{
		Hash:   common.HexToHash("0xabc"),
		Method: method,
		Status: models.TransactionStatusExecuted,
	}
}

// MockDrop is a mock implementation of MembershipDrop
type MockDrop struct {
	mock.Mock
}

func (m *MockDrop) Address() common.Address { return dropAddress }

func (m *MockDrop) BalanceOf(ctx context.Context, owner common.Address, tokenID *big.Int) (*big.Int, error) {
	args := m.Called(ctx, owner, tokenID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *MockDrop) Claim(ctx context.Context, session *models.Session, tokenID *big.Int, quantity int64) (*models.Transaction, error) {
	args := m.Called(ctx, session, tokenID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

func (m *MockDrop) ClaimerAddresses(ctx context.Context, tokenID *big.Int) ([]common.Address, error) {
	args := m.Called(ctx, tokenID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]common.Address), args.Error(1)
}

func (m *MockDrop) LazyMint(ctx context.Context, session *models.Session, amount int64, baseURI string) (*models.Transaction, error) {
	args := m.Called(ctx, session, amount, baseURI)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

func (m *MockDrop) SetClaimConditions(ctx context.Context, session *models.Session, tokenID *big.Int, phases []models.ClaimPhase) (*models.Transaction, error) {
	args := m.Called(ctx, session, tokenID, phases)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

// MockToken is a mock implementation of GovernanceToken
type MockToken struct {
	mock.Mock
}

func (m *MockToken) Address() common.Address { return tokenAddress }

func (m *MockToken) BalanceOf(ctx context.Context, owner common.Address) (*big.Int, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *MockToken) TotalSupply(ctx context.Context) (*big.Int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *MockToken) HolderBalances(ctx context.Context) (map[common.Address]*big.Int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[common.Address]*big.Int), args.Error(1)
}

func (m *MockToken) Delegates(ctx context.Context, account common.Address) (common.Address, error) {
	args := m.Called(ctx, account)
	return args.Get(0).(common.Address), args.Error(1)
}

func (m *MockToken) Delegate(ctx context.Context, session *models.Session, delegatee common.Address) (*models.Transaction, error) {
	args := m.Called(ctx, session, delegatee)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

func (m *MockToken) Mint(ctx context.Context, session *models.Session, to common.Address, amount *big.Int) (*models.Transaction, error) {
	args := m.Called(ctx, session, to, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

func (m *MockToken) Transfer(ctx context.Context, session *models.Session, to common.Address, amount *big.Int) (*models.Transaction, error) {
	args := m.Called(ctx, session, to, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

func (m *MockToken) TransferBatch(ctx context.Context, session *models.Session, targets []models.AirdropTarget) (*models.Transaction, error) {
	args := m.Called(ctx, session, targets)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

func (m *MockToken) GrantRole(ctx context.Context, session *models.Session, role string, account common.Address) (*models.Transaction, error) {
	args := m.Called(ctx, session, role, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

// MockVote is a mock implementation of GovernanceVote
type MockVote struct {
	mock.Mock
}

func (m *MockVote) Address() common.Address { return voteAddress }

func (m *MockVote) Proposals(ctx context.Context) ([]*models.Proposal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Proposal), args.Error(1)
}

func (m *MockVote) ProposalState(ctx context.Context, proposalID *big.Int) (models.ProposalState, error) {
	args := m.Called(ctx, proposalID)
	return args.Get(0).(models.ProposalState), args.Error(1)
}

func (m *MockVote) HasVoted(ctx context.Context, proposalID *big.Int, account common.Address) (bool, error) {
	args := m.Called(ctx, proposalID, account)
	return args.Bool(0), args.Error(1)
}

func (m *MockVote) CastVote(ctx context.Context, session *models.Session, proposalID *big.Int, choice models.VoteChoice) (*models.Transaction, error) {
	args := m.Called(ctx, session, proposalID, choice)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

func (m *MockVote) Execute(ctx context.Context, session *models.Session, proposal *models.Proposal) (*models.Transaction, error) {
	args := m.Called(ctx, session, proposal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

// MockFactory is a mock implementation of ModuleFactory
type MockFactory struct {
	mock.Mock
}

func (m *MockFactory) DeployTokenModule(ctx context.Context, session *models.Session, params models.TokenModuleParams) (*models.Transaction, error) {
	args := m.Called(ctx, session, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

func (m *MockFactory) DeployVoteModule(ctx context.Context, session *models.Session, params models.VoteModuleParams) (*models.Transaction, error) {
	args := m.Called(ctx, session, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

// MockMetadataStore is a mock implementation of MetadataStore
type MockMetadataStore struct {
	mock.Mock
}

func (m *MockMetadataStore) LoadManifest(ctx context.Context, path string) ([]models.NFTMetadata, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.NFTMetadata), args.Error(1)
}

func (m *MockMetadataStore) WriteBatch(ctx context.Context, items []models.NFTMetadata) ([]string, error) {
	args := m.Called(ctx, items)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockConnector is a mock implementation of WalletConnector
type MockConnector struct {
	mock.Mock
}

func (m *MockConnector) Connect(ctx context.Context) (*models.Session, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockConnector) Disconnect(ctx context.Context, session *models.Session) error {
	return m.Called(ctx, session).Error(0)
}

// MapEnv is an EnvironmentReader backed by a map
type MapEnv map[string]string

func (e MapEnv) Lookup(key string) string { return e[key] }

// MockProgressSink records progress events
type MockProgressSink struct {
	mu     sync.Mutex
	events []usecase.ProgressEvent
	infos  []string
	errors []string
}

func (m *MockProgressSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
}

func (m *MockProgressSink) Info(message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.infos = append(m.infos, message)
}

func (m *MockProgressSink) Error(message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors = append(m.errors, message)
}

func (m *MockProgressSink) messages() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []string
	for _, e := range m.events {
		if e.Message != "" {
			out = append(out, e.Message)
		}
	}
	return out
}
