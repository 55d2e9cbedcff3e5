package adapters

import (
	"github.com/google/wire"
	"github.com/soccerdao/dao-cli/internal/adapters/blockchain"
	"github.com/soccerdao/dao-cli/internal/adapters/environment"
	"github.com/soccerdao/dao-cli/internal/adapters/fs"
	"github.com/soccerdao/dao-cli/internal/adapters/interactive"
	"github.com/soccerdao/dao-cli/internal/usecase"
)

// ProvideAmountPicker provides the airdrop amount picker
func ProvideAmountPicker() usecase.AmountPicker {
	return usecase.RandomAirdropAmount
}

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewMetadataStoreAdapter,
	wire.Bind(new(usecase.MetadataStore), new(*fs.MetadataStoreAdapter)),

	fs.NewLocalConfigStoreAdapter,
	wire.Bind(new(usecase.LocalConfigStore), new(*fs.LocalConfigStoreAdapter)),
)

// EnvironmentSet provides the credential environment
var EnvironmentSet = wire.NewSet(
	environment.NewReaderAdapter,
	wire.Bind(new(usecase.EnvironmentReader), new(*environment.ReaderAdapter)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.InteractiveSelector), new(*interactive.SelectorAdapter)),
)

// BlockchainSet provides blockchain-based implementations
var BlockchainSet = wire.NewSet(
	blockchain.NewClient,

	blockchain.NewConnector,
	wire.Bind(new(usecase.WalletConnector), new(*blockchain.Connector)),

	blockchain.NewDrop,
	wire.Bind(new(usecase.MembershipDrop), new(*blockchain.Drop)),

	blockchain.NewToken,
	wire.Bind(new(usecase.GovernanceToken), new(*blockchain.Token)),

	blockchain.NewVote,
	wire.Bind(new(usecase.GovernanceVote), new(*blockchain.Vote)),

	blockchain.NewFactory,
	wire.Bind(new(usecase.ModuleFactory), new(*blockchain.Factory)),

	blockchain.NewCheckerAdapter,
	wire.Bind(new(usecase.ContractChecker), new(*blockchain.CheckerAdapter)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	ProvideAmountPicker,

	FSSet,
	EnvironmentSet,
	InteractiveSet,
	BlockchainSet,
)
