//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/soccerdao/dao-cli/internal/adapters"
	"github.com/soccerdao/dao-cli/internal/config"
	"github.com/soccerdao/dao-cli/internal/logging"
	"github.com/soccerdao/dao-cli/internal/usecase"
	"github.com/spf13/viper"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, sink usecase.ProgressSink) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewConnectWallet,
		usecase.NewCheckMembership,
		usecase.NewMintMembership,
		usecase.NewListMembers,
		usecase.NewListProposals,
		usecase.NewSubmitVotes,
		usecase.NewCheckEnvironment,
		usecase.NewCheckContracts,
		usecase.NewCreateDropBatch,
		usecase.NewSetClaimCondition,
		usecase.NewDeployTokenModule,
		usecase.NewDeployVoteModule,
		usecase.NewPrintMoney,
		usecase.NewAirdropToken,
		usecase.NewSetupVote,
		usecase.NewShowConfig,
		usecase.NewSetConfig,
		usecase.NewRemoveConfig,

		// App
		NewApp,
	)
	return nil, nil
}
