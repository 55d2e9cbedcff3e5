package usecase_test

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/soccerdao/dao-cli/internal/domain"
	"github.com/soccerdao/dao-cli/internal/domain/models"
	"github.com/soccerdao/dao-cli/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCheckEnvironment(t *testing.T) {
	ctx := context.Background()

	t.Run("all present", func(t *testing.T) {
		sink := &MockProgressSink{}
		report := usecase.NewCheckEnvironment(MapEnv{
			usecase.EnvPrivateKey:    "0xabc",
			usecase.EnvRPCURL:        "https://rpc",
			usecase.EnvWalletAddress: alice.Hex(),
		}, sink, testLogger()).Run(ctx)

		assert.True(t, report.OK())
		assert.Empty(t, sink.errors)
	})

	t.Run("missing values are reported", func(t *testing.T) {
		sink := &MockProgressSink{}
		report := usecase.NewCheckEnvironment(MapEnv{usecase.EnvRPCURL: "https://rpc"}, sink, testLogger()).Run(ctx)

		assert.False(t, report.OK())
		assert.Equal(t, []string{usecase.EnvPrivateKey, usecase.EnvWalletAddress}, report.Missing)
		assert.Contains(t, sink.errors, "🛑 PRIVATE_KEY not found.")
	})
}

func TestCreateDropBatch(t *testing.T) {
	ctx := context.Background()
	session := signingSession(alice)
	items := []models.NFTMetadata{{
		Name:        "A boy hoping to be a star",
		Description: "This NFT will give you access to SoccerDAO!",
		Image:       "passboy.png",
	}}

	t.Run("writes metadata and lazy mints", func(t *testing.T) {
		drop := new(MockDrop)
		store := new(MockMetadataStore)
		store.On("LoadManifest", ctx, "drop.yaml").Return(items, nil)
		store.On("WriteBatch", ctx, items).Return([]string{"metadata/0.json"}, nil)
		drop.On("LazyMint", ctx, session, int64(1), "ipfs://cid/").Return(okTx("lazyMint"), nil)

		result, err := usecase.NewCreateDropBatch(drop, store, &MockProgressSink{}, testLogger()).Run(ctx, usecase.CreateDropBatchParams{
			Session:      session,
			ManifestPath: "drop.yaml",
			BaseURI:      "ipfs://cid/",
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"metadata/0.json"}, result.Files)
		drop.AssertExpectations(t)
	})

	t.Run("lazy mint failure is returned", func(t *testing.T) {
		drop := new(MockDrop)
		store := new(MockMetadataStore)
		store.On("LoadManifest", ctx, "drop.yaml").Return(items, nil)
		store.On("WriteBatch", ctx, items).Return([]string{"metadata/0.json"}, nil)
		drop.On("LazyMint", ctx, session, int64(1), "ipfs://cid/").Return(nil, errors.New("not authorized"))

		_, err := usecase.NewCreateDropBatch(drop, store, &MockProgressSink{}, testLogger()).Run(ctx, usecase.CreateDropBatchParams{
			Session:      session,
			ManifestPath: "drop.yaml",
			BaseURI:      "ipfs://cid/",
		})

		assert.ErrorContains(t, err, "failed to create the new NFT")
	})

	t.Run("base URI is required", func(t *testing.T) {
		_, err := usecase.NewCreateDropBatch(new(MockDrop), new(MockMetadataStore), &MockProgressSink{}, testLogger()).Run(ctx, usecase.CreateDropBatchParams{
			Session:      session,
			ManifestPath: "drop.yaml",
		})
		assert.Error(t, err)
	})
}

func TestSetClaimCondition(t *testing.T) {
	ctx := context.Background()
	session := signingSession(alice)
	start := time.Unix(1_700_000_000, 0)

	drop := new(MockDrop)
	drop.On("SetClaimConditions", ctx, session, bigEq(big.NewInt(0)), mock.MatchedBy(func(phases []models.ClaimPhase) bool {
		return len(phases) == 1 &&
			phases[0].StartTime.Equal(start) &&
			phases[0].MaxQuantity.Int64() == 50_000 &&
			phases[0].MaxQuantityPerTransaction.Int64() == 1 &&
			phases[0].Price.Sign() == 0
	})).Return(okTx("setClaimConditions"), nil)

	result, err := usecase.NewSetClaimCondition(testConfig(), drop, &MockProgressSink{}, testLogger()).Run(ctx, usecase.SetClaimConditionParams{
		Session:   session,
		StartTime: start,
	})

	require.NoError(t, err)
	assert.Equal(t, models.NativeTokenAddress, result.Phase.Currency)
	drop.AssertExpectations(t)
}

func TestDeployModules(t *testing.T) {
	ctx := context.Background()
	session := signingSession(alice)
	deployed := common.HexToAddress("0x9999999999999999999999999999999999999999")

	t.Run("token module", func(t *testing.T) {
		factory := new(MockFactory)
		tx := okTx("deployProxy")
		tx.CreatedAddress = &deployed
		factory.On("DeployTokenModule", ctx, session, usecase.DefaultTokenModuleParams()).Return(tx, nil)

		result, err := usecase.NewDeployTokenModule(factory, &MockProgressSink{}, testLogger()).Run(ctx, session, usecase.DefaultTokenModuleParams())

		require.NoError(t, err)
		assert.Equal(t, deployed, result.Address)
	})

	t.Run("vote module defaults to the configured token", func(t *testing.T) {
		factory := new(MockFactory)
		tx := okTx("deployProxy")
		tx.CreatedAddress = &deployed
		factory.On("DeployVoteModule", ctx, session, mock.MatchedBy(func(p models.VoteModuleParams) bool {
			return p.VotingTokenAddress == tokenAddress &&
				p.ProposalVotingTimeInSeconds == 86400 &&
				p.ProposalStartWaitTimeInSeconds == 0 &&
				p.VotingQuorumFraction == 0
		})).Return(tx, nil)

		result, err := usecase.NewDeployVoteModule(testConfig(), factory, &MockProgressSink{}, testLogger()).
			Run(ctx, session, usecase.DefaultVoteModuleParams(common.Address{}))

		require.NoError(t, err)
		assert.Equal(t, deployed, result.Address)
	})

	t.Run("vote module failure is surfaced", func(t *testing.T) {
		factory := new(MockFactory)
		factory.On("DeployVoteModule", ctx, session, mock.Anything).Return(nil, errors.New("out of gas"))

		_, err := usecase.NewDeployVoteModule(testConfig(), factory, &MockProgressSink{}, testLogger()).
			Run(ctx, session, usecase.DefaultVoteModuleParams(tokenAddress))

		assert.ErrorContains(t, err, "out of gas")
	})

	t.Run("missing module address", func(t *testing.T) {
		factory := new(MockFactory)
		factory.On("DeployTokenModule", ctx, session, mock.Anything).Return(okTx("deployProxy"), nil)

		_, err := usecase.NewDeployTokenModule(factory, &MockProgressSink{}, testLogger()).Run(ctx, session, usecase.DefaultTokenModuleParams())

		assert.Error(t, err)
	})
}

func TestPrintMoney(t *testing.T) {
	ctx := context.Background()
	session := signingSession(alice)

	t.Run("mints a million tokens", func(t *testing.T) {
		token := new(MockToken)
		token.On("Mint", ctx, session, alice, bigEq(tokens(1_000_000))).Return(okTx("mintTo"), nil)
		token.On("TotalSupply", ctx).Return(tokens(1_000_000), nil)

		result, err := usecase.NewPrintMoney(testConfig(), token, &MockProgressSink{}, testLogger()).Run(ctx, session, 0)

		require.NoError(t, err)
		assert.Equal(t, "1000000.0", result.Formatted)
	})

	t.Run("mint failure propagates", func(t *testing.T) {
		token := new(MockToken)
		token.On("Mint", ctx, session, alice, mock.Anything).Return(nil, errors.New("missing role"))

		_, err := usecase.NewPrintMoney(testConfig(), token, &MockProgressSink{}, testLogger()).Run(ctx, session, 0)

		assert.ErrorContains(t, err, "failed to print money")
		token.AssertNotCalled(t, "TotalSupply", mock.Anything)
	})
}

func TestAirdropToken(t *testing.T) {
	ctx := context.Background()
	session := signingSession(alice)

	t.Run("no claimers", func(t *testing.T) {
		drop := new(MockDrop)
		token := new(MockToken)
		sink := &MockProgressSink{}
		drop.On("ClaimerAddresses", ctx, mock.Anything).Return([]common.Address{}, nil)

		result, err := usecase.NewAirdropToken(testConfig(), drop, token, nil, sink, testLogger()).Run(ctx, session)

		assert.ErrorIs(t, err, domain.ErrNoClaims)
		assert.Empty(t, result.Targets)
		assert.Len(t, sink.infos, 1)
		token.AssertNotCalled(t, "TransferBatch", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("one transfer per unique claimer", func(t *testing.T) {
		drop := new(MockDrop)
		token := new(MockToken)
		drop.On("ClaimerAddresses", ctx, mock.Anything).Return([]common.Address{bob, carol, bob}, nil)
		token.On("TransferBatch", ctx, session, []models.AirdropTarget{
			{Address: bob, Amount: tokens(1234)},
			{Address: carol, Amount: tokens(1234)},
		}).Return(okTx("multicall"), nil)

		pick := func() int64 { return 1234 }
		result, err := usecase.NewAirdropToken(testConfig(), drop, token, pick, &MockProgressSink{}, testLogger()).Run(ctx, session)

		require.NoError(t, err)
		assert.Len(t, result.Targets, 2)
		token.AssertExpectations(t)
	})
}

func TestRandomAirdropAmount(t *testing.T) {
	for range 1000 {
		n := usecase.RandomAirdropAmount()
		require.GreaterOrEqual(t, n, int64(usecase.MinAirdropAmount))
		require.LessOrEqual(t, n, int64(usecase.MaxAirdropAmount))
	}
}

func TestSetupVote(t *testing.T) {
	ctx := context.Background()
	session := signingSession(alice)

	t.Run("grants role and moves ninety percent", func(t *testing.T) {
		token := new(MockToken)
		vote := new(MockVote)
		token.On("GrantRole", ctx, session, usecase.MinterRole, voteAddress).Return(okTx("grantRole"), nil)
		token.On("BalanceOf", ctx, alice).Return(tokens(1_000_000), nil)
		token.On("Transfer", ctx, session, voteAddress, bigEq(tokens(900_000))).Return(okTx("transfer"), nil)

		result := usecase.NewSetupVote(testConfig(), token, vote, &MockProgressSink{}, testLogger()).Run(ctx, session)

		require.NoError(t, result.Err())
		assert.True(t, result.RoleGranted)
		assert.Equal(t, 0, result.Transferred.Cmp(tokens(900_000)))
	})

	t.Run("transfer still runs when the grant fails", func(t *testing.T) {
		token := new(MockToken)
		vote := new(MockVote)
		token.On("GrantRole", ctx, session, usecase.MinterRole, voteAddress).Return(nil, errors.New("not admin"))
		token.On("BalanceOf", ctx, alice).Return(big.NewInt(100), nil)
		token.On("Transfer", ctx, session, voteAddress, bigEq(big.NewInt(90))).Return(okTx("transfer"), nil)

		result := usecase.NewSetupVote(testConfig(), token, vote, &MockProgressSink{}, testLogger()).Run(ctx, session)

		assert.False(t, result.RoleGranted)
		assert.Error(t, result.RoleErr)
		assert.NoError(t, result.TransferErr)
		assert.Error(t, result.Err())
	})
}
