package usecase_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/soccerdao/dao-cli/internal/domain"
	"github.com/soccerdao/dao-cli/internal/domain/models"
	"github.com/soccerdao/dao-cli/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newListMembers(drop *MockDrop, token *MockToken) *usecase.ListMembers {
	cfg := testConfig()
	gate := usecase.NewCheckMembership(cfg, drop, testLogger())
	return usecase.NewListMembers(cfg, gate, drop, token, testLogger())
}

func TestJoinMembers(t *testing.T) {
	t.Run("holder without balance shows zero", func(t *testing.T) {
		balances := map[common.Address]*big.Int{
			alice: tokens(10),
			carol: tokens(5),
		}

		members := usecase.JoinMembers([]common.Address{alice, bob}, balances, 18, bob)

		require.Len(t, members, 2)
		assert.Equal(t, models.Member{Address: alice, TokenAmount: "10.0"}, members[0])
		assert.Equal(t, models.Member{Address: bob, TokenAmount: "0.0", IsSelf: true}, members[1])
	})

	t.Run("duplicate holders collapse", func(t *testing.T) {
		members := usecase.JoinMembers([]common.Address{alice, alice, bob}, nil, 18, common.Address{})

		require.Len(t, members, 2)
		assert.Equal(t, alice, members[0].Address)
		assert.False(t, members[0].IsSelf)
	})

	t.Run("no holders", func(t *testing.T) {
		assert.Empty(t, usecase.JoinMembers(nil, map[common.Address]*big.Int{alice: tokens(1)}, 18, alice))
	})
}

func TestListMembers(t *testing.T) {
	ctx := context.Background()

	t.Run("non-member is refused", func(t *testing.T) {
		drop := new(MockDrop)
		token := new(MockToken)
		drop.On("BalanceOf", ctx, alice, mock.Anything).Return(big.NewInt(0), nil)

		dir, err := newListMembers(drop, token).Run(ctx, usecase.ListMembersParams{Session: readOnlySession(alice)})

		assert.ErrorIs(t, err, domain.ErrNotMember)
		assert.Nil(t, dir)
		drop.AssertNotCalled(t, "ClaimerAddresses", mock.Anything, mock.Anything)
		token.AssertNotCalled(t, "HolderBalances", mock.Anything)
	})

	t.Run("disconnected session is refused", func(t *testing.T) {
		_, err := newListMembers(new(MockDrop), new(MockToken)).Run(ctx, usecase.ListMembersParams{})

		assert.ErrorIs(t, err, domain.ErrWalletNotConnected)
	})

	t.Run("member sees the directory", func(t *testing.T) {
		drop := new(MockDrop)
		token := new(MockToken)
		drop.On("BalanceOf", ctx, bob, mock.Anything).Return(big.NewInt(1), nil)
		drop.On("ClaimerAddresses", ctx, bigEq(big.NewInt(0))).Return([]common.Address{alice, bob}, nil)
		token.On("HolderBalances", ctx).Return(map[common.Address]*big.Int{alice: tokens(10)}, nil)

		dir, err := newListMembers(drop, token).Run(ctx, usecase.ListMembersParams{Session: readOnlySession(bob)})

		require.NoError(t, err)
		assert.False(t, dir.Partial())
		require.Len(t, dir.Members, 2)
		assert.Equal(t, "10.0", dir.Members[0].TokenAmount)
		assert.Equal(t, "0.0", dir.Members[1].TokenAmount)
		assert.True(t, dir.Members[1].IsSelf)
	})

	t.Run("known status skips the gate query", func(t *testing.T) {
		drop := new(MockDrop)
		token := new(MockToken)
		drop.On("ClaimerAddresses", ctx, mock.Anything).Return([]common.Address{alice}, nil)
		token.On("HolderBalances", ctx).Return(map[common.Address]*big.Int{}, nil)

		status := &models.MembershipStatus{Address: alice, Holds: true, Balance: big.NewInt(1)}
		dir, err := newListMembers(drop, token).Run(ctx, usecase.ListMembersParams{Session: signingSession(alice), Status: status})

		require.NoError(t, err)
		require.Len(t, dir.Members, 1)
		drop.AssertNotCalled(t, "BalanceOf", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("failed balances still list holders", func(t *testing.T) {
		drop := new(MockDrop)
		token := new(MockToken)
		drop.On("BalanceOf", ctx, alice, mock.Anything).Return(big.NewInt(1), nil)
		drop.On("ClaimerAddresses", ctx, mock.Anything).Return([]common.Address{alice, bob}, nil)
		token.On("HolderBalances", ctx).Return(nil, errors.New("logs unavailable"))

		dir, err := newListMembers(drop, token).Run(ctx, usecase.ListMembersParams{Session: readOnlySession(alice)})

		require.NoError(t, err)
		assert.True(t, dir.Partial())
		assert.Error(t, dir.BalancesErr)
		require.Len(t, dir.Members, 2)
		assert.Equal(t, "0.0", dir.Members[0].TokenAmount)
	})

	t.Run("failed holders yield an empty directory", func(t *testing.T) {
		drop := new(MockDrop)
		token := new(MockToken)
		drop.On("BalanceOf", ctx, alice, mock.Anything).Return(big.NewInt(1), nil)
		drop.On("ClaimerAddresses", ctx, mock.Anything).Return(nil, errors.New("logs unavailable"))
		token.On("HolderBalances", ctx).Return(map[common.Address]*big.Int{alice: tokens(3)}, nil)

		dir, err := newListMembers(drop, token).Run(ctx, usecase.ListMembersParams{Session: readOnlySession(alice)})

		require.NoError(t, err)
		assert.Error(t, dir.HoldersErr)
		assert.Empty(t, dir.Members)
	})
}
