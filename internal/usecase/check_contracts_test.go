package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/soccerdao/dao-cli/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockChecker is a mock implementation of ContractChecker
type MockChecker struct {
	mock.Mock
}

func (m *MockChecker) CheckDeploymentExists(ctx context.Context, address common.Address) (bool, string, error) {
	args := m.Called(ctx, address)
	return args.Bool(0), args.String(1), args.Error(2)
}

func TestCheckContracts(t *testing.T) {
	t.Run("all deployed", func(t *testing.T) {
		checker := new(MockChecker)
		checker.On("CheckDeploymentExists", mock.Anything, mock.Anything).Return(true, "", nil)

		statuses, err := usecase.NewCheckContracts(testConfig(), checker, testLogger()).Run(context.Background())
		require.NoError(t, err)
		require.Len(t, statuses, 4)
		assert.Equal(t, []string{"drop", "token", "vote", "app"}, []string{statuses[0].Name, statuses[1].Name, statuses[2].Name, statuses[3].Name})
		assert.Equal(t, dropAddress, statuses[0].Address)
		assert.True(t, usecase.AllDeployed(statuses))
	})

	t.Run("vote missing", func(t *testing.T) {
		checker := new(MockChecker)
		checker.On("CheckDeploymentExists", mock.Anything, voteAddress).Return(false, "no code at address", nil)
		checker.On("CheckDeploymentExists", mock.Anything, mock.Anything).Return(true, "", nil)

		statuses, err := usecase.NewCheckContracts(testConfig(), checker, testLogger()).Run(context.Background())
		require.NoError(t, err)
		assert.False(t, statuses[2].Deployed)
		assert.Equal(t, "no code at address", statuses[2].Reason)
		assert.False(t, usecase.AllDeployed(statuses))
	})

	t.Run("rpc failure", func(t *testing.T) {
		checker := new(MockChecker)
		checker.On("CheckDeploymentExists", mock.Anything, mock.Anything).Return(false, "", errors.New("dial tcp: connection refused"))

		_, err := usecase.NewCheckContracts(testConfig(), checker, testLogger()).Run(context.Background())
		assert.ErrorContains(t, err, "connection refused")
	})
}
