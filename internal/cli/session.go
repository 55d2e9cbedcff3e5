package cli

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/soccerdao/dao-cli/internal/app"
	"github.com/soccerdao/dao-cli/internal/cli/render"
	"github.com/soccerdao/dao-cli/internal/domain"
	"github.com/soccerdao/dao-cli/internal/domain/config"
	"github.com/soccerdao/dao-cli/internal/domain/models"
	"github.com/soccerdao/dao-cli/internal/usecase"
	"github.com/spf13/cobra"
)

// connect opens the wallet session of a command. The wrong network and
// landing screens are rendered here so every member command shows the
// same thing when no usable wallet is available.
func connect(cmd *cobra.Command, a *app.App) (*models.Session, error) {
	session, err := a.ConnectWallet.Run(cmd.Context())
	if err == nil {
		return session, nil
	}

	screens := render.NewScreenRenderer(cmd.OutOrStdout())
	switch {
	case errors.Is(err, domain.ErrUnsupportedChain):
		screens.RenderWrongNetwork(networkName(a.Config), err)
	case errors.Is(err, domain.ErrWalletNotConnected):
		screens.RenderLanding()
		screens.RenderConnectHelp()
	}
	return nil, err
}

// connectSigner is connect for commands that send transactions
func connectSigner(cmd *cobra.Command, a *app.App) (*models.Session, error) {
	session, err := connect(cmd, a)
	if err != nil {
		return nil, err
	}
	if !session.CanSign() {
		return nil, fmt.Errorf("%w: set PRIVATE_KEY in .env to send transactions", domain.ErrNoSigner)
	}
	return session, nil
}

// promptWallet asks for an address, saves it to the local config and
// makes it the wallet of the running app
func promptWallet(cmd *cobra.Command, a *app.App) error {
	address, err := a.Selector.Prompt(render.ConnectLabel+" Address", func(s string) error {
		if !common.IsHexAddress(s) {
			return domain.ErrInvalidAddress
		}
		return nil
	})
	if err != nil {
		return err
	}

	result, err := a.SetConfig.Run(cmd.Context(), usecase.SetConfigParams{
		Key:   string(config.ConfigKeyWallet),
		Value: address,
	})
	if err != nil {
		return err
	}

	a.Config.Wallet.WalletAddress = result.Value
	return nil
}

func networkName(cfg *config.RuntimeConfig) string {
	if cfg.Network == nil || cfg.Network.Name == "" {
		return "rinkeby"
	}
	return cfg.Network.Name
}

// parseAddressArg returns the address argument, if one was given
func parseAddressArg(args []string) (common.Address, bool, error) {
	if len(args) == 0 {
		return common.Address{}, false, nil
	}
	if !common.IsHexAddress(args[0]) {
		return common.Address{}, false, fmt.Errorf("%w: %s", domain.ErrInvalidAddress, args[0])
	}
	return common.HexToAddress(args[0]), true, nil
}
