package config

// Defaults are the SoccerDAO contracts on Rinkeby. dao.toml overrides them.
const (
	DefaultNetworkName = "rinkeby"
	DefaultChainID     = 4
	DefaultExplorerURL = "https://rinkeby.etherscan.io"
	DefaultMarketURL   = "https://testnets.opensea.io"

	DefaultDropAddress  = "0x4f87e29bA7Ee65e997adDb20BA84bCC4d64A8d5a"
	DefaultTokenAddress = "0x6A71E4Ce8E12fAf65D0cF8E1ae935DAc9cF334b0"
	DefaultVoteAddress  = "0x91165ce03cb75EC9CE650BD89C5Ef4f02cB41D9E"
	DefaultAppAddress   = "0xB36d5A08Cb68720FdF587F9ffc98b5b679DdD74F"

	DefaultMembershipTokenID = 0
	DefaultTokenDecimals     = 18

	DefaultListenAddr = ":8080"
	DefaultTimeout    = "5m"
)

// Environment variables holding the wallet credentials
const (
	EnvPrivateKey    = "PRIVATE_KEY"
	EnvRPCURL        = "ALCHEMY_API_URL"
	EnvWalletAddress = "WALLET_ADDRESS"
)
