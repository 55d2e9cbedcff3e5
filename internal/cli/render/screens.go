package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Button labels of the member page
const (
	MintLabel       = "Mint your NFT (free)!"
	MintingLabel    = "Minting..."
	SubmitLabel     = "Submit Vote!"
	VotingLabel     = "Voting..."
	AlreadyVotedLbl = "Already Voted!!!"
	ConnectLabel    = "Connect Your Wallet!!!"
)

// MintButtonLabel returns the mint button label for the claim state
func MintButtonLabel(claiming bool) string {
	if claiming {
		return MintingLabel
	}
	return MintLabel
}

// VoteButtonLabel returns the submit button label. Voting wins over
// already voted.
func VoteButtonLabel(voting, hasVoted bool) string {
	switch {
	case voting:
		return VotingLabel
	case hasVoted:
		return AlreadyVotedLbl
	default:
		return SubmitLabel
	}
}

// VoteButtonDisabled reports whether the submit button is disabled
func VoteButtonDisabled(voting, hasVoted bool) bool {
	return voting || hasVoted
}

// ScreenRenderer renders the headings of the interactive page states
type ScreenRenderer struct {
	out io.Writer
}

// NewScreenRenderer creates a new screen renderer
func NewScreenRenderer(out io.Writer) *ScreenRenderer {
	return &ScreenRenderer{out: out}
}

// RenderWrongNetwork renders the unsupported network screen
func (r *ScreenRenderer) RenderWrongNetwork(network string, err error) {
	name := cases.Title(language.English).String(network)
	color.New(color.FgYellow, color.Bold).Fprintf(r.out, "Please connect to %s\n", name)
	fmt.Fprintf(r.out, "This dapp only works on the %s network, please switch networks in your connected wallet.\n", name)
	if err != nil {
		fmt.Fprintf(r.out, "(%v)\n", err)
	}
}

// RenderLanding renders the landing screen shown without a wallet
func (r *ScreenRenderer) RenderLanding() {
	color.New(color.Bold).Fprintln(r.out, "Welcome to SoccerDAO")
}

// RenderConnectHelp explains how to connect a wallet from the CLI
func (r *ScreenRenderer) RenderConnectHelp() {
	fmt.Fprintln(r.out, "Set PRIVATE_KEY (to vote and mint) or WALLET_ADDRESS (read-only) in .env,")
	fmt.Fprintln(r.out, "or save an address with: dao config set wallet <address>")
}

// RenderMintScreen renders the mint screen heading
func (r *ScreenRenderer) RenderMintScreen() {
	color.New(color.Bold).Fprintln(r.out, "Mint your free ⚽SoccerDAO⚽ Membership NFT")
}

// RenderMinted renders the claim confirmation
func (r *ScreenRenderer) RenderMinted(marketURL string) {
	fmt.Fprintf(r.out, "🌊 Successfully Minted! Check it out on OpenSea: %s\n", marketURL)
}

// RenderMemberHeader renders the member page heading
func (r *ScreenRenderer) RenderMemberHeader() {
	color.New(color.Bold).Fprintln(r.out, "⚽ SoccerDAO Member Page ⚽")
	fmt.Fprintln(r.out, "Congratulations on being a member")
}
