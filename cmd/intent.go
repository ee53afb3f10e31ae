package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/MMN3003/swapproxy/src/swap/domain"
)

// intentFlags are shared by quote and swap.
type intentFlags struct {
	srcChain  int
	destChain int
	srcToken  string
	dstToken  string
	amount    string
	wallet    string
}

func (f *intentFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.srcChain, "src-chain", 0, "Source chain id (e.g. 1 for Ethereum)")
	cmd.Flags().IntVar(&f.destChain, "dest-chain", 0, "Destination chain id (e.g. 137 for Polygon)")
	cmd.Flags().StringVar(&f.srcToken, "src-token", "", "Source token address")
	cmd.Flags().StringVar(&f.dstToken, "dst-token", "", "Destination token address")
	cmd.Flags().StringVar(&f.amount, "amount", "", "Amount in the source token's base units")
	cmd.Flags().StringVar(&f.wallet, "wallet", "", "Wallet address")
}

func (f *intentFlags) intent() domain.SwapIntent {
	return domain.SwapIntent{
		SourceChainID:      f.srcChain,
		DestChainID:        f.destChain,
		SourceTokenAddress: f.srcToken,
		DestTokenAddress:   f.dstToken,
		Amount:             f.amount,
		WalletAddress:      f.wallet,
	}
}

// withSpinner shows a spinner on w while fn runs, unless output is JSON.
func withSpinner(w io.Writer, jsonOutput bool, suffix string, fn func() error) error {
	if jsonOutput {
		return fn()
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = " " + suffix
	s.Start()
	err := fn()
	s.Stop()
	return err
}

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
