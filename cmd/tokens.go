package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MMN3003/swapproxy/src/swap/domain"
)

var filterSymbol string

var tokensCmd = &cobra.Command{
	Use:     "tokens <chain-id>",
	Aliases: []string{"list-tokens"},
	Short:   "List the tokens of a chain",
	Long: `List tokens of a chain in the order the source returns them.

Examples:
  swapproxy tokens 1
  swapproxy tokens 137 --symbol USD`,
	Args: cobra.ExactArgs(1),
	RunE: runListTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
	tokensCmd.Flags().StringVar(&filterSymbol, "symbol", "", "Filter by token symbol")
}

func runListTokens(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	chainID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("chain id %q is not an integer", args[0])
	}

	a, err := cliApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	var tokens []domain.Token
	err = withSpinner(cmd.ErrOrStderr(), jsonOutput, "Fetching tokens...", func() error {
		var terr error
		tokens, terr = a.service.ListTokens(cmd.Context(), chainID)
		return terr
	})
	if err != nil {
		return err
	}

	filtered := filterTokens(tokens, filterSymbol)
	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), filtered)
	}
	displayTokens(cmd, chainID, filtered)
	return nil
}

func filterTokens(tokens []domain.Token, symbol string) []domain.Token {
	if symbol == "" {
		return tokens
	}
	out := []domain.Token{}
	for _, t := range tokens {
		if strings.Contains(strings.ToUpper(t.Symbol), strings.ToUpper(symbol)) {
			out = append(out, t)
		}
	}
	return out
}

func displayTokens(cmd *cobra.Command, chainID int, tokens []domain.Token) {
	out := cmd.OutOrStdout()
	if len(tokens) == 0 {
		fmt.Fprintln(out, "\nNo tokens found matching the criteria.")
		return
	}

	fmt.Fprintln(out, "\n"+strings.Repeat("=", 80))
	fmt.Fprintln(out, color.GreenString("  TOKENS ON CHAIN %d", chainID))
	fmt.Fprintln(out, strings.Repeat("=", 80))
	for _, t := range tokens {
		fmt.Fprintf(out, "  %-10s  %2d decimals  %s\n",
			color.YellowString(t.Symbol),
			t.Decimals,
			color.HiBlackString(t.Address))
	}
	fmt.Fprintln(out, strings.Repeat("=", 80))
	fmt.Fprintf(out, "\nTotal: %d tokens\n\n", len(tokens))
}
