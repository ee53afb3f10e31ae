package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MMN3003/swapproxy/src/swap/domain"
)

var quoteFlags intentFlags

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Fetch a Fusion+ quote without executing it",
	Long: `Fetch a cross-chain quote for the given intent.

Examples:
  swapproxy quote --src-chain 1 --dest-chain 137 \
    --src-token 0xEeeeeEeeeEeEeeEeEeEeeEEEeeeeEeeeeeeeEEeE \
    --dst-token 0x2791Bca1f2de4661ED88A30C99A7a9449Aa84174 \
    --amount 1000000000000000000 --wallet 0x...`,
	Args: cobra.NoArgs,
	RunE: runQuote,
}

func init() {
	rootCmd.AddCommand(quoteCmd)
	quoteFlags.register(quoteCmd)
}

func runQuote(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	a, err := cliApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	var q *domain.Quote
	err = withSpinner(cmd.ErrOrStderr(), jsonOutput, "Fetching quote...", func() error {
		var qerr error
		q, qerr = a.service.Quote(cmd.Context(), quoteFlags.intent())
		return qerr
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, q.Raw)
	}
	displayQuote(cmd, q)
	return nil
}

func displayQuote(cmd *cobra.Command, q *domain.Quote) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "\n"+strings.Repeat("=", 60))
	fmt.Fprintln(out, color.GreenString("                      QUOTE"))
	fmt.Fprintln(out, strings.Repeat("=", 60))
	fmt.Fprintf(out, "  Route:     chain %d -> chain %d\n", q.Intent.SourceChainID, q.Intent.DestChainID)
	fmt.Fprintf(out, "  Amount in: %s\n", q.Intent.Amount)
	fmt.Fprintf(out, "  Estimate:  %s\n", color.YellowString(orDash(q.EstimatedOutput)))
	fmt.Fprintf(out, "  Quote id:  %s\n", color.CyanString(orDash(q.QuoteID)))
	fmt.Fprintln(out, strings.Repeat("=", 60)+"\n")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
