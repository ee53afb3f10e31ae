package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MMN3003/swapproxy/src/swap/domain"
)

var swapFlags intentFlags

var swapCmd = &cobra.Command{
	Use:   "swap",
	Short: "Quote and execute a cross-chain swap",
	Long: `Request a quote and immediately submit it for execution.

Nothing is signed locally: the aggregator receives the quote id and the
intent, exactly as the web form would send them.`,
	Args: cobra.NoArgs,
	RunE: runSwap,
}

func init() {
	rootCmd.AddCommand(swapCmd)
	swapFlags.register(swapCmd)
}

func runSwap(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	a, err := cliApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	var res *domain.SwapResult
	err = withSpinner(cmd.ErrOrStderr(), jsonOutput, "Quoting and submitting swap...", func() error {
		var serr error
		res, serr = a.service.Swap(cmd.Context(), swapFlags.intent())
		return serr
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		payload := map[string]any{
			"txHash":   res.TransactionHash,
			"status":   res.Status,
			"swapData": res.Raw,
		}
		if res.Quote != nil {
			payload["quote"] = res.Quote.Raw
		}
		return printJSON(out, payload)
	}

	status := color.GreenString(string(res.Status))
	if res.Status == domain.StatusFailed {
		status = color.RedString(string(res.Status))
	}
	fmt.Fprintln(out, "\n"+strings.Repeat("=", 60))
	fmt.Fprintf(out, "  Status:   %s\n", status)
	fmt.Fprintf(out, "  Tx hash:  %s\n", orDash(res.TransactionHash))
	if res.Quote != nil {
		fmt.Fprintf(out, "  Quote id: %s\n", orDash(res.Quote.QuoteID))
	}
	fmt.Fprintln(out, strings.Repeat("=", 60)+"\n")
	return nil
}
