package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MMN3003/swapproxy/src/config"
	"github.com/MMN3003/swapproxy/src/logger"
)

var rootCmd = &cobra.Command{
	Use:   "swapproxy",
	Short: "Proxy and CLI for 1inch Fusion+ cross-chain swaps",
	Long: `swapproxy forwards quote and swap requests from the browser to the 1inch
Fusion+ API, keeping the API key on the server. The same orchestration is
available from the command line.

Examples:
  swapproxy serve
  swapproxy quote --src-chain 1 --dest-chain 137 --src-token 0xEeee... --dst-token 0xA0b8... --amount 1000000 --wallet 0xAbc...
  swapproxy tokens 1 --symbol USD
  swapproxy chains --json`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log upstream traffic to stderr")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "Output in JSON format")
}

// cliApp wires the orchestrator for one-shot commands. Logs stay quiet unless --verbose.
func cliApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, err
	}
	verbose, _ := cmd.Flags().GetBool("verbose")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	logg := logger.Nop()
	if verbose && !jsonOutput {
		logg = logger.NewWithWriter("dev", os.Stderr)
	}
	return newApp(cfg, logg)
}

// PrintError writes err to w the way every command reports failures.
func PrintError(w io.Writer, err error) {
	fmt.Fprintf(w, "\n%s %v\n\n", color.RedString("Error:"), err)
}
