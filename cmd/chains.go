package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MMN3003/swapproxy/src/swap/domain"
)

var chainsCmd = &cobra.Command{
	Use:   "chains",
	Short: "List supported chains",
	Args:  cobra.NoArgs,
	RunE:  runListChains,
}

func init() {
	rootCmd.AddCommand(chainsCmd)
}

func runListChains(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	a, err := cliApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	var chains []domain.Chain
	err = withSpinner(cmd.ErrOrStderr(), jsonOutput, "Fetching chains...", func() error {
		var cerr error
		chains, cerr = a.service.ListChains(cmd.Context())
		return cerr
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, chains)
	}
	fmt.Fprintln(out, "\n"+strings.Repeat("=", 40))
	for _, c := range chains {
		fmt.Fprintf(out, "  %-8s %s\n", color.CyanString("%d", c.ID), c.Name)
	}
	fmt.Fprintln(out, strings.Repeat("=", 40)+"\n")
	return nil
}
