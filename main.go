package main

import (
	"os"

	"github.com/MMN3003/swapproxy/cmd"
)

//	@title			Swap proxy API
//	@version		1.0
//	@description	Forwards quote and swap requests to the 1inch Fusion+ aggregator.
//	@BasePath		/api
func main() {
	if err := cmd.Execute(); err != nil {
		cmd.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}
