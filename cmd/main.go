package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stock-predictor",
	Short: "A CLI for managing the stock prediction services",
	Long:  `Stock Predictor is an HTTP service that fronts an external model service and keeps the interface demonstrable with a synthetic fallback...`,
}

func main() {

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your CLI '%s'", err)
		os.Exit(1)
	}
}
