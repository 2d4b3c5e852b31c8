package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "crashctl",
	Short: "Manage the crashdb server and its data",
	Long:  `crashctl runs the crashdb API server and manages its database schema and record extracts.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
