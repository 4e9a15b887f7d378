package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// @title HomeLedger API
// @version 1.0
// @description Shared expenses, receipts and chores for one household.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "homeledger",
	Short:        "Household ledger and chore tracker API",
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}
