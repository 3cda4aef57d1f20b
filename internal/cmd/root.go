package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "orderdesk",
	Short: "Orderdesk - Client & Order Management API",
	Long: `Orderdesk is a small HTTP service that manages clients and their
orders in a document store. It exposes endpoints for company information
lookup, client registration, order placement and order listing.

Run the server with "orderdesk run", or use the seed and check commands
to populate and inspect a local store.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
