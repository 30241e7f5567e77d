package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"TokenPulse/internal/birdeye"
)

// keycheckCmd probes the token list endpoint with a minimal request to verify
// the configured API key actually works.
var keycheckCmd = &cobra.Command{
	Use:   "keycheck",
	Short: "Verify the configured Birdeye API key",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, err := setup()
		if err != nil {
			return err
		}

		tokens, err := client.TokenList(birdeye.TokenListParams{Limit: 1})
		if err != nil {
			return fmt.Errorf("API key check failed: %w", err)
		}
		fmt.Printf("API key is working (%d token returned)\n", len(tokens))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(keycheckCmd)
}
