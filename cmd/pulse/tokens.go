package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"TokenPulse/internal/birdeye"
	"TokenPulse/internal/reporter"
)

var tokensFlags struct {
	sortBy   string
	sortType string
	limit    int
	offset   int
}

var tokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: "List ranked tokens from the upstream feed",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, err := setup()
		if err != nil {
			return err
		}

		tokens, err := client.TokenList(birdeye.TokenListParams{
			SortBy:   tokensFlags.sortBy,
			SortType: tokensFlags.sortType,
			Limit:    tokensFlags.limit,
			Offset:   tokensFlags.offset,
		})
		if err != nil {
			return err
		}
		fmt.Print(reporter.FormatTokenList(tokens))
		return nil
	},
}

func init() {
	tokensCmd.Flags().StringVar(&tokensFlags.sortBy, "sort-by", "v24hChangePercent", "sort field")
	tokensCmd.Flags().StringVar(&tokensFlags.sortType, "sort-type", "desc", "sort direction: asc or desc")
	tokensCmd.Flags().IntVar(&tokensFlags.limit, "limit", 10, "number of tokens to fetch")
	tokensCmd.Flags().IntVar(&tokensFlags.offset, "offset", 0, "pagination offset")
	rootCmd.AddCommand(tokensCmd)
}
