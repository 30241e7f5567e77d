package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"TokenPulse/internal/analyzer"
	"TokenPulse/internal/collector"
	"TokenPulse/internal/model"
	"TokenPulse/internal/reporter"
)

var historyFlags struct {
	token    string
	name     string
	interval string
	days     int
	kind     string
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Fetch historical prices for a token and print a summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, client, err := setup()
		if err != nil {
			return err
		}

		interval := historyFlags.interval
		if interval == "" {
			interval = cfg.Defaults.Interval
		}
		days := historyFlags.days
		if days == 0 {
			days = cfg.Defaults.DaysBack
		}

		col := collector.NewCollector(client)
		series, err := col.Collect(historyFlags.token, model.Interval(interval), days, model.AddressKind(historyFlags.kind))
		if err != nil {
			return err
		}

		name := historyFlags.name
		if name == "" {
			name = historyFlags.token
		}
		if len(series) == 0 {
			fmt.Print(reporter.FormatEmptySeries(name))
			return nil
		}

		summary, err := analyzer.Summarize(series)
		if err != nil {
			return err
		}
		fmt.Print(reporter.FormatSummary(name, summary))
		return nil
	},
}

func init() {
	historyCmd.Flags().StringVar(&historyFlags.token, "token", "", "token contract address (required)")
	historyCmd.Flags().StringVar(&historyFlags.name, "name", "", "display name for the report")
	historyCmd.Flags().StringVar(&historyFlags.interval, "interval", "", "bucket granularity: 1m, 5m, 15m, 30m, 1h, 1d")
	historyCmd.Flags().IntVar(&historyFlags.days, "days", 0, "days of history to fetch")
	historyCmd.Flags().StringVar(&historyFlags.kind, "kind", string(model.AddressToken), "address kind: token or pair")
	_ = historyCmd.MarkFlagRequired("token")
	rootCmd.AddCommand(historyCmd)
}
