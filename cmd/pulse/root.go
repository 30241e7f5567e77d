package main

import (
	"os"

	"github.com/spf13/cobra"

	"TokenPulse/internal/birdeye"
	"TokenPulse/internal/config"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:           "pulse",
	Short:         "Fetch and summarize token price data from Birdeye",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	defaultPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		defaultPath = v
	}
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", defaultPath, "path to YAML config file")
}

// setup loads and validates configuration and builds the API client.
// Commands that call the upstream service must not run without an API key.
func setup() (*config.Config, *birdeye.Client, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	client := birdeye.NewClient(cfg.Birdeye.BaseURL, cfg.Birdeye.APIKey, cfg.Birdeye.Chain, cfg.Proxy)
	client.Delay = cfg.RequestDelay()
	return cfg, client, nil
}
