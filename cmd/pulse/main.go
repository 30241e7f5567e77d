package main

import (
	"os"

	"TokenPulse/internal/config"
	"TokenPulse/internal/logger"
)

func main() {
	logger.Init()
	config.LoadEnvFiles()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
