package main

import (
	"os"

	"github.com/openautomate/website/internal/cmd"
	"github.com/openautomate/website/internal/config"
)

func main() {
	// Load .env files if present (for local development)
	config.LoadEnvFiles()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
