package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kmontano/bundy/internal/api"
	"github.com/kmontano/bundy/internal/config"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check that the backend endpoint is reachable",
	Long: `Sends a lightweight probe to the configured endpoint and reports the
round-trip time. Exits non-zero when the endpoint is missing or unreachable.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if !cfg.Configured() {
			return fmt.Errorf("no endpoint configured: set BUNDY_ENDPOINT in .env or the environment")
		}

		client := api.NewClient(cfg.Endpoint, cfg.Timeout, nil)
		started := time.Now()
		if err := client.Ping(); err != nil {
			return fmt.Errorf("endpoint unreachable: %w", err)
		}

		fmt.Printf("✅ Endpoint answered in %s\n", time.Since(started).Round(time.Millisecond))
		return nil
	},
}
