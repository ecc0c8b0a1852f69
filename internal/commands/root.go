package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kmontano/bundy/internal/api"
	"github.com/kmontano/bundy/internal/config"
	"github.com/kmontano/bundy/internal/logging"
	"github.com/kmontano/bundy/internal/session"
	"github.com/kmontano/bundy/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "bundy",
	Short: "Terminal client for the attendance and inventory system",
	Long: `bundy is the terminal front end for the company attendance, inventory
and payroll backend. All records live on the server; bundy only collects
input, renders responses and keeps your login session.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildDeps()
		if err != nil {
			return err
		}
		return tui.Run(deps)
	},
}

// buildDeps wires config, logging, the session manager and the endpoint
// client. Every command that talks to the backend goes through this.
func buildDeps() (tui.Deps, error) {
	cfg := config.Load()

	if _, err := logging.Init(cfg.LogFile); err != nil {
		return tui.Deps{}, fmt.Errorf("cannot open log file %s: %w", cfg.LogFile, err)
	}
	zap.L().Info("starting", zap.String("version", version))

	mgr := session.NewManager(nil)

	endpoint := ""
	if cfg.Configured() {
		endpoint = cfg.Endpoint
	}
	client := api.NewClient(endpoint, cfg.Timeout, mgr)

	return tui.Deps{Cfg: cfg, Client: client, Mgr: mgr}, nil
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(pingCmd)
	rootCmd.AddCommand(versionCmd)
}
