package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/artpar/storeadmin/bootstrap"
)

var hotReload bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the admin API server",
	Long: `Start the storeadmin HTTP server.

The server will:
  - Load configuration from storeadmin.yaml (or --config)
  - Or load configuration from STOREADMIN_* environment variables
  - Open the configured storage backend (memory, sqlite or redis)
  - Serve the admin API under /admin, plus /healthz, /readyz, /metrics and /swagger

Reloadable settings (catalog.name_mode, catalog.plan_names,
catalog.categories, logging.level) are applied on file change or SIGHUP.

Environment variables (for Docker deployments):
  STOREADMIN_STORAGE_BACKEND  - memory, sqlite or redis (default: sqlite)
  STOREADMIN_SQLITE_PATH      - Database path (default: storeadmin.db)
  STOREADMIN_REDIS_ADDR       - Redis address
  STOREADMIN_SERVER_PORT      - Server port (default: 8080)
  STOREADMIN_LOG_LEVEL        - Log level: debug, info, warn, error

Examples:
  storeadmin serve
  storeadmin serve --config /etc/storeadmin/config.yaml
  storeadmin serve --hot-reload=false`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().BoolVar(&hotReload, "hot-reload", true, "enable hot reload of configuration")
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := bootstrap.New(bootstrap.Options{
		ConfigPath: cfgFile,
		LogOutput:  os.Stdout,
		Version:    version,
		Watch:      hotReload,
	})
	if err != nil {
		return err
	}
	return a.Run()
}
