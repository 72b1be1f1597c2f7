package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/artpar/storeadmin/adapters/clock"
	"github.com/artpar/storeadmin/bootstrap"
	"github.com/artpar/storeadmin/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration before deployment",
	Long: `Validate the storeadmin configuration.

Checks:
  - YAML syntax is valid
  - Required fields are present and values are in range
  - Storage backend is reachable (optional)

Examples:
  storeadmin validate
  storeadmin validate --config /etc/storeadmin/config.yaml --check-storage`,
	RunE: runValidate,
}

var validateCheckStorage bool

const (
	checkMark = "\033[32m✓\033[0m"
	crossMark = "\033[31m✗\033[0m"
)

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().BoolVar(&validateCheckStorage, "check-storage", false, "check that the storage backend is reachable")
}

func runValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	var (
		cfg *config.Config
		err error
	)
	if _, statErr := os.Stat(cfgFile); statErr == nil {
		fmt.Fprintf(out, "Validating %s...\n\n", cfgFile)
		cfg, err = config.Load(cfgFile)
	} else {
		fmt.Fprintf(out, "No %s; validating %s* environment...\n\n", cfgFile, config.EnvPrefix)
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		fmt.Fprintf(out, "  %s Config valid\n", crossMark)
		return fmt.Errorf("config error: %w", err)
	}
	fmt.Fprintf(out, "  %s Config valid\n", checkMark)

	fmt.Fprintf(out, "  %s Listen: %s\n", checkMark, cfg.Server.Addr())
	fmt.Fprintf(out, "  %s Storage: %s\n", checkMark, storageSummary(cfg.Storage))
	fmt.Fprintf(out, "  %s Plan names: %s\n", checkMark, nameSummary(cfg.Catalog))
	fmt.Fprintf(out, "  %s Categories: %d\n", checkMark, len(cfg.Catalog.Categories))
	fmt.Fprintf(out, "  %s Admin accounts: %d\n", checkMark, len(cfg.Auth.Accounts))

	if validateCheckStorage {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		clk, _ := clock.InZone(cfg.Catalog.Timezone)
		store, _, err := bootstrap.OpenStorage(ctx, cfg.Storage, clk)
		if err == nil {
			err = store.Ping(ctx)
			store.Close()
		}
		if err != nil {
			fmt.Fprintf(out, "  %s Storage reachable\n", crossMark)
			return fmt.Errorf("storage error: %w", err)
		}
		fmt.Fprintf(out, "  %s Storage reachable\n", checkMark)
	}

	return nil
}

func storageSummary(s config.StorageConfig) string {
	switch s.Backend {
	case "sqlite":
		return "sqlite (" + s.SQLite.Path + ")"
	case "redis":
		return "redis (" + s.Redis.Addr + ")"
	default:
		return s.Backend
	}
}

func nameSummary(c config.CatalogConfig) string {
	if c.NameMode == "free" {
		return "any"
	}
	return fmt.Sprintf("closed set of %d", len(c.PlanNames))
}
