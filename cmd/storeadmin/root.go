package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/artpar/storeadmin/bootstrap"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "storeadmin",
	Short: "Store catalog admin with installment plans",
	Long: `Storeadmin manages an electronics store catalog: installment plans,
products and the plans offered on each, customer orders, and the admin
accounts that may change them.

Quick start:
  storeadmin serve           # Start the admin API
  storeadmin plans list      # List installment plans
  storeadmin quote <id>      # Show installment amounts for a product
  storeadmin validate        # Validate configuration`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", bootstrap.DefaultConfigPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log to stderr")
}

// withApp opens the configured storage, runs fn against the services and
// closes everything afterwards.
func withApp(fn func(a *bootstrap.App) error) error {
	var logOut io.Writer = io.Discard
	if verbose {
		logOut = os.Stderr
	}
	a, err := bootstrap.New(bootstrap.Options{ConfigPath: cfgFile, LogOutput: logOut, Version: version})
	if err != nil {
		return err
	}
	defer a.Shutdown()
	return fn(a)
}
