package commands

import (
	"fmt"
	"os"

	"bookstore/internal/config"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "bookstore",
	Short: "Bookstore catalog and order API",
	Long: `Bookstore serves the book catalog, order placement and the administrative
user endpoints over HTTP.

Configuration is read from the environment (APP_PORT, DATABASE_DRIVER,
DATABASE_DSN, JWT_SECRET, RABBITMQ_URL, ...).`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
}

// loadConfig reads and validates the configuration shared by every command.
func loadConfig() (*config.Config, error) {
	cfg := config.NewConfig()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.UsesDefaultJWTSecret() {
		return nil, fmt.Errorf("JWT_SECRET is still the placeholder %q, set a secret of your own", config.DefaultJWTSecret)
	}
	return cfg, nil
}
