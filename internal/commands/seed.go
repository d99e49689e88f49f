package commands

import (
	"context"
	"fmt"

	"bookstore/internal/database"
	"bookstore/internal/repositories"
	"bookstore/internal/services"

	"github.com/spf13/cobra"
)

var (
	// Seed flags
	adminEmail    string
	adminPassword string
)

// seedCmd prepares a fresh database
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Migrate the database and create an administrator",
	Long: `Migrate the schema, seed the book formats and create (or promote) an
administrator account, then print a bearer token for it.

Examples:
  bookstore seed --email admin@example.com --password s3cret!`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeed(cmd.Context(), cmd)
	},
}

func init() {
	seedCmd.Flags().StringVar(&adminEmail, "email", "", "Administrator email (required)")
	seedCmd.Flags().StringVar(&adminPassword, "password", "", "Administrator password, at least 6 characters (required)")
	_ = seedCmd.MarkFlagRequired("email")
	_ = seedCmd.MarkFlagRequired("password")
}

func runSeed(ctx context.Context, cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return err
	}
	defer database.Close(db)

	authService := services.NewAuthService(repositories.NewGORMUserRepository(db), cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	admin, err := authService.EnsureAdmin(ctx, adminEmail, adminPassword)
	if err != nil {
		return err
	}
	token, err := authService.IssueToken(admin)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Administrator %s (%s) ready\n", admin.Email, admin.ID)
	fmt.Fprintf(cmd.OutOrStdout(), "Token (valid %s):\n%s\n", cfg.Auth.TokenTTL, token)
	return nil
}
