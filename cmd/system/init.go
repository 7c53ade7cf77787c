package system

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yosapark/yomogi_backend/pkg/database"
)

func NewInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the application database if it does not exist",
		Long:  "Connect to the server's postgres database and create the configured one. No-op for sqlite3.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			if err := database.InitializeDatabase(cfg); err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			fmt.Printf("Database %q is ready.\n", cfg.Database.DBName)
			return nil
		},
	}
}
