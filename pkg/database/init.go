package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/yosapark/yomogi_backend/config"
)

// InitializeDatabase creates the application database if it doesn't exist.
// It connects to the default 'postgres' database to do so. SQLite creates
// its file on open, so there is nothing to do for that driver.
func InitializeDatabase(cfg *config.Config) error {
	dbCfg := FromCentralConfig(cfg.Database)
	if dbCfg.Driver == DriverSQLite {
		return nil
	}
	if dbCfg.DBName == "" {
		return fmt.Errorf("no database name provided")
	}

	target := dbCfg.DBName
	dbCfg.DBName = "postgres"

	conn, err := openSQLDB(dbCfg)
	if err != nil {
		return fmt.Errorf("failed to connect to postgres database: %w", err)
	}
	defer conn.Close()

	if err := createDatabaseIfNotExists(conn, target); err != nil {
		return fmt.Errorf("failed to create database %q: %w", target, err)
	}

	return nil
}

func createDatabaseIfNotExists(conn *sql.DB, dbName string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)`
	if err := conn.QueryRowContext(ctx, query, dbName).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}
	if exists {
		return nil
	}

	if _, err := conn.ExecContext(ctx, "CREATE DATABASE "+pq.QuoteIdentifier(dbName)); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}

	return nil
}
