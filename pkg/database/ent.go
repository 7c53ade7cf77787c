package database

import (
	"context"

	"entgo.io/ent/dialect"

	"github.com/yosapark/yomogi_backend/config"
	"github.com/yosapark/yomogi_backend/internal/repo"
)

// NewClient opens the configured database and wraps it in a repo client.
func NewClient(cfg config.DatabaseConfig) (*repo.Client, error) {
	return NewClientFromConfig(FromCentralConfig(cfg))
}

func NewClientFromConfig(cfg Config) (*repo.Client, error) {
	db, err := openSQLDB(cfg)
	if err != nil {
		return nil, err
	}

	d := dialect.Postgres
	if cfg.Driver == DriverSQLite {
		d = dialect.SQLite
	}

	return repo.NewClient(db, d), nil
}

func Migrate(ctx context.Context, client *repo.Client) error {
	return client.Migrate(ctx)
}
