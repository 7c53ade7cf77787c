package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/yosapark/yomogi_backend/config"
)

func TestConfig_DSN(t *testing.T) {
	pg := Config{Driver: DriverPostgres, Host: "db", Port: 5432, User: "u", Password: "p w@d", DBName: "yomogi", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p%20w%40d@db:5432/yomogi?sslmode=disable", pg.DSN())

	anon := Config{Driver: DriverPostgres, Host: "db", Port: 5432, DBName: "yomogi"}
	assert.Equal(t, "postgres://db:5432/yomogi", anon.DSN())

	lite := Config{Driver: DriverSQLite, DBName: "file:yomogi.db?_fk=1"}
	assert.Equal(t, "file:yomogi.db?_fk=1", lite.DSN())
}

func TestFromCentralConfig_DefaultsDriver(t *testing.T) {
	cfg := FromCentralConfig(config.DatabaseConfig{Host: "h"})
	assert.Equal(t, DriverPostgres, cfg.Driver)
	assert.Equal(t, 5*time.Minute, cfg.ConnMaxLifetime())
}

func TestNewClientFromConfig_SQLite(t *testing.T) {
	client, err := NewClientFromConfig(Config{Driver: DriverSQLite, DBName: "file:database_test?mode=memory&cache=shared&_fk=1"})
	if !assert.NoError(t, err) {
		return
	}
	defer client.Close()

	assert.NoError(t, Migrate(t.Context(), client))
	assert.NoError(t, client.Ping(t.Context()))
}

func TestInitializeDatabase_SQLiteIsNoop(t *testing.T) {
	assert.NoError(t, InitializeDatabase(&config.Config{Database: config.DatabaseConfig{Driver: DriverSQLite}}))
}
