package database

import (
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/kioku/internal/config"
	"github.com/at-ishikawa/kioku/schemas"
)

func TestDSN(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.DatabaseConfig
		wantTLS string
	}{
		{
			name: "basic config",
			cfg: config.DatabaseConfig{
				Host:     "localhost",
				Port:     3306,
				Database: "kioku",
				Username: "user",
				Password: "pass",
			},
		},
		{
			name: "tls with extra params",
			cfg: config.DatabaseConfig{
				Host:     "db.example.com",
				Port:     3307,
				Database: "kioku",
				Username: "admin",
				TLS:      true,
				Params:   map[string]string{"time_zone": "'+00:00'"},
			},
			wantTLS: "true",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := mysql.ParseDSN(DSN(tt.cfg))
			require.NoError(t, err)

			assert.Equal(t, tt.cfg.Username, got.User)
			assert.Equal(t, tt.cfg.Password, got.Passwd)
			assert.Equal(t, fmt.Sprintf("%s:%d", tt.cfg.Host, tt.cfg.Port), got.Addr)
			assert.Equal(t, tt.cfg.Database, got.DBName)
			assert.True(t, got.ParseTime)
			assert.True(t, got.MultiStatements)
			assert.Equal(t, tt.wantTLS, got.TLSConfig)
			for key, value := range tt.cfg.Params {
				assert.Equal(t, value, got.Params[key])
			}
		})
	}
}

func TestOpen(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.DatabaseConfig
	}{
		{
			name: "creates connection with valid config",
			cfg: config.DatabaseConfig{
				Host:     "localhost",
				Port:     3306,
				Database: "kioku",
				Username: "testuser",
				Password: "testpass",
			},
		},
		{
			name: "creates connection with pool settings",
			cfg: config.DatabaseConfig{
				Host:            "localhost",
				Port:            3306,
				Database:        "kioku",
				Username:        "testuser",
				MaxOpenConns:    25,
				MaxIdleConns:    5,
				ConnMaxLifetime: 300,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Open(tt.cfg)
			require.NoError(t, err)
			require.NotNil(t, got)
			defer got.Close()

			assert.Equal(t, "mysql", got.DriverName())
			if tt.cfg.MaxOpenConns > 0 {
				assert.Equal(t, tt.cfg.MaxOpenConns, got.Stats().MaxOpenConnections)
			}
		})
	}
}

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := fs.ReadDir(schemas.Migrations, "migrations")
	require.NoError(t, err)

	var ups, downs []string
	for _, entry := range entries {
		name := entry.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups = append(ups, strings.TrimSuffix(name, ".up.sql"))
		case strings.HasSuffix(name, ".down.sql"):
			downs = append(downs, strings.TrimSuffix(name, ".down.sql"))
		}
	}
	sort.Strings(ups)
	sort.Strings(downs)

	require.NotEmpty(t, ups)
	assert.Equal(t, ups, downs, "every migration needs a down file")

	content, err := fs.ReadFile(schemas.Migrations, "migrations/000002_create_card_states.up.sql")
	require.NoError(t, err)
	assert.Contains(t, string(content), "version BIGINT")
}
