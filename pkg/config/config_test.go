package config_test

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/garden-api/pkg/config"
)

func TestFromViper_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.FromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, config.DriverMySQL, cfg.DB.Driver)
	assert.Equal(t, 3306, cfg.DB.Port)
	assert.Equal(t, "garden", cfg.DB.DBName)
	assert.Equal(t, 500*time.Millisecond, cfg.DB.SlowQuery)
	assert.Equal(t, []string{"Employee"}, cfg.JWT.Roles)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestFromViper_Postgres(t *testing.T) {
	v := viper.New()
	v.Set("DB_DRIVER", "Postgres")
	v.Set("DB_USER", "garden")
	v.Set("DB_PASSWORD", "p@ss:word")
	v.Set("DB_PORT", "5433")

	cfg, err := config.FromViper(v)
	require.NoError(t, err)

	assert.Equal(t, config.DriverPostgres, cfg.DB.Driver)
	assert.Equal(t, 5433, cfg.DB.Port)
	dsn := cfg.DB.ConnectionString()
	assert.True(t, strings.HasPrefix(dsn, "postgres://garden:"), dsn)
	assert.Contains(t, dsn, "localhost:5433/garden")
	assert.NotContains(t, dsn, "p@ss:word", "la contraseña debe ir escapada")
}

func TestFromViper_MySQLDSN(t *testing.T) {
	v := viper.New()
	v.Set("DB_USER", "root")
	v.Set("DB_PASSWORD", "secret")

	cfg, err := config.FromViper(v)
	require.NoError(t, err)

	dsn := cfg.DB.DSN()
	assert.Contains(t, dsn, "root:secret@tcp(localhost:3306)/garden")
	assert.Contains(t, dsn, "clientFoundRows=true")
	assert.Contains(t, dsn, "parseTime=true")
}

func TestFromViper_SQLiteMemoria(t *testing.T) {
	v := viper.New()
	v.Set("DB_DRIVER", "sqlite")
	v.Set("DB_NAME", ":memory:")

	cfg, err := config.FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "file::memory:?cache=shared", cfg.DB.DSN())
}

func TestFromViper_DatabaseURLTienePrioridad(t *testing.T) {
	v := viper.New()
	v.Set("DATABASE_URL", "postgres://u:p@db:5432/x")
	v.Set("DB_DRIVER", "postgres")

	cfg, err := config.FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@db:5432/x", cfg.DB.ConnectionString())
}

func TestFromViper_DriverNoSoportado(t *testing.T) {
	v := viper.New()
	v.Set("DB_DRIVER", "oracle")

	_, err := config.FromViper(v)
	assert.Error(t, err)
}

func TestFromViper_SecretObligatorioEnProduccion(t *testing.T) {
	v := viper.New()
	v.Set("APP_ENV", "production")

	_, err := config.FromViper(v)
	assert.Error(t, err)
}

func TestFromViper_ListaDeRoles(t *testing.T) {
	v := viper.New()
	v.Set("AUTH_ROLES", "Employee, Admin ,")

	cfg, err := config.FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, []string{"Employee", "Admin"}, cfg.JWT.Roles)
}
