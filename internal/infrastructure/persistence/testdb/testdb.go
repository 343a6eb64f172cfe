// Package testdb abre bases SQLite en memoria con el esquema completo para los tests.
package testdb

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"

	"github.com/jhoicas/garden-api/internal/infrastructure/persistence"
	"github.com/jhoicas/garden-api/pkg/config"
)

// New abre una base en memoria aislada (nombre único por test) y crea las tablas.
// La conexión se cierra al terminar el test.
func New(t testing.TB) *bun.DB {
	t.Helper()

	name := "file:" + strings.ReplaceAll(uuid.NewString(), "-", "") + "?mode=memory&cache=shared"
	cfg := config.DBConfig{Driver: config.DriverSQLite, DBName: name}

	ctx := context.Background()
	db, err := persistence.Open(ctx, cfg, zerolog.Nop())
	require.NoError(t, err, "abrir sqlite en memoria")
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, persistence.CreateSchema(ctx, db), "crear esquema")
	return db
}
