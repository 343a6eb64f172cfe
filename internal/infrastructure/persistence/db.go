package persistence

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/mysqldialect"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
	"github.com/uptrace/bun/extra/bundebug"

	"github.com/jhoicas/garden-api/pkg/config"
)

// Open abre la base de datos según cfg.Driver, configura el pool, registra los hooks
// de consultas y comprueba la conexión con un ping.
func Open(ctx context.Context, cfg config.DBConfig, log zerolog.Logger) (*bun.DB, error) {
	sqlDB, db, err := newConnection(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Driver == config.DriverSQLite {
		// Una sola conexión que nunca se recicla: la base en memoria vive lo que vive la conexión.
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)
	} else {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if cfg.QueryLog {
		db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	}
	db.AddQueryHook(NewQueryHook(log, cfg.SlowQuery))

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}

	if cfg.Driver == config.DriverSQLite {
		if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("sqlite foreign_keys: %w", err)
		}
	}
	return db, nil
}

func newConnection(cfg config.DBConfig) (*sql.DB, *bun.DB, error) {
	dsn := cfg.ConnectionString()

	switch cfg.Driver {
	case config.DriverMySQL:
		sqlDB, err := sql.Open("mysql", dsn)
		if err != nil {
			return nil, nil, fmt.Errorf("abrir mysql: %w", err)
		}
		return sqlDB, bun.NewDB(sqlDB, mysqldialect.New()), nil

	case config.DriverPostgres:
		connCfg, err := pgx.ParseConfig(dsn)
		if err != nil {
			return nil, nil, fmt.Errorf("parse DSN: %w", err)
		}
		// Codec NUMERIC/DECIMAL -> shopspring/decimal en cada conexión del pool.
		sqlDB := stdlib.OpenDB(*connCfg, stdlib.OptionAfterConnect(func(ctx context.Context, conn *pgx.Conn) error {
			pgxdecimal.Register(conn.TypeMap())
			return nil
		}))
		return sqlDB, bun.NewDB(sqlDB, pgdialect.New()), nil

	case config.DriverSQLite:
		sqlDB, err := sql.Open(sqliteshim.ShimName, dsn)
		if err != nil {
			return nil, nil, fmt.Errorf("abrir sqlite: %w", err)
		}
		return sqlDB, bun.NewDB(sqlDB, sqlitedialect.New()), nil

	default:
		return nil, nil, fmt.Errorf("driver no soportado: %s", cfg.Driver)
	}
}

// Ping comprueba que la base de datos responde (usado por /health).
func Ping(ctx context.Context, db *bun.DB) error {
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping DB: %w", err)
	}
	return nil
}
