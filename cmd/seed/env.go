package main

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/jhoicas/garden-api/internal/infrastructure/persistence"
	"github.com/jhoicas/garden-api/pkg/config"
	"github.com/jhoicas/garden-api/pkg/logger"
)

type environment struct {
	db  *bun.DB
	log *logger.Logger
}

// withDB abre la base según la configuración y la cierra al terminar fn.
func withDB(ctx context.Context, fn func(ctx context.Context, env *environment) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	db, err := persistence.Open(ctx, cfg.DB, log.Zerolog())
	if err != nil {
		return err
	}
	defer db.Close()

	return fn(ctx, &environment{db: db, log: log})
}
