// @title        Garden API
// @version      1.0
// @description  API REST de gestión de una tienda de jardinería: roles, usuarios, oficinas, empleados, clientes, gamas, productos, pedidos, líneas de pedido y pagos.
// @BasePath     /
// @securityDefinitions.apikey Bearer
// @in           header
// @name         Authorization
// @description  "Bearer <token>"
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/garden-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/garden-api/internal/infrastructure/pdf"
	"github.com/jhoicas/garden-api/internal/infrastructure/persistence"
	httpRouter "github.com/jhoicas/garden-api/internal/interfaces/http"
	"github.com/jhoicas/garden-api/pkg/config"
	"github.com/jhoicas/garden-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Warn().Msg("JWT_SECRET vacío: todas las peticiones a /api serán rechazadas")
	}

	ctx := context.Background()
	db, err := persistence.Open(ctx, cfg.DB, log.Zerolog())
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a la base de datos")
	}
	defer db.Close()

	// SQLite en memoria siempre arranca vacía.
	if cfg.DB.AutoSchema || cfg.DB.Driver == config.DriverSQLite {
		if err := persistence.CreateSchema(ctx, db); err != nil {
			log.Fatal().Err(err).Msg("crear esquema")
		}
	}

	uows := persistence.NewUnitOfWorkFactory(db)
	services := usecase.NewServices(uows)
	orderSheetUC := usecase.NewOrderSheetUseCase(uows, infrapdf.NewOrderSheetGenerator(cfg.App.Name))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Zerolog()))
	app.Use(httpRouter.MetricsMiddleware())

	// Swagger UI: http://localhost:<port>/docs (solo si existe el swagger.json generado)
	if _, err := os.Stat(cfg.Docs.Path); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.Docs.Path,
			Path:     "docs",
			Title:    "Garden API",
		}))
	} else {
		log.Info().Str("path", cfg.Docs.Path).Msg("swagger.json no encontrado, /docs deshabilitado")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		Services:   services,
		OrderSheet: orderSheetUC,
		Ping:       func(ctx context.Context) error { return persistence.Ping(ctx, db) },
		JWTSecret:  cfg.JWT.Secret,
		JWTIssuer:  cfg.JWT.Issuer,
		Roles:      cfg.JWT.Roles,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
