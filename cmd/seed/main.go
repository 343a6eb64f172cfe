// seed carga datos iniciales en la base configurada (mismas variables de entorno que la API).
//
// Uso:
//
//	go run ./cmd/seed schema [--drop]
//	go run ./cmd/seed load fixtures.yaml [--charset latin1]
package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/jhoicas/garden-api/internal/application/seed"
	"github.com/jhoicas/garden-api/internal/application/usecase"
	"github.com/jhoicas/garden-api/internal/infrastructure/persistence"
)

func main() {
	root := &cobra.Command{
		Use:           "seed",
		Short:         "Carga de datos iniciales de Garden",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var drop bool
	schemaCmd := &cobra.Command{
		Use:   "schema",
		Short: "Crear las tablas que no existan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(cmd.Context(), func(ctx context.Context, env *environment) error {
				if drop {
					if err := persistence.DropSchema(ctx, env.db); err != nil {
						return err
					}
					env.log.Warn().Msg("tablas eliminadas")
				}
				if err := persistence.CreateSchema(ctx, env.db); err != nil {
					return err
				}
				env.log.Info().Msg("esquema creado")
				return nil
			})
		},
	}

	schemaCmd.Flags().BoolVar(&drop, "drop", false, "Eliminar las tablas (y sus datos) antes de crearlas")

	var charset string
	var createSchema bool
	loadCmd := &cobra.Command{
		Use:   "load <fixtures.yaml>",
		Short: "Insertar los registros de un archivo YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			fx, err := seed.Parse(f, charset)
			if err != nil {
				return err
			}
			return withDB(cmd.Context(), func(ctx context.Context, env *environment) error {
				if createSchema {
					if err := persistence.CreateSchema(ctx, env.db); err != nil {
						return err
					}
				}
				services := usecase.NewServices(persistence.NewUnitOfWorkFactory(env.db))
				summary, err := seed.NewLoader(services).Load(ctx, fx)
				printSummary(summary)
				return err
			})
		},
	}
	loadCmd.Flags().StringVar(&charset, "charset", "utf8", "Codificación del archivo: utf8|latin1|windows-1252")
	loadCmd.Flags().BoolVar(&createSchema, "schema", false, "Crear las tablas antes de cargar")

	root.AddCommand(schemaCmd, loadCmd)

	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func printSummary(s seed.Summary) {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("%-14s %d\n", name, s[name])
	}
}
