package persistence

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/jhoicas/garden-api/internal/domain/entity"
)

// foreignKey describe una columna que referencia el id de otra tabla.
type foreignKey struct {
	column string
	table  string
}

type tableDef struct {
	model any
	fks   []foreignKey
}

// tables en orden de dependencia: cada tabla solo referencia tablas anteriores (o a sí misma).
var tables = []tableDef{
	{model: (*entity.Role)(nil)},
	{model: (*entity.User)(nil), fks: []foreignKey{{"role_id", "roles"}}},
	{model: (*entity.Office)(nil)},
	{model: (*entity.Employee)(nil), fks: []foreignKey{{"office_id", "offices"}, {"boss_id", "employees"}}},
	{model: (*entity.Client)(nil), fks: []foreignKey{{"sales_rep_id", "employees"}}},
	{model: (*entity.ProductLine)(nil)},
	{model: (*entity.Product)(nil), fks: []foreignKey{{"product_line_id", "product_lines"}}},
	{model: (*entity.Order)(nil), fks: []foreignKey{{"client_id", "clients"}}},
	{model: (*entity.OrderDetail)(nil), fks: []foreignKey{{"order_id", "orders"}, {"product_id", "products"}}},
	{model: (*entity.Payment)(nil), fks: []foreignKey{{"client_id", "clients"}}},
}

// CreateSchema crea las tablas que no existan, con sus claves foráneas.
// No versiona ni altera tablas existentes.
func CreateSchema(ctx context.Context, db *bun.DB) error {
	for _, t := range tables {
		q := db.NewCreateTable().Model(t.model).IfNotExists()
		for _, fk := range t.fks {
			q = q.ForeignKey("(?) REFERENCES ? (?)", bun.Ident(fk.column), bun.Ident(fk.table), bun.Ident("id"))
		}
		if _, err := q.Exec(ctx); err != nil {
			return fmt.Errorf("create table %T: %w", t.model, err)
		}
	}
	return nil
}

// DropSchema elimina todas las tablas en orden inverso de dependencia.
func DropSchema(ctx context.Context, db *bun.DB) error {
	for i := len(tables) - 1; i >= 0; i-- {
		if _, err := db.NewDropTable().Model(tables[i].model).IfExists().Exec(ctx); err != nil {
			return fmt.Errorf("drop table %T: %w", tables[i].model, err)
		}
	}
	return nil
}
