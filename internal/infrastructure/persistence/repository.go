package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/feature"

	"github.com/jhoicas/garden-api/internal/domain"
	"github.com/jhoicas/garden-api/internal/domain/repository"
)

const (
	opInsert = "insert"
	opUpdate = "update"
	opDelete = "delete"
)

// change es una escritura pendiente que se ejecuta dentro de la transacción de Save.
type change func(ctx context.Context, tx bun.Tx) error

// changeSet lista ordenada de escrituras pendientes, compartida por los repos de una unidad de trabajo.
type changeSet struct {
	pending []change
}

func (s *changeSet) add(c change) { s.pending = append(s.pending, c) }

// Repository implementación genérica de repository.Repository[T] sobre bun.
// Las lecturas usan la conexión directamente; las escrituras se encolan en el changeSet.
type Repository[T any] struct {
	db        *bun.DB
	changes   *changeSet
	returning bool
}

// newRepository construye un repositorio que registra sus cambios en el changeSet de la unidad de trabajo.
func newRepository[T any](db *bun.DB, changes *changeSet) *Repository[T] {
	return &Repository[T]{
		db:        db,
		changes:   changes,
		returning: db.HasFeature(feature.InsertReturning),
	}
}

var _ repository.Repository[struct{}] = (*Repository[struct{}])(nil)

// GetAll devuelve todas las filas ordenadas por id.
func (r *Repository[T]) GetAll(ctx context.Context) ([]*T, error) {
	items := make([]*T, 0)
	if err := r.db.NewSelect().Model(&items).Order("id").Scan(ctx); err != nil {
		return nil, fmt.Errorf("select all: %w", err)
	}
	return items, nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *Repository[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	var item T
	err := r.db.NewSelect().Model(&item).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select by id: %w", err)
	}
	return &item, nil
}

// Find devuelve las filas que cumplen el filtro, ordenadas por id.
func (r *Repository[T]) Find(ctx context.Context, where string, args ...any) ([]*T, error) {
	items := make([]*T, 0)
	q := r.db.NewSelect().Model(&items)
	if where != "" {
		q = q.Where(where, args...)
	}
	if err := q.Order("id").Scan(ctx); err != nil {
		return nil, fmt.Errorf("select: %w", err)
	}
	return items, nil
}

// Add encola un INSERT; tras Save la entidad tiene su id generado.
func (r *Repository[T]) Add(item *T) {
	r.changes.add(func(ctx context.Context, tx bun.Tx) error {
		q := tx.NewInsert().Model(item)
		if r.returning {
			q = q.Returning("id")
		}
		if _, err := q.Exec(ctx); err != nil {
			return translate(err, opInsert)
		}
		return nil
	})
}

// Update encola un UPDATE de todas las columnas por clave primaria.
func (r *Repository[T]) Update(item *T) {
	r.changes.add(func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewUpdate().Model(item).WherePK().Exec(ctx)
		if err != nil {
			return translate(err, opUpdate)
		}
		return requireAffected(res, opUpdate)
	})
}

// Remove encola un DELETE por clave primaria.
func (r *Repository[T]) Remove(item *T) {
	r.changes.add(func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewDelete().Model(item).WherePK().Exec(ctx)
		if err != nil {
			return translate(err, opDelete)
		}
		return requireAffected(res, opDelete)
	})
}

func requireAffected(res sql.Result, op string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s rows affected: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	return nil
}
