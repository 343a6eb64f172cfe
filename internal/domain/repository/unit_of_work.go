package repository

import (
	"context"

	"github.com/jhoicas/garden-api/internal/domain/entity"
)

// UnitOfWork agrupa los repositorios de todas las entidades y un único commit.
// No es seguro para uso concurrente: se crea una por operación con UnitOfWorkFactory.
type UnitOfWork interface {
	Roles() Repository[entity.Role]
	Users() Repository[entity.User]
	Offices() Repository[entity.Office]
	Employees() Repository[entity.Employee]
	Clients() Repository[entity.Client]
	ProductLines() Repository[entity.ProductLine]
	Products() Repository[entity.Product]
	Orders() Repository[entity.Order]
	OrderDetails() Repository[entity.OrderDetail]
	Payments() Repository[entity.Payment]

	// Save aplica en una sola transacción, y en orden, los cambios registrados.
	// Tras un Save exitoso las entidades agregadas con Add tienen su id asignado.
	// Si un Update o Remove no afecta filas devuelve domain.ErrNotFound y revierte todo.
	Save(ctx context.Context) error
}

// UnitOfWorkFactory construye unidades de trabajo nuevas (una por petición).
type UnitOfWorkFactory interface {
	New() UnitOfWork
}
