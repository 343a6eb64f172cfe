package persistence

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/jhoicas/garden-api/internal/domain/entity"
	"github.com/jhoicas/garden-api/internal/domain/repository"
)

var (
	_ repository.UnitOfWork        = (*UnitOfWork)(nil)
	_ repository.UnitOfWorkFactory = (*UnitOfWorkFactory)(nil)
)

// UnitOfWork agrupa un repositorio por entidad y confirma sus cambios en una transacción.
type UnitOfWork struct {
	db      *bun.DB
	changes *changeSet

	roles        *Repository[entity.Role]
	users        *Repository[entity.User]
	offices      *Repository[entity.Office]
	employees    *Repository[entity.Employee]
	clients      *Repository[entity.Client]
	productLines *Repository[entity.ProductLine]
	products     *Repository[entity.Product]
	orders       *Repository[entity.Order]
	orderDetails *Repository[entity.OrderDetail]
	payments     *Repository[entity.Payment]
}

// NewUnitOfWork construye una unidad de trabajo vacía sobre db.
func NewUnitOfWork(db *bun.DB) *UnitOfWork {
	cs := &changeSet{}
	return &UnitOfWork{
		db:           db,
		changes:      cs,
		roles:        newRepository[entity.Role](db, cs),
		users:        newRepository[entity.User](db, cs),
		offices:      newRepository[entity.Office](db, cs),
		employees:    newRepository[entity.Employee](db, cs),
		clients:      newRepository[entity.Client](db, cs),
		productLines: newRepository[entity.ProductLine](db, cs),
		products:     newRepository[entity.Product](db, cs),
		orders:       newRepository[entity.Order](db, cs),
		orderDetails: newRepository[entity.OrderDetail](db, cs),
		payments:     newRepository[entity.Payment](db, cs),
	}
}

func (u *UnitOfWork) Roles() repository.Repository[entity.Role]               { return u.roles }
func (u *UnitOfWork) Users() repository.Repository[entity.User]               { return u.users }
func (u *UnitOfWork) Offices() repository.Repository[entity.Office]           { return u.offices }
func (u *UnitOfWork) Employees() repository.Repository[entity.Employee]       { return u.employees }
func (u *UnitOfWork) Clients() repository.Repository[entity.Client]           { return u.clients }
func (u *UnitOfWork) ProductLines() repository.Repository[entity.ProductLine] { return u.productLines }
func (u *UnitOfWork) Products() repository.Repository[entity.Product]         { return u.products }
func (u *UnitOfWork) Orders() repository.Repository[entity.Order]             { return u.orders }
func (u *UnitOfWork) OrderDetails() repository.Repository[entity.OrderDetail] { return u.orderDetails }
func (u *UnitOfWork) Payments() repository.Repository[entity.Payment]         { return u.payments }

// Save ejecuta los cambios pendientes en orden dentro de una transacción y hace Commit o Rollback.
// Los cambios pendientes se descartan tanto si la transacción confirma como si falla.
func (u *UnitOfWork) Save(ctx context.Context) error {
	pending := u.changes.pending
	u.changes.pending = nil
	if len(pending) == 0 {
		return nil
	}

	return u.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		for _, apply := range pending {
			if err := apply(ctx, tx); err != nil {
				return err
			}
		}
		return nil
	})
}

// UnitOfWorkFactory crea una UnitOfWork nueva por operación.
type UnitOfWorkFactory struct {
	db *bun.DB
}

// NewUnitOfWorkFactory construye la factoría sobre db.
func NewUnitOfWorkFactory(db *bun.DB) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{db: db}
}

func (f *UnitOfWorkFactory) New() repository.UnitOfWork {
	return NewUnitOfWork(f.db)
}
