package repository

import "context"

// Repository define el puerto de persistencia genérico (DIP) para una entidad T.
//
// Las lecturas van directo a la base de datos. Add, Update y Remove solo registran
// el cambio en la unidad de trabajo; nada se escribe hasta UnitOfWork.Save.
type Repository[T any] interface {
	// GetAll devuelve todas las filas ordenadas por id.
	GetAll(ctx context.Context) ([]*T, error)
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id int64) (*T, error)
	// Find devuelve las filas que cumplen el filtro (sintaxis de placeholders del ORM: "order_id = ?").
	Find(ctx context.Context, where string, args ...any) ([]*T, error)

	Add(entity *T)
	Update(entity *T)
	Remove(entity *T)
}
