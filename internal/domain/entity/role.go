package entity

import "github.com/uptrace/bun"

// Role representa un rol de acceso (p. ej. "Employee", "Client").
type Role struct {
	bun.BaseModel `bun:"table:roles,alias:r"`

	ID   int64  `bun:"id,pk,autoincrement"`
	Name string `bun:"name,notnull,unique"`
}
