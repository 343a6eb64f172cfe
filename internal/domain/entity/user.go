package entity

import "github.com/uptrace/bun"

// User representa una cuenta de acceso al sistema con un único rol.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID           int64  `bun:"id,pk,autoincrement"`
	Username     string `bun:"username,notnull,unique"`
	Email        string `bun:"email,notnull"`
	PasswordHash string `bun:"password_hash,notnull"` // bcrypt, nunca en texto plano
	RoleID       int64  `bun:"role_id,notnull"`
}
