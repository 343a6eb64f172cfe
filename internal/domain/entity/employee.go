package entity

import "github.com/uptrace/bun"

// Employee representa un empleado asignado a una oficina.
// BossID es nil para el director general.
type Employee struct {
	bun.BaseModel `bun:"table:employees,alias:e"`

	ID        int64  `bun:"id,pk,autoincrement"`
	FirstName string `bun:"first_name,notnull"`
	LastName1 string `bun:"last_name1,notnull"`
	LastName2 string `bun:"last_name2"`
	Extension string `bun:"extension,notnull"`
	Email     string `bun:"email,notnull"`
	JobTitle  string `bun:"job_title"`
	OfficeID  int64  `bun:"office_id,notnull"`
	BossID    *int64 `bun:"boss_id"`
}
