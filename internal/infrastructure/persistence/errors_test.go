package persistence

import (
	"errors"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/garden-api/internal/domain"
)

func TestTranslate(t *testing.T) {
	cases := []struct {
		name string
		err  error
		op   string
		want error
	}{
		{"mysql duplicado", &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}, opInsert, domain.ErrDuplicate},
		{"mysql fk en insert", &mysql.MySQLError{Number: 1452}, opInsert, domain.ErrInvalidReference},
		{"mysql fk en delete", &mysql.MySQLError{Number: 1451}, opDelete, domain.ErrConflict},
		{"postgres duplicado", &pgconn.PgError{Code: "23505"}, opUpdate, domain.ErrDuplicate},
		{"postgres fk en update", &pgconn.PgError{Code: "23503"}, opUpdate, domain.ErrInvalidReference},
		{"postgres fk en delete", &pgconn.PgError{Code: "23503"}, opDelete, domain.ErrConflict},
		{"postgres not null", &pgconn.PgError{Code: "23502"}, opInsert, domain.ErrInvalidInput},
		{"sqlite unique", errors.New("constraint failed: UNIQUE constraint failed: roles.name (2067)"), opInsert, domain.ErrDuplicate},
		{"sqlite fk", errors.New("FOREIGN KEY constraint failed"), opDelete, domain.ErrConflict},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, translate(tc.err, tc.op), tc.want)
		})
	}
}

func TestTranslate_ErrorDesconocidoSeEnvuelve(t *testing.T) {
	base := errors.New("conexión perdida")
	err := translate(base, opInsert)
	assert.ErrorIs(t, err, base)
	assert.NotErrorIs(t, err, domain.ErrDuplicate)
	assert.NoError(t, translate(nil, opInsert))
}
