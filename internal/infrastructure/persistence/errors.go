package persistence

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/garden-api/internal/domain"
)

type sqlError int

const (
	unknownErr sqlError = iota
	duplicateKeyErr
	foreignKeyErr
	notNullErr
)

// classify identifica el tipo de violación por número de error (mysql), SQLSTATE (postgres)
// o texto del mensaje (sqlite y drivers que no exponen un tipo propio).
func classify(err error) sqlError {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case 1062:
			return duplicateKeyErr
		case 1216, 1217, 1451, 1452:
			return foreignKeyErr
		case 1048, 1364:
			return notNullErr
		}
		return unknownErr
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return duplicateKeyErr
		case "23503":
			return foreignKeyErr
		case "23502":
			return notNullErr
		}
		return unknownErr
	}

	s := strings.ToLower(err.Error())
	switch {
	case strings.Contains(s, "unique constraint failed"),
		strings.Contains(s, "duplicate key value"),
		strings.Contains(s, "sqlstate 23505"):
		return duplicateKeyErr
	case strings.Contains(s, "foreign key constraint failed"),
		strings.Contains(s, "foreign key violation"),
		strings.Contains(s, "sqlstate 23503"):
		return foreignKeyErr
	case strings.Contains(s, "not null constraint failed"),
		strings.Contains(s, "sqlstate 23502"):
		return notNullErr
	}
	return unknownErr
}

// translate convierte un error del driver en un error de dominio.
// En un DELETE una violación de clave foránea significa que otras filas aún referencian
// la entidad (conflicto); en INSERT/UPDATE significa que la referencia no existe.
func translate(err error, op string) error {
	if err == nil {
		return nil
	}
	switch classify(err) {
	case duplicateKeyErr:
		return fmt.Errorf("%s: %w", op, domain.ErrDuplicate)
	case foreignKeyErr:
		if op == opDelete {
			return fmt.Errorf("%s: %w", op, domain.ErrConflict)
		}
		return fmt.Errorf("%s: %w", op, domain.ErrInvalidReference)
	case notNullErr:
		return fmt.Errorf("%s: %w", op, domain.ErrInvalidInput)
	}
	return fmt.Errorf("%s: %w", op, err)
}
