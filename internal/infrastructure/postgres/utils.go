package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/Fieldservice-api/internal/domain"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return false
}

// mapUniqueViolation traduce la violación de unicidad a un conflicto de
// dominio reintentable; cualquier otro error pasa sin tocar.
func mapUniqueViolation(err error) error {
	if err != nil && isUniqueViolation(err) {
		return domain.ErrConflict
	}
	return err
}
