package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
)

// isNoRows verifica si un error de pgx corresponde a "sin filas".
func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
