package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE de unique_violation.
const uniqueViolationCode = "23505"

// isUniqueViolation reconoce la violación de un índice único: en este esquema,
// email de usuario o SKU de producto repetidos. Los repos lo traducen al
// sentinel de dominio que corresponda.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolationCode
	}
	// Algunos proxies aplanan el error de Postgres a texto.
	return strings.Contains(err.Error(), uniqueViolationCode)
}
