package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/Produccion-api/internal/domain"
)

// mapDuplicate traduce una violación de constraint único (23505) al sentinel
// domain.ErrDuplicate; cualquier otro error se devuelve envuelto con op.
func mapDuplicate(err error, op string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return domain.ErrDuplicate
	}
	if strings.Contains(err.Error(), "23505") {
		return domain.ErrDuplicate
	}
	return fmt.Errorf("%s: %w", op, err)
}
