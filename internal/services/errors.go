package services

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/yungbote/carryhelper-backend/internal/platform/apierr"
)

const pgUniqueViolation = "23505"

// mapWriteError turns unique violations into 409s and leaves everything else
// as is.
func mapWriteError(err error, code string) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return apierr.Conflict(code, fmt.Errorf("%s: %s", code, pgErr.Detail))
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apierr.Conflict(code, err)
	}
	return err
}

func notFound(code, format string, args ...any) error {
	return apierr.NotFound(code, fmt.Errorf(format, args...))
}

func badRequest(code, format string, args ...any) error {
	return apierr.BadRequest(code, fmt.Errorf(format, args...))
}
