package gorm

import (
	"errors"
	"fmt"

	"github.com/jackc/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/viadata/crashdb/pkg/server/store"
)

// SQLSTATE classes we act on.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// translateError maps driver and GORM errors onto the store error
// vocabulary. The GORM postgres driver surfaces pgconn errors; lib/pq errors
// are handled too since the migration tooling shares this module.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return store.ErrNotFound
	}

	code := ""
	var pgErr *pgconn.PgError
	var pqErr *pq.Error
	switch {
	case errors.As(err, &pgErr):
		code = pgErr.Code
	case errors.As(err, &pqErr):
		code = string(pqErr.Code)
	}

	switch code {
	case pgUniqueViolation:
		return store.ErrAlreadyExists
	case pgForeignKeyViolation:
		return store.ErrReferenceNotFound
	}

	return fmt.Errorf("%w: %v", store.ErrStoreUnavailable, err)
}
