package database

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"net"
	"strings"

	domainerrors "dnotes/internal/domain/errors"
	"dnotes/internal/domain/repository"
	"dnotes/internal/errors"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes and MySQL error numbers the repositories react to.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgConnectionClass     = "08"
	pgAdminShutdown       = "57P01"
	pgCrashShutdown       = "57P02"
	pgCannotConnectNow    = "57P03"

	mysqlDuplicateEntry     uint16 = 1062
	mysqlRowIsReferenced    uint16 = 1451
	mysqlNoReferencedRow    uint16 = 1452
	mysqlTooManyConnections uint16 = 1040
	mysqlServerShutdown     uint16 = 1053
)

// translateError maps a GORM error onto the repository sentinels and store errors.
// notFound is returned for gorm.ErrRecordNotFound.
func translateError(err, notFound error, op string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	case isUniqueViolation(err):
		return errors.Wrap(repository.ErrDuplicate, op)
	case isForeignKeyViolation(err):
		return errors.Wrap(repository.ErrInvalidReference, op)
	default:
		return classifyStoreError(err, op)
	}
}

// classifyStoreError separates connectivity failures, which callers may retry, from other store failures.
func classifyStoreError(err error, op string) error {
	if isConnectionError(err) {
		return domainerrors.NewStoreUnavailableError(err, op)
	}

	return domainerrors.NewStoreOperationError(err, op)
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	if pgErr, ok := errors.AsType[*pgconn.PgError](err); ok {
		return pgErr.Code == pgUniqueViolation
	}
	if myErr, ok := errors.AsType[*mysqldriver.MySQLError](err); ok {
		return myErr.Number == mysqlDuplicateEntry
	}

	return false
}

func isForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	if pgErr, ok := errors.AsType[*pgconn.PgError](err); ok {
		return pgErr.Code == pgForeignKeyViolation
	}
	if myErr, ok := errors.AsType[*mysqldriver.MySQLError](err); ok {
		return myErr.Number == mysqlRowIsReferenced || myErr.Number == mysqlNoReferencedRow
	}

	return false
}

func isConnectionError(err error) bool {
	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, mysqldriver.ErrInvalidConn) {
		return true
	}
	if _, ok := errors.AsType[*pgconn.ConnectError](err); ok {
		return true
	}
	if pgErr, ok := errors.AsType[*pgconn.PgError](err); ok {
		switch {
		case strings.HasPrefix(pgErr.Code, pgConnectionClass),
			pgErr.Code == pgAdminShutdown,
			pgErr.Code == pgCrashShutdown,
			pgErr.Code == pgCannotConnectNow:
			return true
		}

		return false
	}
	if myErr, ok := errors.AsType[*mysqldriver.MySQLError](err); ok {
		return myErr.Number == mysqlTooManyConnections || myErr.Number == mysqlServerShutdown
	}
	if _, ok := errors.AsType[net.Error](err); ok {
		return true
	}

	return false
}
