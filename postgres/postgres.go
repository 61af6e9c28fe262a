package postgres

import (
	"context"
	"errors"
	"fmt"
	"net"

	"addressbook/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	DBName   string
	DBUser   string
	Password string
	Host     string
	Port     string
	SSLMode  bool
}

func NewConnection(opts Options) (*gorm.DB, error) {
	sslmode := "disable"
	if opts.SSLMode {
		sslmode = "require"
	}

	datasource := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		opts.Host, opts.Port, opts.DBUser, opts.Password, opts.DBName, sslmode,
	)

	return gorm.Open(postgres.Open(datasource), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
}

// Postgres error classes that mean the contacts table cannot be read at all.
const (
	codeInsufficientPrivilege = "42501"
	codeUndefinedTable        = "42P01"
	classConnectionException  = "08"
)

func ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errs.Errorf(errs.ENOTACCESSIBLE, "postgres: %v", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return errs.Errorf(errs.ENOTACCESSIBLE, "postgres: %v", err)
	}
	return nil
}

// classify marks driver errors that mean the source is unreachable or
// denied as not accessible. Everything else is returned unchanged.
func classify(err error) error {
	var (
		pgErr      *pgconn.PgError
		connectErr *pgconn.ConnectError
		netErr     net.Error
	)

	switch {
	case errors.As(err, &pgErr):
		if pgErr.Code == codeInsufficientPrivilege ||
			pgErr.Code == codeUndefinedTable ||
			len(pgErr.Code) >= 2 && pgErr.Code[:2] == classConnectionException {
			return errs.Errorf(errs.ENOTACCESSIBLE, "postgres: %s", pgErr.Message)
		}
	case errors.As(err, &connectErr), errors.As(err, &netErr):
		return errs.Errorf(errs.ENOTACCESSIBLE, "postgres: %v", err)
	}
	return err
}
