// Package database implements the persistence layer with GORM on PostgreSQL or MySQL.
package database

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"dnotes/config"
	"dnotes/internal/domain/constants"
	"dnotes/internal/domain/lifecycle"
	"dnotes/internal/errors"
	"dnotes/internal/infra/persistence/model"

	mysqldriver "github.com/go-sql-driver/mysql"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured database and registers its ping and close hooks.
func New(params Params) (*gorm.DB, error) {
	driver := params.Config.Database.Driver

	var (
		db  *gorm.DB
		err error
	)
	switch driver {
	case constants.DatabaseDriverPostgres:
		if params.Config.Postgres == nil {
			return nil, errors.New("postgres driver selected but no postgres section configured")
		}
		db, err = pgLib.New(params.Config.Postgres)
	case constants.DatabaseDriverMySQL:
		db, err = openMySQL(params.Config.MySQL)
	default:
		return nil, errors.Errorf("unsupported database driver %q", driver)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s database", driver)
	}

	db.TranslateError = true
	db = db.Session(&gorm.Session{
		// Multi-step writes go through TransactionManager.Execute.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger.With(slog.String("driver", driver)), params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return classifyStoreError(err, "ping "+driver)
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// Migrate creates or updates the tables of every persisted model.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return classifyStoreError(err, "migrate schema")
	}

	return nil
}

// openMySQL forces parseTime and clientFoundRows so row counts reflect matched rows, not changed ones.
func openMySQL(cfg *config.MySQLConfig) (*gorm.DB, error) {
	if cfg == nil || cfg.DSN == "" {
		return nil, errors.New("mysql dsn is not configured")
	}

	dsn, err := mysqldriver.ParseDSN(cfg.DSN)
	if err != nil {
		return nil, errors.Wrap(err, "invalid mysql dsn")
	}
	dsn.ParseTime = true
	dsn.ClientFoundRows = true
	if dsn.Loc == nil {
		dsn.Loc = time.UTC
	}

	db, err := gorm.Open(gormmysql.New(gormmysql.Config{DSN: dsn.FormatDSN()}), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	return db, nil
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			if attrs, wait := poolWaitAttrs(prev, cur); len(attrs) > 0 {
				level := slog.LevelDebug
				if wait >= dbPoolWarnDurationThreshold {
					level = slog.LevelWarn
				}
				logger.LogAttrs(ctx, level, "Database pool wait detected", attrs...)
			}
			prev = cur
		}
	}
}

// poolWaitAttrs describes the connection waits between two pool snapshots; nil when nobody waited.
func poolWaitAttrs(prev, cur sql.DBStats) ([]slog.Attr, time.Duration) {
	waitDelta := cur.WaitCount - prev.WaitCount
	if waitDelta <= 0 {
		return nil, 0
	}
	waitDurationDelta := cur.WaitDuration - prev.WaitDuration

	return []slog.Attr{
		slog.Int64("waitCountDelta", waitDelta),
		slog.Duration("waitDurationDelta", waitDurationDelta),
		slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
		slog.Int("maxOpenConns", cur.MaxOpenConnections),
		slog.Int("openConns", cur.OpenConnections),
		slog.Int("inUseConns", cur.InUse),
		slog.Int("idleConns", cur.Idle),
	}, waitDurationDelta
}
