package main

import (
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/theplant/customquery/catalog"
	"github.com/theplant/customquery/sqlclause"
)

type env struct {
	db      *gorm.DB
	dialect sqlclause.Dialect
	source  catalog.Source
}

// openEnv connects to the database unless a YAML catalog is given, in which
// case the connection is only used to render statements.
func openEnv(cfg *Config, log *zap.Logger) (*env, error) {
	dialect, err := sqlclause.DialectByName(cfg.Driver)
	if err != nil {
		return nil, err
	}
	offline := cfg.Catalog != ""
	if !offline && cfg.DSN == "" {
		return nil, errors.New("either --catalog or --dsn is required")
	}

	var dialector gorm.Dialector
	switch dialect {
	case sqlclause.Postgres:
		dialector = postgres.New(postgres.Config{DSN: cfg.DSN})
	default:
		dialector = mysql.New(mysql.Config{DSN: cfg.DSN, SkipInitializeWithVersion: offline})
	}

	level := logger.Silent
	if cfg.Verbose {
		level = logger.Info
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		DisableAutomaticPing: offline,
		Logger: logger.New(zapWriter{log.Sugar()}, logger.Config{
			SlowThreshold: 200 * time.Millisecond,
			LogLevel:      level,
		}),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "open %s database", dialect.Name())
	}

	e := &env{db: db, dialect: dialect}
	if offline {
		static, err := catalog.ReadStatic(cfg.Catalog)
		if err != nil {
			return nil, err
		}
		log.Debug("using static catalog", zap.String("path", cfg.Catalog), zap.Int("fields", len(static.FieldRows)))
		e.source = static
	} else {
		e.source = catalog.NewGormSource(db)
	}
	return e, nil
}

// zapWriter routes gorm's log lines to zap.
type zapWriter struct {
	*zap.SugaredLogger
}

func (w zapWriter) Printf(format string, args ...any) {
	w.Debugf(format, args...)
}
