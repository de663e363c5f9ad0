package database

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"helpdesk/internal/shared/config"
	"helpdesk/internal/shared/logger"
)

// Open connects to the SQL database selected by driver ("sqlite" or
// "mysql").
func Open(driver string, cfg *config.DatabaseConfig, log logger.Interface) (*gorm.DB, error) {
	dialector, err := dialectorFor(driver, cfg)
	if err != nil {
		return nil, err
	}

	gormLogger := gormlogger.New(
		&filteredLogger{logger: log},
		gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:      gormLogger,
		PrepareStmt: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Pool settings only apply to mysql; sqlite keeps database/sql defaults.
	if driver == "mysql" {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetConnMaxLifetime(cfg.GetConnMaxLifetime())
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Infow("database connection established", "driver", driver)
	return db, nil
}

// Close closes the underlying connection pool.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}

func dialectorFor(driver string, cfg *config.DatabaseConfig) (gorm.Dialector, error) {
	switch driver {
	case "sqlite":
		if cfg.Path == "" {
			return nil, fmt.Errorf("storage.database.path is required for sqlite")
		}
		if cfg.Path != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		return sqlite.Open(cfg.Path), nil
	case "mysql":
		return mysql.New(mysql.Config{
			DSN:                       cfg.GetMySQLDSN(),
			SkipInitializeWithVersion: true,
		}), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}
}

// filteredLogger routes gorm output into the application logger and drops
// schema probing noise.
type filteredLogger struct {
	logger logger.Interface
}

func (l *filteredLogger) Printf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	lower := strings.ToLower(msg)

	if strings.Contains(lower, "information_schema.schemata") ||
		strings.Contains(lower, "select version()") {
		return
	}

	switch {
	case strings.Contains(msg, "[error]") || strings.Contains(msg, "ERROR"):
		l.logger.Errorw("database error", "details", msg)
	case strings.Contains(lower, "slow sql"):
		l.logger.Warnw("slow query", "details", msg)
	default:
		l.logger.Debugw("database query", "details", msg)
	}
}
