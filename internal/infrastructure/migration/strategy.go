package migration

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sync"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/logger"
)

//go:embed scripts/*.sql
var scripts embed.FS

// goose keeps dialect and base FS in package globals.
var gooseMu sync.Mutex

const (
	StrategyGoose = "goose"
	StrategyAuto  = "auto"
)

// Strategy defines the interface for different migration strategies
type Strategy interface {
	Migrate(db *gorm.DB) error
	GetName() string
}

// GooseStrategy applies the embedded SQL scripts.
type GooseStrategy struct {
	dialect string
	logger  logger.Interface
}

// NewGooseStrategy creates a goose strategy for the given storage driver
// ("sqlite" or "mysql").
func NewGooseStrategy(driver string) (*GooseStrategy, error) {
	dialect, err := gooseDialect(driver)
	if err != nil {
		return nil, err
	}
	return &GooseStrategy{
		dialect: dialect,
		logger:  logger.WithComponent("migration.goose"),
	}, nil
}

func (s *GooseStrategy) Migrate(db *gorm.DB) error {
	return s.run(db, func(sqlDB *sql.DB) error {
		currentVersion, err := goose.GetDBVersion(sqlDB)
		if err != nil {
			s.logger.Errorw("failed to get current version", "error", err)
			return fmt.Errorf("failed to get current version: %w", err)
		}

		if err := goose.Up(sqlDB, "."); err != nil {
			s.logger.Errorw("migration failed", "error", err)
			return fmt.Errorf("failed to run migrations: %w", err)
		}

		finalVersion, err := goose.GetDBVersion(sqlDB)
		if err != nil {
			return fmt.Errorf("failed to get final version: %w", err)
		}

		s.logger.Infow("migration completed",
			"dialect", s.dialect,
			"from_version", currentVersion,
			"to_version", finalVersion)
		return nil
	})
}

func (s *GooseStrategy) GetName() string {
	return "goose"
}

// MigrateDown rolls back the given number of migrations.
func (s *GooseStrategy) MigrateDown(db *gorm.DB, steps int) error {
	s.logger.Infow("starting down migration", "steps", steps)

	return s.run(db, func(sqlDB *sql.DB) error {
		for i := 0; i < steps; i++ {
			if err := goose.Down(sqlDB, "."); err != nil {
				s.logger.Errorw("down migration failed", "error", err)
				return fmt.Errorf("failed to run down migration: %w", err)
			}
		}
		return nil
	})
}

func (s *GooseStrategy) GetVersion(db *gorm.DB) (int64, error) {
	var version int64
	err := s.run(db, func(sqlDB *sql.DB) error {
		v, err := goose.GetDBVersion(sqlDB)
		if err != nil {
			return fmt.Errorf("failed to get version: %w", err)
		}
		version = v
		return nil
	})
	return version, err
}

// Status logs the applied state of every script.
func (s *GooseStrategy) Status(db *gorm.DB) error {
	return s.run(db, func(sqlDB *sql.DB) error {
		if err := goose.Status(sqlDB, "."); err != nil {
			return fmt.Errorf("failed to get status: %w", err)
		}
		return nil
	})
}

func (s *GooseStrategy) run(db *gorm.DB, fn func(*sql.DB) error) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sub, err := fs.Sub(scripts, "scripts")
	if err != nil {
		return fmt.Errorf("failed to open migration scripts: %w", err)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(sub)
	goose.SetLogger(&gooseLogger{logger: s.logger})
	if err := goose.SetDialect(s.dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return fn(sqlDB)
}

// NewStrategy returns the named strategy for a storage driver. An empty name
// selects goose.
func NewStrategy(name string, driver string) (Strategy, error) {
	switch name {
	case "", StrategyGoose:
		return NewGooseStrategy(driver)
	case StrategyAuto:
		return GormAutoMigrateStrategy{}, nil
	default:
		return nil, fmt.Errorf("unknown migration strategy: %s", name)
	}
}

// GormAutoMigrateStrategy creates the schema from the gorm model. Used in
// development where scripts are not tracked.
type GormAutoMigrateStrategy struct{}

func (GormAutoMigrateStrategy) Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.KVEntryModel{}); err != nil {
		return fmt.Errorf("failed to auto-migrate kv_entries: %w", err)
	}
	return nil
}

func (GormAutoMigrateStrategy) GetName() string {
	return "gorm_automigrate"
}

func gooseDialect(driver string) (string, error) {
	switch driver {
	case "sqlite":
		return "sqlite3", nil
	case "mysql":
		return "mysql", nil
	default:
		return "", fmt.Errorf("no migration dialect for storage driver %q", driver)
	}
}

type gooseLogger struct {
	logger logger.Interface
}

func (l *gooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, v...))
}

// Fatalf must not exit the process; goose reports the failure as an error too.
func (l *gooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, v...))
}
