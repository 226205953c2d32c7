package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/luo-one/organizer/internal/database/models"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Options tune how the store is opened
type Options struct {
	// LogMode is the gorm logger level, defaults to logger.Warn
	LogMode logger.LogLevel
	// SlowQueryThreshold enables slow statement warnings when > 0
	SlowQueryThreshold time.Duration
	// Logger receives slow statement warnings, defaults to a no-op logger
	Logger *zap.Logger
}

// Initialize opens the store at databaseURL with default options
func Initialize(databaseURL string) (*gorm.DB, error) {
	return Open(databaseURL, Options{LogMode: logger.Silent})
}

// Open creates and returns a database connection and creates any missing tables.
// postgres:// and postgresql:// URLs use the postgres driver; sqlite:///path
// and bare file paths use sqlite with foreign keys enforced.
func Open(databaseURL string, opts Options) (*gorm.DB, error) {
	dialector, err := dialectorFor(databaseURL)
	if err != nil {
		return nil, err
	}

	if opts.LogMode == 0 {
		opts.LogMode = logger.Warn
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(opts.LogMode),
		TranslateError: true,
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, err
	}

	if err := db.Use(NewMetricsPlugin(opts.Logger, opts.SlowQueryThreshold)); err != nil {
		return nil, err
	}

	if err := runMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

// dialectorFor maps a database URL to a gorm dialector
func dialectorFor(databaseURL string) (gorm.Dialector, error) {
	databaseURL = strings.TrimSpace(databaseURL)
	if databaseURL == "" {
		return nil, fmt.Errorf("database url is empty")
	}

	if strings.HasPrefix(databaseURL, "postgres://") || strings.HasPrefix(databaseURL, "postgresql://") {
		return postgres.Open(databaseURL), nil
	}

	path, err := SQLitePath(databaseURL)
	if err != nil {
		return nil, err
	}

	// Ensure the directory exists
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}

	return sqlite.Open(withForeignKeys(path)), nil
}

// SQLitePath extracts the file path from a sqlite URL.
// sqlite:///organizer.db is relative, sqlite:////var/lib/organizer.db is absolute.
func SQLitePath(databaseURL string) (string, error) {
	if !strings.Contains(databaseURL, "://") {
		return databaseURL, nil
	}
	if !strings.HasPrefix(databaseURL, "sqlite:///") {
		return "", fmt.Errorf("unsupported database url scheme: %s", databaseURL)
	}
	path := strings.TrimPrefix(databaseURL, "sqlite:///")
	if path == "" {
		return "", fmt.Errorf("sqlite url has no path: %s", databaseURL)
	}
	return path, nil
}

func withForeignKeys(path string) string {
	if strings.Contains(path, "_foreign_keys=") {
		return path
	}
	if strings.Contains(path, "?") {
		return path + "&_foreign_keys=on"
	}
	return path + "?_foreign_keys=on"
}

// runMigrations creates the schema if absent
func runMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.EmailAccount{},
		&models.Website{},
		&models.Submission{},
		&models.DayPlan{},
		&models.ActivityLog{},
	)
}

// Close releases the underlying connection pool
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping checks that the store is reachable
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
