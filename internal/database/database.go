package database

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Ragi-1016/Geektwitter/internal/models"
)

type Database struct {
	DB     *gorm.DB
	Driver string
}

// Init opens the given driver and runs migrations. It returns an error
// instead of exiting so InitWithFallback can try the next candidate.
func Init(lg *zap.Logger, driver, dsn string) (*Database, error) {
	var db *gorm.DB
	var err error

	config := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	switch driver {
	case "mysql":
		db, err = initMySQL(lg, dsn, config)
	case "sqlite":
		db, err = initSQLite(lg, dsn, config)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("migration failed (%s): %w", driver, err)
	}
	lg.Info("database migrated", zap.String("driver", driver))

	return &Database{
		DB:     db,
		Driver: driver,
	}, nil
}

// InitWithFallback opens the primary driver and falls back to the
// secondary when the primary cannot be opened. An empty fallback driver
// disables the fallback. Failure of every candidate is fatal.
func InitWithFallback(lg *zap.Logger, primaryDriver, primaryDSN, fallbackDriver, fallbackDSN string) *Database {
	db, err := Init(lg, primaryDriver, primaryDSN)
	if err == nil {
		return db
	}
	lg.Warn("primary database unavailable",
		zap.String("driver", primaryDriver), zap.Error(err))

	if fallbackDriver == "" {
		lg.Fatal("no fallback database configured", zap.Error(err))
	}

	db, err = Init(lg, fallbackDriver, fallbackDSN)
	if err != nil {
		lg.Fatal("fallback database unavailable",
			zap.String("driver", fallbackDriver), zap.Error(err))
	}
	return db
}

// Migrate creates or updates the two application tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Post{})
}

func initMySQL(lg *zap.Logger, dsn string, config *gorm.Config) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("mysql DSN is not set")
	}

	lg.Info("connecting to mysql")
	db, err := gorm.Open(mysql.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("mysql connect failed: %w", err)
	}
	return db, nil
}

func initSQLite(lg *zap.Logger, dsn string, config *gorm.Config) (*gorm.DB, error) {
	dir := filepath.Dir(dsn)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("sqlite directory create failed: %w", err)
	}

	lg.Info("connecting to sqlite", zap.String("path", dsn))
	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("sqlite connect failed: %w", err)
	}
	return db, nil
}

// GetInfo reports the active driver, for the startup log line.
func (d *Database) GetInfo() map[string]interface{} {
	info := map[string]interface{}{
		"driver": d.Driver,
	}
	if sqlDB, err := d.DB.DB(); err == nil {
		stats := sqlDB.Stats()
		info["open_connections"] = stats.OpenConnections
	}
	return info
}

func (d *Database) Ping() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
