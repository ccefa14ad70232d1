package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// SetLogger replaces the package logger, so SQL logs share the application's settings
func SetLogger(l *logrus.Logger) {
	if l != nil {
		log = l
	}
}

// Options tune how InitDatabase connects
type Options struct {
	MaxRetries  int
	RetryDelays []time.Duration
}

// DefaultOptions retries 5 times with exponential backoff
func DefaultOptions() Options {
	return Options{
		MaxRetries:  5,
		RetryDelays: []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second, 8 * time.Second, 16 * time.Second},
	}
}

// InitDatabase initializes the database connection based on the provided configuration
// It supports both PostgreSQL and SQLite drivers with retry logic and connection pooling
func InitDatabase(cfg DatabaseConfig, opts Options) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	driver := strings.ToLower(cfg.Driver)
	if opts.MaxRetries < 1 {
		opts.MaxRetries = 1
	}

	log.WithFields(logrus.Fields{
		"db_driver": driver,
		"db_url":    MaskURL(cfg.URL),
		"db_path":   cfg.Path,
	}).Info("Initializing database connection")

	gormConfig := &gorm.Config{Logger: newGormLogger()}

	for attempt := 1; attempt <= opts.MaxRetries; attempt++ {
		log.WithFields(logrus.Fields{
			"attempt":     attempt,
			"max_retries": opts.MaxRetries,
		}).Debug("Attempting database connection")

		switch driver {
		case "postgres", "postgresql":
			db, err = gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
		case "sqlite", "":
			db, err = gorm.Open(sqlite.Open(cfg.DSN()), gormConfig)
		default:
			return nil, fmt.Errorf("unsupported database driver: %s (supported: postgres, sqlite)", cfg.Driver)
		}

		if err == nil {
			var sqlDB *sql.DB
			sqlDB, err = db.DB()
			if err == nil {
				err = sqlDB.Ping()
			}
			if err == nil {
				configureConnectionPool(sqlDB, driver, cfg.Path)
				log.WithFields(logrus.Fields{
					"db_driver": driver,
					"attempt":   attempt,
				}).Info("Database initialized successfully")
				return db, nil
			}
		}

		log.WithFields(logrus.Fields{
			"attempt": attempt,
			"error":   err.Error(),
		}).Warn("Database connection attempt failed")

		if attempt < opts.MaxRetries && attempt-1 < len(opts.RetryDelays) {
			delay := opts.RetryDelays[attempt-1]
			log.WithField("delay", delay).Info("Retrying database connection")
			time.Sleep(delay)
		}
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", opts.MaxRetries, err)
}

// configureConnectionPool sets up connection pool parameters
func configureConnectionPool(sqlDB *sql.DB, driver, path string) {
	// SQLite has a single writer, and every new connection to ":memory:" opens
	// a separate empty database
	if driver != "postgres" && driver != "postgresql" {
		sqlDB.SetMaxOpenConns(1)
		log.WithFields(logrus.Fields{
			"max_open_conns": 1,
			"in_memory":      IsMemorySQLite(path),
		}).Debug("Connection pool configured for sqlite")
		return
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	log.WithFields(logrus.Fields{
		"max_open_conns":    25,
		"max_idle_conns":    5,
		"conn_max_lifetime": "5m",
	}).Debug("Connection pool configured")
}

// newGormLogger routes gorm's SQL logging through logrus
func newGormLogger() gormlogger.Interface {
	level := gormlogger.Warn
	if log.IsLevelEnabled(logrus.DebugLevel) {
		level = gormlogger.Info
	}
	return NewGormLogger(log, level, time.Second)
}
