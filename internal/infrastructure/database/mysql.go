package database

import (
	"fmt"
	stdlog "log"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const maxConnectAttempts = 8

// Connect opens the MySQL connection described by the DB_* environment
// variables, retrying with exponential backoff before giving up.
func Connect(log *logrus.Logger) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		envOr("DB_USER", "root"),
		os.Getenv("DB_PASSWORD"),
		envOr("DB_HOST", "localhost"),
		envOr("DB_PORT", "3306"),
		envOr("DB_NAME", "oficina_os"),
	)

	var db *gorm.DB
	var err error
	for attempt := 1; attempt <= maxConnectAttempts; attempt++ {
		db, err = gorm.Open(mysql.Open(dsn), gormConfig())
		if err == nil {
			tunePool(db)
			log.WithField("attempt", attempt).Info("connected to database")
			return db, nil
		}

		sleep := time.Second * time.Duration(1<<minInt(attempt, 5))
		if sleep > 30*time.Second {
			sleep = 30 * time.Second
		}
		log.WithFields(logrus.Fields{
			"attempt": attempt,
			"retryIn": sleep.String(),
		}).Warnf("database connection failed: %v", err)
		time.Sleep(sleep)
	}
	return nil, fmt.Errorf("database unreachable after %d attempts: %w", maxConnectAttempts, err)
}

func tunePool(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil || sqlDB == nil {
		return
	}
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(time.Minute)
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger: gormlogger.New(
			stdlog.New(os.Stdout, "\r\n", stdlog.LstdFlags),
			gormlogger.Config{
				Colorful:      false,
				LogLevel:      gormlogger.Error,
				SlowThreshold: time.Second,
			},
		),
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
