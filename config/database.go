package config

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// InitDB opens the MySQL connection described by cfg and stores it in DB.
func InitDB(cfg *Config) error {
	// In production, suppress SQL logs unless explicitly re-enabled via DB_DEBUG_SQL=true.
	logLevel := logger.Info
	if cfg.IsProduction() && !cfg.Database.DebugSQL {
		logLevel = logger.Warn
	}

	gormConfig := &gorm.Config{
		Logger: logger.New(
			zap.NewStdLog(Log.Named("gorm")),
			logger.Config{LogLevel: logLevel, IgnoreRecordNotFoundError: true},
		),
	}

	db, err := gorm.Open(mysql.Open(cfg.Database.DSN()), gormConfig)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	DB = db
	Log.Info("Database connected successfully",
		zap.String("host", cfg.Database.Host),
		zap.String("database", cfg.Database.Database))
	return nil
}
