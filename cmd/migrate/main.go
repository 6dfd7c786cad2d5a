// Schema migration for the OwlRecruit API.
// cmd/migrate/main.go
package main

import (
	"log"

	"owlrecruit-api/config"
	"owlrecruit-api/models"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	logFile, _ := config.InitLogging(cfg.LogFile, cfg.IsProduction())
	if logFile != nil {
		defer logFile.Close()
	}

	// Initialize database
	if err := config.InitDB(cfg); err != nil {
		config.Log.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Creates tables and the unique (application_id, reviewer_id) index the
	// review upsert relies on.
	for _, model := range models.AllModels() {
		if err := config.DB.AutoMigrate(model); err != nil {
			config.Log.Fatal("Migration failed", zap.String("model", modelName(model)), zap.Error(err))
		}
		config.Log.Info("Migrated", zap.String("model", modelName(model)))
	}

	config.Log.Info("Schema migration completed!")
}

func modelName(model interface{}) string {
	if t, ok := model.(interface{ TableName() string }); ok {
		return t.TableName()
	}
	return "unknown"
}
