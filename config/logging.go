package config

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogWriter is the writer used for request, application and database logs.
var LogWriter io.Writer = os.Stdout

// Log is the structured application logger. It is a no-op until InitLogging runs.
var Log = zap.NewNop()

// InitLogging prepares the log file, points the standard logger at it and
// builds the zap logger on the same writer.
func InitLogging(logFilePath string, production bool) (*os.File, io.Writer) {
	var logFile *os.File

	if err := os.MkdirAll(filepath.Dir(logFilePath), os.ModePerm); err != nil {
		log.Printf("Warning: Failed to create logs directory: %v", err)
	}

	f, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Printf("Warning: Failed to open log file: %v", err)
		LogWriter = os.Stdout
	} else {
		logFile = f
		LogWriter = io.MultiWriter(os.Stdout, logFile)
	}
	log.SetOutput(LogWriter)

	Log = newLogger(LogWriter, production)
	return logFile, LogWriter
}

func newLogger(w io.Writer, production bool) *zap.Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	level := zapcore.DebugLevel
	if production {
		level = zapcore.InfoLevel
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(w), level)
	return zap.New(core, zap.AddCaller())
}
