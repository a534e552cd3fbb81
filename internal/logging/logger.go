package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var globalLogger *zap.SugaredLogger

// Init initializes the global logger with JSON output.
func Init(appEnv string) error {
	var config zap.Config

	if appEnv == "production" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
	}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Encoding = "json"

	logger, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	globalLogger = logger.Sugar()
	return nil
}

// get returns the global logger, falling back to a no-op logger when Init
// was not called (tests).
func get() *zap.SugaredLogger {
	if globalLogger == nil {
		globalLogger = zap.NewNop().Sugar()
	}
	return globalLogger
}

// Close flushes any buffered logs.
func Close() error {
	if globalLogger != nil {
		return globalLogger.Sync()
	}
	return nil
}

// Debug logs a debug message with optional key/value fields.
func Debug(message string, fields ...interface{}) {
	get().Debugw(message, fields...)
}

// Info logs an info message with optional key/value fields.
func Info(message string, fields ...interface{}) {
	get().Infow(message, fields...)
}

// Warn logs a warning message with optional key/value fields.
func Warn(message string, fields ...interface{}) {
	get().Warnw(message, fields...)
}

// Error logs an error message with optional key/value fields.
func Error(message string, fields ...interface{}) {
	get().Errorw(message, fields...)
}

// Fatal logs a fatal message and exits.
func Fatal(message string, fields ...interface{}) {
	get().Fatalw(message, fields...)
}
