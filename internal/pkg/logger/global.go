package logger

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

var (
	// globalLogger holds the singleton logger instance
	globalLogger *ZapLogger
	// once ensures the fallback logger is initialized only once
	once sync.Once
	// mu protects access to the global logger
	mu sync.RWMutex
)

// SetGlobalLogger sets the global logger instance.
// This should be called once during application startup.
func SetGlobalLogger(logger *ZapLogger) {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = logger
}

// GetGlobalLogger returns the global logger instance.
// If no logger is set, it returns a default production logger.
func GetGlobalLogger() *ZapLogger {
	mu.RLock()
	defer mu.RUnlock()

	if globalLogger == nil {
		once.Do(func() {
			defaultLogger, _ := zap.NewProduction()
			globalLogger = &ZapLogger{
				Logger: defaultLogger,
				sugar:  defaultLogger.Sugar(),
			}
		})
	}

	return globalLogger
}

// Global logger convenience functions

// Info logs an info message using the global logger
func Info(msg string, fields ...Field) {
	GetGlobalLogger().Info(msg, fields...)
}

// Warn logs a warning message using the global logger
func Warn(msg string, fields ...Field) {
	GetGlobalLogger().Warn(msg, fields...)
}

// Debug logs a debug message using the global logger
func Debug(msg string, fields ...Field) {
	GetGlobalLogger().Debug(msg, fields...)
}

// Error logs an error message using the global logger
func Error(msg string, fields ...Field) {
	GetGlobalLogger().Error(msg, fields...)
}

// Fatal logs a fatal message and exits using the global logger
func Fatal(msg string, fields ...Field) {
	GetGlobalLogger().Fatal(msg, fields...)
}

// Context-aware logging. The context parameter keeps call sites uniform with
// blocking operations even though no tracing metadata is extracted today.

// InfoCtx logs an info message with context using the global logger
func InfoCtx(_ context.Context, msg string, fields ...Field) {
	GetGlobalLogger().Info(msg, fields...)
}

// WarnCtx logs a warning message with context using the global logger
func WarnCtx(_ context.Context, msg string, fields ...Field) {
	GetGlobalLogger().Warn(msg, fields...)
}

// ErrorCtx logs an error message with context using the global logger
func ErrorCtx(_ context.Context, msg string, fields ...Field) {
	GetGlobalLogger().Error(msg, fields...)
}

// DebugCtx logs a debug message with context using the global logger
func DebugCtx(_ context.Context, msg string, fields ...Field) {
	GetGlobalLogger().Debug(msg, fields...)
}
