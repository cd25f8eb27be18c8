// Package logger provides the structured, levelled logger for the tool,
// built on log/slog.
//
// Local runs get human-readable text on stderr; production gets JSON.
// When the activity log is enabled, records are additionally persisted
// to MongoDB (see mongo_handler.go):
//
//	logger.Info("order shipped", "order_id", id, "quantity", qty)
package logger

import (
	"log/slog"
	"os"

	"github.com/zackariya14/databasteknik-uppgift-2/config"
)

var L *slog.Logger

func init() {
	L = slog.New(baseHandler())
	slog.SetDefault(L)
}

// baseHandler picks the console handler by environment. Logs go to
// stderr so menu output on stdout stays clean.
func baseHandler() slog.Handler {
	switch config.AppEnv() {
	case "production", "prod":
		opts := &slog.HandlerOptions{Level: slog.LevelInfo}
		return slog.NewJSONHandler(os.Stderr, opts) // structured JSON for log aggregators
	default:
		opts := &slog.HandlerOptions{Level: slog.LevelDebug}
		return slog.NewTextHandler(os.Stderr, opts) // human-readable for dev
	}
}

// AttachActivityLog fans the logger out to the given extra handler in
// addition to the console. Called once at startup when LOG_TO_MONGO is
// enabled.
func AttachActivityLog(h slog.Handler) {
	L = slog.New(NewMultiHandler(baseHandler(), h))
	slog.SetDefault(L)
}

// Debug logs at DEBUG level.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs at INFO level.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs at WARN level.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs at ERROR level.
func Error(msg string, args ...any) { L.Error(msg, args...) }
