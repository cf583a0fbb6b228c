// Package logger holds the process-wide structured logger. Output format and
// level come from the environment (LOG_FORMAT, LOG_LEVEL); when tracing is
// enabled, trace and span IDs are attached to every record.
package logger

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"trade-advisor/internal/trace"
)

var (
	globalLogger    *slog.Logger
	logLevel        slog.Level
	detailedLogging bool
)

type Config struct {
	Level           string // DEBUG, INFO, WARN, ERROR
	Format          string // json or text
	DetailedLogging bool
}

func Init() error {
	return InitWithConfig(Config{
		Level:           getEnvOrDefault("LOG_LEVEL", "INFO"),
		Format:          getEnvOrDefault("LOG_FORMAT", "text"),
		DetailedLogging: getEnvOrDefault("LOG_DETAILED", "false") == "true",
	})
}

func InitWithConfig(config Config) error {
	logLevel = parseLogLevel(config.Level)
	detailedLogging = config.DetailedLogging

	// Source location is added manually in log() so the caller, not this
	// package, shows up.
	opts := &slog.HandlerOptions{Level: logLevel, AddSource: false}

	var handler slog.Handler
	if config.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
	return nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func Debug(ctx context.Context, msg string, args ...any) {
	log(ctx, slog.LevelDebug, msg, 2, args...)
}

func Info(ctx context.Context, msg string, args ...any) {
	log(ctx, slog.LevelInfo, msg, 2, args...)
}

func Warn(ctx context.Context, msg string, args ...any) {
	log(ctx, slog.LevelWarn, msg, 2, args...)
}

func Error(ctx context.Context, msg string, args ...any) {
	log(ctx, slog.LevelError, msg, 2, args...)
}

func ErrorWithErr(ctx context.Context, msg string, err error, args ...any) {
	allArgs := append([]any{"error", err}, args...)
	log(ctx, slog.LevelError, msg, 2, allArgs...)
}

// InfoSkip is Info with extra stack frames skipped, for middleware that logs
// on behalf of the wrapped component.
func InfoSkip(ctx context.Context, skip int, msg string, args ...any) {
	log(ctx, slog.LevelInfo, msg, 2+skip, args...)
}

func DebugSkip(ctx context.Context, skip int, msg string, args ...any) {
	log(ctx, slog.LevelDebug, msg, 2+skip, args...)
}

func ErrorWithErrSkip(ctx context.Context, skip int, msg string, err error, args ...any) {
	allArgs := append([]any{"error", err}, args...)
	log(ctx, slog.LevelError, msg, 2+skip, allArgs...)
}

// Advice logs a trading suggestion; always at info so decisions are never
// filtered out.
func Advice(ctx context.Context, symbol, action string, score float64, reason string, args ...any) {
	allArgs := append([]any{
		"type", "ADVICE",
		"symbol", symbol,
		"action", action,
		"score", score,
		"reason", reason,
	}, args...)
	log(ctx, slog.LevelInfo, "Trade suggestion", 2, allArgs...)
}

func log(ctx context.Context, level slog.Level, msg string, skip int, args ...any) {
	if globalLogger == nil {
		globalLogger = slog.Default()
	}
	if traceID, spanID, ok := trace.GetTraceFields(ctx); ok {
		args = append([]any{"trace_id", traceID, "span_id", spanID}, args...)
	}
	if detailedLogging {
		if pc, file, line, ok := runtime.Caller(skip); ok {
			if fn := runtime.FuncForPC(pc); fn != nil {
				args = append(args, "source", slog.GroupValue(
					slog.String("function", fn.Name()),
					slog.String("file", file),
					slog.Int("line", line),
				))
			}
		}
	}
	globalLogger.Log(ctx, level, msg, args...)
}
