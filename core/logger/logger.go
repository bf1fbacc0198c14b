package logger

import (
	"log/slog"
	"os"
)

var defaultLogger *slog.Logger

func init() {
	defaultLogger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// SetLevel switches the default logger to the given level.
func SetLevel(level slog.Level) {
	defaultLogger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
}

func Info(msg string, args ...any) {
	defaultLogger.Info(msg, normalize(args)...)
}

func Warn(msg string, args ...any) {
	defaultLogger.Warn(msg, normalize(args)...)
}

func Error(msg string, args ...any) {
	defaultLogger.Error(msg, normalize(args)...)
}

func Debug(msg string, args ...any) {
	defaultLogger.Debug(msg, normalize(args)...)
}

// normalize tolerates the bare-error call shape logger.Error("Tag", err)
// alongside regular key-value pairs.
func normalize(args []any) []any {
	if len(args) == 1 {
		if err, ok := args[0].(error); ok {
			return []any{slog.Any("error", err)}
		}
	}
	if len(args)%2 != 0 {
		return append(args, "")
	}
	return args
}
