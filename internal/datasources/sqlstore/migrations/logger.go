package migrations

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pressly/goose/v3"
)

// SlogLogger routes goose's progress lines through a structured logger.
type SlogLogger struct {
	Ctx    context.Context
	Logger *slog.Logger
}

var _ goose.Logger = SlogLogger{}

func (l SlogLogger) Printf(format string, v ...any) {
	l.Logger.InfoContext(l.Ctx, message(format, v), "component", "goose")
}

// Fatalf matches goose's default logger, which exits the process.
func (l SlogLogger) Fatalf(format string, v ...any) {
	l.Logger.ErrorContext(l.Ctx, message(format, v), "component", "goose")
	os.Exit(1)
}

func message(format string, v []any) string {
	return strings.TrimSpace(fmt.Sprintf(format, v...))
}
