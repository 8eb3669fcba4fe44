package app

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/balancednews/news-feed/internal/domain"
)

func MustGetEnvAsString(ctx context.Context, name string) string {
	s, exists := os.LookupEnv(name)
	if !exists {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "environment variable missing", "variable_name", name)
		panic(fmt.Sprintf("missing environment variable [%s]", name))
	}

	return s
}

// MustGetEnvAsStrings splits a comma-separated variable. Entries are trimmed and empty
// entries are kept, so callers decide whether to skip them.
func MustGetEnvAsStrings(ctx context.Context, name string) []string {
	parts := strings.Split(MustGetEnvAsString(ctx, name), ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

func MustGetEnvAsInt(ctx context.Context, name string) int {
	return parseInt(ctx, name, MustGetEnvAsString(ctx, name))
}

func MustGetEnvAsBoolean(ctx context.Context, name string) bool {
	return parseBoolean(ctx, name, MustGetEnvAsString(ctx, name))
}

func MustGetEnvAsDuration(ctx context.Context, name string) time.Duration {
	return parseDuration(ctx, name, MustGetEnvAsString(ctx, name))
}

func GetEnvAsStringDefault(name, def string) string {
	s, exists := os.LookupEnv(name)
	if !exists || s == "" {
		return def
	}
	return s
}

func GetEnvAsIntDefault(ctx context.Context, name string, def int) int {
	s, exists := os.LookupEnv(name)
	if !exists || s == "" {
		return def
	}
	return parseInt(ctx, name, s)
}

func GetEnvAsBooleanDefault(ctx context.Context, name string, def bool) bool {
	s, exists := os.LookupEnv(name)
	if !exists || s == "" {
		return def
	}
	return parseBoolean(ctx, name, s)
}

func GetEnvAsDurationDefault(ctx context.Context, name string, def time.Duration) time.Duration {
	s, exists := os.LookupEnv(name)
	if !exists || s == "" {
		return def
	}
	return parseDuration(ctx, name, s)
}

// GetEnvAsStringsDefault splits a comma-separated variable, dropping empty entries.
func GetEnvAsStringsDefault(name string, def []string) []string {
	s, exists := os.LookupEnv(name)
	if !exists || strings.TrimSpace(s) == "" {
		return def
	}

	var values []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			values = append(values, p)
		}
	}
	return values
}

func parseInt(ctx context.Context, name, s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse environment variable as integer",
			"variable_name", name,
			"variable_value", s,
		)
		panic(fmt.Sprintf("unable to parse environment variable as integer [%s]: %s", name, s))
	}

	return v
}

func parseBoolean(ctx context.Context, name, s string) bool {
	switch strings.ToLower(s) {
	case "true":
		return true
	case "false":
		return false
	default:
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse environment variable as boolean ('true'/'false')",
			"variable_name", name,
			"variable_value", s,
		)
		panic(fmt.Sprintf("unable to parse environment variable as boolean ('true'/'false') [%s]: %s", name, s))
	}
}

func parseDuration(ctx context.Context, name, s string) time.Duration {
	duration, err := time.ParseDuration(s)
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse environment variable as duration",
			"variable_name", name,
			"variable_value", s,
		)
		panic(fmt.Sprintf("unable to parse environment variable as duration [%s]: %s", name, s))
	}

	return duration
}
