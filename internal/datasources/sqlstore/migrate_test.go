package sqlstore

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/balancednews/news-feed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_LogsThroughContextLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	ctx := domain.ContextWithLogger(context.Background(), logger)

	db, err := Connect(ctx, DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(ctx, db, DriverSQLite))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.NotEmpty(t, lines)

	var applied bool
	for _, line := range lines {
		var entry struct {
			Msg       string `json:"msg"`
			Component string `json:"component"`
		}
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
		assert.Equal(t, "goose", entry.Component)
		if strings.HasPrefix(entry.Msg, "OK") && strings.Contains(entry.Msg, "00001_create_news_schema.sql") {
			applied = true
		}
	}
	assert.True(t, applied, "expected a log line for the applied migration")
}
