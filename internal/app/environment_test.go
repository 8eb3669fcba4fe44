package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMustGetEnvAsString(t *testing.T) {
	ctx := context.Background()

	t.Setenv("NEWS_TEST_VALUE", "hello")
	assert.Equal(t, "hello", MustGetEnvAsString(ctx, "NEWS_TEST_VALUE"))

	assert.PanicsWithValue(t, "missing environment variable [NEWS_TEST_MISSING]", func() {
		MustGetEnvAsString(ctx, "NEWS_TEST_MISSING")
	})
}

func TestMustGetEnvAsStrings(t *testing.T) {
	ctx := context.Background()

	t.Setenv("NEWS_TEST_LIST", "firebase, api_token,,dev")
	assert.Equal(t, []string{"firebase", "api_token", "", "dev"}, MustGetEnvAsStrings(ctx, "NEWS_TEST_LIST"))

	t.Setenv("NEWS_TEST_LIST", "")
	assert.Equal(t, []string{""}, MustGetEnvAsStrings(ctx, "NEWS_TEST_LIST"))
}

func TestMustGetEnvAsParsed(t *testing.T) {
	ctx := context.Background()

	t.Setenv("NEWS_TEST_INT", "42")
	t.Setenv("NEWS_TEST_BOOL", "TRUE")
	t.Setenv("NEWS_TEST_DURATION", "90s")

	assert.Equal(t, 42, MustGetEnvAsInt(ctx, "NEWS_TEST_INT"))
	assert.True(t, MustGetEnvAsBoolean(ctx, "NEWS_TEST_BOOL"))
	assert.Equal(t, 90*time.Second, MustGetEnvAsDuration(ctx, "NEWS_TEST_DURATION"))

	t.Setenv("NEWS_TEST_INT", "forty-two")
	t.Setenv("NEWS_TEST_BOOL", "yes")
	t.Setenv("NEWS_TEST_DURATION", "soon")

	assert.Panics(t, func() { MustGetEnvAsInt(ctx, "NEWS_TEST_INT") })
	assert.Panics(t, func() { MustGetEnvAsBoolean(ctx, "NEWS_TEST_BOOL") })
	assert.Panics(t, func() { MustGetEnvAsDuration(ctx, "NEWS_TEST_DURATION") })
}

func TestGetEnvAsDefault(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		value *string
		check func(t *testing.T)
	}{
		{
			name: "unset_uses_default",
			check: func(t *testing.T) {
				assert.Equal(t, "fallback", GetEnvAsStringDefault("NEWS_TEST_OPTIONAL", "fallback"))
				assert.Equal(t, 7, GetEnvAsIntDefault(ctx, "NEWS_TEST_OPTIONAL", 7))
				assert.True(t, GetEnvAsBooleanDefault(ctx, "NEWS_TEST_OPTIONAL", true))
				assert.Equal(t, time.Minute, GetEnvAsDurationDefault(ctx, "NEWS_TEST_OPTIONAL", time.Minute))
				assert.Equal(t, []string{"a"}, GetEnvAsStringsDefault("NEWS_TEST_OPTIONAL", []string{"a"}))
			},
		},
		{
			name:  "empty_uses_default",
			value: strPtr(""),
			check: func(t *testing.T) {
				assert.Equal(t, "fallback", GetEnvAsStringDefault("NEWS_TEST_OPTIONAL", "fallback"))
				assert.Equal(t, 7, GetEnvAsIntDefault(ctx, "NEWS_TEST_OPTIONAL", 7))
				assert.Nil(t, GetEnvAsStringsDefault("NEWS_TEST_OPTIONAL", nil))
			},
		},
		{
			name:  "set_value_wins",
			value: strPtr("12"),
			check: func(t *testing.T) {
				assert.Equal(t, "12", GetEnvAsStringDefault("NEWS_TEST_OPTIONAL", "fallback"))
				assert.Equal(t, 12, GetEnvAsIntDefault(ctx, "NEWS_TEST_OPTIONAL", 7))
				assert.Equal(t, []string{"12"}, GetEnvAsStringsDefault("NEWS_TEST_OPTIONAL", nil))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != nil {
				t.Setenv("NEWS_TEST_OPTIONAL", *tt.value)
			}
			tt.check(t)
		})
	}
}

func TestGetEnvAsStringsDefault_DropsEmptyEntries(t *testing.T) {
	t.Setenv("NEWS_TEST_URLS", " https://a.example.com/rss, ,https://b.example.com/rss ")

	assert.Equal(t,
		[]string{"https://a.example.com/rss", "https://b.example.com/rss"},
		GetEnvAsStringsDefault("NEWS_TEST_URLS", nil),
	)
}

func strPtr(s string) *string { return &s }
