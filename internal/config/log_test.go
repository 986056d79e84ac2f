package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerCarriesServiceName(t *testing.T) {
	cfg := New()
	cfg.Set("LOG_FORMAT", "JSON")
	cfg.Set("OTEL_SERVICE_NAME", "portfolio-test")

	var buf bytes.Buffer
	newLogger(cfg, &buf, slog.LevelInfo).Info("Loaded collection", "kind", "gist")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "portfolio-test", line["service"])
	assert.Equal(t, "gist", line["kind"])
}

func TestLoggerTextFormatAndLevel(t *testing.T) {
	cfg := New()
	cfg.Set("LOG_FORMAT", "")
	cfg.Set("OTEL_SERVICE_NAME", "")

	var buf bytes.Buffer
	log := newLogger(cfg, &buf, slog.LevelWarn)
	log.Info("dropped")
	assert.Empty(t, buf.String())

	log.Warn("kept")
	assert.Contains(t, buf.String(), "msg=kept")
	assert.Contains(t, buf.String(), "service=portfolio")
}

func TestStartRunTagsDefaultLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	id := StartRun()
	_, err := uuid.Parse(id)
	require.NoError(t, err)

	slog.Info("Content snapshot written")
	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, id, line["run_id"])
}

func TestServiceVersion(t *testing.T) {
	cfg := New()
	cfg.Set("SERVICE_VERSION", "v1.2.3")
	assert.Equal(t, "v1.2.3", cfg.GetServiceVersion())

	cfg.Set("SERVICE_VERSION", "")
	assert.NotEmpty(t, cfg.GetServiceVersion())
}
