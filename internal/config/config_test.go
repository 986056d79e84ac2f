package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sourcesYAML = `
gists:
  - https://gist.github.com/hkfuertes/aa5a315d61ae9438b18d
  - ""
repositories:
  - url: https://github.com/hkfuertes/portfolio
    show_readme: true
  - show_readme: true
user_repositories:
  - username: hkfuertes
    exclude_forks: false
    min_stars: 2
  - username: ""
contributions:
  - username: hkfuertes
`

func writeSources(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sources.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sourcesYAML), 0o644))
	return path
}

func TestSourcesDropsInvalidEntries(t *testing.T) {
	cfg := New()
	require.NoError(t, cfg.ReadSourcesFile(writeSources(t)))

	src, err := cfg.Sources()
	require.NoError(t, err)

	assert.Equal(t, []string{"https://gist.github.com/hkfuertes/aa5a315d61ae9438b18d"}, src.Gists)
	require.Len(t, src.Repositories, 1)
	assert.True(t, src.Repositories[0].ShowReadme)
	require.Len(t, src.UserRepositories, 1)
	ur := src.UserRepositories[0]
	assert.Equal(t, "hkfuertes", ur.Username)
	require.NotNil(t, ur.ExcludeForks)
	assert.False(t, *ur.ExcludeForks)
	assert.Nil(t, ur.ExcludeArchived)
	assert.Equal(t, 2, ur.MinStars)
	require.Len(t, src.Contributions, 1)
}

func TestReadSourcesFileMissing(t *testing.T) {
	cfg := New()
	assert.Error(t, cfg.ReadSourcesFile(filepath.Join(t.TempDir(), "nope.yaml")))
}

func TestDefaults(t *testing.T) {
	cfg := New()
	cfg.Set("PORT", "")
	cfg.Set("HOST", "")
	cfg.Set("ADDR", "")
	assert.Equal(t, "localhost:8080", cfg.GetAddr())
	assert.Equal(t, 15*time.Second, cfg.GetHTTPTimeout())
	assert.Equal(t, 1, cfg.GetLoadConcurrency())
}

func TestOverrides(t *testing.T) {
	cfg := New()
	cfg.Set("HTTP_TIMEOUT", "2s")
	cfg.Set("LOAD_CONCURRENCY", 4)
	cfg.Set("LOG_LEVEL", "warning")
	cfg.Set("GITHUB_TOKEN", "")
	cfg.Set("GH_TOKEN", "gh-token")
	assert.Equal(t, 2*time.Second, cfg.GetHTTPTimeout())
	assert.Equal(t, 4, cfg.GetLoadConcurrency())
	assert.Equal(t, slog.LevelWarn, cfg.GetLogLevel())
	assert.Equal(t, "gh-token", cfg.GetGitHubToken())
}

func TestAddrOverride(t *testing.T) {
	cfg := New()
	cfg.Set("ADDR", "0.0.0.0:9000")
	assert.Equal(t, "0.0.0.0:9000", cfg.GetAddr())
}
