package github

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mfuertes.net/portfolio/internal/github/githubtest"
)

func newTestClient(t *testing.T, opts ...GitHubClientOption) (*Client, *githubtest.Server) {
	t.Helper()
	srv := githubtest.NewServer()
	t.Cleanup(srv.Close)
	c, err := NewClient(append([]GitHubClientOption{WithBaseURL(srv.URL())}, opts...)...)
	require.NoError(t, err)
	return c, srv
}

func TestGetGistKeepsTruncatedFlag(t *testing.T) {
	c, srv := newTestClient(t)
	created := time.Date(2023, 5, 1, 10, 0, 0, 0, time.UTC)
	srv.Gist("abc123", "Notes", "hkfuertes", created, githubtest.File{
		Name: "notes.md", Content: "# partial", RawPath: "/raw/abc123/notes.md", Truncated: true,
	})

	g, err := c.GetGist(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, "Notes", g.Description)
	require.NotNil(t, g.Owner)
	assert.Equal(t, "hkfuertes", g.Owner.Login)
	assert.True(t, g.CreatedAt.Equal(created))
	f := g.Files["notes.md"]
	assert.True(t, f.Truncated)
	assert.Equal(t, srv.RawURL("/raw/abc123/notes.md"), f.RawURL)
}

func TestGetGistNotFound(t *testing.T) {
	c, _ := newTestClient(t)
	_, err := c.GetGist(context.Background(), "deadbeef")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, StatusCode(err))
}

func TestFetchRaw(t *testing.T) {
	c, srv := newTestClient(t)
	srv.Raw("/raw/file.md", "# Full body")
	b, err := c.FetchRaw(context.Background(), srv.RawURL("/raw/file.md"))
	require.NoError(t, err)
	assert.Equal(t, "# Full body", string(b))
}

func TestTokenIsSent(t *testing.T) {
	c, srv := newTestClient(t, WithToken("s3cret"))
	srv.Repository(githubtest.Repo{Owner: "a", Name: "b"})
	_, err := c.GetRepository(context.Background(), "a", "b")
	require.NoError(t, err)
	assert.Equal(t, "Bearer s3cret", srv.Authorization("/repos/a/b"))
}

func TestSearchPullRequestsQuery(t *testing.T) {
	c, srv := newTestClient(t)
	srv.SearchPullRequests(githubtest.PR{Owner: "owner", Repo: "repo", Number: 42, Title: "Fix", State: "closed"})

	issues, total, err := c.SearchPullRequests(context.Background(), "hkfuertes")
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, issues, 1)
	assert.Equal(t, 42, issues[0].GetNumber())

	q := srv.Query("/search/issues")
	assert.Equal(t, "is:pr author:hkfuertes -user:hkfuertes", q.Get("q"))
	assert.Equal(t, "updated", q.Get("sort"))
	assert.Equal(t, "desc", q.Get("order"))
	assert.Equal(t, "100", q.Get("per_page"))
}

func TestListUserRepositories(t *testing.T) {
	c, srv := newTestClient(t)
	srv.UserRepositories("hkfuertes",
		githubtest.Repo{Owner: "hkfuertes", Name: "one"},
		githubtest.Repo{Owner: "hkfuertes", Name: "two", Fork: true},
	)
	repos, err := c.ListUserRepositories(context.Background(), "hkfuertes")
	require.NoError(t, err)
	require.Len(t, repos, 2)
	assert.True(t, repos[1].GetFork())
	assert.Equal(t, "owner", srv.Query("/users/hkfuertes/repos").Get("type"))
}

func TestGetReadmeInlineIsMemoized(t *testing.T) {
	c, srv := newTestClient(t)
	srv.Readme("a", "b", "# Hello")

	for range 2 {
		b, err := c.GetReadme(context.Background(), "a", "b")
		require.NoError(t, err)
		assert.Equal(t, "# Hello", string(b))
	}
	assert.Equal(t, 1, srv.Hits("/repos/a/b/readme"))
}

func TestGetReadmeFallsBackToDownloadURL(t *testing.T) {
	c, srv := newTestClient(t)
	srv.ReadmeByDownload("a", "b", "# From raw")

	b, err := c.GetReadme(context.Background(), "a", "b")
	require.NoError(t, err)
	assert.Equal(t, "# From raw", string(b))
	assert.Equal(t, 1, srv.Hits("/raw/a/b/README.md"))
}

func TestTimeoutIsAFailure(t *testing.T) {
	c, srv := newTestClient(t, WithTimeout(50*time.Millisecond))
	srv.Repository(githubtest.Repo{Owner: "a", Name: "slow"})
	srv.Slow("/repos/a/slow", time.Second)

	_, err := c.GetRepository(context.Background(), "a", "slow")
	require.Error(t, err)
	assert.Zero(t, StatusCode(err))
}

func TestLimiterHonoursContext(t *testing.T) {
	l := NewGitHubLimiter(false)
	for l.Tokens() >= 1 {
		l.Allow()
	}
	c, _ := newTestClient(t, WithLimiter(l))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.GetRepository(ctx, "a", "b")
	require.Error(t, err)
}
