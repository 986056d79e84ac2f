package loader

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mfuertes.net/portfolio/internal/content"
	"mfuertes.net/portfolio/internal/github"
	"mfuertes.net/portfolio/internal/github/githubtest"
)

var created = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func newTestPipeline(t *testing.T, opts ...PipelineOption) (*Pipeline, *githubtest.Server) {
	t.Helper()
	srv := githubtest.NewServer()
	t.Cleanup(srv.Close)
	c, err := github.NewClient(github.WithBaseURL(srv.URL()))
	require.NoError(t, err)
	return NewPipeline(c, opts...), srv
}

func ids(s *content.Store) []string {
	var out []string
	for _, r := range s.All() {
		out = append(out, r.ID)
	}
	return out
}

func TestLoadRequiresMode(t *testing.T) {
	p, _ := newTestPipeline(t)
	_, err := p.Load(context.Background(), content.NewStore(), Mode(0))
	assert.ErrorIs(t, err, ErrModeRequired)
}

func TestRepositoryFailureDoesNotAbortBatch(t *testing.T) {
	p, srv := newTestPipeline(t)
	srv.Repository(githubtest.Repo{Owner: "a", Name: "b", Description: "Thing", Created: created})

	store := content.NewStore()
	report, err := p.Load(context.Background(), store, Replace,
		RepositorySource{URL: "https://github.com/a/b"},
		RepositorySource{URL: "https://github.com/x/missing"},
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"github-a-b"}, ids(store))
	assert.Equal(t, Report{Loaded: 1, Failed: 1}, report)

	r, ok := store.Get("github-a-b")
	require.True(t, ok)
	assert.Equal(t, "b", r.Title)
	assert.Equal(t, "Thing", r.Description)
	assert.Equal(t, "a", r.Author)
	assert.Equal(t, []string{}, r.Tags)
	assert.Equal(t, "", r.Repository.Language)
	assert.Nil(t, r.Rendered)
}

func TestRepositoryReadme(t *testing.T) {
	p, srv := newTestPipeline(t)
	srv.Repository(githubtest.Repo{Owner: "a", Name: "with-readme", Created: created, Pushed: created.Add(time.Hour)})
	srv.Readme("a", "with-readme", "# Title\n\n## Usage\n\nRun it.\n")
	srv.Repository(githubtest.Repo{Owner: "a", Name: "no-readme", Created: created})

	store := content.NewStore()
	report, err := p.Load(context.Background(), store, Replace,
		RepositorySource{URL: "https://github.com/a/with-readme", ShowReadme: true},
		RepositorySource{URL: "https://github.com/a/no-readme.git", ShowReadme: true},
	)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Loaded)

	r, _ := store.Get("github-a-with-readme")
	require.NotNil(t, r.Rendered)
	assert.Contains(t, r.Rendered.HTML, "Run it.")
	require.Len(t, r.Rendered.Headings, 1)
	assert.Equal(t, "Usage", r.Rendered.Headings[0].Text)
	require.NotNil(t, r.Updated)
	assert.True(t, r.Updated.Equal(created.Add(time.Hour)))

	r, _ = store.Get("github-a-no-readme")
	assert.Nil(t, r.Rendered)
	assert.True(t, r.ShowReadme)
}

func TestUserRepositoriesFilters(t *testing.T) {
	p, srv := newTestPipeline(t)
	srv.UserRepositories("me",
		githubtest.Repo{Owner: "me", Name: "kept", Stars: 3, Topics: []string{"go"}, Language: "Go", Created: created},
		githubtest.Repo{Owner: "me", Name: "forked", Stars: 10, Fork: true, Created: created},
		githubtest.Repo{Owner: "me", Name: "old", Stars: 10, Archived: true, Created: created},
		githubtest.Repo{Owner: "me", Name: "quiet", Stars: 0, Created: created},
	)

	src := NewUserRepositoriesSource("me")
	src.MinStars = 1
	store := content.NewStore()
	report, err := p.Load(context.Background(), store, Replace, src)
	require.NoError(t, err)
	assert.Equal(t, []string{"github-me-kept"}, ids(store))
	assert.Equal(t, Report{Loaded: 1, Excluded: 3}, report)

	r, _ := store.Get("github-me-kept")
	assert.Equal(t, []string{"go"}, r.Tags)
	assert.Equal(t, "Go", r.Repository.Language)
	assert.Equal(t, 3, r.Repository.Stars)
}

func TestUserRepositoriesKeepsForksWhenAllowed(t *testing.T) {
	p, srv := newTestPipeline(t)
	srv.UserRepositories("me", githubtest.Repo{Owner: "me", Name: "forked", Fork: true, Created: created})

	src := NewUserRepositoriesSource("me")
	src.ExcludeForks = false
	store := content.NewStore()
	_, err := p.Load(context.Background(), store, Replace, src)
	require.NoError(t, err)
	assert.Equal(t, []string{"github-me-forked"}, ids(store))
}

func TestUserRepositoriesListingFailure(t *testing.T) {
	p, srv := newTestPipeline(t)
	srv.Status("/users/me/repos", http.StatusInternalServerError)

	store := content.NewStore()
	report, err := p.Load(context.Background(), store, Replace, NewUserRepositoriesSource("me"))
	require.NoError(t, err)
	assert.Zero(t, store.Len())
	assert.Equal(t, 1, report.Failed)
}

func TestContributions(t *testing.T) {
	p, srv := newTestPipeline(t)
	merged := created.Add(48 * time.Hour)
	prs := []githubtest.PR{
		{Owner: "owner", Repo: "repo", Number: 42, Title: "Add feature", Created: created, Updated: merged,
			State: "closed", Merged: true, MergedAt: merged, Additions: 10, Deletions: 2},
		{Owner: "owner", Repo: "repo", Number: 7, Title: "Rejected idea", Created: created, Updated: created,
			State: "closed"},
		{Owner: "other", Repo: "lib", Number: 3, Title: "Work in progress", Created: created, Updated: created,
			State: "open", Additions: 1},
	}
	srv.SearchPullRequests(prs...)
	for _, pr := range prs {
		srv.PullRequest(pr)
	}

	store := content.NewStore()
	report, err := p.Load(context.Background(), store, Replace, ContributionSource{Username: "me"})
	require.NoError(t, err)
	assert.Equal(t, []string{"contribution-owner-repo-42", "contribution-other-lib-3"}, ids(store))
	assert.Equal(t, Report{Loaded: 2, Excluded: 1}, report)

	r, _ := store.Get("contribution-owner-repo-42")
	assert.Equal(t, "Add feature", r.Title)
	assert.Equal(t, "owner/repo", r.Description)
	assert.Equal(t, "me", r.Author)
	assert.Equal(t, []string{ContributionTag}, r.Tags)
	assert.Equal(t, content.PRStateMerged, r.Contribution.State)
	require.NotNil(t, r.Contribution.MergedAt)
	assert.True(t, r.Contribution.MergedAt.Equal(merged))
	assert.Equal(t, 10, r.Contribution.Additions)
	assert.Equal(t, 2, r.Contribution.Deletions)

	r, _ = store.Get("contribution-other-lib-3")
	assert.Equal(t, content.PRStateOpen, r.Contribution.State)
	assert.Nil(t, r.Contribution.MergedAt)
}

func TestContributionDetailFailureKeepsSearchData(t *testing.T) {
	p, srv := newTestPipeline(t)
	srv.SearchPullRequests(githubtest.PR{Owner: "owner", Repo: "repo", Number: 5, Title: "Docs", Created: created, State: "open"})

	store := content.NewStore()
	report, err := p.Load(context.Background(), store, Replace, ContributionSource{Username: "me"})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Loaded)

	r, ok := store.Get("contribution-owner-repo-5")
	require.True(t, ok)
	assert.Equal(t, content.PRStateOpen, r.Contribution.State)
	assert.Zero(t, r.Contribution.Additions)
	assert.Zero(t, r.Contribution.Deletions)
}

func TestContributionSearchFailure(t *testing.T) {
	p, srv := newTestPipeline(t)
	srv.Status("/search/issues", http.StatusServiceUnavailable)

	store := content.NewStore()
	store.Set("stale", &content.Record{ID: "stale"})
	report, err := p.Load(context.Background(), store, Replace, ContributionSource{Username: "me"})
	require.NoError(t, err)
	assert.Zero(t, store.Len())
	assert.Equal(t, Report{Failed: 1}, report)
}

func TestGists(t *testing.T) {
	p, srv := newTestPipeline(t)
	srv.Gist("aaa111", "", "me", created,
		githubtest.File{Name: "script.sh", Content: "echo hi"},
		githubtest.File{Name: "Notes.MD", Content: "## First\n\nhello"},
	)
	srv.Gist("bbb222", "A long enough description", "", created,
		githubtest.File{Name: "post.md", Content: "## Cut", RawPath: "/raw/bbb222/post.md", Truncated: true},
	)
	srv.Raw("/raw/bbb222/post.md", "## Cut\n\nfull body")
	srv.Gist("ccc333", "Code only", "me", created, githubtest.File{Name: "main.go", Content: "package main"})

	store := content.NewStore()
	report, err := p.Load(context.Background(), store, Replace,
		GistSource{URL: "https://gist.github.com/me/aaa111"},
		GistSource{URL: "https://gist.github.com/me/bbb222"},
		GistSource{URL: "https://gist.github.com/me/ccc333"},
		GistSource{URL: "https://example.com/not-a-gist"},
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"aaa111", "bbb222"}, ids(store))
	assert.Equal(t, Report{Loaded: 2, Skipped: 2}, report)

	r, _ := store.Get("aaa111")
	assert.Equal(t, "Notes.MD", r.Title)
	assert.Equal(t, "me", r.Author)
	assert.Equal(t, "2024-notesmd", r.Slug)
	assert.Equal(t, []string{}, r.Tags)
	require.NotNil(t, r.Rendered)
	assert.Contains(t, r.Rendered.HTML, "hello")

	r, _ = store.Get("bbb222")
	assert.Equal(t, UnknownAuthor, r.Author)
	assert.Equal(t, "a-long-enough-description", r.Slug)
	assert.Contains(t, r.Rendered.HTML, "full body")
	require.NotNil(t, r.Updated)
}

func TestModes(t *testing.T) {
	p, srv := newTestPipeline(t)
	srv.Repository(githubtest.Repo{Owner: "a", Name: "b", Created: created})
	src := RepositorySource{URL: "https://github.com/a/b"}

	store := content.NewStore()
	store.Set("earlier", &content.Record{ID: "earlier"})
	_, err := p.Load(context.Background(), store, Accumulate, src)
	require.NoError(t, err)
	assert.Equal(t, []string{"earlier", "github-a-b"}, ids(store))

	_, err = p.Load(context.Background(), store, Replace, src)
	require.NoError(t, err)
	assert.Equal(t, []string{"github-a-b"}, ids(store))
}

func TestDuplicateSourcesCollapse(t *testing.T) {
	p, srv := newTestPipeline(t)
	srv.Repository(githubtest.Repo{Owner: "a", Name: "b", Created: created})
	src := RepositorySource{URL: "https://github.com/a/b"}

	store := content.NewStore()
	report, err := p.Load(context.Background(), store, Replace, src, src)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Loaded)
	assert.Equal(t, 1, store.Len())
}

func TestConcurrentLoadKeepsSourceOrder(t *testing.T) {
	p, srv := newTestPipeline(t, WithConcurrency(4))
	names := []string{"one", "two", "three", "four", "five"}
	var repos []githubtest.Repo
	for _, n := range names {
		repos = append(repos, githubtest.Repo{Owner: "me", Name: n, Created: created})
	}
	srv.UserRepositories("me", repos...)

	store := content.NewStore()
	_, err := p.Load(context.Background(), store, Replace, NewUserRepositoriesSource("me"))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"github-me-one", "github-me-two", "github-me-three", "github-me-four", "github-me-five",
	}, ids(store))
}

func TestItemTimeoutIsAFailure(t *testing.T) {
	p, srv := newTestPipeline(t, WithItemTimeout(50*time.Millisecond))
	srv.Repository(githubtest.Repo{Owner: "a", Name: "slow", Created: created})
	srv.Slow("/repos/a/slow", time.Second)
	srv.Repository(githubtest.Repo{Owner: "a", Name: "fast", Created: created})

	store := content.NewStore()
	report, err := p.Load(context.Background(), store, Replace,
		RepositorySource{URL: "https://github.com/a/slow"},
		RepositorySource{URL: "https://github.com/a/fast"},
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"github-a-fast"}, ids(store))
	assert.Equal(t, 1, report.Failed)
}

func TestLoadCancelledReturnsError(t *testing.T) {
	p, srv := newTestPipeline(t)
	srv.Repository(githubtest.Repo{Owner: "a", Name: "b", Created: created})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	report, err := p.Load(ctx, content.NewStore(), Replace,
		RepositorySource{URL: "https://github.com/a/b"},
		ContributionSource{Username: "me"},
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, report.Loaded)
	assert.Zero(t, srv.Hits("/repos/a/b"))
}
