package github

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v75/github"
	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/time/rate"
)

// NewGitHubLimiter returns a rate limiter tuned for authenticated or unauthenticated GitHub API usage.
func NewGitHubLimiter(authenticated bool) *rate.Limiter {
	var limiter *rate.Limiter
	if authenticated {
		limiter = rate.NewLimiter(rate.Every(time.Hour/5000), 100)
		slog.Info(
			"Created authenticated GitHub rate limiter",
			"rate",
			"5000 requests/hour",
			"burst",
			100,
		)
	} else {
		limiter = rate.NewLimiter(rate.Every(time.Hour/60), 60)
		slog.Info("Created unauthenticated GitHub rate limiter", "rate", "60 requests/hour", "burst", 60)
	}
	return limiter
}

// Client wraps the GitHub API client with rate limiting and a README memo.
type Client struct {
	c       *github.Client
	l       *rate.Limiter
	readmes *cache.Cache
}

// GitHubClientOptions configures the GitHub client.
type GitHubClientOptions struct {
	token      string
	limiter    *rate.Limiter
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	readmeTTL  time.Duration
}

// GitHubClientOption applies a configuration to GitHubClientOptions.
type GitHubClientOption func(*GitHubClientOptions)

// WithToken sets the personal access token for authenticated requests.
func WithToken(token string) GitHubClientOption {
	return func(o *GitHubClientOptions) { o.token = token }
}

// WithLimiter sets the rate limiter used for API calls. A nil limiter disables waiting.
func WithLimiter(l *rate.Limiter) GitHubClientOption {
	return func(o *GitHubClientOptions) { o.limiter = l }
}

// WithBaseURL points the client at another API root, e.g. a test stub.
func WithBaseURL(u string) GitHubClientOption {
	return func(o *GitHubClientOptions) { o.baseURL = u }
}

// WithTimeout bounds every HTTP request made by the client.
func WithTimeout(d time.Duration) GitHubClientOption {
	return func(o *GitHubClientOptions) { o.timeout = d }
}

// WithHTTPClient replaces the underlying HTTP client. WithTimeout is ignored when set.
func WithHTTPClient(hc *http.Client) GitHubClientOption {
	return func(o *GitHubClientOptions) { o.httpClient = hc }
}

// WithReadmeCacheTTL sets how long fetched README bodies are reused.
func WithReadmeCacheTTL(d time.Duration) GitHubClientOption {
	return func(o *GitHubClientOptions) { o.readmeTTL = d }
}

// NewClient constructs a GitHub Client with the given options.
func NewClient(opts ...GitHubClientOption) (*Client, error) {
	o := GitHubClientOptions{readmeTTL: time.Hour}
	for _, opt := range opts {
		opt(&o)
	}
	hc := o.httpClient
	if hc == nil {
		hc = &http.Client{
			Timeout:   o.timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	gc := github.NewClient(hc)
	if o.token != "" {
		slog.Info("Using authenticated GitHub client")
		gc = gc.WithAuthToken(o.token)
	} else {
		slog.Warn("Using unauthenticated GitHub client (rate limited)")
	}
	if o.baseURL != "" {
		u, err := url.Parse(o.baseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub base URL %q: %w", o.baseURL, err)
		}
		if !strings.HasSuffix(u.Path, "/") {
			u.Path += "/"
		}
		gc.BaseURL = u
	}
	return &Client{
		c:       gc,
		l:       o.limiter,
		readmes: cache.New(o.readmeTTL, 2*o.readmeTTL),
	}, nil
}

func (c *Client) wait(ctx context.Context) error {
	if c.l == nil {
		return nil
	}
	if err := c.l.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait failed: %w", err)
	}
	return nil
}

// Gist is the subset of the gist API payload the loaders read. It is decoded
// directly because the typed go-github model drops the per-file truncated flag.
type Gist struct {
	ID          string              `json:"id"`
	Description string              `json:"description"`
	HTMLURL     string              `json:"html_url"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
	Owner       *GistOwner          `json:"owner"`
	Files       map[string]GistFile `json:"files"`
}

type GistOwner struct {
	Login string `json:"login"`
}

type GistFile struct {
	Filename  string `json:"filename"`
	Content   string `json:"content"`
	RawURL    string `json:"raw_url"`
	Truncated bool   `json:"truncated"`
	Size      int    `json:"size"`
}

// GetGist fetches a single gist by id.
func (c *Client) GetGist(ctx context.Context, id string) (*Gist, error) {
	ctx, span := otel.Tracer("portfolio/github").Start(ctx, "Client.GetGist")
	span.SetAttributes(attribute.String("gist_id", id))
	defer span.End()
	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	req, err := c.c.NewRequest(http.MethodGet, "gists/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	var g Gist
	if _, err := c.c.Do(ctx, req, &g); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("failed to get gist %s: %w", id, err)
	}
	return &g, nil
}

// FetchRaw downloads a raw file body such as a gist raw_url or README download_url.
func (c *Client) FetchRaw(ctx context.Context, rawURL string) ([]byte, error) {
	ctx, span := otel.Tracer("portfolio/github").Start(ctx, "Client.FetchRaw")
	span.SetAttributes(attribute.String("url", rawURL))
	defer span.End()
	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	req, err := c.c.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err := c.c.Do(ctx, req, &buf); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("failed to fetch raw content %s: %w", rawURL, err)
	}
	return buf.Bytes(), nil
}

// GetRepository fetches repository metadata.
func (c *Client) GetRepository(ctx context.Context, owner, repo string) (*github.Repository, error) {
	ctx, span := otel.Tracer("portfolio/github").Start(ctx, "Client.GetRepository")
	span.SetAttributes(attribute.String("owner", owner), attribute.String("repo", repo))
	defer span.End()
	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	r, _, err := c.c.Repositories.Get(ctx, owner, repo)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("failed to get repo info for %s/%s: %w", owner, repo, err)
	}
	return r, nil
}

// ListUserRepositories lists the repositories owned by user, most recently updated first.
func (c *Client) ListUserRepositories(ctx context.Context, user string) ([]*github.Repository, error) {
	ctx, span := otel.Tracer("portfolio/github").Start(ctx, "Client.ListUserRepositories")
	span.SetAttributes(attribute.String("user", user))
	defer span.End()
	opts := &github.RepositoryListByUserOptions{
		Type:        "owner",
		Sort:        "updated",
		ListOptions: github.ListOptions{PerPage: 100},
	}
	var all []*github.Repository
	for {
		if err := c.wait(ctx); err != nil {
			return nil, err
		}
		repos, resp, err := c.c.Repositories.ListByUser(ctx, user, opts)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, fmt.Errorf("failed to list repos for %s: %w", user, err)
		}
		all = append(all, repos...)
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	span.SetAttributes(attribute.Int("repos_len", len(all)))
	return all, nil
}

// PullRequestQuery returns the search query for pull requests authored by
// user against repositories user does not own.
func PullRequestQuery(user string) string {
	return fmt.Sprintf("is:pr author:%s -user:%s", user, user)
}

// SearchPullRequests returns up to 100 pull requests authored by user outside
// their own repositories, most recently updated first, and the total match count.
func (c *Client) SearchPullRequests(ctx context.Context, user string) ([]*github.Issue, int, error) {
	ctx, span := otel.Tracer("portfolio/github").Start(ctx, "Client.SearchPullRequests")
	span.SetAttributes(attribute.String("user", user))
	defer span.End()
	if err := c.wait(ctx); err != nil {
		return nil, 0, err
	}
	res, _, err := c.c.Search.Issues(ctx, PullRequestQuery(user), &github.SearchOptions{
		Sort:        "updated",
		Order:       "desc",
		ListOptions: github.ListOptions{PerPage: 100},
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, 0, fmt.Errorf("failed to search pull requests for %s: %w", user, err)
	}
	return res.Issues, res.GetTotal(), nil
}

// GetPullRequest fetches pull request details including line stats and merge state.
func (c *Client) GetPullRequest(ctx context.Context, owner, repo string, number int) (*github.PullRequest, error) {
	ctx, span := otel.Tracer("portfolio/github").Start(ctx, "Client.GetPullRequest")
	span.SetAttributes(
		attribute.String("owner", owner),
		attribute.String("repo", repo),
		attribute.Int("number", number),
	)
	defer span.End()
	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	pr, _, err := c.c.PullRequests.Get(ctx, owner, repo, number)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("failed to get pull request %s/%s#%d: %w", owner, repo, number, err)
	}
	return pr, nil
}

// GetReadme retrieves the README body of a repository. The inline body is
// used when present; otherwise the download_url is fetched.
func (c *Client) GetReadme(ctx context.Context, owner, repo string) ([]byte, error) {
	key := owner + "/" + repo
	if v, ok := c.readmes.Get(key); ok {
		slog.DebugContext(ctx, "README served from cache", "owner", owner, "repo", repo)
		return v.([]byte), nil
	}
	ctx, span := otel.Tracer("portfolio/github").Start(ctx, "Client.GetReadme")
	span.SetAttributes(attribute.String("owner", owner), attribute.String("repo", repo))
	defer span.End()
	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	rc, _, err := c.c.Repositories.GetReadme(ctx, owner, repo, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("failed to get README for %s/%s: %w", owner, repo, err)
	}
	body, decErr := rc.GetContent()
	if decErr != nil || body == "" {
		if rc.GetDownloadURL() == "" {
			return nil, fmt.Errorf("README for %s/%s has no content and no download_url", owner, repo)
		}
		slog.DebugContext(ctx, "README not inline; fetching download_url",
			"owner", owner, "repo", repo, "error", decErr)
		raw, err := c.FetchRaw(ctx, rc.GetDownloadURL())
		if err != nil {
			return nil, err
		}
		body = string(raw)
	}
	b := []byte(body)
	c.readmes.Set(key, b, cache.DefaultExpiration)
	return b, nil
}

// StatusCode returns the HTTP status of a failed GitHub call, or 0 when the
// request never got a response.
func StatusCode(err error) int {
	var er *github.ErrorResponse
	if errors.As(err, &er) && er.Response != nil {
		return er.Response.StatusCode
	}
	var rl *github.RateLimitError
	if errors.As(err, &rl) && rl.Response != nil {
		return rl.Response.StatusCode
	}
	var ab *github.AbuseRateLimitError
	if errors.As(err, &ab) && ab.Response != nil {
		return ab.Response.StatusCode
	}
	return 0
}
