package app

import (
	"context"
	"fmt"
	"log/slog"

	"mfuertes.net/portfolio/internal/config"
	"mfuertes.net/portfolio/internal/content"
	"mfuertes.net/portfolio/internal/github"
	"mfuertes.net/portfolio/internal/loader"
)

// Loader runs every configured source into a fresh catalog.
type Loader struct {
	cfg      *config.Config
	pipeline *loader.Pipeline
}

// NewLoaderForConfig builds the GitHub client and pipeline from cfg. The
// token is read once here and handed to the client.
func NewLoaderForConfig(cfg *config.Config) (*Loader, error) {
	token := cfg.GetGitHubToken()
	opts := []github.GitHubClientOption{
		github.WithLimiter(github.NewGitHubLimiter(token != "")),
		github.WithTimeout(cfg.GetHTTPTimeout()),
	}
	if token != "" {
		opts = append(opts, github.WithToken(token))
	}
	if u := cfg.GetGitHubBaseURL(); u != "" {
		opts = append(opts, github.WithBaseURL(u))
	}
	client, err := github.NewClient(opts...)
	if err != nil {
		return nil, err
	}
	return NewLoader(cfg, client), nil
}

// NewLoader constructs a Loader over an existing GitHub client.
func NewLoader(cfg *config.Config, client loader.GitHub) *Loader {
	return &Loader{
		cfg: cfg,
		pipeline: loader.NewPipeline(client,
			loader.WithConcurrency(cfg.GetLoadConcurrency()),
			loader.WithItemTimeout(2*cfg.GetHTTPTimeout()),
		),
	}
}

// Run loads gists, repositories and contributions, each kind replacing its
// own store. A cancelled ctx stops the run with an error and no catalog.
func (l *Loader) Run(ctx context.Context) (*content.Catalog, loader.Report, error) {
	var total loader.Report
	srcs, err := l.cfg.Sources()
	if err != nil {
		return nil, total, err
	}
	set := loader.SourcesFromConfig(srcs)
	catalog := content.NewCatalog()
	for _, kind := range []struct {
		kind    content.Kind
		sources []loader.Source
	}{
		{content.KindGist, set.Gists},
		{content.KindRepository, set.Repositories},
		{content.KindContribution, set.Contributions},
	} {
		r, err := l.pipeline.Load(ctx, catalog.Store(kind.kind), loader.Replace, kind.sources...)
		if err != nil {
			return nil, total, fmt.Errorf("failed to load %s records: %w", kind.kind, err)
		}
		slog.InfoContext(ctx, "Loaded collection",
			"kind", kind.kind,
			"records", catalog.Store(kind.kind).Len(),
			"failed", r.Failed,
		)
		total.Loaded += r.Loaded
		total.Excluded += r.Excluded
		total.Skipped += r.Skipped
		total.Failed += r.Failed
	}
	return catalog, total, nil
}
