// Package loader turns configured sources into normalized content records.
package loader

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	gh "github.com/google/go-github/v75/github"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"mfuertes.net/portfolio/internal/content"
	"mfuertes.net/portfolio/internal/github"
	"mfuertes.net/portfolio/internal/slug"
)

// GitHub is the subset of the GitHub client the loaders call.
type GitHub interface {
	GetGist(ctx context.Context, id string) (*github.Gist, error)
	FetchRaw(ctx context.Context, rawURL string) ([]byte, error)
	GetRepository(ctx context.Context, owner, repo string) (*gh.Repository, error)
	ListUserRepositories(ctx context.Context, user string) ([]*gh.Repository, error)
	SearchPullRequests(ctx context.Context, user string) ([]*gh.Issue, int, error)
	GetPullRequest(ctx context.Context, owner, repo string, number int) (*gh.PullRequest, error)
	GetReadme(ctx context.Context, owner, repo string) ([]byte, error)
}

// Mode decides what happens to a store's existing entries when a pass starts.
type Mode int

const (
	modeUnset Mode = iota
	// Replace clears the store before loading.
	Replace
	// Accumulate keeps existing entries; colliding ids are overwritten.
	Accumulate
)

func (m Mode) String() string {
	switch m {
	case Replace:
		return "replace"
	case Accumulate:
		return "accumulate"
	}
	return "unset"
}

var (
	// ErrModeRequired is returned when Load is called without a Mode.
	ErrModeRequired = errors.New("load mode is required")
	// ErrNoMarkdown marks a gist without any markdown file.
	ErrNoMarkdown = errors.New("gist has no markdown file")
)

// Report summarises one load pass.
type Report struct {
	Loaded   int
	Excluded int
	Skipped  int
	Failed   int
}

func (r *Report) add(o Report) {
	r.Loaded += o.Loaded
	r.Excluded += o.Excluded
	r.Skipped += o.Skipped
	r.Failed += o.Failed
}

// Pipeline fetches and normalizes sources into a content store.
type Pipeline struct {
	gh          GitHub
	concurrency int
	itemTimeout time.Duration
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline)

// WithConcurrency bounds how many items of one source are fetched at once.
// Values below 1 mean sequential processing.
func WithConcurrency(n int) PipelineOption {
	return func(p *Pipeline) { p.concurrency = n }
}

// WithItemTimeout bounds the fetch and normalization of a single item.
func WithItemTimeout(d time.Duration) PipelineOption {
	return func(p *Pipeline) { p.itemTimeout = d }
}

// NewPipeline constructs a Pipeline over the given GitHub client.
func NewPipeline(client GitHub, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{gh: client, concurrency: 1}
	for _, opt := range opts {
		opt(p)
	}
	if p.concurrency < 1 {
		p.concurrency = 1
	}
	return p
}

// Load runs every source through fetch, exclusion, id derivation and
// normalization, then writes the records into store in source order. Item
// and source failures are logged and counted, never returned. The error is
// reserved for misuse such as a missing mode, and for a cancelled ctx: the
// store then holds partial data that must not replace a complete snapshot.
func (p *Pipeline) Load(ctx context.Context, store *content.Store, mode Mode, sources ...Source) (Report, error) {
	var report Report
	if mode != Replace && mode != Accumulate {
		return report, ErrModeRequired
	}
	ctx, span := otel.Tracer("portfolio/loader").Start(ctx, "Pipeline.Load")
	span.SetAttributes(
		attribute.String("mode", mode.String()),
		attribute.Int("sources_len", len(sources)),
	)
	defer span.End()

	slog.InfoContext(ctx, "Loading sources", "sources", len(sources), "mode", mode.String())
	if mode == Replace {
		store.Clear()
	}
	for _, src := range sources {
		if ctx.Err() != nil {
			break
		}
		var r Report
		switch s := src.(type) {
		case GistSource:
			r = run(ctx, p, store, p.gistBundle(s))
		case RepositorySource:
			r = run(ctx, p, store, p.repositoryBundle(s))
		case UserRepositoriesSource:
			r = run(ctx, p, store, p.userRepositoriesBundle(s))
		case ContributionSource:
			r = run(ctx, p, store, p.contributionBundle(s))
		default:
			return report, fmt.Errorf("unsupported source %T", src)
		}
		report.add(r)
	}
	span.SetAttributes(
		attribute.Int("loaded", report.Loaded),
		attribute.Int("excluded", report.Excluded),
		attribute.Int("skipped", report.Skipped),
		attribute.Int("failed", report.Failed),
	)
	if err := ctx.Err(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		slog.WarnContext(ctx, "Load interrupted", "loaded", report.Loaded, "failed", report.Failed)
		return report, fmt.Errorf("load interrupted: %w", err)
	}
	if report.Failed > 0 {
		span.SetStatus(codes.Error, fmt.Sprintf("%d items failed", report.Failed))
	}
	slog.InfoContext(ctx, "Finished loading sources",
		"loaded", report.Loaded,
		"excluded", report.Excluded,
		"skipped", report.Skipped,
		"failed", report.Failed,
		"total", store.Len(),
	)
	return report, nil
}

// bundle is everything that differs between source kinds. I is the unit a
// source expands into and R the raw payload fetched for it.
type bundle[I, R any] struct {
	source Source
	// expand lists the items of the source. An error wrapping
	// slug.ErrInvalidSource means a malformed source, anything else a
	// batch-level fetch failure.
	expand func(ctx context.Context) ([]I, error)
	// label names an item in logs.
	label func(item I) string
	fetch func(ctx context.Context, item I) (R, error)
	// exclude reports why a fetched item is left out by policy, or "".
	exclude   func(raw R) string
	id        func(raw R) (string, error)
	normalize func(ctx context.Context, id string, raw R) (*content.Record, error)
}

type outcome int

const (
	outcomeLoaded outcome = iota
	outcomeExcluded
	outcomeSkipped
	outcomeFailed
)

type result struct {
	id      string
	record  *content.Record
	outcome outcome
}

func run[I, R any](ctx context.Context, p *Pipeline, store *content.Store, b bundle[I, R]) Report {
	var report Report
	items, err := b.expand(ctx)
	if err != nil {
		if errors.Is(err, slug.ErrInvalidSource) {
			slog.WarnContext(ctx, "Skipping invalid source", "source", b.source.String(), "error", err)
			report.Skipped++
			return report
		}
		slog.ErrorContext(ctx, "Failed to load source", "source", b.source.String(), "error", err)
		report.Failed++
		return report
	}
	slog.InfoContext(ctx, "Loading source", "source", b.source.String(), "items", len(items))

	results := make([]result, len(items))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)
	for i, item := range items {
		g.Go(func() error {
			results[i] = process(gctx, p, b, item)
			return nil
		})
	}
	_ = g.Wait()

	for _, res := range results {
		switch res.outcome {
		case outcomeLoaded:
			store.Set(res.id, res.record)
			report.Loaded++
		case outcomeExcluded:
			report.Excluded++
		case outcomeSkipped:
			report.Skipped++
		case outcomeFailed:
			report.Failed++
		}
	}
	return report
}

func process[I, R any](ctx context.Context, p *Pipeline, b bundle[I, R], item I) result {
	label := b.label(item)
	if p.itemTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.itemTimeout)
		defer cancel()
	}

	raw, err := b.fetch(ctx, item)
	if err != nil {
		slog.WarnContext(ctx, "Failed to fetch item",
			"source", b.source.String(), "item", label, "status", github.StatusCode(err), "error", err)
		return result{outcome: outcomeFailed}
	}
	if b.exclude != nil {
		if reason := b.exclude(raw); reason != "" {
			slog.DebugContext(ctx, "Excluding item", "source", b.source.String(), "item", label, "reason", reason)
			return result{outcome: outcomeExcluded}
		}
	}
	id, err := b.id(raw)
	if err != nil {
		slog.WarnContext(ctx, "Skipping item without a derivable id",
			"source", b.source.String(), "item", label, "error", err)
		return result{outcome: outcomeSkipped}
	}
	rec, err := b.normalize(ctx, id, raw)
	switch {
	case errors.Is(err, ErrNoMarkdown), errors.Is(err, slug.ErrInvalidSource):
		slog.WarnContext(ctx, "Skipping item", "source", b.source.String(), "item", label, "error", err)
		return result{outcome: outcomeSkipped}
	case err != nil:
		slog.WarnContext(ctx, "Failed to normalize item", "source", b.source.String(), "item", label, "error", err)
		return result{outcome: outcomeFailed}
	}
	if err := rec.Validate(); err != nil {
		slog.WarnContext(ctx, "Skipping invalid record", "source", b.source.String(), "item", label, "error", err)
		return result{outcome: outcomeSkipped}
	}
	slog.InfoContext(ctx, "Loaded item", "kind", rec.Kind, "id", id, "item", label)
	return result{id: id, record: rec, outcome: outcomeLoaded}
}
