package loader

import (
	"context"
	"fmt"
	"log/slog"

	gh "github.com/google/go-github/v75/github"
	"k8s.io/utils/ptr"

	"mfuertes.net/portfolio/internal/content"
	"mfuertes.net/portfolio/internal/markdown"
	"mfuertes.net/portfolio/internal/slug"
)

type repoRef struct {
	owner, repo string
}

func (r repoRef) String() string { return r.owner + "/" + r.repo }

func (p *Pipeline) repositoryBundle(src RepositorySource) bundle[repoRef, *gh.Repository] {
	return bundle[repoRef, *gh.Repository]{
		source: src,
		expand: func(context.Context) ([]repoRef, error) {
			owner, repo, err := slug.ParseRepositoryURL(src.URL)
			if err != nil {
				return nil, err
			}
			return []repoRef{{owner: owner, repo: repo}}, nil
		},
		label: repoRef.String,
		fetch: func(ctx context.Context, ref repoRef) (*gh.Repository, error) {
			return p.gh.GetRepository(ctx, ref.owner, ref.repo)
		},
		id: repositoryID,
		normalize: func(ctx context.Context, id string, r *gh.Repository) (*content.Record, error) {
			return normalizeRepository(ctx, p.gh, id, r, src.ShowReadme), nil
		},
	}
}

func (p *Pipeline) userRepositoriesBundle(src UserRepositoriesSource) bundle[*gh.Repository, *gh.Repository] {
	return bundle[*gh.Repository, *gh.Repository]{
		source: src,
		expand: func(ctx context.Context) ([]*gh.Repository, error) {
			if src.Username == "" {
				return nil, fmt.Errorf("%w: empty username", slug.ErrInvalidSource)
			}
			return p.gh.ListUserRepositories(ctx, src.Username)
		},
		label: func(r *gh.Repository) string { return r.GetFullName() },
		fetch: func(_ context.Context, r *gh.Repository) (*gh.Repository, error) { return r, nil },
		exclude: func(r *gh.Repository) string {
			return excludeRepository(src, r)
		},
		id: repositoryID,
		normalize: func(ctx context.Context, id string, r *gh.Repository) (*content.Record, error) {
			return normalizeRepository(ctx, p.gh, id, r, src.ShowReadme), nil
		},
	}
}

// excludeRepository applies the listing filters and returns the reason a
// repository is left out, or "".
func excludeRepository(src UserRepositoriesSource, r *gh.Repository) string {
	switch {
	case src.ExcludeForks && r.GetFork():
		return "fork"
	case src.ExcludeArchived && r.GetArchived():
		return "archived"
	case r.GetStargazersCount() < src.MinStars:
		return fmt.Sprintf("%d stars below minimum %d", r.GetStargazersCount(), src.MinStars)
	}
	return ""
}

func repositoryID(r *gh.Repository) (string, error) {
	owner := r.GetOwner().GetLogin()
	if owner == "" || r.GetName() == "" {
		return "", fmt.Errorf("%w: repository %q has no owner or name", slug.ErrInvalidSource, r.GetFullName())
	}
	return slug.RepositoryID(owner, r.GetName()), nil
}

// normalizeRepository maps a repository payload to a record. A README that
// cannot be fetched or rendered leaves the record without a body.
func normalizeRepository(ctx context.Context, client GitHub, id string, r *gh.Repository, showReadme bool) *content.Record {
	owner := r.GetOwner().GetLogin()
	date := r.GetCreatedAt().Time
	tags := r.Topics
	if tags == nil {
		tags = []string{}
	}
	rec := &content.Record{
		ID:          id,
		Kind:        content.KindRepository,
		Slug:        slug.Generate(r.GetName(), date),
		Title:       r.GetName(),
		Description: r.GetDescription(),
		Date:        date,
		Author:      owner,
		URL:         r.GetHTMLURL(),
		Tags:        tags,
		ShowReadme:  showReadme,
		Repository: &content.RepositoryFields{
			Stars:    r.GetStargazersCount(),
			Forks:    r.GetForksCount(),
			Language: r.GetLanguage(),
		},
	}
	switch {
	case r.UpdatedAt != nil:
		rec.Updated = ptr.To(r.UpdatedAt.Time)
	case r.PushedAt != nil:
		rec.Updated = ptr.To(r.PushedAt.Time)
	}
	if !showReadme {
		return rec
	}
	body, err := client.GetReadme(ctx, owner, r.GetName())
	if err != nil {
		slog.WarnContext(ctx, "No README for repository", "owner", owner, "repo", r.GetName(), "error", err)
		return rec
	}
	doc, err := markdown.Render(body)
	if err != nil {
		slog.WarnContext(ctx, "Failed to render README", "owner", owner, "repo", r.GetName(), "error", err)
		return rec
	}
	rec.Rendered = doc
	return rec
}
