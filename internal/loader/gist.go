package loader

import (
	"context"
	"fmt"
	"path"
	"sort"
	"strings"

	"k8s.io/utils/ptr"

	"mfuertes.net/portfolio/internal/content"
	"mfuertes.net/portfolio/internal/github"
	"mfuertes.net/portfolio/internal/markdown"
	"mfuertes.net/portfolio/internal/slug"
)

// UnknownAuthor is the author of a gist without an owner.
const UnknownAuthor = "Unknown"

func (p *Pipeline) gistBundle(src GistSource) bundle[string, *github.Gist] {
	return bundle[string, *github.Gist]{
		source: src,
		expand: func(context.Context) ([]string, error) {
			id, err := slug.ParseGistURL(src.URL)
			if err != nil {
				return nil, err
			}
			return []string{id}, nil
		},
		label: func(id string) string { return id },
		fetch: p.gh.GetGist,
		id:    func(g *github.Gist) (string, error) { return slug.GistID(g.ID) },
		normalize: func(ctx context.Context, id string, g *github.Gist) (*content.Record, error) {
			return normalizeGist(ctx, p.gh, id, g)
		},
	}
}

// markdownFile returns the first markdown file of g in filename order.
func markdownFile(g *github.Gist) (github.GistFile, bool) {
	names := make([]string, 0, len(g.Files))
	for name := range g.Files {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		f := g.Files[name]
		if f.Filename == "" {
			f.Filename = name
		}
		switch strings.ToLower(path.Ext(f.Filename)) {
		case ".md", ".markdown":
			return f, true
		}
	}
	return github.GistFile{}, false
}

func normalizeGist(ctx context.Context, client GitHub, id string, g *github.Gist) (*content.Record, error) {
	f, ok := markdownFile(g)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoMarkdown, id)
	}
	body := []byte(f.Content)
	if f.Truncated || f.Content == "" {
		raw, err := client.FetchRaw(ctx, f.RawURL)
		if err != nil {
			return nil, err
		}
		body = raw
	}
	doc, err := markdown.Render(body)
	if err != nil {
		return nil, fmt.Errorf("failed to render gist %s: %w", id, err)
	}

	title := g.Description
	if title == "" {
		title = f.Filename
	}
	author := UnknownAuthor
	if g.Owner != nil && g.Owner.Login != "" {
		author = g.Owner.Login
	}
	rec := &content.Record{
		ID:          id,
		Kind:        content.KindGist,
		Slug:        slug.Generate(title, g.CreatedAt),
		Title:       title,
		Description: g.Description,
		Date:        g.CreatedAt,
		Author:      author,
		URL:         g.HTMLURL,
		Tags:        []string{},
		Rendered:    doc,
	}
	if !g.UpdatedAt.IsZero() {
		rec.Updated = ptr.To(g.UpdatedAt)
	}
	return rec, nil
}
