// Package og selects the records that get a social preview image and
// describes how each image is styled.
package og

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"unicode/utf8"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"mfuertes.net/portfolio/internal/content"
	"mfuertes.net/portfolio/internal/slug"
)

// Category selects the styling of a preview image.
type Category string

const (
	CategoryWriting      Category = "writing"
	CategoryProject      Category = "project"
	CategoryContribution Category = "contribution"
)

const (
	Width  = 1200
	Height = 630

	Background = "#0f1114"
)

// Target is one preview image to render.
type Target struct {
	ID       string
	Title    string
	Category Category
}

// Targets lists every record with a detail page: all gists, and repositories
// flagged ShowReadme. Contributions have no detail page.
func Targets(c *content.Catalog) []Target {
	var out []Target
	for _, r := range c.Store(content.KindGist).All() {
		out = append(out, Target{ID: r.ID, Title: r.Title, Category: CategoryWriting})
	}
	for _, r := range c.Store(content.KindRepository).All() {
		if !r.ShowReadme {
			continue
		}
		out = append(out, Target{ID: r.ID, Title: ProjectTitle(r), Category: CategoryProject})
	}
	return out
}

// ProjectTitle prefers a descriptive description over the repository name.
func ProjectTitle(r *content.Record) string {
	if utf8.RuneCountInString(r.Description) > 20 {
		return r.Description
	}
	return slug.Humanize(r.Title)
}

// Style is the visual treatment of one image.
type Style struct {
	Accent   string
	Label    string
	FontSize int
}

// StyleFor returns the style for a category and title.
func StyleFor(c Category, title string) Style {
	s := Style{Accent: "#6ee7b7", Label: "WRITING", FontSize: 80}
	switch c {
	case CategoryProject:
		s.Accent = "#10b981"
		s.Label = "PROJECT"
	case CategoryContribution:
		s.Label = "CONTRIBUTION"
	}
	switch n := utf8.RuneCountInString(title); {
	case n > 80:
		s.FontSize = 48
	case n > 50:
		s.FontSize = 64
	}
	return s
}

// Renderer rasterizes a title into PNG bytes.
type Renderer interface {
	Render(ctx context.Context, title string, style Style) ([]byte, error)
}

// Generate renders every target into dir/<id>.png. A failing target is
// logged and skipped; the count of written images is returned.
func Generate(ctx context.Context, r Renderer, targets []Target, dir string) (int, error) {
	ctx, span := otel.Tracer("portfolio/og").Start(ctx, "og.Generate")
	span.SetAttributes(attribute.Int("targets_len", len(targets)), attribute.String("dir", dir))
	defer span.End()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, fmt.Errorf("failed to create og dir %s: %w", dir, err)
	}
	written := 0
	for _, t := range targets {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		img, err := r.Render(ctx, t.Title, StyleFor(t.Category, t.Title))
		if err != nil {
			slog.WarnContext(ctx, "Failed to render og image", "id", t.ID, "error", err)
			continue
		}
		path := filepath.Join(dir, t.ID+".png")
		if err := os.WriteFile(path, img, 0o644); err != nil {
			slog.WarnContext(ctx, "Failed to write og image", "id", t.ID, "path", path, "error", err)
			continue
		}
		written++
	}
	slog.InfoContext(ctx, "Generated og images", "written", written, "targets", len(targets))
	return written, nil
}
