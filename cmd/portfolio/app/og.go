package app

import (
	"context"

	"mfuertes.net/portfolio/internal/config"
	"mfuertes.net/portfolio/internal/content"
	"mfuertes.net/portfolio/internal/og"
)

// GenerateImages renders a preview image for every eligible record in the
// content snapshot.
func GenerateImages(ctx context.Context, cfg *config.Config, r og.Renderer) (int, error) {
	catalog, err := content.LoadFile(cfg.GetContentFile())
	if err != nil {
		return 0, err
	}
	return og.Generate(ctx, r, og.Targets(catalog), cfg.GetOGDir())
}
