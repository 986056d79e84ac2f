// Package portfolio aggregates the static data served by the query server.
package portfolio

import (
	"context"
	"errors"
	"log/slog"

	"mfuertes.net/portfolio/internal/config"
	"mfuertes.net/portfolio/internal/content"
	"mfuertes.net/portfolio/internal/profile"
)

// Portfolio holds the profile and content catalog. Both are loaded once and
// never mutated afterwards.
type Portfolio struct {
	data    *profile.Data
	catalog *content.Catalog
}

// NewForConfig reads the profile file and the content snapshot named by cfg.
// A missing snapshot yields an empty catalog.
func NewForConfig(cfg *config.Config) (*Portfolio, error) {
	data, err := profile.LoadFile(cfg.GetProfileFile())
	if err != nil {
		return nil, err
	}
	catalog, err := content.LoadFile(cfg.GetContentFile())
	if err != nil {
		return nil, err
	}
	slog.Info("Loaded portfolio data",
		"profile", cfg.GetProfileFile(),
		"content", cfg.GetContentFile(),
		"records", catalog.Len(),
	)
	return New(data, catalog), nil
}

// New constructs a Portfolio and merges the catalog's repositories into the
// featured projects.
func New(data *profile.Data, catalog *content.Catalog) *Portfolio {
	if catalog == nil {
		catalog = content.NewCatalog()
	}
	if data != nil {
		data.MergeRepositories(catalog.Store(content.KindRepository).All())
	}
	return &Portfolio{data: data, catalog: catalog}
}

// Profile returns the profile data.
func (p *Portfolio) Profile() *profile.Data { return p.data }

// Contributions returns the contribution records in load order.
func (p *Portfolio) Contributions() []*content.Record {
	return p.catalog.Store(content.KindContribution).All()
}

// Ping reports whether the profile data is available.
func (p *Portfolio) Ping(context.Context) error {
	if p == nil || p.data == nil {
		return errors.New("profile data not loaded")
	}
	return nil
}
