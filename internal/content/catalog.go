package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// Catalog holds one Store per source kind, so clearing one kind never drops
// records of another.
type Catalog struct {
	stores map[Kind]*Store
}

func NewCatalog() *Catalog {
	c := &Catalog{stores: make(map[Kind]*Store, len(Kinds))}
	for _, k := range Kinds {
		c.stores[k] = NewStore()
	}
	return c
}

// Store returns the store for kind k. It panics on an unknown kind.
func (c *Catalog) Store(k Kind) *Store {
	s, ok := c.stores[k]
	if !ok {
		panic(fmt.Sprintf("content: unknown kind %q", k))
	}
	return s
}

// All returns every record, kinds in catalog order.
func (c *Catalog) All() []*Record {
	var out []*Record
	for _, k := range Kinds {
		out = append(out, c.stores[k].All()...)
	}
	return out
}

func (c *Catalog) Len() int {
	n := 0
	for _, s := range c.stores {
		n += s.Len()
	}
	return n
}

// Snapshot is the on-disk form of a catalog handed to the site renderer and
// read back by the query server.
type Snapshot struct {
	GeneratedAt time.Time         `json:"generatedAt"`
	Collections map[Kind][]Record `json:"collections"`
}

// Encode writes the catalog as an indented JSON snapshot.
func (c *Catalog) Encode(w io.Writer, now time.Time) error {
	snap := Snapshot{GeneratedAt: now.UTC(), Collections: make(map[Kind][]Record, len(Kinds))}
	for _, k := range Kinds {
		recs := c.stores[k].All()
		out := make([]Record, 0, len(recs))
		for _, r := range recs {
			rec := *r
			if rec.Tags == nil {
				rec.Tags = []string{}
			}
			out = append(out, rec)
		}
		snap.Collections[k] = out
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}

// Decode reads a snapshot into a fresh catalog. Invalid records, and records
// whose kind differs from their collection, are skipped and logged.
func Decode(r io.Reader) (*Catalog, error) {
	var snap Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decode content snapshot: %w", err)
	}
	c := NewCatalog()
	for _, k := range Kinds {
		for i := range snap.Collections[k] {
			rec := snap.Collections[k][i]
			if rec.Kind == "" {
				rec.Kind = k
			}
			if rec.Kind != k {
				slog.Warn("Skipping snapshot record filed under another kind",
					"collection", k, "kind", rec.Kind, "id", rec.ID, "index", i)
				continue
			}
			if err := rec.Validate(); err != nil {
				slog.Warn("Skipping invalid snapshot record", "kind", k, "index", i, "error", err)
				continue
			}
			c.stores[k].Set(rec.ID, &rec)
		}
	}
	return c, nil
}

// SaveFile writes the snapshot to path through a temporary file.
func (c *Catalog) SaveFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".content-*.json")
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	defer os.Remove(tmp.Name())
	if err := c.Encode(tmp, time.Now()); err != nil {
		tmp.Close()
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close snapshot: %w", err)
	}
	return os.Rename(tmp.Name(), path)
}

// LoadFile reads a snapshot from path. A missing file yields an empty catalog.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		slog.Warn("Content snapshot not found; serving empty catalog", "path", path)
		return NewCatalog(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("open content snapshot: %w", err)
	}
	defer f.Close()
	return Decode(f)
}
