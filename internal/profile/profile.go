// Package profile holds the CV data served by the query server and renders
// it into markdown text blocks.
package profile

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"mfuertes.net/portfolio/internal/content"
)

// Data is the decoded profile file.
type Data struct {
	Profile          Profile      `yaml:"profile"`
	Skills           Skills       `yaml:"skills"`
	Experience       []Experience `yaml:"experience"`
	FeaturedProjects []Project    `yaml:"featured_projects"`
	Education        []Education  `yaml:"education"`
}

type Profile struct {
	Name     string `yaml:"name"`
	Title    string `yaml:"title"`
	Bio      string `yaml:"bio"`
	Email    string `yaml:"email"`
	GitHub   string `yaml:"github"`
	LinkedIn string `yaml:"linkedin"`
	Website  string `yaml:"website"`
	Location string `yaml:"location"`
}

type Skills struct {
	Languages           []string `yaml:"languages"`
	Frameworks          []string `yaml:"frameworks"`
	CloudInfrastructure []string `yaml:"cloud_infrastructure"`
	Domains             []string `yaml:"domains"`
}

type Experience struct {
	Company    string   `yaml:"company"`
	Position   string   `yaml:"position"`
	Period     string   `yaml:"period"`
	Location   string   `yaml:"location"`
	Summary    string   `yaml:"summary"`
	Highlights []string `yaml:"highlights"`
	Stack      []string `yaml:"stack"`
}

// Project is a featured project. Description is optional.
type Project struct {
	Name        string   `yaml:"name"`
	Description *string  `yaml:"description"`
	URL         string   `yaml:"url"`
	Stars       int      `yaml:"stars"`
	Forks       int      `yaml:"forks"`
	Topics      []string `yaml:"topics"`
	Status      string   `yaml:"status"`
	Period      string   `yaml:"period"`
}

func (p Project) description() string {
	if p.Description == nil {
		return ""
	}
	return *p.Description
}

type Education struct {
	Degree      string `yaml:"degree"`
	Institution string `yaml:"institution"`
	Period      string `yaml:"period"`
	Location    string `yaml:"location"`
	Note        string `yaml:"note"`
}

// Decode parses a profile document.
func Decode(b []byte) (*Data, error) {
	var d Data
	dec := yaml.NewDecoder(bytes.NewReader(b))
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}
	return &d, nil
}

// LoadFile reads and decodes the profile file at path.
func LoadFile(path string) (*Data, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile %s: %w", path, err)
	}
	return Decode(b)
}

// MergeRepositories appends repository records to the featured projects.
// A record whose URL matches a featured project is dropped; the featured
// entry wins.
func (d *Data) MergeRepositories(records []*content.Record) {
	seen := make(map[string]struct{}, len(d.FeaturedProjects))
	for _, p := range d.FeaturedProjects {
		seen[normalizeURL(p.URL)] = struct{}{}
	}
	for _, r := range records {
		if r.Kind != content.KindRepository {
			continue
		}
		key := normalizeURL(r.URL)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		p := Project{Name: r.Title, URL: r.URL, Topics: r.Tags}
		if r.Description != "" {
			desc := r.Description
			p.Description = &desc
		}
		if r.Repository != nil {
			p.Stars = r.Repository.Stars
			p.Forks = r.Repository.Forks
		}
		d.FeaturedProjects = append(d.FeaturedProjects, p)
	}
}

func normalizeURL(u string) string {
	return strings.TrimSuffix(strings.ToLower(strings.TrimSpace(u)), "/")
}
