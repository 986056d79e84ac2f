package config

import (
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
)

// Sources is the decoded sources file.
type Sources struct {
	Gists            []string                `mapstructure:"gists"`
	Repositories     []RepositoryEntry       `mapstructure:"repositories"`
	UserRepositories []UserRepositoriesEntry `mapstructure:"user_repositories"`
	Contributions    []ContributionsEntry    `mapstructure:"contributions"`
}

// RepositoryEntry configures a single repository by URL.
type RepositoryEntry struct {
	URL        string `mapstructure:"url" validate:"required"`
	ShowReadme bool   `mapstructure:"show_readme"`
}

// UserRepositoriesEntry configures the public repositories of one user.
// ExcludeForks and ExcludeArchived default to true when omitted.
type UserRepositoriesEntry struct {
	Username        string `mapstructure:"username" validate:"required"`
	ExcludeForks    *bool  `mapstructure:"exclude_forks"`
	ExcludeArchived *bool  `mapstructure:"exclude_archived"`
	MinStars        int    `mapstructure:"min_stars" validate:"gte=0"`
	ShowReadme      bool   `mapstructure:"show_readme"`
}

// ContributionsEntry configures the pull-request search for one author.
type ContributionsEntry struct {
	Username string `mapstructure:"username" validate:"required"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Sources decodes the sources section of the loaded file. Entries failing
// validation are logged and dropped; only a malformed document is an error.
func (c *Config) Sources() (*Sources, error) {
	var raw Sources
	if err := c.v.Unmarshal(&raw); err != nil {
		return nil, fmt.Errorf("decode sources: %w", err)
	}

	out := &Sources{}
	for i, g := range raw.Gists {
		if err := validate.Var(g, "required"); err != nil {
			slog.Warn("Dropping invalid gist entry", "index", i, "error", err)
			continue
		}
		out.Gists = append(out.Gists, g)
	}
	out.Repositories = validEntries("repositories", raw.Repositories)
	out.UserRepositories = validEntries("user_repositories", raw.UserRepositories)
	out.Contributions = validEntries("contributions", raw.Contributions)
	return out, nil
}

func validEntries[T any](section string, in []T) []T {
	out := make([]T, 0, len(in))
	for i := range in {
		if err := validate.Struct(in[i]); err != nil {
			slog.Warn("Dropping invalid source entry", "section", section, "index", i, "error", err)
			continue
		}
		out = append(out, in[i])
	}
	return out
}
