package loader

import (
	"fmt"

	"mfuertes.net/portfolio/internal/config"
)

// Source is one configured origin of content. The set of variants is closed.
type Source interface {
	fmt.Stringer
	isSource()
}

// GistSource names a single gist by its gist.github.com URL.
type GistSource struct {
	URL string
}

// RepositorySource names a single repository by its github.com URL.
type RepositorySource struct {
	URL        string
	ShowReadme bool
}

// UserRepositoriesSource lists the public repositories owned by Username,
// minus those the filters exclude.
type UserRepositoriesSource struct {
	Username        string
	ExcludeForks    bool
	ExcludeArchived bool
	MinStars        int
	ShowReadme      bool
}

// ContributionSource finds pull requests Username opened against repositories
// they do not own.
type ContributionSource struct {
	Username string
}

func (GistSource) isSource()             {}
func (RepositorySource) isSource()       {}
func (UserRepositoriesSource) isSource() {}
func (ContributionSource) isSource()     {}

func (s GistSource) String() string       { return "gist " + s.URL }
func (s RepositorySource) String() string { return "repository " + s.URL }
func (s UserRepositoriesSource) String() string {
	return "repositories of " + s.Username
}
func (s ContributionSource) String() string { return "contributions of " + s.Username }

// NewUserRepositoriesSource returns a listing source with the default
// filters: forks and archived repositories excluded, no star minimum.
func NewUserRepositoriesSource(username string) UserRepositoriesSource {
	return UserRepositoriesSource{Username: username, ExcludeForks: true, ExcludeArchived: true}
}

// SourceSet groups configured sources by the content kind they produce.
type SourceSet struct {
	Gists         []Source
	Repositories  []Source
	Contributions []Source
}

// SourcesFromConfig converts validated configuration entries into sources.
func SourcesFromConfig(cfg *config.Sources) SourceSet {
	var set SourceSet
	for _, u := range cfg.Gists {
		set.Gists = append(set.Gists, GistSource{URL: u})
	}
	for _, r := range cfg.Repositories {
		set.Repositories = append(set.Repositories, RepositorySource{URL: r.URL, ShowReadme: r.ShowReadme})
	}
	for _, u := range cfg.UserRepositories {
		src := NewUserRepositoriesSource(u.Username)
		if u.ExcludeForks != nil {
			src.ExcludeForks = *u.ExcludeForks
		}
		if u.ExcludeArchived != nil {
			src.ExcludeArchived = *u.ExcludeArchived
		}
		src.MinStars = u.MinStars
		src.ShowReadme = u.ShowReadme
		set.Repositories = append(set.Repositories, src)
	}
	for _, c := range cfg.Contributions {
		set.Contributions = append(set.Contributions, ContributionSource{Username: c.Username})
	}
	return set
}
