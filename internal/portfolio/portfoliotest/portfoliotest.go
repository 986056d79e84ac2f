// Package portfoliotest builds in-memory portfolio data for tests.
package portfoliotest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"mfuertes.net/portfolio/internal/content"
	"mfuertes.net/portfolio/internal/portfolio"
	"mfuertes.net/portfolio/internal/profile"
)

const ProfileYAML = `
profile:
  name: Miguel Fuertes
  title: Software Engineer
  bio: Builds things.
  email: me@example.com
  github: https://github.com/hkfuertes
  linkedin: https://linkedin.com/in/example
  website: https://mfuertes.net
  location: Madrid
skills:
  languages: [Go]
  frameworks: [Astro]
  cloud_infrastructure: [Kubernetes]
  domains: [Embedded]
experience:
  - company: Acme Corp
    position: Engineer
    period: 2020 - 2024
    location: Remote
    summary: Shipped things.
    highlights: [Led migration]
    stack: [Go]
featured_projects:
  - name: ha-tools
    description: Home Assistant CLI tool
    url: https://github.com/hkfuertes/ha-tools
education:
  - degree: BSc Computer Science
    institution: UPM
    period: 2010 - 2015
    location: Madrid
`

// New returns a Portfolio with the profile above, one extra repository and
// one merged contribution.
func New(t *testing.T) *portfolio.Portfolio {
	t.Helper()
	data, err := profile.Decode([]byte(ProfileYAML))
	require.NoError(t, err)

	merged := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	c := content.NewCatalog()
	c.Store(content.KindRepository).Set("github-hkfuertes-site", &content.Record{
		ID: "github-hkfuertes-site", Kind: content.KindRepository, Title: "site",
		Description: "Personal website", URL: "https://github.com/hkfuertes/site", Tags: []string{},
		Repository: &content.RepositoryFields{Stars: 2},
	})
	c.Store(content.KindContribution).Set("contribution-owner-repo-42", &content.Record{
		ID: "contribution-owner-repo-42", Kind: content.KindContribution, Title: "Add feature",
		Description: "owner/repo", URL: "https://github.com/owner/repo/pull/42",
		Date: merged.Add(-24 * time.Hour), Tags: []string{"contribution"},
		Contribution: &content.ContributionFields{
			Repo: "owner/repo", PRNumber: 42, State: content.PRStateMerged, MergedAt: &merged,
		},
	})
	return portfolio.New(data, c)
}
