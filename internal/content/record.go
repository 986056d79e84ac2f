package content

import (
	"fmt"
	"time"
)

// Kind identifies the source a record was normalized from.
type Kind string

const (
	KindGist         Kind = "gist"
	KindRepository   Kind = "repository"
	KindContribution Kind = "contribution"
)

// Kinds lists every source kind in catalog order.
var Kinds = []Kind{KindGist, KindRepository, KindContribution}

func (k Kind) Valid() bool {
	switch k {
	case KindGist, KindRepository, KindContribution:
		return true
	}
	return false
}

// PRState is the resolved state of a pull request.
type PRState string

const (
	PRStateOpen   PRState = "open"
	PRStateMerged PRState = "merged"
	PRStateClosed PRState = "closed"
)

// Record is the canonical normalized unit shared by all source kinds.
type Record struct {
	ID          string     `json:"id"`
	Kind        Kind       `json:"kind"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Date        time.Time  `json:"date"`
	Updated     *time.Time `json:"updated,omitempty"`
	Author      string     `json:"author,omitempty"`
	URL         string     `json:"url,omitempty"`
	Tags        []string   `json:"tags"`
	Draft       bool       `json:"draft"`
	ShowReadme  bool       `json:"showReadme,omitempty"`

	Repository   *RepositoryFields   `json:"repository,omitempty"`
	Contribution *ContributionFields `json:"contribution,omitempty"`

	Rendered *Document `json:"rendered,omitempty"`
}

// RepositoryFields carries repository-only metadata.
type RepositoryFields struct {
	Stars    int    `json:"stars"`
	Forks    int    `json:"forks"`
	Language string `json:"language"`
}

// ContributionFields carries pull-request-only metadata. Repo references a
// repository by "owner/name" only.
type ContributionFields struct {
	Repo      string     `json:"repo"`
	PRNumber  int        `json:"prNumber"`
	MergedAt  *time.Time `json:"mergedAt"`
	Additions int        `json:"additions"`
	Deletions int        `json:"deletions"`
	State     PRState    `json:"state"`
}

// Document is a long-form body rendered once at load time.
type Document struct {
	HTML     string    `json:"html"`
	Headings []Heading `json:"headings,omitempty"`
}

// Heading is an h2/h3 anchor inside a rendered document.
type Heading struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Level int    `json:"level"`
}

// Validate checks the fields every record must carry.
func (r *Record) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("record has no id")
	}
	if r.Title == "" {
		return fmt.Errorf("record %s has no title", r.ID)
	}
	if !r.Kind.Valid() {
		return fmt.Errorf("record %s has unknown kind %q", r.ID, r.Kind)
	}
	if r.Kind == KindContribution {
		if r.Contribution == nil {
			return fmt.Errorf("contribution %s has no pull request fields", r.ID)
		}
		if r.Contribution.State != PRStateOpen && r.Contribution.State != PRStateMerged {
			return fmt.Errorf("contribution %s has state %q", r.ID, r.Contribution.State)
		}
	}
	return nil
}
