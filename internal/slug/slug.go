package slug

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrInvalidSource reports a source reference no identifier can be derived from.
var ErrInvalidSource = errors.New("cannot derive id from source")

// MinLength is the slug length below which Generate prefixes the year.
const MinLength = 10

var (
	gistURLPattern = regexp.MustCompile(`(?i)gist\.github\.com/[^/]+/([a-f0-9]+)`)
	gistIDPattern  = regexp.MustCompile(`(?i)^[a-f0-9]+$`)
	// Scheme and user info are optional; the host must be github.com itself.
	repoURLPattern = regexp.MustCompile(`(?i)^(?:[a-z][a-z0-9+.-]*://)?(?:[^@/\s]+@)?(?:www\.)?github\.com/([^/\s]+)/([^/?#\s]+)`)

	// Unicode separators count as whitespace alongside ASCII \s.
	invalidChars = regexp.MustCompile(`[^a-z0-9\s\p{Z}\x{FEFF}-]`)
	whitespace   = regexp.MustCompile(`[\s\p{Z}\x{FEFF}]+`)
	hyphens      = regexp.MustCompile(`-+`)
	wordBreaks   = regexp.MustCompile(`[-_]`)
)

// ParseGistURL extracts the gist id from a gist.github.com/<user>/<id> URL.
func ParseGistURL(u string) (string, error) {
	m := gistURLPattern.FindStringSubmatch(u)
	if m == nil {
		return "", fmt.Errorf("%w: gist url %q", ErrInvalidSource, u)
	}
	return m[1], nil
}

// ParseRepositoryURL extracts owner and repository name from a github.com URL.
// The scheme is optional and a trailing ".git" is dropped. Other GitHub hosts
// such as gist.github.com and api.github.com are rejected.
func ParseRepositoryURL(u string) (owner, repo string, err error) {
	m := repoURLPattern.FindStringSubmatch(strings.TrimSpace(u))
	if m == nil {
		return "", "", fmt.Errorf("%w: repository url %q", ErrInvalidSource, u)
	}
	repo = strings.TrimSuffix(m[2], ".git")
	if m[1] == "" || repo == "" {
		return "", "", fmt.Errorf("%w: repository url %q", ErrInvalidSource, u)
	}
	return m[1], repo, nil
}

// ParseRepositoryAPIURL extracts owner and repository name from the
// repository_url of a search result (https://api.github.com/repos/<owner>/<repo>).
func ParseRepositoryAPIURL(u string) (owner, repo string, err error) {
	parts := strings.Split(strings.TrimRight(u, "/"), "/")
	if len(parts) < 2 || parts[len(parts)-2] == "" || parts[len(parts)-1] == "" {
		return "", "", fmt.Errorf("%w: repository api url %q", ErrInvalidSource, u)
	}
	return parts[len(parts)-2], parts[len(parts)-1], nil
}

// GistID validates a gist identifier; gist ids are already unique.
func GistID(id string) (string, error) {
	if !gistIDPattern.MatchString(id) {
		return "", fmt.Errorf("%w: gist id %q", ErrInvalidSource, id)
	}
	return id, nil
}

// RepositoryID returns github-{owner}-{repo}.
func RepositoryID(owner, repo string) string {
	return "github-" + owner + "-" + repo
}

// ContributionID returns contribution-{owner}-{repo}-{number}.
func ContributionID(owner, repo string, number int) string {
	return "contribution-" + owner + "-" + repo + "-" + strconv.Itoa(number)
}

// Slugify converts text into a lowercase, diacritic-free, hyphenated slug.
func Slugify(text string) string {
	s := strings.TrimSpace(strings.ToLower(text))
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if out, _, err := transform.String(t, s); err == nil {
		s = out
	}
	s = invalidChars.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, "-")
	s = hyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Generate returns the routing slug for a titled item. Slugs shorter than
// MinLength get the item's year as a prefix; this narrows collisions between
// short titles but does not rule them out within one year.
func Generate(title string, date time.Time) string {
	base := Slugify(title)
	if len(base) < MinLength {
		return fmt.Sprintf("%04d-%s", date.Year(), base)
	}
	return base
}

// Humanize turns a repository name like "my-cool_repo" into "My Cool Repo".
func Humanize(name string) string {
	words := strings.Split(wordBreaks.ReplaceAllString(name, " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
