// Package githubtest hosts an in-memory GitHub API for tests.
package githubtest

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"time"
)

type response struct {
	status int
	body   []byte
	delay  time.Duration
}

// Server answers GitHub API paths with canned payloads. Unregistered paths
// return 404 like the real API.
type Server struct {
	srv *httptest.Server

	mu      sync.Mutex
	routes  map[string]response
	hits    map[string]int
	queries map[string]url.Values
	auth    map[string]string
}

func NewServer() *Server {
	s := &Server{
		routes:  map[string]response{},
		hits:    map[string]int{},
		queries: map[string]url.Values{},
		auth:    map[string]string{},
	}
	s.srv = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

func (s *Server) Close() { s.srv.Close() }

// URL is the API base URL to hand to the client.
func (s *Server) URL() string { return s.srv.URL + "/" }

// RawURL returns an absolute URL on the stub for path.
func (s *Server) RawURL(path string) string { return s.srv.URL + path }

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.hits[r.URL.Path]++
	s.queries[r.URL.Path] = r.URL.Query()
	s.auth[r.URL.Path] = r.Header.Get("Authorization")
	resp, ok := s.routes[r.URL.Path]
	s.mu.Unlock()

	if !ok {
		resp = response{status: http.StatusNotFound, body: []byte(`{"message":"Not Found"}`)}
	}
	if resp.delay > 0 {
		select {
		case <-time.After(resp.delay):
		case <-r.Context().Done():
			return
		}
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(resp.status)
	_, _ = w.Write(resp.body)
}

func (s *Server) set(path string, resp response) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes[path] = resp
}

// JSON registers v as the 200 response for path.
func (s *Server) JSON(path string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("githubtest: marshal %s: %v", path, err))
	}
	s.set(path, response{status: http.StatusOK, body: b})
}

// Raw registers body as the 200 response for path.
func (s *Server) Raw(path, body string) {
	s.set(path, response{status: http.StatusOK, body: []byte(body)})
}

// Status makes path answer with an API error of the given status.
func (s *Server) Status(path string, status int) {
	s.set(path, response{status: status, body: []byte(fmt.Sprintf(`{"message":"%s"}`, http.StatusText(status)))})
}

// Slow delays the response for path by d.
func (s *Server) Slow(path string, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	resp, ok := s.routes[path]
	if !ok {
		resp = response{status: http.StatusOK, body: []byte(`{}`)}
	}
	resp.delay = d
	s.routes[path] = resp
}

func (s *Server) Hits(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[path]
}

// Query returns the query string of the last request to path.
func (s *Server) Query(path string) url.Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queries[path]
}

// Authorization returns the Authorization header of the last request to path.
func (s *Server) Authorization(path string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.auth[path]
}

// Payload builders shaped like the GitHub REST API.

// File describes one gist file.
type File struct {
	Name      string
	Content   string
	RawPath   string
	Truncated bool
}

func (s *Server) Gist(id, description, owner string, created time.Time, files ...File) {
	fm := map[string]any{}
	for _, f := range files {
		fm[f.Name] = map[string]any{
			"filename":  f.Name,
			"content":   f.Content,
			"raw_url":   s.RawURL(f.RawPath),
			"truncated": f.Truncated,
			"size":      len(f.Content),
		}
	}
	payload := map[string]any{
		"id":          id,
		"description": description,
		"html_url":    "https://gist.github.com/" + owner + "/" + id,
		"created_at":  created.UTC().Format(time.RFC3339),
		"updated_at":  created.Add(time.Hour).UTC().Format(time.RFC3339),
		"files":       fm,
	}
	if owner != "" {
		payload["owner"] = map[string]any{"login": owner}
	}
	s.JSON("/gists/"+id, payload)
}

// Repo describes one repository payload.
type Repo struct {
	Owner       string
	Name        string
	Description string
	Topics      []string
	Language    string
	Stars       int
	Forks       int
	Fork        bool
	Archived    bool
	Created     time.Time
	Updated     time.Time
	Pushed      time.Time
}

func (r Repo) payload() map[string]any {
	p := map[string]any{
		"name":             r.Name,
		"full_name":        r.Owner + "/" + r.Name,
		"html_url":         "https://github.com/" + r.Owner + "/" + r.Name,
		"owner":            map[string]any{"login": r.Owner},
		"stargazers_count": r.Stars,
		"forks_count":      r.Forks,
		"fork":             r.Fork,
		"archived":         r.Archived,
		"created_at":       r.Created.UTC().Format(time.RFC3339),
	}
	if r.Description != "" {
		p["description"] = r.Description
	}
	if r.Topics != nil {
		p["topics"] = r.Topics
	}
	if r.Language != "" {
		p["language"] = r.Language
	}
	if !r.Updated.IsZero() {
		p["updated_at"] = r.Updated.UTC().Format(time.RFC3339)
	}
	if !r.Pushed.IsZero() {
		p["pushed_at"] = r.Pushed.UTC().Format(time.RFC3339)
	}
	return p
}

func (s *Server) Repository(r Repo) {
	s.JSON("/repos/"+r.Owner+"/"+r.Name, r.payload())
}

func (s *Server) UserRepositories(user string, repos ...Repo) {
	out := make([]map[string]any, 0, len(repos))
	for _, r := range repos {
		out = append(out, r.payload())
	}
	s.JSON("/users/"+user+"/repos", out)
}

// Readme registers an inline base64 README for owner/repo.
func (s *Server) Readme(owner, repo, body string) {
	s.JSON("/repos/"+owner+"/"+repo+"/readme", map[string]any{
		"name":         "README.md",
		"encoding":     "base64",
		"content":      base64.StdEncoding.EncodeToString([]byte(body)),
		"download_url": s.RawURL("/raw/" + owner + "/" + repo + "/README.md"),
	})
}

// ReadmeByDownload registers a README whose body is only reachable through download_url.
func (s *Server) ReadmeByDownload(owner, repo, body string) {
	raw := "/raw/" + owner + "/" + repo + "/README.md"
	s.JSON("/repos/"+owner+"/"+repo+"/readme", map[string]any{
		"name":         "README.md",
		"encoding":     "none",
		"content":      "",
		"download_url": s.RawURL(raw),
	})
	s.Raw(raw, body)
}

// PR describes a pull request as seen by search and detail endpoints.
type PR struct {
	Owner     string
	Repo      string
	Number    int
	Title     string
	Created   time.Time
	Updated   time.Time
	State     string
	Merged    bool
	MergedAt  time.Time
	Additions int
	Deletions int
}

// SearchPullRequests registers the search result listing prs.
func (s *Server) SearchPullRequests(prs ...PR) {
	items := make([]map[string]any, 0, len(prs))
	for _, pr := range prs {
		state := "open"
		if pr.State != "open" {
			state = "closed"
		}
		items = append(items, map[string]any{
			"number":         pr.Number,
			"title":          pr.Title,
			"state":          state,
			"html_url":       fmt.Sprintf("https://github.com/%s/%s/pull/%d", pr.Owner, pr.Repo, pr.Number),
			"repository_url": s.RawURL("/repos/" + pr.Owner + "/" + pr.Repo),
			"created_at":     pr.Created.UTC().Format(time.RFC3339),
			"updated_at":     pr.Updated.UTC().Format(time.RFC3339),
			"pull_request":   map[string]any{"url": s.RawURL(fmt.Sprintf("/repos/%s/%s/pulls/%d", pr.Owner, pr.Repo, pr.Number))},
		})
	}
	s.JSON("/search/issues", map[string]any{
		"total_count":        len(prs),
		"incomplete_results": false,
		"items":              items,
	})
}

// PullRequest registers the detail payload of pr.
func (s *Server) PullRequest(pr PR) {
	p := map[string]any{
		"number":    pr.Number,
		"title":     pr.Title,
		"state":     pr.State,
		"merged":    pr.Merged,
		"additions": pr.Additions,
		"deletions": pr.Deletions,
	}
	if pr.Merged {
		p["merged_at"] = pr.MergedAt.UTC().Format(time.RFC3339)
	}
	s.JSON(fmt.Sprintf("/repos/%s/%s/pulls/%d", pr.Owner, pr.Repo, pr.Number), p)
}
