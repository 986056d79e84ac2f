package loader

import (
	"context"
	"fmt"
	"log/slog"

	gh "github.com/google/go-github/v75/github"
	"k8s.io/utils/ptr"

	"mfuertes.net/portfolio/internal/content"
	"mfuertes.net/portfolio/internal/github"
	"mfuertes.net/portfolio/internal/slug"
)

// ContributionTag is the single tag carried by every contribution record.
const ContributionTag = "contribution"

// pullRequest is a search hit joined with its detail payload. detail is nil
// when the detail fetch failed.
type pullRequest struct {
	issue  *gh.Issue
	owner  string
	repo   string
	detail *gh.PullRequest
}

func (pr *pullRequest) label() string {
	return fmt.Sprintf("%s/%s#%d", pr.owner, pr.repo, pr.issue.GetNumber())
}

// state resolves the pull request state: merged wins over the detail state,
// and a missing detail counts as open.
func (pr *pullRequest) state() content.PRState {
	switch {
	case pr.detail == nil:
		return content.PRStateOpen
	case pr.detail.GetMerged():
		return content.PRStateMerged
	case pr.detail.GetState() == "closed":
		return content.PRStateClosed
	}
	return content.PRStateOpen
}

func (p *Pipeline) contributionBundle(src ContributionSource) bundle[*gh.Issue, *pullRequest] {
	return bundle[*gh.Issue, *pullRequest]{
		source: src,
		expand: func(ctx context.Context) ([]*gh.Issue, error) {
			if src.Username == "" {
				return nil, fmt.Errorf("%w: empty username", slug.ErrInvalidSource)
			}
			issues, total, err := p.gh.SearchPullRequests(ctx, src.Username)
			if err != nil {
				return nil, err
			}
			slog.InfoContext(ctx, "Found pull requests", "username", src.Username, "total", total, "fetched", len(issues))
			return issues, nil
		},
		label: func(is *gh.Issue) string { return is.GetHTMLURL() },
		fetch: func(ctx context.Context, is *gh.Issue) (*pullRequest, error) {
			pr := &pullRequest{issue: is}
			owner, repo, err := slug.ParseRepositoryAPIURL(is.GetRepositoryURL())
			if err != nil {
				return pr, nil
			}
			pr.owner, pr.repo = owner, repo
			detail, err := p.gh.GetPullRequest(ctx, owner, repo, is.GetNumber())
			if err != nil {
				slog.WarnContext(ctx, "Failed to fetch pull request details; keeping search data",
					"pr", pr.label(), "status", github.StatusCode(err), "error", err)
				return pr, nil
			}
			pr.detail = detail
			return pr, nil
		},
		exclude: func(pr *pullRequest) string {
			if pr.state() == content.PRStateClosed {
				return "closed without merge"
			}
			return ""
		},
		id: func(pr *pullRequest) (string, error) {
			if pr.owner == "" || pr.repo == "" {
				return "", fmt.Errorf("%w: repository_url %q", slug.ErrInvalidSource, pr.issue.GetRepositoryURL())
			}
			return slug.ContributionID(pr.owner, pr.repo, pr.issue.GetNumber()), nil
		},
		normalize: func(_ context.Context, id string, pr *pullRequest) (*content.Record, error) {
			return normalizeContribution(id, src.Username, pr), nil
		},
	}
}

func normalizeContribution(id, username string, pr *pullRequest) *content.Record {
	is := pr.issue
	date := is.GetCreatedAt().Time
	full := pr.owner + "/" + pr.repo
	fields := &content.ContributionFields{
		Repo:     full,
		PRNumber: is.GetNumber(),
		State:    pr.state(),
	}
	if pr.detail != nil {
		fields.Additions = pr.detail.GetAdditions()
		fields.Deletions = pr.detail.GetDeletions()
		if fields.State == content.PRStateMerged && pr.detail.MergedAt != nil {
			fields.MergedAt = ptr.To(pr.detail.MergedAt.Time)
		}
	}
	rec := &content.Record{
		ID:           id,
		Kind:         content.KindContribution,
		Slug:         slug.Generate(is.GetTitle(), date),
		Title:        is.GetTitle(),
		Description:  full,
		Date:         date,
		Author:       username,
		URL:          is.GetHTMLURL(),
		Tags:         []string{ContributionTag},
		Contribution: fields,
	}
	if is.UpdatedAt != nil {
		rec.Updated = ptr.To(is.UpdatedAt.Time)
	}
	return rec
}
