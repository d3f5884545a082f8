package github

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/go-github/v80/github"
	domainErrors "github.com/thomas-vilte/matedraft/internal/errors"
	"github.com/thomas-vilte/matedraft/internal/logger"
	"github.com/thomas-vilte/matedraft/internal/models"
	"github.com/thomas-vilte/matedraft/internal/vcs"
	"golang.org/x/oauth2"
)

var _ vcs.VCSClient = (*Client)(nil)

// releasesPageSize bounds the scan: only the first page is ever consulted.
const releasesPageSize = 30

// RepositoriesService is a minimal interface over the go-github repositories
// service for testing purposes
type RepositoriesService interface {
	ListReleases(ctx context.Context, owner, repo string, opts *github.ListOptions) ([]*github.RepositoryRelease, *github.Response, error)
	GenerateReleaseNotes(ctx context.Context, owner, repo string, opts *github.GenerateNotesOptions) (*github.RepositoryReleaseNotes, *github.Response, error)
	EditRelease(ctx context.Context, owner, repo string, id int64, release *github.RepositoryRelease) (*github.RepositoryRelease, *github.Response, error)
	CreateRelease(ctx context.Context, owner, repo string, release *github.RepositoryRelease) (*github.RepositoryRelease, *github.Response, error)
}

type Client struct {
	repoService RepositoriesService
	owner       string
	repo        string
}

func NewClient(owner, repo, token string) *Client {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	client := github.NewClient(httpClient)
	return &Client{
		repoService: client.Repositories,
		owner:       owner,
		repo:        repo,
	}
}

func NewClientWithServices(repoService RepositoriesService, owner, repo string) *Client {
	return &Client{
		repoService: repoService,
		owner:       owner,
		repo:        repo,
	}
}

func (c *Client) ListReleases(ctx context.Context) ([]models.Release, error) {
	log := logger.FromContext(ctx)

	log.Debug("listing releases",
		"owner", c.owner,
		"repo", c.repo,
		"per_page", releasesPageSize)

	opts := &github.ListOptions{Page: 1, PerPage: releasesPageSize}
	releases, resp, err := c.repoService.ListReleases(ctx, c.owner, c.repo, opts)
	if err != nil {
		if mapped := c.mapStatusError(resp, "list releases"); mapped != nil {
			return nil, mapped
		}
		return nil, domainErrors.ErrListReleases.WithError(err).
			WithContext("repo", c.slug())
	}

	result := make([]models.Release, 0, len(releases))
	for _, r := range releases {
		result = append(result, models.Release{
			ID:      r.GetID(),
			TagName: r.GetTagName(),
			Name:    r.GetName(),
			Body:    r.GetBody(),
			Draft:   r.GetDraft(),
			URL:     r.GetHTMLURL(),
		})
	}

	log.Debug("releases listed", "count", len(result))
	return result, nil
}

func (c *Client) GenerateReleaseNotes(ctx context.Context, previousTag, nextTag string) (string, error) {
	log := logger.FromContext(ctx)

	log.Debug("generating release notes",
		"owner", c.owner,
		"repo", c.repo,
		"previous_tag", previousTag,
		"next_tag", nextTag)

	opts := &github.GenerateNotesOptions{TagName: nextTag}
	if previousTag != "" {
		opts.PreviousTagName = github.Ptr(previousTag)
	}

	notes, resp, err := c.repoService.GenerateReleaseNotes(ctx, c.owner, c.repo, opts)
	if err != nil {
		if mapped := c.mapStatusError(resp, "generate notes"); mapped != nil {
			return "", mapped
		}
		return "", domainErrors.ErrGenerateNotes.WithError(err).
			WithContext("previous_tag", previousTag).
			WithContext("next_tag", nextTag)
	}

	if notes == nil {
		return "", domainErrors.ErrGenerateNotes.
			WithContext("next_tag", nextTag)
	}

	body := strings.TrimSpace(notes.Body)
	if body == "" {
		return "", domainErrors.ErrEmptyNotes.
			WithContext("previous_tag", previousTag).
			WithContext("next_tag", nextTag)
	}

	return body, nil
}

func (c *Client) UpdateDraft(ctx context.Context, draft models.Release, body string) (models.Release, error) {
	log := logger.FromContext(ctx)

	log.Debug("updating draft release",
		"owner", c.owner,
		"repo", c.repo,
		"tag", draft.TagName,
		"release_id", draft.ID)

	update := &github.RepositoryRelease{
		Name:  github.Ptr(draft.Name),
		Body:  github.Ptr(body),
		Draft: github.Ptr(true),
	}

	updated, resp, err := c.repoService.EditRelease(ctx, c.owner, c.repo, draft.ID, update)
	if err != nil {
		if mapped := c.mapStatusError(resp, "update release"); mapped != nil {
			return models.Release{}, mapped
		}
		return models.Release{}, domainErrors.ErrUpdateRelease.WithError(err).
			WithContext("tag", draft.TagName)
	}

	return releaseFromGitHub(updated), nil
}

func (c *Client) CreateDraft(ctx context.Context, tag string) (models.Release, error) {
	log := logger.FromContext(ctx)

	log.Debug("creating draft release",
		"owner", c.owner,
		"repo", c.repo,
		"tag", tag)

	request := &github.RepositoryRelease{
		TagName:              github.Ptr(tag),
		Name:                 github.Ptr(tag),
		Draft:                github.Ptr(true),
		GenerateReleaseNotes: github.Ptr(true),
	}

	created, resp, err := c.repoService.CreateRelease(ctx, c.owner, c.repo, request)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnprocessableEntity {
			return models.Release{}, domainErrors.ErrCreateRelease.
				WithContext("tag", tag).
				WithContext("reason", "release already exists")
		}
		if mapped := c.mapStatusError(resp, "create release"); mapped != nil {
			return models.Release{}, mapped
		}
		return models.Release{}, domainErrors.ErrCreateRelease.WithError(err).
			WithContext("tag", tag)
	}

	return releaseFromGitHub(created), nil
}

// mapStatusError translates the well-known GitHub API statuses into the
// tool's error taxonomy. Returns nil for statuses without a dedicated error.
func (c *Client) mapStatusError(resp *github.Response, operation string) *domainErrors.AppError {
	if resp == nil {
		return nil
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return domainErrors.ErrTokenInvalid.
			WithContext("operation", operation)
	case http.StatusForbidden:
		return domainErrors.ErrInsufficientPerms.
			WithContext("operation", operation).
			WithContext("repo", c.slug())
	case http.StatusNotFound:
		return domainErrors.ErrRepositoryNotFound.
			WithContext("operation", operation).
			WithContext("repo", c.slug())
	case http.StatusTooManyRequests:
		return domainErrors.ErrRateLimit.
			WithContext("retry_after", resp.Header.Get("Retry-After")).
			WithContext("operation", operation)
	}
	return nil
}

func (c *Client) slug() string {
	return c.owner + "/" + c.repo
}

func releaseFromGitHub(r *github.RepositoryRelease) models.Release {
	if r == nil {
		return models.Release{}
	}
	return models.Release{
		ID:      r.GetID(),
		TagName: r.GetTagName(),
		Name:    r.GetName(),
		Body:    r.GetBody(),
		Draft:   r.GetDraft(),
		URL:     r.GetHTMLURL(),
	}
}
