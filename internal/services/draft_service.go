package services

import (
	"context"
	"strings"

	"github.com/thomas-vilte/matedraft/internal/logger"
	"github.com/thomas-vilte/matedraft/internal/models"
	"github.com/thomas-vilte/matedraft/internal/vcs"
)

// DraftService orchestrates the draft-release workflow against the hosting
// service: scanning for candidates, generating notes and applying mutations.
type DraftService struct {
	client vcs.VCSClient
}

func NewDraftService(client vcs.VCSClient) *DraftService {
	return &DraftService{client: client}
}

// ScanReleases fetches the first releases page and scans it in the returned
// order, recording the first draft and the first published release whose tag
// ends in ".0". The endpoint's newest-first ordering is a relied-upon
// contract; the scan stops as soon as both candidates are found.
func (s *DraftService) ScanReleases(ctx context.Context) (*models.ReleaseSummary, error) {
	releases, err := s.client.ListReleases(ctx)
	if err != nil {
		return nil, err
	}

	summary := scanReleases(releases)

	logger.Debug(ctx, "release scan finished",
		"scanned", len(releases),
		"draft_tag", summary.DraftTag(),
		"minor_tag", summary.MinorTag)

	return summary, nil
}

func scanReleases(releases []models.Release) *models.ReleaseSummary {
	summary := &models.ReleaseSummary{}

	for i := range releases {
		r := releases[i]

		if summary.Draft == nil && r.Draft {
			summary.Draft = &r
		}

		if summary.MinorTag == "" && !r.Draft && strings.HasSuffix(r.TagName, ".0") {
			summary.MinorTag = r.TagName
		}

		if summary.Complete() {
			break
		}
	}

	return summary
}

// GenerateNotes asks the hosting service for generated notes covering the
// previousTag -> nextTag range. The body comes back trimmed; emptiness and
// malformed responses are already fatal errors at the client level.
func (s *DraftService) GenerateNotes(ctx context.Context, previousTag, nextTag string) (string, error) {
	return s.client.GenerateReleaseNotes(ctx, previousTag, nextTag)
}

// UpdateDraft replaces an existing draft's body with the new note text and
// returns the canonical URL of the updated release.
func (s *DraftService) UpdateDraft(ctx context.Context, draft *models.Release, body string) (string, error) {
	updated, err := s.client.UpdateDraft(ctx, *draft, body)
	if err != nil {
		return "", err
	}

	logger.Info(ctx, "draft release updated", "tag", draft.TagName, "url", updated.URL)
	return updated.URL, nil
}

// CreateDraft creates a new draft release tagged with tag, letting the
// hosting service generate its notes, and returns the canonical URL.
func (s *DraftService) CreateDraft(ctx context.Context, tag string) (string, error) {
	created, err := s.client.CreateDraft(ctx, tag)
	if err != nil {
		return "", err
	}

	logger.Info(ctx, "draft release created", "tag", tag, "url", created.URL)
	return created.URL, nil
}
