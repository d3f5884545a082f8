package vcs

import (
	"context"

	"github.com/thomas-vilte/matedraft/internal/models"
)

// VCSClient is the hosting-service surface the draft workflow needs.
type VCSClient interface {
	// ListReleases returns the most recent page of releases in the order the
	// service returns them (newest first).
	ListReleases(ctx context.Context) ([]models.Release, error)
	// GenerateReleaseNotes asks the service to generate notes for the
	// previousTag -> nextTag range and returns the trimmed body.
	GenerateReleaseNotes(ctx context.Context, previousTag, nextTag string) (string, error)
	// UpdateDraft replaces the draft's body, re-asserting its name and draft
	// status, and returns the updated release.
	UpdateDraft(ctx context.Context, draft models.Release, body string) (models.Release, error)
	// CreateDraft creates a new draft release for tag with service-generated
	// notes and returns it.
	CreateDraft(ctx context.Context, tag string) (models.Release, error)
}
