package services

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/thomas-vilte/matedraft/internal/models"
)

type MockVCSClient struct {
	mock.Mock
}

func (m *MockVCSClient) ListReleases(ctx context.Context) ([]models.Release, error) {
	args := m.Called(ctx)
	var releases []models.Release
	if args.Get(0) != nil {
		releases = args.Get(0).([]models.Release)
	}
	return releases, args.Error(1)
}

func (m *MockVCSClient) GenerateReleaseNotes(ctx context.Context, previousTag, nextTag string) (string, error) {
	args := m.Called(ctx, previousTag, nextTag)
	return args.String(0), args.Error(1)
}

func (m *MockVCSClient) UpdateDraft(ctx context.Context, draft models.Release, body string) (models.Release, error) {
	args := m.Called(ctx, draft, body)
	return args.Get(0).(models.Release), args.Error(1)
}

func (m *MockVCSClient) CreateDraft(ctx context.Context, tag string) (models.Release, error) {
	args := m.Called(ctx, tag)
	return args.Get(0).(models.Release), args.Error(1)
}
