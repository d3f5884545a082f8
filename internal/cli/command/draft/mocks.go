package draft

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/thomas-vilte/matedraft/internal/models"
)

type MockDraftService struct {
	mock.Mock
}

func (m *MockDraftService) ScanReleases(ctx context.Context) (*models.ReleaseSummary, error) {
	args := m.Called(ctx)
	var summary *models.ReleaseSummary
	if args.Get(0) != nil {
		summary = args.Get(0).(*models.ReleaseSummary)
	}
	return summary, args.Error(1)
}

func (m *MockDraftService) GenerateNotes(ctx context.Context, previousTag, nextTag string) (string, error) {
	args := m.Called(ctx, previousTag, nextTag)
	return args.String(0), args.Error(1)
}

func (m *MockDraftService) UpdateDraft(ctx context.Context, draft *models.Release, body string) (string, error) {
	args := m.Called(ctx, draft, body)
	return args.String(0), args.Error(1)
}

func (m *MockDraftService) CreateDraft(ctx context.Context, tag string) (string, error) {
	args := m.Called(ctx, tag)
	return args.String(0), args.Error(1)
}
