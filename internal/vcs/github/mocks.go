package github

import (
	"context"

	"github.com/google/go-github/v80/github"
	"github.com/stretchr/testify/mock"
)

type MockRepositoriesService struct {
	mock.Mock
}

func (m *MockRepositoriesService) ListReleases(ctx context.Context, owner, repo string, opts *github.ListOptions) ([]*github.RepositoryRelease, *github.Response, error) {
	args := m.Called(ctx, owner, repo, opts)
	return args.Get(0).([]*github.RepositoryRelease), args.Get(1).(*github.Response), args.Error(2)
}

func (m *MockRepositoriesService) GenerateReleaseNotes(ctx context.Context, owner, repo string, opts *github.GenerateNotesOptions) (*github.RepositoryReleaseNotes, *github.Response, error) {
	args := m.Called(ctx, owner, repo, opts)
	var notes *github.RepositoryReleaseNotes
	if args.Get(0) != nil {
		notes = args.Get(0).(*github.RepositoryReleaseNotes)
	}
	return notes, args.Get(1).(*github.Response), args.Error(2)
}

func (m *MockRepositoriesService) EditRelease(ctx context.Context, owner, repo string, id int64, release *github.RepositoryRelease) (*github.RepositoryRelease, *github.Response, error) {
	args := m.Called(ctx, owner, repo, id, release)
	return args.Get(0).(*github.RepositoryRelease), args.Get(1).(*github.Response), args.Error(2)
}

func (m *MockRepositoriesService) CreateRelease(ctx context.Context, owner, repo string, release *github.RepositoryRelease) (*github.RepositoryRelease, *github.Response, error) {
	args := m.Called(ctx, owner, repo, release)
	return args.Get(0).(*github.RepositoryRelease), args.Get(1).(*github.Response), args.Error(2)
}
