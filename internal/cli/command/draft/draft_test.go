package draft

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/thomas-vilte/matedraft/internal/i18n"
	"github.com/thomas-vilte/matedraft/internal/models"
)

// runTest drives runDraft against canned stdin and captures its output.
// interactive is off so spinners degrade to plain prints.
func runTest(t *testing.T, service draftService, input string) (string, error) {
	t.Helper()

	trans, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)

	var out bytes.Buffer
	opts := runOptions{
		repo:        "test-owner/test-repo",
		useColor:    false,
		interactive: false,
	}
	err = runDraft(context.Background(), service, trans, bufio.NewReader(strings.NewReader(input)), &out, opts)
	return out.String(), err
}

func summaryWith(draft *models.Release, minorTag string) *models.ReleaseSummary {
	return &models.ReleaseSummary{Draft: draft, MinorTag: minorTag}
}

func TestRunDraft_NothingFound(t *testing.T) {
	mockService := new(MockDraftService)
	mockService.On("ScanReleases", mock.Anything).Return(summaryWith(nil, ""), nil)

	output, err := runTest(t, mockService, "")

	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(output, "(NONE)"))
	assert.Contains(t, output, "No draft or minor release found")
	assert.Contains(t, output, "Exiting")
	mockService.AssertNotCalled(t, "GenerateNotes", mock.Anything, mock.Anything, mock.Anything)
}

func TestRunDraft_ScanError(t *testing.T) {
	mockService := new(MockDraftService)
	mockService.On("ScanReleases", mock.Anything).
		Return((*models.ReleaseSummary)(nil), errors.New("api down"))

	_, err := runTest(t, mockService, "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "api down")
}

func TestRunDraft_UpdateFlow(t *testing.T) {
	draftRelease := &models.Release{
		ID:      7,
		TagName: "v1.5.0-rc1",
		Name:    "v1.5.0-rc1",
		Body:    "## What's Changed\n* old entry\n",
		Draft:   true,
	}

	t.Run("should show the tags and exit when declined", func(t *testing.T) {
		mockService := new(MockDraftService)
		mockService.On("ScanReleases", mock.Anything).
			Return(summaryWith(draftRelease, "v1.4.0"), nil)

		output, err := runTest(t, mockService, "n\n")

		require.NoError(t, err)
		assert.Contains(t, output, "Latest draft: v1.5.0-rc1")
		assert.Contains(t, output, "Latest minor: v1.4.0")
		assert.Contains(t, output, "Exiting")
		mockService.AssertNotCalled(t, "GenerateNotes", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should exit without updating when the notes did not change", func(t *testing.T) {
		mockService := new(MockDraftService)
		mockService.On("ScanReleases", mock.Anything).
			Return(summaryWith(draftRelease, "v1.4.0"), nil)
		mockService.On("GenerateNotes", mock.Anything, "v1.4.0", "v1.5.0-rc1").
			Return("## What's Changed\n* old entry", nil)

		output, err := runTest(t, mockService, "y\n")

		require.NoError(t, err)
		assert.Contains(t, output, "No updates to the release note")
		assert.Contains(t, output, "Exiting")
		mockService.AssertNotCalled(t, "UpdateDraft", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should show the diff and update on double confirmation", func(t *testing.T) {
		newNote := "## What's Changed\n* new entry"

		mockService := new(MockDraftService)
		mockService.On("ScanReleases", mock.Anything).
			Return(summaryWith(draftRelease, "v1.4.0"), nil)
		mockService.On("GenerateNotes", mock.Anything, "v1.4.0", "v1.5.0-rc1").
			Return(newNote, nil)
		mockService.On("UpdateDraft", mock.Anything, draftRelease, newNote).
			Return("https://github.com/test-owner/test-repo/releases/7", nil)

		output, err := runTest(t, mockService, "y\nyes\n")

		require.NoError(t, err)
		assert.Contains(t, output, "-* old entry")
		assert.Contains(t, output, "+* new entry")
		assert.Contains(t, output, "Updating existing draft release...")
		assert.Contains(t, output, "Updated draft release in https://github.com/test-owner/test-repo/releases/7")
		mockService.AssertExpectations(t)
	})

	t.Run("should not update when the diff is declined", func(t *testing.T) {
		mockService := new(MockDraftService)
		mockService.On("ScanReleases", mock.Anything).
			Return(summaryWith(draftRelease, "v1.4.0"), nil)
		mockService.On("GenerateNotes", mock.Anything, "v1.4.0", "v1.5.0-rc1").
			Return("## What's Changed\n* new entry", nil)

		output, err := runTest(t, mockService, "y\nn\n")

		require.NoError(t, err)
		assert.Contains(t, output, "+* new entry")
		assert.Contains(t, output, "Exiting")
		mockService.AssertNotCalled(t, "UpdateDraft", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should take the update path even when a minor tag exists", func(t *testing.T) {
		mockService := new(MockDraftService)
		mockService.On("ScanReleases", mock.Anything).
			Return(summaryWith(draftRelease, "v1.4.0"), nil)

		output, err := runTest(t, mockService, "n\n")

		require.NoError(t, err)
		assert.Contains(t, output, "Update old draft release?")
		assert.NotContains(t, output, "Create new draft release?")
		mockService.AssertNotCalled(t, "CreateDraft", mock.Anything, mock.Anything)
	})

	t.Run("should propagate note generation errors", func(t *testing.T) {
		mockService := new(MockDraftService)
		mockService.On("ScanReleases", mock.Anything).
			Return(summaryWith(draftRelease, "v1.4.0"), nil)
		mockService.On("GenerateNotes", mock.Anything, "v1.4.0", "v1.5.0-rc1").
			Return("", errors.New("bad range"))

		_, err := runTest(t, mockService, "y\n")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "bad range")
	})
}

func TestRunDraft_CreateFlow(t *testing.T) {
	t.Run("should exit when declined", func(t *testing.T) {
		mockService := new(MockDraftService)
		mockService.On("ScanReleases", mock.Anything).
			Return(summaryWith(nil, "v1.4.0"), nil)

		output, err := runTest(t, mockService, "n\n")

		require.NoError(t, err)
		assert.Contains(t, output, "Create new draft release?")
		assert.Contains(t, output, "Exiting")
		mockService.AssertNotCalled(t, "GenerateNotes", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should create the next minor on double confirmation", func(t *testing.T) {
		mockService := new(MockDraftService)
		mockService.On("ScanReleases", mock.Anything).
			Return(summaryWith(nil, "v1.4.0"), nil)
		mockService.On("GenerateNotes", mock.Anything, "v1.4.0", "v1.5.0").
			Return("## What's Changed\n* everything", nil)
		mockService.On("CreateDraft", mock.Anything, "v1.5.0").
			Return("https://github.com/test-owner/test-repo/releases/8", nil)

		output, err := runTest(t, mockService, "y\ny\n")

		require.NoError(t, err)
		assert.Contains(t, output, "Generating release notes v1.4.0 -> v1.5.0...")
		assert.Contains(t, output, "* everything")
		assert.Contains(t, output, "Creating new draft release...")
		assert.Contains(t, output, "Created draft release in https://github.com/test-owner/test-repo/releases/8")
		mockService.AssertExpectations(t)
	})

	t.Run("should not create when the note is declined", func(t *testing.T) {
		mockService := new(MockDraftService)
		mockService.On("ScanReleases", mock.Anything).
			Return(summaryWith(nil, "v1.4.0"), nil)
		mockService.On("GenerateNotes", mock.Anything, "v1.4.0", "v1.5.0").
			Return("## What's Changed", nil)

		output, err := runTest(t, mockService, "y\nn\n")

		require.NoError(t, err)
		assert.Contains(t, output, "Exiting")
		mockService.AssertNotCalled(t, "CreateDraft", mock.Anything, mock.Anything)
	})

	t.Run("should ask for the version when the tag is not semver", func(t *testing.T) {
		mockService := new(MockDraftService)
		mockService.On("ScanReleases", mock.Anything).
			Return(summaryWith(nil, "v2.x.0"), nil)
		mockService.On("GenerateNotes", mock.Anything, "v2.x.0", "v3.0.0").
			Return("## What's Changed", nil)
		mockService.On("CreateDraft", mock.Anything, "v3.0.0").
			Return("https://github.com/test-owner/test-repo/releases/9", nil)

		output, err := runTest(t, mockService, "y\nV3.0.0\ny\n")

		require.NoError(t, err)
		assert.Contains(t, output, "unable to determine next release version")
		assert.Contains(t, output, "Type in your desired next release version")
		mockService.AssertExpectations(t)
	})

	t.Run("should exit when no manual version is typed", func(t *testing.T) {
		mockService := new(MockDraftService)
		mockService.On("ScanReleases", mock.Anything).
			Return(summaryWith(nil, "v2.x.0"), nil)

		output, err := runTest(t, mockService, "y\n\n")

		require.NoError(t, err)
		assert.Contains(t, output, "Exiting")
		mockService.AssertNotCalled(t, "GenerateNotes", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should propagate creation errors", func(t *testing.T) {
		mockService := new(MockDraftService)
		mockService.On("ScanReleases", mock.Anything).
			Return(summaryWith(nil, "v1.4.0"), nil)
		mockService.On("GenerateNotes", mock.Anything, "v1.4.0", "v1.5.0").
			Return("## What's Changed", nil)
		mockService.On("CreateDraft", mock.Anything, "v1.5.0").
			Return("", errors.New("already exists"))

		_, err := runTest(t, mockService, "y\ny\n")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
	})
}

func TestSplitRepo(t *testing.T) {
	t.Run("should split the owner/name form", func(t *testing.T) {
		owner, name, err := SplitRepo("mojombo/jekyll")

		require.NoError(t, err)
		assert.Equal(t, "mojombo", owner)
		assert.Equal(t, "jekyll", name)
	})

	t.Run("should reject a bare name", func(t *testing.T) {
		_, _, err := SplitRepo("jekyll")

		assert.Error(t, err)
	})

	t.Run("should reject an empty owner", func(t *testing.T) {
		_, _, err := SplitRepo("/jekyll")

		assert.Error(t, err)
	})

	t.Run("should reject an empty name", func(t *testing.T) {
		_, _, err := SplitRepo("mojombo/")

		assert.Error(t, err)
	})

	t.Run("should reject extra segments", func(t *testing.T) {
		_, _, err := SplitRepo("github.com/mojombo/jekyll")

		assert.Error(t, err)
	})
}
