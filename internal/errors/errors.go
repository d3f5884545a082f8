package errors

import "fmt"

// ErrorType defines the category of the error
type ErrorType string

const (
	TypeConfiguration ErrorType = "CONFIGURATION"
	TypeVCS           ErrorType = "VCS"
	TypeAuth          ErrorType = "AUTH"
	TypeInternal      ErrorType = "INTERNAL"
)

// AppError represents a domain-level error with a type, optional context and
// a user-facing suggestion
type AppError struct {
	Type       ErrorType
	Message    string
	Context    map[string]interface{}
	Err        error
	Suggestion string
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithError creates a new AppError with an underlying error
func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        err,
		Suggestion: e.Suggestion,
	}
}

// WithContext creates a new AppError with additional context
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	ctx := make(map[string]interface{}, len(e.Context)+1)
	for k, v := range e.Context {
		ctx[k] = v
	}
	ctx[key] = value
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    ctx,
		Err:        e.Err,
		Suggestion: e.Suggestion,
	}
}

func (e *AppError) WithSuggestion(suggestion string) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        e.Err,
		Suggestion: suggestion,
	}
}

// NewAppError creates a new AppError
func NewAppError(t ErrorType, msg string, err error) *AppError {
	return &AppError{
		Type:    t,
		Message: msg,
		Err:     err,
	}
}

// Configuration errors
var (
	ErrInvalidRepo = NewAppError(TypeConfiguration, "invalid repository name", nil).
			WithSuggestion("Use the owner/name form, e.g. mojombo/jekyll")

	ErrTokenMissing = NewAppError(TypeAuth, "unable to get GitHub token", nil).
			WithSuggestion("Export GH_TOKEN, log in with 'gh auth login', or type the token when prompted")
)

// GitHub errors mapped from HTTP statuses
var (
	ErrTokenInvalid = NewAppError(TypeAuth, "GitHub token is invalid or expired", nil).
			WithSuggestion("Generate a new token at: https://github.com/settings/tokens")

	ErrInsufficientPerms = NewAppError(TypeAuth, "GitHub token has insufficient permissions", nil).
				WithSuggestion("Token needs the 'repo' scope.\nRegenerate at: https://github.com/settings/tokens")

	ErrRateLimit = NewAppError(TypeVCS, "GitHub API rate limit exceeded", nil).
			WithSuggestion("Wait a few minutes or use a personal access token for higher limits")

	ErrRepositoryNotFound = NewAppError(TypeVCS, "repository not found", nil).
				WithSuggestion("Check the owner/name spelling and your access permissions")
)

// Release workflow errors
var (
	ErrListReleases = NewAppError(TypeVCS, "failed to list releases", nil).
			WithSuggestion("Verify the repository has releases: gh release list")

	ErrGenerateNotes = NewAppError(TypeVCS, "unable to generate release notes", nil).
				WithSuggestion("Check both tags exist in the repository: gh release list")

	ErrEmptyNotes = NewAppError(TypeVCS, "unable to get release notes text", nil).
			WithSuggestion("The generate-notes endpoint returned an empty body; check the tag range")

	ErrUpdateRelease = NewAppError(TypeVCS, "failed to update release", nil).
				WithSuggestion("Verify the draft still exists: gh release list")

	ErrCreateRelease = NewAppError(TypeVCS, "failed to create release", nil).
				WithSuggestion("Check your GitHub token has 'repo' permissions")
)
