package models

type (
	// Release is the slice of a hosted release this tool reads and mutates.
	// Identity is the tag name within a repository; the numeric ID is only
	// needed to address the release on the edit endpoint.
	Release struct {
		ID      int64
		TagName string
		Name    string
		Body    string
		Draft   bool
		URL     string
	}

	// ReleaseSummary collects the scan candidates from a single releases page:
	// the newest draft release and the tag of the newest published minor
	// release (tag ending in ".0"). Either may be absent.
	ReleaseSummary struct {
		Draft    *Release
		MinorTag string
	}
)

// DraftTag returns the draft candidate's tag, or "" when no draft was found.
func (s *ReleaseSummary) DraftTag() string {
	if s.Draft == nil {
		return ""
	}
	return s.Draft.TagName
}

// Complete reports whether both candidates were found, which lets the scanner
// stop early.
func (s *ReleaseSummary) Complete() bool {
	return s.Draft != nil && s.MinorTag != ""
}
