package diff

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/pmezard/go-difflib/difflib"
)

const (
	fromLabel = "Current draft"
	toLabel   = "New draft"
)

// Unified computes a line-based unified diff between the previous and next
// note bodies. An empty result means the bodies are line-identical.
func Unified(prev, next string) (string, error) {
	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(prev),
		B:        difflib.SplitLines(next),
		FromFile: fromLabel,
		ToFile:   toLabel,
		Context:  3,
	}

	text, err := difflib.GetUnifiedDiffString(ud)
	if err != nil {
		return "", fmt.Errorf("failed to compute diff: %w", err)
	}
	return text, nil
}

// Render writes the diff line by line: removals in red, additions in green,
// headers and context unstyled. With useColor false the output is plain text.
func Render(w io.Writer, text string, useColor bool) {
	if text == "" {
		return
	}

	removed := color.New(color.FgRed)
	added := color.New(color.FgGreen)

	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		line = strings.TrimRight(line, "\r")
		switch {
		case useColor && strings.HasPrefix(line, "-"):
			_, _ = fmt.Fprintln(w, removed.Sprint(line))
		case useColor && strings.HasPrefix(line, "+"):
			_, _ = fmt.Fprintln(w, added.Sprint(line))
		default:
			_, _ = fmt.Fprintln(w, line)
		}
	}
}
