package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	domainErrors "github.com/thomas-vilte/matedraft/internal/errors"
	"github.com/thomas-vilte/matedraft/internal/i18n"
)

var (
	// Colors for different message types
	Success = color.New(color.FgGreen, color.Bold)
	Error   = color.New(color.FgRed, color.Bold)
	Warning = color.New(color.FgYellow, color.Bold)
	Info    = color.New(color.FgCyan, color.Bold)
	Dim     = color.New(color.FgHiBlack)
)

const borderWidth = 40

// PrintBorder writes the section separator the tool uses around summaries,
// diffs and generated notes.
func PrintBorder(w io.Writer) {
	_, _ = fmt.Fprintln(w, strings.Repeat("=", borderWidth))
}

func PrintWarning(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s\n", Warning.Sprint(msg))
}

// AskConfirmation prints the question with a [y/N] suffix and reads one line.
// Only "y" or "yes" (case-insensitive) count as affirmative; everything else,
// including a read error, declines.
func AskConfirmation(reader *bufio.Reader, w io.Writer, question string) bool {
	_, _ = fmt.Fprintf(w, "%s [y/N]: ", question)
	response, err := reader.ReadString('\n')
	if err != nil && response == "" {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}

// WithSpinner runs fn behind a terminal spinner. When interactive is false
// (not a TTY, tests) the message is printed as a plain line instead.
func WithSpinner(w io.Writer, message string, interactive bool, fn func() error) error {
	if !interactive {
		_, _ = fmt.Fprintln(w, message)
		return fn()
	}

	s := spinner.New(
		spinner.CharSets[14],
		100*time.Millisecond,
		spinner.WithColor("cyan"),
		spinner.WithSuffix(" "+message),
	)
	s.Start()
	err := fn()
	s.Stop()

	// Keep the step visible in the transcript once the spinner is gone.
	_, _ = fmt.Fprintln(w, message)
	return err
}

// HandleAppError displays an application error in a friendly way.
// If translations is nil, it uses English defaults.
func HandleAppError(w io.Writer, err error, translations ...*i18n.Translations) {
	if err == nil {
		return
	}

	var t *i18n.Translations
	if len(translations) > 0 && translations[0] != nil {
		t = translations[0]
	}

	var appErr *domainErrors.AppError
	if !errors.As(err, &appErr) {
		_, _ = fmt.Fprintf(w, "%s %s\n", Error.Sprint("✗"), err.Error())
		return
	}

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintf(w, "%s\n", Error.Sprintf("✗ %s: %s", appErr.Type, appErr.Message))

	if appErr.Err != nil {
		_, _ = fmt.Fprintf(w, "%s\n", Dim.Sprintf("   Details: %v", appErr.Err))
	}

	if appErr.Suggestion != "" {
		tryPrefix := "Try: "
		if t != nil {
			tryPrefix = t.GetMessage("ui_error.try_suggestion", 0, nil)
		}
		_, _ = fmt.Fprintln(w)
		for i, line := range strings.Split(appErr.Suggestion, "\n") {
			if i == 0 {
				_, _ = fmt.Fprintf(w, "%s%s\n", Info.Sprint(tryPrefix), line)
			} else {
				_, _ = fmt.Fprintf(w, "     %s\n", line)
			}
		}
	}
	_, _ = fmt.Fprintln(w)
}
