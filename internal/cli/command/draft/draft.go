package draft

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/thomas-vilte/matedraft/internal/auth"
	cfg "github.com/thomas-vilte/matedraft/internal/config"
	"github.com/thomas-vilte/matedraft/internal/diff"
	domainErrors "github.com/thomas-vilte/matedraft/internal/errors"
	"github.com/thomas-vilte/matedraft/internal/i18n"
	"github.com/thomas-vilte/matedraft/internal/logger"
	"github.com/thomas-vilte/matedraft/internal/models"
	"github.com/thomas-vilte/matedraft/internal/semver"
	"github.com/thomas-vilte/matedraft/internal/services"
	"github.com/thomas-vilte/matedraft/internal/ui"
	vcsgithub "github.com/thomas-vilte/matedraft/internal/vcs/github"
	"github.com/thomas-vilte/matedraft/internal/version"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// draftService is a minimal interface for testing purposes
type draftService interface {
	ScanReleases(ctx context.Context) (*models.ReleaseSummary, error)
	GenerateNotes(ctx context.Context, previousTag, nextTag string) (string, error)
	UpdateDraft(ctx context.Context, draft *models.Release, body string) (string, error)
	CreateDraft(ctx context.Context, tag string) (string, error)
}

type runOptions struct {
	repo        string
	useColor    bool
	interactive bool
}

// New builds the root matedraft command: resolve credentials, scan the
// releases page, then walk the update-or-create flow with confirmation gates
// before every mutation.
func New(config *cfg.Config, trans *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:        "matedraft",
		Usage:       trans.GetMessage("app_usage", 0, nil),
		Description: trans.GetMessage("app_description", 0, nil),
		Version:     version.FullVersion(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "repo",
				Aliases: []string{"r"},
				Usage:   trans.GetMessage("draft.repo_flag_usage", 0, nil),
			},
			&cli.StringFlag{
				Name:    "lang",
				Aliases: []string{"l"},
				Usage:   trans.GetMessage("draft.lang_flag_usage", 0, nil),
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: trans.GetMessage("draft.debug_flag_usage", 0, nil),
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   trans.GetMessage("draft.verbose_flag_usage", 0, nil),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logger.Initialize(cmd.Bool("debug"), cmd.Bool("verbose"))

			if lang := cmd.String("lang"); lang != "" {
				if err := trans.SetLanguage(lang); err != nil {
					return err
				}
			}

			repo := cmd.String("repo")
			if repo == "" {
				repo = config.DefaultRepo
			}
			owner, name, err := SplitRepo(repo)
			if err != nil {
				return err
			}

			useColor := os.Getenv("NO_COLOR") == ""
			color.NoColor = !useColor

			resolver := auth.NewResolver(config.TokenEnv)
			token, err := resolver.Token(ctx, trans)
			if err != nil {
				return err
			}

			service := services.NewDraftService(vcsgithub.NewClient(owner, name, token))

			opts := runOptions{
				repo:        repo,
				useColor:    useColor,
				interactive: term.IsTerminal(int(os.Stdout.Fd())),
			}
			return runDraft(ctx, service, trans, bufio.NewReader(os.Stdin), os.Stdout, opts)
		},
	}
}

// SplitRepo validates the owner/name form and returns both parts.
func SplitRepo(value string) (string, string, error) {
	parts := strings.Split(value, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", domainErrors.ErrInvalidRepo.WithContext("repo", value)
	}
	return parts[0], parts[1], nil
}

func runDraft(ctx context.Context, service draftService, trans *i18n.Translations, reader *bufio.Reader, w io.Writer, opts runOptions) error {
	_, _ = fmt.Fprintln(w, trans.GetMessage("draft.obtaining_info", 0, map[string]interface{}{
		"Repo": opts.repo,
	}))

	summary, err := service.ScanReleases(ctx)
	if err != nil {
		return err
	}

	none := trans.GetMessage("draft.none", 0, nil)
	ui.PrintBorder(w)
	_, _ = fmt.Fprintln(w, trans.GetMessage("draft.latest_draft", 0, map[string]interface{}{
		"Tag": tagOrNone(summary.DraftTag(), none),
	}))
	_, _ = fmt.Fprintln(w, trans.GetMessage("draft.latest_minor", 0, map[string]interface{}{
		"Tag": tagOrNone(summary.MinorTag, none),
	}))
	ui.PrintBorder(w)

	switch {
	case summary.Draft != nil:
		return updateDraftFlow(ctx, service, trans, reader, w, opts, summary)
	case summary.MinorTag != "":
		return createDraftFlow(ctx, service, trans, reader, w, opts, summary.MinorTag)
	default:
		_, _ = fmt.Fprintln(w, trans.GetMessage("draft.nothing_found", 0, nil))
		return exit(w, trans)
	}
}

func updateDraftFlow(ctx context.Context, service draftService, trans *i18n.Translations, reader *bufio.Reader, w io.Writer, opts runOptions, summary *models.ReleaseSummary) error {
	if !ui.AskConfirmation(reader, w, trans.GetMessage("draft.confirm_update", 0, nil)) {
		return exit(w, trans)
	}

	prevNote := strings.TrimSpace(summary.Draft.Body)

	var nextNote string
	err := ui.WithSpinner(w, trans.GetMessage("draft.generating_notes", 0, nil), opts.interactive, func() error {
		var genErr error
		nextNote, genErr = service.GenerateNotes(ctx, summary.MinorTag, summary.Draft.TagName)
		return genErr
	})
	if err != nil {
		return err
	}

	diffText, err := diff.Unified(prevNote, nextNote)
	if err != nil {
		return err
	}
	if diffText == "" {
		_, _ = fmt.Fprintln(w, trans.GetMessage("draft.no_updates", 0, nil))
		return exit(w, trans)
	}

	ui.PrintBorder(w)
	diff.Render(w, diffText, opts.useColor)
	ui.PrintBorder(w)

	if !ui.AskConfirmation(reader, w, trans.GetMessage("draft.confirm_update_apply", 0, nil)) {
		return exit(w, trans)
	}

	_, _ = fmt.Fprintln(w, trans.GetMessage("draft.updating", 0, nil))
	url, err := service.UpdateDraft(ctx, summary.Draft, nextNote)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(w, trans.GetMessage("draft.updated", 0, map[string]interface{}{
		"URL": url,
	}))
	return exit(w, trans)
}

func createDraftFlow(ctx context.Context, service draftService, trans *i18n.Translations, reader *bufio.Reader, w io.Writer, opts runOptions, minorTag string) error {
	if !ui.AskConfirmation(reader, w, trans.GetMessage("draft.confirm_create", 0, nil)) {
		return exit(w, trans)
	}

	nextTag, err := semver.NextMinor(minorTag)
	if err != nil {
		// Degrade to manual input rather than failing the run.
		ui.PrintWarning(w, trans.GetMessage("draft.version_fallback", 0, map[string]interface{}{
			"Error": err.Error(),
		}))
		nextTag = promptNextVersion(reader, w, trans)
		if nextTag == "" {
			return exit(w, trans)
		}
	}

	var note string
	err = ui.WithSpinner(w, trans.GetMessage("draft.generating_notes_range", 0, map[string]interface{}{
		"Prev": minorTag,
		"Next": nextTag,
	}), opts.interactive, func() error {
		var genErr error
		note, genErr = service.GenerateNotes(ctx, minorTag, nextTag)
		return genErr
	})
	if err != nil {
		return err
	}

	ui.PrintBorder(w)
	_, _ = fmt.Fprintln(w, note)
	ui.PrintBorder(w)

	if !ui.AskConfirmation(reader, w, trans.GetMessage("draft.confirm_create_apply", 0, nil)) {
		return exit(w, trans)
	}

	_, _ = fmt.Fprintln(w, trans.GetMessage("draft.creating", 0, nil))
	url, err := service.CreateDraft(ctx, nextTag)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(w, trans.GetMessage("draft.created", 0, map[string]interface{}{
		"URL": url,
	}))
	return exit(w, trans)
}

func promptNextVersion(reader *bufio.Reader, w io.Writer, trans *i18n.Translations) string {
	_, _ = fmt.Fprint(w, trans.GetMessage("draft.prompt_next_version", 0, nil))
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(line))
}

func exit(w io.Writer, trans *i18n.Translations) error {
	_, _ = fmt.Fprintln(w, trans.GetMessage("draft.exiting", 0, nil))
	return nil
}

func tagOrNone(tag, none string) string {
	if tag == "" {
		return none
	}
	return tag
}
