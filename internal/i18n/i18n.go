package i18n

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

type Translations struct {
	bundle   *i18n.Bundle
	localize *i18n.Localizer
}

// NewTranslations builds a bundle with the inline English defaults plus any
// locale files found under localesPath (default "locales").
func NewTranslations(defaultLang, localesPath string) (*Translations, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	bundle.MustParseMessageFileBytes([]byte(defaultMessages), "default.en.toml")

	if localesPath == "" {
		localesPath = "locales"
	}

	files, err := filepath.Glob(filepath.Join(localesPath, "active.*.toml"))
	if err != nil {
		return nil, fmt.Errorf("error reading locales: %w", err)
	}

	for _, file := range files {
		if _, err := bundle.LoadMessageFile(file); err != nil {
			return nil, fmt.Errorf("error loading locale file %s: %w", file, err)
		}
	}

	localize := i18n.NewLocalizer(bundle, defaultLang)

	return &Translations{
		bundle:   bundle,
		localize: localize,
	}, nil
}

func (t *Translations) SetLanguage(lang string) error {
	for _, tag := range t.bundle.LanguageTags() {
		if tag.String() == lang {
			t.localize = i18n.NewLocalizer(t.bundle, lang)
			return nil
		}
	}
	return fmt.Errorf("language '%s' not supported", lang)
}

func (t *Translations) GetMessage(messageID string, count int, templateData map[string]interface{}) string {
	localized, err := t.localize.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID: messageID,
		},
		PluralCount:  count,
		TemplateData: templateData,
	})
	// Localize reports a MessageNotFoundErr even when it found a usable
	// fallback in the default language; only a truly empty result is missing.
	if err != nil && localized == "" {
		return "Translation missing: " + messageID
	}
	return localized
}

var defaultMessages = `
	[app_usage]
	other = "Create or refresh GitHub draft releases the opinionated way"

	[app_description]
	other = "Inspects a repository's releases, finds the newest draft and the newest published minor release (tag ending in .0), then updates the draft's generated notes or creates a draft for the next minor version.\n\nExamples:\n   GH_TOKEN='****' matedraft -r mojombo/jekyll\n   NO_COLOR=1 matedraft -r mojombo/jekyll"

	[draft.repo_flag_usage]
	other = "GitHub repo name, e.g. mojombo/jekyll"

	[draft.lang_flag_usage]
	other = "Language for messages (en, es)"

	[draft.debug_flag_usage]
	other = "Enable debug logging"

	[draft.verbose_flag_usage]
	other = "Enable verbose logging"

	[draft.obtaining_info]
	other = "Obtaining release info for {{.Repo}}..."

	[draft.latest_draft]
	other = "Latest draft: {{.Tag}}"

	[draft.latest_minor]
	other = "Latest minor: {{.Tag}}"

	[draft.none]
	other = "(NONE)"

	[draft.nothing_found]
	other = "No draft or minor release found"

	[draft.confirm_update]
	other = "> Update old draft release?"

	[draft.confirm_update_apply]
	other = "> Update draft release with note?"

	[draft.confirm_create]
	other = "> Create new draft release?"

	[draft.confirm_create_apply]
	other = "> Save new draft release with note?"

	[draft.generating_notes]
	other = "Generating release notes..."

	[draft.generating_notes_range]
	other = "Generating release notes {{.Prev}} -> {{.Next}}..."

	[draft.no_updates]
	other = "No updates to the release note"

	[draft.version_fallback]
	other = "(!) unable to determine next release version: {{.Error}}"

	[draft.prompt_next_version]
	other = "> Type in your desired next release version: "

	[draft.updating]
	other = "Updating existing draft release..."

	[draft.updated]
	other = "Updated draft release in {{.URL}}"

	[draft.creating]
	other = "Creating new draft release..."

	[draft.created]
	other = "Created draft release in {{.URL}}"

	[draft.exiting]
	other = "Exiting"

	[auth.prompt_token]
	other = "Enter GitHub token: "

	[ui_error.try_suggestion]
	other = "Try: "
	`
