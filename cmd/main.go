package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	cfg "github.com/thomas-vilte/matedraft/internal/config"
	"github.com/thomas-vilte/matedraft/internal/cli/command/draft"
	"github.com/thomas-vilte/matedraft/internal/i18n"
	"github.com/thomas-vilte/matedraft/internal/ui"
	"github.com/urfave/cli/v3"
)

func main() {
	// A .env next to the project may carry GH_TOKEN or NO_COLOR; absence is fine.
	_ = godotenv.Load()

	app, trans, err := initializeApp()
	if err != nil {
		log.Fatalf("Error initializing the cli: %v", err)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		ui.HandleAppError(os.Stderr, err, trans)
		os.Exit(1)
	}
}

func initializeApp() (*cli.Command, *i18n.Translations, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get the user home directory: %w", err)
	}

	cfgApp, err := cfg.LoadConfig(homeDir)
	if err != nil {
		return nil, nil, err
	}

	trans, err := i18n.NewTranslations(cfgApp.Language, "")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load translations: %w", err)
	}

	return draft.New(cfgApp, trans), trans, nil
}
