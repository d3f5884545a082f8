package auth

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	domainErrors "github.com/thomas-vilte/matedraft/internal/errors"
	"github.com/thomas-vilte/matedraft/internal/i18n"
	"github.com/thomas-vilte/matedraft/internal/logger"
	"golang.org/x/term"
)

// Resolver produces a GitHub access token by trying, in order: a named
// environment variable, an external helper command that prints the token, and
// an interactive hidden prompt. Each source is tried exactly once.
type Resolver struct {
	// EnvVar is the environment variable holding the token.
	EnvVar string
	// Helper is the argv of the credential-helper subprocess. Any failure to
	// run it is swallowed and treated as "no token from this source".
	Helper []string
	// Prompt reads the token interactively. Defaults to a hidden terminal
	// read when stdin is a TTY, a plain line read otherwise.
	Prompt func(trans *i18n.Translations) (string, error)
}

func NewResolver(envVar string) *Resolver {
	if envVar == "" {
		envVar = "GH_TOKEN"
	}
	return &Resolver{
		EnvVar: envVar,
		Helper: []string{"gh", "auth", "token"},
		Prompt: promptToken,
	}
}

// Token resolves a non-empty access token or fails with ErrTokenMissing.
func (r *Resolver) Token(ctx context.Context, trans *i18n.Translations) (string, error) {
	log := logger.FromContext(ctx)

	if token := strings.TrimSpace(os.Getenv(r.EnvVar)); token != "" {
		log.Debug("token resolved from environment", "var", r.EnvVar)
		return token, nil
	}

	if token := r.tokenFromHelper(ctx); token != "" {
		log.Debug("token resolved from helper", "helper", strings.Join(r.Helper, " "))
		return token, nil
	}

	if r.Prompt != nil {
		token, err := r.Prompt(trans)
		if err == nil {
			if token = strings.TrimSpace(token); token != "" {
				return token, nil
			}
		} else {
			log.Debug("token prompt failed", "error", err)
		}
	}

	return "", domainErrors.ErrTokenMissing
}

func (r *Resolver) tokenFromHelper(ctx context.Context) string {
	if len(r.Helper) == 0 {
		return ""
	}

	cmd := exec.CommandContext(ctx, r.Helper[0], r.Helper[1:]...)
	output, err := cmd.Output()
	if err != nil {
		// A missing binary or non-zero exit just means this source has
		// nothing to offer.
		logger.FromContext(ctx).Debug("credential helper unavailable", "error", err)
		return ""
	}

	return strings.TrimSpace(string(output))
}

func promptToken(trans *i18n.Translations) (string, error) {
	prompt := "Enter GitHub token: "
	if trans != nil {
		prompt = trans.GetMessage("auth.prompt_token", 0, nil)
	}
	fmt.Fprint(os.Stderr, prompt)

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		defer fmt.Fprintln(os.Stderr)
		token, err := term.ReadPassword(fd)
		if err != nil {
			return "", err
		}
		return string(token), nil
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return line, nil
}
