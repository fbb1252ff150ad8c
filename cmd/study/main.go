// Package main implements the terminal study client. It runs a review
// session over the due cards of one deck, and can list, import and delete
// decks on the server.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/phrazzld/deckstudy/internal/client"
	"github.com/phrazzld/deckstudy/internal/config"
	"github.com/phrazzld/deckstudy/internal/platform/logger"
	"github.com/phrazzld/deckstudy/internal/session"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()

	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "study: %v\n", err)
		os.Exit(1)
	}
}

// options are the command-line actions; settings shared with the
// environment (deck, api url, theme, timeout) go through viper instead.
type options struct {
	list       bool
	importPath string
	deleteID   string
}

func newFlagSet(opts *options) *pflag.FlagSet {
	flags := pflag.NewFlagSet("study", pflag.ContinueOnError)
	flags.String("deck", "", "id of the deck to study")
	flags.String("api-url", "", "base URL of the deck API")
	flags.String("theme", "", "chroma style used for code blocks")
	flags.Duration("timeout", 0, "timeout for each API request")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.BoolVar(&opts.list, "list", false, "list decks with their due card counts")
	flags.StringVar(&opts.importPath, "import", "", "import a deck from a JSON file")
	flags.StringVar(&opts.deleteID, "delete", "", "delete the deck with this id")
	return flags
}

// bindFlags maps command-line flags onto client config keys.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	bindings := map[string]string{
		"client.deck":      "deck",
		"client.api_url":   "api-url",
		"client.theme":     "theme",
		"client.timeout":   "timeout",
		"client.log_level": "log-level",
	}
	for key, name := range bindings {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return fmt.Errorf("failed to bind flag %q: %w", name, err)
		}
	}
	return nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var opts options
	flags := newFlagSet(&opts)
	flags.SetOutput(stderr)
	if err := flags.Parse(args); err != nil {
		return err
	}

	// A missing .env is normal.
	_ = godotenv.Load()

	v := viper.New()
	if err := bindFlags(v, flags); err != nil {
		return err
	}
	cfg, err := config.LoadClient(v)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(logger.LoggerConfig{
		Level:  cfg.LogLevel,
		Format: "text",
		Output: stderr,
	})
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	c, err := client.New(cfg.APIURL, client.WithTimeout(cfg.Timeout), client.WithLogger(l))
	if err != nil {
		return err
	}
	l.Debug("study client configured",
		slog.String("api_url", cfg.APIURL),
		slog.String("theme", cfg.Theme))

	switch {
	case opts.list:
		return listDecks(ctx, c, stdout)
	case opts.importPath != "":
		return importDeck(ctx, c, opts.importPath, stdout)
	case opts.deleteID != "":
		return deleteDeck(ctx, c, opts.deleteID, stdout)
	}

	ctrl := session.NewController(c, c, session.WithLogger(l))
	return newStudyUI(stdin, stdout, cfg.Theme, l).run(ctx, ctrl, cfg.Deck)
}
