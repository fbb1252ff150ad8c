package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/deckstudy/internal/config"
	"github.com/phrazzld/deckstudy/internal/domain/srs"
	"github.com/phrazzld/deckstudy/internal/platform/postgres"
	"github.com/phrazzld/deckstudy/internal/render"
	"github.com/phrazzld/deckstudy/internal/service"
	"github.com/phrazzld/deckstudy/internal/store"
)

// previewStyle is the chroma style used for server-side highlighting. The
// HTML output only carries token classes, so the style affects which lexers
// are cached, not colors.
const previewStyle = "monokai"

// application holds the shared dependencies of the server.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	deckStore store.DeckStore
	cardStore store.CardStore

	srsService    srs.Service
	deckService   service.DeckService
	reviewService service.ReviewService
	renderer      *render.Renderer
}

// newApplication wires stores and services over db.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config:    cfg,
		logger:    logger,
		db:        db,
		deckStore: postgres.NewPostgresDeckStore(db, logger),
		cardStore: postgres.NewPostgresCardStore(db, logger),
	}

	var err error
	app.srsService, err = srs.NewServiceWithParams(srs.NewParams(srsParamsConfig(cfg.SRS)))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize SRS service: %w", err)
	}

	app.deckService, err = service.NewDeckService(db, app.deckStore, app.cardStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize deck service: %w", err)
	}

	app.reviewService, err = service.NewReviewService(db, app.cardStore, app.srsService, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize review service: %w", err)
	}

	app.renderer = render.NewRenderer(
		render.WithHighlighter(render.NewChromaHighlighter(previewStyle)),
		render.WithLogger(logger),
	)

	logger.Info("application initialized")
	return app, nil
}

func srsParamsConfig(c config.SRSConfig) srs.ParamsConfig {
	return srs.ParamsConfig{
		DefaultEaseFactor: c.DefaultEaseFactor,
		MinEaseFactor:     c.MinEaseFactor,
		AgainPenalty:      c.AgainPenalty,
		EasyBonus:         c.EasyBonus,
		EasyMultiplier:    c.EasyMultiplier,
		MaxIntervalDays:   c.MaxIntervalDays,
	}
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", slog.String("error", err.Error()))
			return
		}
		app.logger.Info("database connection closed")
	}
}
