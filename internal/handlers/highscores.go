package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sweephq/sweeper/internal/mines"
	"github.com/sweephq/sweeper/internal/repository"
)

type Highscores struct {
	logger *slog.Logger
	repo   *repository.Queries
}

func NewHighscores(logger *slog.Logger, db *pgxpool.Pool) *Highscores {
	return &Highscores{
		logger: logger,
		repo:   repository.New(db),
	}
}

func (h *Highscores) Fetch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := repository.HighscoreFilter{}

	if query.Has("seed") {
		gameParams, err := mines.ParseSeed(query.Get("seed"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			sendJSONOrLog(w, h.logger, wrapError(err))
			return
		}
		filter.GameParams = gameParams
	}

	if query.Has("username") {
		username := query.Get("username")
		filter.Username = &username
	}

	highscores, err := h.repo.GetHighscores(r.Context(), filter)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("failed to fetch highscores", "error", err)
		return
	}

	sendJSONOrLog(w, h.logger, highscores)
}
