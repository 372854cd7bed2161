package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/pickleball-scorekeeper/internal/api/apierr"
	"github.com/mcoot/pickleball-scorekeeper/internal/api/handler"
	"github.com/mcoot/pickleball-scorekeeper/internal/api/middleware"
	"github.com/mcoot/pickleball-scorekeeper/internal/services/match"
	"github.com/mcoot/pickleball-scorekeeper/internal/services/modes"
	"github.com/mcoot/pickleball-scorekeeper/internal/services/roster"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger          *slog.Logger
	ModeRegistry    *modes.Registry
	MatchController *match.Controller
	RosterService   *roster.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	modeHandler := handler.NewModeHandler(cfg.ModeRegistry)
	matchHandler := handler.NewMatchHandler(cfg.MatchController)
	teamHandler := handler.NewTeamHandler(cfg.RosterService)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Standard(cfg.Logger)...)
	api.NotFoundHandler = http.HandlerFunc(notFound)
	api.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)

	api.HandleFunc("/health", handler.Health).Methods(http.MethodGet)

	// Game modes
	api.HandleFunc("/modes", modeHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/modes/custom", modeHandler.SaveCustom).Methods(http.MethodPut)
	api.HandleFunc("/modes/custom/saved", modeHandler.GetSavedCustom).Methods(http.MethodGet)
	api.HandleFunc("/modes/{id}", modeHandler.Get).Methods(http.MethodGet)

	// Current match
	api.HandleFunc("/match", matchHandler.Start).Methods(http.MethodPost)
	api.HandleFunc("/match", matchHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/match", matchHandler.Clear).Methods(http.MethodDelete)
	api.HandleFunc("/match/undo", matchHandler.Undo).Methods(http.MethodPost)
	api.HandleFunc("/match/{side}/increment", matchHandler.Increment).Methods(http.MethodPost)
	api.HandleFunc("/match/{side}/decrement", matchHandler.Decrement).Methods(http.MethodPost)

	// Roster; name-check is registered before {id} so it is not taken as an ID
	teams := api.PathPrefix("/teams").Subrouter()
	teams.HandleFunc("", teamHandler.List).Methods(http.MethodGet)
	teams.HandleFunc("", teamHandler.Create).Methods(http.MethodPost)
	teams.HandleFunc("/name-check", teamHandler.CheckName).Methods(http.MethodGet)
	teams.HandleFunc("/{id}", teamHandler.Get).Methods(http.MethodGet)
	teams.HandleFunc("/{id}", teamHandler.Update).Methods(http.MethodPut)
	teams.HandleFunc("/{id}", teamHandler.Delete).Methods(http.MethodDelete)
	teams.HandleFunc("/{id}/players", teamHandler.AddPlayer).Methods(http.MethodPost)
	teams.HandleFunc("/{id}/players/{player_id}", teamHandler.UpdatePlayer).Methods(http.MethodPut)
	teams.HandleFunc("/{id}/players/{player_id}", teamHandler.DeletePlayer).Methods(http.MethodDelete)
	teams.HandleFunc("/{id}/players/{player_id}/up", teamHandler.MovePlayerUp).Methods(http.MethodPost)
	teams.HandleFunc("/{id}/players/{player_id}/down", teamHandler.MovePlayerDown).Methods(http.MethodPost)

	return r
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	apierr.WriteError(w, apierr.NewRouteNotFoundError())
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	apierr.WriteError(w, apierr.NewMethodNotAllowedError())
}
