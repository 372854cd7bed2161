package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/pickleball-scorekeeper/internal/api/request"
	"github.com/mcoot/pickleball-scorekeeper/internal/api/response"
	"github.com/mcoot/pickleball-scorekeeper/internal/model"
	"github.com/mcoot/pickleball-scorekeeper/internal/services/match"
)

// MatchHandler handles the current match endpoints
type MatchHandler struct {
	controller *match.Controller
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(controller *match.Controller) *MatchHandler {
	return &MatchHandler{
		controller: controller,
	}
}

// Start handles POST /api/v1/match
func (h *MatchHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req request.StartMatchRequest
	if err := decodeBody(w, r, &req, true); err != nil {
		WriteError(w, err)
		return
	}
	if req.ModeID == "" {
		req.ModeID = string(model.ModeStandard)
	}

	state, err := h.controller.StartMatch(r.Context(), model.GameModeID(req.ModeID))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.Created(w, "/api/v1/match", response.MatchFromModel(state))
}

// Get handles GET /api/v1/match
func (h *MatchHandler) Get(w http.ResponseWriter, r *http.Request) {
	state, err := h.controller.GetMatch(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MatchFromModel(state))
}

// Clear handles DELETE /api/v1/match
func (h *MatchHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.controller.ClearMatch(r.Context()); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Increment handles POST /api/v1/match/{side}/increment
func (h *MatchHandler) Increment(w http.ResponseWriter, r *http.Request) {
	side := model.Side(mux.Vars(r)["side"])

	state, err := h.controller.IncrementScore(r.Context(), side)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MatchFromModel(state))
}

// Decrement handles POST /api/v1/match/{side}/decrement
func (h *MatchHandler) Decrement(w http.ResponseWriter, r *http.Request) {
	side := model.Side(mux.Vars(r)["side"])

	state, err := h.controller.DecrementScore(r.Context(), side)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MatchFromModel(state))
}

// Undo handles POST /api/v1/match/undo
func (h *MatchHandler) Undo(w http.ResponseWriter, r *http.Request) {
	state, err := h.controller.Undo(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MatchFromModel(state))
}
