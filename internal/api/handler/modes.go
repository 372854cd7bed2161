package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/pickleball-scorekeeper/internal/api/request"
	"github.com/mcoot/pickleball-scorekeeper/internal/api/response"
	"github.com/mcoot/pickleball-scorekeeper/internal/model"
	"github.com/mcoot/pickleball-scorekeeper/internal/services/modes"
)

// ModeHandler handles game mode endpoints
type ModeHandler struct {
	registry *modes.Registry
}

// NewModeHandler creates a new mode handler
func NewModeHandler(registry *modes.Registry) *ModeHandler {
	return &ModeHandler{
		registry: registry,
	}
}

// List handles GET /api/v1/modes
func (h *ModeHandler) List(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.GameModesFromModel(h.registry.ListModes(r.Context())))
}

// Get handles GET /api/v1/modes/{id}
func (h *ModeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.GameModeID(mux.Vars(r)["id"])

	mode, err := h.registry.GetMode(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameModeFromModel(mode))
}

// GetSavedCustom handles GET /api/v1/modes/custom/saved
func (h *ModeHandler) GetSavedCustom(w http.ResponseWriter, r *http.Request) {
	mode, err := h.registry.LoadCustomMode(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameModeFromModel(mode))
}

// SaveCustom handles PUT /api/v1/modes/custom
func (h *ModeHandler) SaveCustom(w http.ResponseWriter, r *http.Request) {
	var req request.CustomModeRequest
	if err := decodeBody(w, r, &req, false); err != nil {
		WriteError(w, err)
		return
	}

	if err := h.registry.SaveCustomMode(r.Context(), req.ToModel()); err != nil {
		WriteError(w, err)
		return
	}

	mode, err := h.registry.GetMode(r.Context(), model.ModeCustom)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameModeFromModel(mode))
}
