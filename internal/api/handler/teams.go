package handler

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"

	"github.com/mcoot/pickleball-scorekeeper/internal/api/request"
	"github.com/mcoot/pickleball-scorekeeper/internal/api/response"
	"github.com/mcoot/pickleball-scorekeeper/internal/model"
	"github.com/mcoot/pickleball-scorekeeper/internal/services/roster"
)

// TeamHandler handles team and player endpoints
type TeamHandler struct {
	roster *roster.Service
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(roster *roster.Service) *TeamHandler {
	return &TeamHandler{
		roster: roster,
	}
}

// List handles GET /api/v1/teams
func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.TeamsFromModel(h.roster.ListTeams(r.Context())))
}

// Create handles POST /api/v1/teams
func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTeamRequest
	if err := decodeBody(w, r, &req, false); err != nil {
		WriteError(w, err)
		return
	}

	team, err := h.roster.CreateTeam(r.Context(), req.Name)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.Created(w, "/api/v1/teams/"+url.PathEscape(string(team.ID)), response.TeamFromModel(team))
}

// Get handles GET /api/v1/teams/{id}
func (h *TeamHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.writeTeam(w, r, teamID(r))
}

// Update handles PUT /api/v1/teams/{id}
func (h *TeamHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := teamID(r)

	var req request.UpdateTeamRequest
	if err := decodeBody(w, r, &req, false); err != nil {
		WriteError(w, err)
		return
	}

	current, err := h.roster.GetTeam(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	team := model.Team{ID: id, Name: req.Name, Players: current.Players}
	if req.Players != nil {
		team.Players = make([]model.Player, len(*req.Players))
		for i, p := range *req.Players {
			if p.ID == "" {
				WriteError(w, NewInvalidRequestError("players[].id is required"))
				return
			}
			team.Players[i] = p.ToModel(model.PlayerID(p.ID))
		}
	}

	if err := h.roster.UpdateTeam(r.Context(), team); err != nil {
		WriteError(w, err)
		return
	}

	h.writeTeam(w, r, id)
}

// Delete handles DELETE /api/v1/teams/{id}
func (h *TeamHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.roster.DeleteTeam(r.Context(), teamID(r)); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// CheckName handles GET /api/v1/teams/name-check?name=&exclude_id=
func (h *TeamHandler) CheckName(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	name := query.Get("name")
	if model.NormalizeTeamName(name) == "" {
		WriteError(w, NewInvalidRequestError("name is required"))
		return
	}

	unique := h.roster.IsTeamNameUnique(r.Context(), name, model.TeamID(query.Get("exclude_id")))
	response.JSON(w, http.StatusOK, response.NameCheck{Name: model.NormalizeTeamName(name), Unique: unique})
}

// AddPlayer handles POST /api/v1/teams/{id}/players
func (h *TeamHandler) AddPlayer(w http.ResponseWriter, r *http.Request) {
	var req request.PlayerRequest
	if err := decodeBody(w, r, &req, false); err != nil {
		WriteError(w, err)
		return
	}

	player, err := h.roster.AddPlayer(r.Context(), teamID(r), req.Fields())
	if err != nil {
		WriteError(w, err)
		return
	}

	location := fmt.Sprintf("/api/v1/teams/%s/players/%s", url.PathEscape(string(teamID(r))), url.PathEscape(string(player.ID)))
	response.Created(w, location, response.PlayerFromModel(*player))
}

// UpdatePlayer handles PUT /api/v1/teams/{id}/players/{player_id}
func (h *TeamHandler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	id, pid := teamID(r), playerID(r)

	var req request.PlayerRequest
	if err := decodeBody(w, r, &req, false); err != nil {
		WriteError(w, err)
		return
	}

	if err := h.roster.UpdatePlayer(r.Context(), id, req.ToModel(pid)); err != nil {
		WriteError(w, err)
		return
	}

	team, err := h.roster.GetTeam(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	player := team.GetPlayer(pid)
	if player == nil {
		WriteError(w, model.ErrPlayerNotFound)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(*player))
}

// DeletePlayer handles DELETE /api/v1/teams/{id}/players/{player_id}
func (h *TeamHandler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	if err := h.roster.DeletePlayer(r.Context(), teamID(r), playerID(r)); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// MovePlayerUp handles POST /api/v1/teams/{id}/players/{player_id}/up
func (h *TeamHandler) MovePlayerUp(w http.ResponseWriter, r *http.Request) {
	id := teamID(r)
	if err := h.roster.MovePlayerUp(r.Context(), id, playerID(r)); err != nil {
		WriteError(w, err)
		return
	}

	h.writeTeam(w, r, id)
}

// MovePlayerDown handles POST /api/v1/teams/{id}/players/{player_id}/down
func (h *TeamHandler) MovePlayerDown(w http.ResponseWriter, r *http.Request) {
	id := teamID(r)
	if err := h.roster.MovePlayerDown(r.Context(), id, playerID(r)); err != nil {
		WriteError(w, err)
		return
	}

	h.writeTeam(w, r, id)
}

func (h *TeamHandler) writeTeam(w http.ResponseWriter, r *http.Request, id model.TeamID) {
	team, err := h.roster.GetTeam(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TeamFromModel(team))
}

func teamID(r *http.Request) model.TeamID {
	return model.TeamID(mux.Vars(r)["id"])
}

func playerID(r *http.Request) model.PlayerID {
	return model.PlayerID(mux.Vars(r)["player_id"])
}
