package request

import "github.com/mcoot/pickleball-scorekeeper/internal/model"

// StartMatchRequest is the request body for starting a match
type StartMatchRequest struct {
	ModeID string `json:"mode_id"`
}

// CustomModeRequest is the request body for saving the custom mode.
// Name and description fall back to the preset when empty.
type CustomModeRequest struct {
	Name                 string `json:"name,omitempty"`
	Description          string `json:"description,omitempty"`
	MaxScore             int    `json:"max_score"`
	WinningMargin        int    `json:"winning_margin"`
	TeamRotationInterval int    `json:"team_rotation_interval"`
}

// ToModel converts the request to a custom GameMode
func (r CustomModeRequest) ToModel() model.GameMode {
	return model.GameMode{
		ID:                   model.ModeCustom,
		Name:                 r.Name,
		Description:          r.Description,
		MaxScore:             r.MaxScore,
		WinningMargin:        r.WinningMargin,
		TeamRotationInterval: r.TeamRotationInterval,
	}
}

// CreateTeamRequest is the request body for creating a team
type CreateTeamRequest struct {
	Name string `json:"name"`
}

// UpdateTeamRequest is the request body for replacing a team.
// When Players is omitted the current roster is kept.
type UpdateTeamRequest struct {
	Name    string           `json:"name"`
	Players *[]PlayerRequest `json:"players,omitempty"`
}

// PlayerRequest is the request body for adding or updating a player
type PlayerRequest struct {
	ID        string  `json:"id,omitempty"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Gender    string  `json:"gender"`
	Level     float64 `json:"level"`
}

// Fields converts the request to the caller-editable player fields
func (r PlayerRequest) Fields() model.PlayerFields {
	return model.PlayerFields{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Gender:    model.Gender(r.Gender),
		Level:     model.SkillLevel(r.Level),
	}
}

// ToModel converts the request to a Player with the given ID
func (r PlayerRequest) ToModel(id model.PlayerID) model.Player {
	f := r.Fields()
	return model.Player{
		ID:        id,
		FirstName: f.FirstName,
		LastName:  f.LastName,
		Gender:    f.Gender,
		Level:     f.Level,
	}
}
