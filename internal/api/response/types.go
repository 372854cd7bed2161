package response

import (
	"github.com/mcoot/pickleball-scorekeeper/internal/model"
)

// Health is the response for the health endpoint
type Health struct {
	Status string `json:"status"`
}

// GameMode represents a game mode in API responses
type GameMode struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	Description          string `json:"description"`
	MaxScore             int    `json:"max_score"`
	WinningMargin        int    `json:"winning_margin"`
	TeamRotationInterval int    `json:"team_rotation_interval"`
}

// GameModeFromModel converts model.GameMode
func GameModeFromModel(m model.GameMode) GameMode {
	return GameMode{
		ID:                   string(m.ID),
		Name:                 m.Name,
		Description:          m.Description,
		MaxScore:             m.MaxScore,
		WinningMargin:        m.WinningMargin,
		TeamRotationInterval: m.TeamRotationInterval,
	}
}

// GameModesFromModel converts a list of modes
func GameModesFromModel(modes []model.GameMode) []GameMode {
	out := make([]GameMode, len(modes))
	for i, m := range modes {
		out[i] = GameModeFromModel(m)
	}
	return out
}

// Match represents the current match with its derived status
type Match struct {
	Mode                 string `json:"mode"`
	MaxScore             int    `json:"max_score"`
	WinningMargin        int    `json:"winning_margin"`
	TeamRotationInterval int    `json:"team_rotation_interval"`
	Team1Score           int    `json:"team1_score"`
	Team2Score           int    `json:"team2_score"`
	PrevTeam1Score       int    `json:"prev_team1_score"`
	PrevTeam2Score       int    `json:"prev_team2_score"`
	Outcome              string `json:"outcome"`
	Phase                string `json:"phase"`
	RotationDue          bool   `json:"rotation_due"`
	InProgress           bool   `json:"in_progress"`
}

// MatchFromModel converts model.MatchState
func MatchFromModel(m *model.MatchState) Match {
	return Match{
		Mode:                 string(m.ModeID),
		MaxScore:             m.MaxScore,
		WinningMargin:        m.WinningMargin,
		TeamRotationInterval: m.TeamRotationInterval,
		Team1Score:           m.Team1Score,
		Team2Score:           m.Team2Score,
		PrevTeam1Score:       m.PrevTeam1Score,
		PrevTeam2Score:       m.PrevTeam2Score,
		Outcome:              string(m.Outcome()),
		Phase:                string(m.Phase()),
		RotationDue:          m.RotationDue(),
		InProgress:           m.HasPoints(),
	}
}

// Player represents a player in API responses
type Player struct {
	ID        string  `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Gender    string  `json:"gender"`
	Level     float64 `json:"level"`
	Rank      int     `json:"rank"`
}

// PlayerFromModel converts model.Player
func PlayerFromModel(p model.Player) Player {
	return Player{
		ID:        string(p.ID),
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Gender:    string(p.Gender),
		Level:     float64(p.Level),
		Rank:      p.Rank,
	}
}

// Team represents a team and its ranked players
type Team struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Players []Player `json:"players"`
}

// TeamFromModel converts model.Team
func TeamFromModel(t *model.Team) Team {
	players := make([]Player, len(t.Players))
	for i, p := range t.Players {
		players[i] = PlayerFromModel(p)
	}
	return Team{
		ID:      string(t.ID),
		Name:    t.Name,
		Players: players,
	}
}

// TeamsFromModel converts the roster
func TeamsFromModel(teams []model.Team) []Team {
	out := make([]Team, len(teams))
	for i := range teams {
		out[i] = TeamFromModel(&teams[i])
	}
	return out
}

// NameCheck is the response for the team name uniqueness check
type NameCheck struct {
	Name   string `json:"name"`
	Unique bool   `json:"unique"`
}
