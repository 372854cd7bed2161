package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case GameMode:
		o.printMode(v)
	case []GameMode:
		o.printModes(v)
	case Match:
		o.printMatch(v)
	case Team:
		o.printTeam(v)
	case []Team:
		o.printTeams(v)
	case Player:
		o.printPlayer(v)
	case NameCheck:
		o.printNameCheck(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// GameMode response type (matches API)
type GameMode struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	Description          string `json:"description"`
	MaxScore             int    `json:"max_score"`
	WinningMargin        int    `json:"winning_margin"`
	TeamRotationInterval int    `json:"team_rotation_interval"`
}

// Match response type
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

// Player response type
type Player struct {
	ID        string  `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Gender    string  `json:"gender"`
	Level     float64 `json:"level"`
	Rank      int     `json:"rank"`
}

// Team response type
type Team struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Players []Player `json:"players"`
}

// NameCheck response type
type NameCheck struct {
	Name   string `json:"name"`
	Unique bool   `json:"unique"`
}

// HealthResult is the health response plus what the CLI measured
type HealthResult struct {
	Status    string `json:"status"`
	Server    string `json:"server,omitempty"`
	LatencyMS int64  `json:"latency_ms"`
}

func (o *Output) printMode(m GameMode) {
	fmt.Fprintf(o.w, "Mode: %s (%s)\n", m.Name, m.ID)
	if m.Description != "" {
		fmt.Fprintf(o.w, "  %s\n", m.Description)
	}
	fmt.Fprintf(o.w, "Play to: %d, win by %d\n", m.MaxScore, m.WinningMargin)
	if m.TeamRotationInterval > 0 {
		fmt.Fprintf(o.w, "Rotate every: %d points\n", m.TeamRotationInterval)
	}
}

func (o *Output) printModes(modes []GameMode) {
	for _, m := range modes {
		rotation := "-"
		if m.TeamRotationInterval > 0 {
			rotation = fmt.Sprintf("every %d", m.TeamRotationInterval)
		}
		fmt.Fprintf(o.w, "%-9s %-10s to %-3d by %d  rotate %s\n", m.ID, m.Name, m.MaxScore, m.WinningMargin, rotation)
	}
}

func (o *Output) printMatch(m Match) {
	fmt.Fprintf(o.w, "Mode: %s (to %d, win by %d)\n", m.Mode, m.MaxScore, m.WinningMargin)
	fmt.Fprintf(o.w, "Team 1: %d\n", m.Team1Score)
	fmt.Fprintf(o.w, "Team 2: %d\n", m.Team2Score)

	switch m.Outcome {
	case "team1":
		fmt.Fprintln(o.w, "Winner: Team 1")
	case "team2":
		fmt.Fprintln(o.w, "Winner: Team 2")
	}
	if m.RotationDue {
		fmt.Fprintln(o.w, "Rotate teams now")
	}
}

func (o *Output) printTeam(t Team) {
	fmt.Fprintf(o.w, "Team: %s (%s)\n", t.Name, t.ID)
	if len(t.Players) == 0 {
		fmt.Fprintln(o.w, "No players")
		return
	}
	fmt.Fprintf(o.w, "Players (%d):\n", len(t.Players))
	for _, p := range t.Players {
		fmt.Fprintf(o.w, "  %d. %s  %s %.1f  (%s)\n", p.Rank, fullName(p), p.Gender, p.Level, p.ID)
	}
}

func (o *Output) printTeams(teams []Team) {
	if len(teams) == 0 {
		fmt.Fprintln(o.w, "No teams")
		return
	}
	for _, t := range teams {
		fmt.Fprintf(o.w, "%s  %s (%d players)\n", t.ID, t.Name, len(t.Players))
	}
}

func (o *Output) printPlayer(p Player) {
	fmt.Fprintf(o.w, "Player: %s (%s)\n", fullName(p), p.ID)
	fmt.Fprintf(o.w, "Rank: %d\n", p.Rank)
	fmt.Fprintf(o.w, "Gender: %s\n", p.Gender)
	fmt.Fprintf(o.w, "Level: %.1f\n", p.Level)
}

func (o *Output) printNameCheck(n NameCheck) {
	if n.Unique {
		fmt.Fprintf(o.w, "%q is available\n", n.Name)
	} else {
		fmt.Fprintf(o.w, "%q is already taken\n", n.Name)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Fprintf(o.w, "Status: %s\n", h.Status)
	if h.Server != "" {
		fmt.Fprintf(o.w, "Server: %s (%dms)\n", h.Server, h.LatencyMS)
	}
}

func fullName(p Player) string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}
