package model

import "strings"

// TeamID uniquely identifies a team in the roster
type TeamID string

// Team owns an ordered list of players. Players are stored in rank order
// and Rank always equals position+1.
type Team struct {
	ID      TeamID   `json:"id"`
	Name    string   `json:"name"`
	Players []Player `json:"players"`
}

// NormalizeTeamName trims surrounding whitespace
func NormalizeTeamName(name string) string {
	return strings.TrimSpace(name)
}

// SameTeamName compares two names the way uniqueness is enforced:
// trimmed and case-insensitive
func SameTeamName(a, b string) bool {
	return strings.EqualFold(NormalizeTeamName(a), NormalizeTeamName(b))
}

// PlayerIndex returns the slice position of a player, or -1
func (t *Team) PlayerIndex(id PlayerID) int {
	for i := range t.Players {
		if t.Players[i].ID == id {
			return i
		}
	}
	return -1
}

// GetPlayer returns a pointer into Players, or nil
func (t *Team) GetPlayer(id PlayerID) *Player {
	if i := t.PlayerIndex(id); i >= 0 {
		return &t.Players[i]
	}
	return nil
}

// Renumber rewrites every rank to match slice order
func (t *Team) Renumber() {
	for i := range t.Players {
		t.Players[i].Rank = i + 1
	}
}

// SwapPlayers exchanges the players at i and j, keeping ranks aligned
// with positions
func (t *Team) SwapPlayers(i, j int) {
	t.Players[i], t.Players[j] = t.Players[j], t.Players[i]
	t.Players[i].Rank, t.Players[j].Rank = i+1, j+1
}

// RemovePlayer deletes a player and renumbers the rest.
// Returns false if the player is not on the team.
func (t *Team) RemovePlayer(id PlayerID) bool {
	i := t.PlayerIndex(id)
	if i < 0 {
		return false
	}
	t.Players = append(t.Players[:i], t.Players[i+1:]...)
	t.Renumber()
	return true
}
