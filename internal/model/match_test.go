package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutcome(t *testing.T) {
	cases := []struct {
		name    string
		max     int
		margin  int
		team1   int
		team2   int
		outcome Outcome
	}{
		{"11-9", 11, 2, 11, 9, Team1Wins},
		{"11-10", 11, 2, 11, 10, NoWinner},
		{"12-10", 11, 2, 12, 10, Team1Wins},
		{"quick 7-6 margin 1", 7, 1, 7, 6, Team1Wins},
		{"team2 21-18", 21, 2, 18, 21, Team2Wins},
		{"21-20 needs 22", 21, 2, 21, 20, NoWinner},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := &MatchState{MaxScore: tc.max, WinningMargin: tc.margin, Team1Score: tc.team1, Team2Score: tc.team2}
			assert.Equal(t, tc.outcome, m.Outcome())
		})
	}
}

func TestIncrementThenUndo(t *testing.T) {
	m := &MatchState{MaxScore: 11, WinningMargin: 2, Team1Score: 4, Team2Score: 6}
	m.Increment(Team1)
	assert.Equal(t, 5, m.Team1Score)

	assert.True(t, m.Undo())
	assert.Equal(t, 4, m.Team1Score)
	assert.Equal(t, 6, m.Team2Score)
	assert.False(t, m.Undo())
}

func TestDecrementAtZero(t *testing.T) {
	m := &MatchState{Team1Score: 2, PrevTeam1Score: 1}
	assert.False(t, m.Decrement(Team2))
	assert.Equal(t, 1, m.PrevTeam1Score)
}

func TestRotationDue(t *testing.T) {
	m := &MatchState{TeamRotationInterval: 4}
	assert.False(t, m.RotationDue())

	m.Team1Score, m.Team2Score = 2, 2
	assert.True(t, m.RotationDue())

	m.Team2Score = 3
	assert.False(t, m.RotationDue())

	m.TeamRotationInterval = 0
	m.Team2Score = 2
	assert.False(t, m.RotationDue())
}

func TestMatchStateValidate(t *testing.T) {
	assert.NoError(t, NewMatchState(GameMode{MaxScore: 11, WinningMargin: 2}).Validate())
	assert.ErrorIs(t, (&MatchState{}).Validate(), ErrInvalidMaxScore)
	assert.ErrorIs(t, (&MatchState{MaxScore: 11}).Validate(), ErrInvalidWinningMargin)
	assert.ErrorIs(t, (&MatchState{MaxScore: 11, WinningMargin: 2, TeamRotationInterval: -1}).Validate(), ErrInvalidRotationInterval)
	assert.ErrorIs(t, (&MatchState{MaxScore: 11, WinningMargin: 2, Team2Score: -1}).Validate(), ErrInvalidScore)
	assert.ErrorIs(t, (&MatchState{MaxScore: 11, WinningMargin: 2, PrevTeam1Score: -2}).Validate(), ErrValidation)
}

func TestGameModeValidate(t *testing.T) {
	assert.NoError(t, GameMode{MaxScore: 1, WinningMargin: 1}.Validate())
	assert.ErrorIs(t, GameMode{MaxScore: 0, WinningMargin: 1}.Validate(), ErrInvalidMaxScore)
	assert.ErrorIs(t, GameMode{MaxScore: 1, WinningMargin: 0}.Validate(), ErrInvalidWinningMargin)
	assert.ErrorIs(t, GameMode{MaxScore: 1, WinningMargin: 1, TeamRotationInterval: -2}.Validate(), ErrInvalidRotationInterval)
}

func TestPresetModesReturnsCopy(t *testing.T) {
	modes := PresetModes()
	modes[0].Name = "changed"

	standard, ok := PresetMode(ModeStandard)
	assert.True(t, ok)
	assert.Equal(t, "Standard", standard.Name)
}
