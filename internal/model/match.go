package model

// Side names one of the two teams on court
type Side string

const (
	Team1 Side = "team1"
	Team2 Side = "team2"
)

// Valid reports whether s names a team
func (s Side) Valid() bool {
	return s == Team1 || s == Team2
}

// Outcome is the result of a win check
type Outcome string

const (
	NoWinner  Outcome = "none"
	Team1Wins Outcome = "team1"
	Team2Wins Outcome = "team2"
)

// MatchPhase is the lifecycle phase of the current match
type MatchPhase string

const (
	PhaseNoMatch    MatchPhase = "no_match"
	PhaseInProgress MatchPhase = "in_progress"
	PhaseFinished   MatchPhase = "finished" // A winner exists; mutation is not locked
)

// MatchState is the persisted record of the match being scored.
// The rule fields are copied from the mode at match start so later
// edits to the custom mode do not alter a match already underway.
type MatchState struct {
	ModeID               GameModeID `json:"mode"`
	MaxScore             int        `json:"maxScore"`
	WinningMargin        int        `json:"winningMargin"`
	TeamRotationInterval int        `json:"teamRotationInterval"`

	Team1Score int `json:"team1Score"`
	Team2Score int `json:"team2Score"`

	// Undo snapshot: the score pair before the last mutating operation.
	// Only one level of undo exists.
	PrevTeam1Score int `json:"prevTeam1Score"`
	PrevTeam2Score int `json:"prevTeam2Score"`
}

// NewMatchState creates a zeroed match using the rules of mode
func NewMatchState(mode GameMode) *MatchState {
	return &MatchState{
		ModeID:               mode.ID,
		MaxScore:             mode.MaxScore,
		WinningMargin:        mode.WinningMargin,
		TeamRotationInterval: mode.TeamRotationInterval,
	}
}

// Validate checks a loaded record: the rules must be a playable mode and
// no score or snapshot value may be negative
func (m *MatchState) Validate() error {
	rules := GameMode{
		MaxScore:             m.MaxScore,
		WinningMargin:        m.WinningMargin,
		TeamRotationInterval: m.TeamRotationInterval,
	}
	if err := rules.Validate(); err != nil {
		return err
	}
	if m.Team1Score < 0 || m.Team2Score < 0 || m.PrevTeam1Score < 0 || m.PrevTeam2Score < 0 {
		return ErrInvalidScore
	}
	return nil
}

// Score returns the score for a side
func (m *MatchState) Score(side Side) int {
	if side == Team2 {
		return m.Team2Score
	}
	return m.Team1Score
}

// Snapshot records the current scores as the undo state
func (m *MatchState) Snapshot() {
	m.PrevTeam1Score = m.Team1Score
	m.PrevTeam2Score = m.Team2Score
}

// Increment snapshots then adds a point for side
func (m *MatchState) Increment(side Side) {
	m.Snapshot()
	if side == Team2 {
		m.Team2Score++
	} else {
		m.Team1Score++
	}
}

// Decrement snapshots then removes a point for side.
// Returns false without touching the snapshot if the score is already 0.
func (m *MatchState) Decrement(side Side) bool {
	if m.Score(side) == 0 {
		return false
	}
	m.Snapshot()
	if side == Team2 {
		m.Team2Score--
	} else {
		m.Team1Score--
	}
	return true
}

// Undo restores the snapshot. It returns false when there is nothing to
// restore, including a second undo in a row.
func (m *MatchState) Undo() bool {
	if m.Team1Score == m.PrevTeam1Score && m.Team2Score == m.PrevTeam2Score {
		return false
	}
	m.Team1Score = m.PrevTeam1Score
	m.Team2Score = m.PrevTeam2Score
	return true
}

// Outcome applies the win condition to the current scores
func (m *MatchState) Outcome() Outcome {
	switch {
	case m.Team1Score >= m.MaxScore && m.Team1Score-m.Team2Score >= m.WinningMargin:
		return Team1Wins
	case m.Team2Score >= m.MaxScore && m.Team2Score-m.Team1Score >= m.WinningMargin:
		return Team2Wins
	default:
		return NoWinner
	}
}

// Phase returns InProgress or Finished depending on the outcome
func (m *MatchState) Phase() MatchPhase {
	if m.Outcome() != NoWinner {
		return PhaseFinished
	}
	return PhaseInProgress
}

// RotationDue reports whether the combined score has reached a multiple
// of the rotation interval
func (m *MatchState) RotationDue() bool {
	total := m.Team1Score + m.Team2Score
	return m.TeamRotationInterval > 0 && total > 0 && total%m.TeamRotationInterval == 0
}

// HasPoints returns true once either side has scored
func (m *MatchState) HasPoints() bool {
	return m.Team1Score > 0 || m.Team2Score > 0
}
