package model

import (
	"errors"
	"fmt"
)

// Error categories. Specific errors wrap one of these so callers can match
// either the category or the exact failure with errors.Is.
var (
	ErrValidation    = errors.New("validation failed")
	ErrNotFound      = errors.New("not found")
	ErrDuplicateName = errors.New("team name already exists")
	ErrNoMatch       = errors.New("no match in progress")
)

// Common errors used across the application
var (
	// Game mode errors
	ErrModeNotFound            = fmt.Errorf("game mode %w", ErrNotFound)
	ErrInvalidMaxScore         = fmt.Errorf("%w: max score must be at least 1", ErrValidation)
	ErrInvalidWinningMargin    = fmt.Errorf("%w: winning margin must be at least 1", ErrValidation)
	ErrInvalidRotationInterval = fmt.Errorf("%w: team rotation interval must not be negative", ErrValidation)

	// Match errors
	ErrInvalidSide  = fmt.Errorf("%w: side must be team1 or team2", ErrValidation)
	ErrInvalidScore = fmt.Errorf("%w: scores must not be negative", ErrValidation)

	// Roster errors
	ErrTeamNotFound      = fmt.Errorf("team %w", ErrNotFound)
	ErrPlayerNotFound    = fmt.Errorf("player %w", ErrNotFound)
	ErrEmptyTeamName     = fmt.Errorf("%w: team name is required", ErrValidation)
	ErrInvalidGender     = fmt.Errorf("%w: gender must be M or F", ErrValidation)
	ErrInvalidSkillLevel = fmt.Errorf("%w: skill level must be one of 2.0 to 5.0 in steps of 0.5", ErrValidation)
	ErrMissingPlayerID   = fmt.Errorf("%w: player id is required", ErrValidation)
	ErrDuplicatePlayerID = fmt.Errorf("%w: player id appears more than once", ErrValidation)
)
