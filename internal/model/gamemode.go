package model

// GameModeID identifies a game mode preset
type GameModeID string

// Built-in mode identifiers
const (
	ModeStandard GameModeID = "standard"
	ModeRally15  GameModeID = "rally15"
	ModeRally21  GameModeID = "rally21"
	ModeRally25  GameModeID = "rally25"
	ModeQuick    GameModeID = "quick"
	ModeCustom   GameModeID = "custom"
)

// GameMode is a named set of win-condition rules
type GameMode struct {
	ID                   GameModeID `json:"id"`
	Name                 string     `json:"name"`
	MaxScore             int        `json:"maxScore"`             // Points to win
	WinningMargin        int        `json:"winningMargin"`        // Lead needed at or above MaxScore
	TeamRotationInterval int        `json:"teamRotationInterval"` // 0 = no rotation
	Description          string     `json:"description"`
}

// Validate checks the numeric rule fields
func (m GameMode) Validate() error {
	if m.MaxScore < 1 {
		return ErrInvalidMaxScore
	}
	if m.WinningMargin < 1 {
		return ErrInvalidWinningMargin
	}
	if m.TeamRotationInterval < 0 {
		return ErrInvalidRotationInterval
	}
	return nil
}

var presetModes = [...]GameMode{
	{
		ID:                   ModeStandard,
		Name:                 "Standard",
		MaxScore:             11,
		WinningMargin:        2,
		TeamRotationInterval: 0,
		Description:          "Traditional 11-point game",
	},
	{
		ID:                   ModeRally15,
		Name:                 "Rally 15",
		MaxScore:             15,
		WinningMargin:        2,
		TeamRotationInterval: 0,
		Description:          "15-point rally scoring",
	},
	{
		ID:                   ModeRally21,
		Name:                 "Rally 21",
		MaxScore:             21,
		WinningMargin:        2,
		TeamRotationInterval: 4,
		Description:          "21-point with team rotation",
	},
	{
		ID:                   ModeRally25,
		Name:                 "Rally 25",
		MaxScore:             25,
		WinningMargin:        2,
		TeamRotationInterval: 4,
		Description:          "25-point with team rotation",
	},
	{
		ID:                   ModeQuick,
		Name:                 "Quick Game",
		MaxScore:             7,
		WinningMargin:        1,
		TeamRotationInterval: 0,
		Description:          "Fast 7-point game",
	},
	{
		ID:                   ModeCustom,
		Name:                 "Custom",
		MaxScore:             11,
		WinningMargin:        2,
		TeamRotationInterval: 0,
		Description:          "Create your own game rules",
	},
}

// PresetModes returns a copy of the built-in catalog in display order.
// The last entry is the default custom mode.
func PresetModes() []GameMode {
	modes := make([]GameMode, len(presetModes))
	copy(modes, presetModes[:])
	return modes
}

// PresetMode looks up a built-in mode by ID
func PresetMode(id GameModeID) (GameMode, bool) {
	for _, m := range presetModes {
		if m.ID == id {
			return m, true
		}
	}
	return GameMode{}, false
}
