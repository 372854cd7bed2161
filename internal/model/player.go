package model

import "slices"

// PlayerID uniquely identifies a player within their team
type PlayerID string

// Gender of a player, as used for mixed doubles pairing
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

// Valid reports whether g is M or F
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// SkillLevel is a pickleball skill rating
type SkillLevel float64

// SkillLevels lists the accepted ratings in ascending order
var SkillLevels = []SkillLevel{2.0, 2.5, 3.0, 3.5, 4.0, 4.5, 5.0}

// Valid reports whether l is one of SkillLevels
func (l SkillLevel) Valid() bool {
	return slices.Contains(SkillLevels, l)
}

// Player belongs to exactly one team
type Player struct {
	ID        PlayerID   `json:"id"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Gender    Gender     `json:"gender"`
	Level     SkillLevel `json:"level"`
	Rank      int        `json:"rank"` // 1-based position on the team, derived from order
}

// PlayerFields are the caller-supplied fields of a new player.
// ID and rank are always assigned by the roster.
type PlayerFields struct {
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Gender    Gender     `json:"gender"`
	Level     SkillLevel `json:"level"`
}

// Validate checks gender and skill level
func (f PlayerFields) Validate() error {
	if !f.Gender.Valid() {
		return ErrInvalidGender
	}
	if !f.Level.Valid() {
		return ErrInvalidSkillLevel
	}
	return nil
}

// Fields returns the caller-editable part of p
func (p Player) Fields() PlayerFields {
	return PlayerFields{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Gender:    p.Gender,
		Level:     p.Level,
	}
}

// FullName joins first and last name
func (p Player) FullName() string {
	switch {
	case p.LastName == "":
		return p.FirstName
	case p.FirstName == "":
		return p.LastName
	default:
		return p.FirstName + " " + p.LastName
	}
}
