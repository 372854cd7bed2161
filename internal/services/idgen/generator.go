package idgen

import (
	"strconv"

	"github.com/mcoot/pickleball-scorekeeper/internal/dependencies/clock"
	"github.com/mcoot/pickleball-scorekeeper/internal/dependencies/random"
)

// SuffixLength is the number of random base36 characters after the timestamp
const SuffixLength = 7

// IDGenerator produces opaque identifiers for teams and players
type IDGenerator interface {
	NewID() string
}

// Generator builds IDs as base36(unix millis) followed by a random suffix.
// IDs are unique enough for a single roster, not globally.
type Generator struct {
	clock  clock.Clock
	random random.Random
}

// New creates a Generator
func New(clock clock.Clock, random random.Random) *Generator {
	return &Generator{
		clock:  clock,
		random: random,
	}
}

var _ IDGenerator = (*Generator)(nil)

// NewID returns a fresh identifier
func (g *Generator) NewID() string {
	millis := g.clock.Now().UnixMilli()
	return strconv.FormatInt(millis, 36) + g.random.String(SuffixLength, random.Base36)
}
