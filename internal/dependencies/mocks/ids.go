package mocks

import (
	"fmt"

	"github.com/mcoot/pickleball-scorekeeper/internal/services/idgen"
)

// SequentialIDs hands out "<prefix>-1", "<prefix>-2", ...
type SequentialIDs struct {
	Prefix string
	next   int
}

var _ idgen.IDGenerator = (*SequentialIDs)(nil)

// NewSequentialIDs creates a generator starting at 1
func NewSequentialIDs(prefix string) *SequentialIDs {
	return &SequentialIDs{Prefix: prefix}
}

// NewID returns the next ID in sequence
func (g *SequentialIDs) NewID() string {
	g.next++
	return fmt.Sprintf("%s-%d", g.Prefix, g.next)
}
