package mocks

import (
	"strings"

	"github.com/mcoot/pickleball-scorekeeper/internal/dependencies/random"
)

// MockRandom returns queued strings. Once the queue is empty it falls
// back to the first alphabet character repeated.
type MockRandom struct {
	stringResults []string
}

var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// String returns the next queued string
func (r *MockRandom) String(length int, alphabet string) string {
	if len(r.stringResults) == 0 {
		if alphabet == "" {
			return ""
		}
		return strings.Repeat(alphabet[:1], length)
	}
	result := r.stringResults[0]
	r.stringResults = r.stringResults[1:]
	return result
}

// QueueString adds values to the String result queue
func (r *MockRandom) QueueString(values ...string) {
	r.stringResults = append(r.stringResults, values...)
}
