package factory

import (
	"time"

	"github.com/mcoot/pickleball-scorekeeper/internal/dependencies/mocks"
	"github.com/mcoot/pickleball-scorekeeper/internal/services/idgen"
	"github.com/mcoot/pickleball-scorekeeper/internal/storage/memory"
	"github.com/mcoot/pickleball-scorekeeper/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Memory is the backing store, for inspecting raw records
	Memory *memory.Storage

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies.
// IDs come from the real generator over the mocked clock and random source,
// so queue strings on MockRandom to control them.
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, idgen.New(mockClock, mockRandom), testutil.NopLogger())

	return &TestApp{
		App:        app,
		Memory:     store,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}
