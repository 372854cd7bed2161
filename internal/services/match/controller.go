package match

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mcoot/pickleball-scorekeeper/internal/model"
	"github.com/mcoot/pickleball-scorekeeper/internal/storage"
)

// ModeLookup resolves a game mode by ID. Satisfied by *modes.Registry.
type ModeLookup interface {
	GetMode(ctx context.Context, id model.GameModeID) (model.GameMode, error)
}

// Controller manages the match state machine: scoring, undo and win checks
type Controller struct {
	storage storage.Store
	modes   ModeLookup
	logger  *slog.Logger
}

// NewController creates a new match Controller
func NewController(storage storage.Store, modes ModeLookup, logger *slog.Logger) *Controller {
	return &Controller{
		storage: storage,
		modes:   modes,
		logger:  logger.With(slog.String("component", "match-controller")),
	}
}

// StartMatch discards any current match and begins a new one with the
// rules of modeID
func (c *Controller) StartMatch(ctx context.Context, modeID model.GameModeID) (*model.MatchState, error) {
	mode, err := c.modes.GetMode(ctx, modeID)
	if err != nil {
		return nil, err
	}

	if err := c.storage.Delete(ctx, storage.KeyCurrentMatch); err != nil {
		c.logger.Warn("failed to clear previous match", slog.String("error", err.Error()))
	}

	match := model.NewMatchState(mode)
	if err := c.save(ctx, match); err != nil {
		return nil, err
	}

	c.logger.Info("match started",
		slog.String("mode", string(mode.ID)),
		slog.Int("max_score", mode.MaxScore),
		slog.Int("winning_margin", mode.WinningMargin),
		slog.Int("rotation_interval", mode.TeamRotationInterval),
	)

	return match, nil
}

// GetMatch returns the current match, or ErrNoMatch. Unreadable storage
// and records that fail validation are reported the same way as an absent
// match.
func (c *Controller) GetMatch(ctx context.Context) (*model.MatchState, error) {
	var match model.MatchState
	err := storage.LoadJSON(ctx, c.storage, storage.KeyCurrentMatch, &match)
	if err == nil {
		if verr := match.Validate(); verr != nil {
			err = fmt.Errorf("%s: %w: %w", storage.KeyCurrentMatch, storage.ErrCorrupt, verr)
		}
	}
	if err != nil {
		if storage.Degraded(err) {
			c.logger.Warn("match record unreadable", slog.String("error", err.Error()))
		}
		return nil, model.ErrNoMatch
	}
	return &match, nil
}

// Phase reports where the match is in its lifecycle
func (c *Controller) Phase(ctx context.Context) model.MatchPhase {
	match, err := c.GetMatch(ctx)
	if err != nil {
		return model.PhaseNoMatch
	}
	return match.Phase()
}

// IncrementScore adds a point for side
func (c *Controller) IncrementScore(ctx context.Context, side model.Side) (*model.MatchState, error) {
	match, err := c.loadForUpdate(ctx, side)
	if err != nil {
		return nil, err
	}

	match.Increment(side)
	if err := c.save(ctx, match); err != nil {
		return nil, err
	}

	c.logScore("point scored", side, match)
	return match, nil
}

// DecrementScore removes a point from side. At 0 it is a no-op that keeps
// the undo snapshot intact.
func (c *Controller) DecrementScore(ctx context.Context, side model.Side) (*model.MatchState, error) {
	match, err := c.loadForUpdate(ctx, side)
	if err != nil {
		return nil, err
	}

	if !match.Decrement(side) {
		return match, nil
	}
	if err := c.save(ctx, match); err != nil {
		return nil, err
	}

	c.logScore("point removed", side, match)
	return match, nil
}

// Undo restores the scores from before the last mutation. Only one level
// is kept, so a second Undo in a row changes nothing.
func (c *Controller) Undo(ctx context.Context) (*model.MatchState, error) {
	match, err := c.GetMatch(ctx)
	if err != nil {
		return nil, err
	}

	if !match.Undo() {
		return match, nil
	}
	if err := c.save(ctx, match); err != nil {
		return nil, err
	}

	c.logger.Info("score undone",
		slog.Int("team1_score", match.Team1Score),
		slog.Int("team2_score", match.Team2Score),
	)
	return match, nil
}

// CheckWinner evaluates the win condition without changing anything
func (c *Controller) CheckWinner(ctx context.Context) (model.Outcome, error) {
	match, err := c.GetMatch(ctx)
	if err != nil {
		return model.NoWinner, err
	}
	return match.Outcome(), nil
}

// RotationDue reports whether a side rotation reminder is due
func (c *Controller) RotationDue(ctx context.Context) (bool, error) {
	match, err := c.GetMatch(ctx)
	if err != nil {
		return false, err
	}
	return match.RotationDue(), nil
}

// ClearMatch deletes the current match
func (c *Controller) ClearMatch(ctx context.Context) error {
	if err := c.storage.Delete(ctx, storage.KeyCurrentMatch); err != nil {
		c.logger.Error("failed to clear match", slog.String("error", err.Error()))
		return err
	}
	c.logger.Info("match cleared")
	return nil
}

// HasMatchInProgress is true when a match exists and a point has been scored
func (c *Controller) HasMatchInProgress(ctx context.Context) bool {
	match, err := c.GetMatch(ctx)
	if err != nil {
		return false
	}
	return match.HasPoints()
}

func (c *Controller) loadForUpdate(ctx context.Context, side model.Side) (*model.MatchState, error) {
	if !side.Valid() {
		return nil, model.ErrInvalidSide
	}
	return c.GetMatch(ctx)
}

func (c *Controller) save(ctx context.Context, match *model.MatchState) error {
	if err := storage.SaveJSON(ctx, c.storage, storage.KeyCurrentMatch, match); err != nil {
		c.logger.Error("failed to save match", slog.String("error", err.Error()))
		return err
	}
	return nil
}

func (c *Controller) logScore(msg string, side model.Side, match *model.MatchState) {
	c.logger.Debug(msg,
		slog.String("side", string(side)),
		slog.Int("team1_score", match.Team1Score),
		slog.Int("team2_score", match.Team2Score),
	)
}
