package modes

import (
	"context"
	"log/slog"

	"github.com/mcoot/pickleball-scorekeeper/internal/model"
	"github.com/mcoot/pickleball-scorekeeper/internal/storage"
)

// Registry serves the built-in game modes plus the single persisted
// custom-mode override
type Registry struct {
	storage storage.Store
	logger  *slog.Logger
}

// New creates a new Registry
func New(storage storage.Store, logger *slog.Logger) *Registry {
	return &Registry{
		storage: storage,
		logger:  logger.With(slog.String("component", "mode-registry")),
	}
}

// ListModes returns the presets in display order, with the custom entry
// replaced by the saved override when there is one
func (r *Registry) ListModes(ctx context.Context) []model.GameMode {
	modes := model.PresetModes()
	custom, err := r.LoadCustomMode(ctx)
	if err != nil {
		return modes
	}
	for i := range modes {
		if modes[i].ID == model.ModeCustom {
			modes[i] = custom
		}
	}
	return modes
}

// GetMode looks up a mode by exact ID
func (r *Registry) GetMode(ctx context.Context, id model.GameModeID) (model.GameMode, error) {
	if id == model.ModeCustom {
		if custom, err := r.LoadCustomMode(ctx); err == nil {
			return custom, nil
		}
	}
	mode, ok := model.PresetMode(id)
	if !ok {
		return model.GameMode{}, model.ErrModeNotFound
	}
	return mode, nil
}

// SaveCustomMode validates and persists the custom rules. On validation
// failure the previously saved rules are left as they were.
func (r *Registry) SaveCustomMode(ctx context.Context, mode model.GameMode) error {
	if err := mode.Validate(); err != nil {
		return err
	}

	defaults, _ := model.PresetMode(model.ModeCustom)
	mode.ID = model.ModeCustom
	if mode.Name == "" {
		mode.Name = defaults.Name
	}
	if mode.Description == "" {
		mode.Description = defaults.Description
	}

	if err := storage.SaveJSON(ctx, r.storage, storage.KeyCustomMode, mode); err != nil {
		r.logger.Error("failed to save custom mode", slog.String("error", err.Error()))
		return err
	}

	r.logger.Info("custom mode saved",
		slog.Int("max_score", mode.MaxScore),
		slog.Int("winning_margin", mode.WinningMargin),
		slog.Int("rotation_interval", mode.TeamRotationInterval),
	)
	return nil
}

// LoadCustomMode returns the last saved custom rules, or ErrModeNotFound
// if none were saved or the stored record is unreadable
func (r *Registry) LoadCustomMode(ctx context.Context) (model.GameMode, error) {
	var mode model.GameMode
	if err := storage.LoadJSON(ctx, r.storage, storage.KeyCustomMode, &mode); err != nil {
		if storage.Degraded(err) {
			r.logger.Warn("custom mode unreadable, using defaults", slog.String("error", err.Error()))
		}
		return model.GameMode{}, model.ErrModeNotFound
	}
	if err := mode.Validate(); err != nil {
		r.logger.Warn("ignoring invalid stored custom mode", slog.String("error", err.Error()))
		return model.GameMode{}, model.ErrModeNotFound
	}
	mode.ID = model.ModeCustom
	return mode, nil
}
