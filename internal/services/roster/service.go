package roster

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mcoot/pickleball-scorekeeper/internal/model"
	"github.com/mcoot/pickleball-scorekeeper/internal/services/idgen"
	"github.com/mcoot/pickleball-scorekeeper/internal/storage"
)

// Service manages teams and their ranked players. Every operation loads
// the whole roster, changes it, and writes it back under one key.
type Service struct {
	storage storage.Store
	ids     idgen.IDGenerator
	logger  *slog.Logger
}

// New creates a new roster Service
func New(storage storage.Store, ids idgen.IDGenerator, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		ids:     ids,
		logger:  logger.With(slog.String("component", "roster")),
	}
}

// ListTeams returns every team in creation order. Missing or unreadable
// storage yields an empty roster.
func (s *Service) ListTeams(ctx context.Context) []model.Team {
	teams := s.load(ctx)
	if teams == nil {
		return []model.Team{}
	}
	return teams
}

// GetTeam returns a team by ID
func (s *Service) GetTeam(ctx context.Context, id model.TeamID) (*model.Team, error) {
	teams := s.load(ctx)
	if i := indexOf(teams, id); i >= 0 {
		return &teams[i], nil
	}
	return nil, model.ErrTeamNotFound
}

// CreateTeam adds an empty team. The name is trimmed and must be unique
// ignoring case.
func (s *Service) CreateTeam(ctx context.Context, name string) (*model.Team, error) {
	name = model.NormalizeTeamName(name)
	if name == "" {
		return nil, model.ErrEmptyTeamName
	}

	teams := s.load(ctx)
	if !nameUnique(teams, name, "") {
		return nil, model.ErrDuplicateName
	}

	team := model.Team{
		ID:      model.TeamID(s.ids.NewID()),
		Name:    name,
		Players: []model.Player{},
	}
	teams = append(teams, team)

	if err := s.save(ctx, teams); err != nil {
		return nil, err
	}

	s.logger.Info("team created",
		slog.String("team_id", string(team.ID)),
		slog.String("name", team.Name),
	)
	return &team, nil
}

// UpdateTeam replaces the team with the same ID. An unknown ID is a silent
// no-op. Ranks are re-derived from the player order given.
func (s *Service) UpdateTeam(ctx context.Context, team model.Team) error {
	teams := s.load(ctx)
	i := indexOf(teams, team.ID)
	if i < 0 {
		return nil
	}

	team.Name = model.NormalizeTeamName(team.Name)
	if team.Name == "" {
		return model.ErrEmptyTeamName
	}
	if err := validatePlayers(team.Players); err != nil {
		return err
	}
	if !nameUnique(teams, team.Name, team.ID) {
		return model.ErrDuplicateName
	}

	if team.Players == nil {
		team.Players = []model.Player{}
	}
	team.Renumber()
	teams[i] = team

	if err := s.save(ctx, teams); err != nil {
		return err
	}

	s.logger.Info("team updated",
		slog.String("team_id", string(team.ID)),
		slog.String("name", team.Name),
		slog.Int("player_count", len(team.Players)),
	)
	return nil
}

// DeleteTeam removes a team and all of its players
func (s *Service) DeleteTeam(ctx context.Context, id model.TeamID) error {
	teams := s.load(ctx)
	i := indexOf(teams, id)
	if i < 0 {
		return nil
	}
	removed := teams[i]
	teams = append(teams[:i], teams[i+1:]...)

	if err := s.save(ctx, teams); err != nil {
		return err
	}

	s.logger.Info("team deleted",
		slog.String("team_id", string(id)),
		slog.Int("player_count", len(removed.Players)),
	)
	return nil
}

// IsTeamNameUnique reports whether no other team uses name (trimmed,
// case-insensitive). excludeID lets an edit ignore the team being edited.
func (s *Service) IsTeamNameUnique(ctx context.Context, name string, excludeID model.TeamID) bool {
	return nameUnique(s.load(ctx), name, excludeID)
}

// AddPlayer appends a player at the bottom of the team's ranking
func (s *Service) AddPlayer(ctx context.Context, teamID model.TeamID, fields model.PlayerFields) (*model.Player, error) {
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	teams := s.load(ctx)
	i := indexOf(teams, teamID)
	if i < 0 {
		return nil, model.ErrTeamNotFound
	}
	team := &teams[i]

	player := model.Player{
		ID:        model.PlayerID(s.ids.NewID()),
		FirstName: fields.FirstName,
		LastName:  fields.LastName,
		Gender:    fields.Gender,
		Level:     fields.Level,
	}
	team.Players = append(team.Players, player)
	team.Renumber()

	if err := s.save(ctx, teams); err != nil {
		return nil, err
	}

	added := team.Players[len(team.Players)-1]
	s.logger.Info("player added",
		slog.String("team_id", string(teamID)),
		slog.String("player_id", string(added.ID)),
		slog.Int("rank", added.Rank),
	)
	return &added, nil
}

// UpdatePlayer replaces a player's details in place. The player keeps
// their current rank whatever rank the caller passes. Unknown team or
// player is a silent no-op.
func (s *Service) UpdatePlayer(ctx context.Context, teamID model.TeamID, player model.Player) error {
	teams := s.load(ctx)
	i := indexOf(teams, teamID)
	if i < 0 {
		return nil
	}
	team := &teams[i]
	j := team.PlayerIndex(player.ID)
	if j < 0 {
		return nil
	}
	if err := player.Fields().Validate(); err != nil {
		return err
	}

	team.Players[j] = player
	team.Renumber()

	if err := s.save(ctx, teams); err != nil {
		return err
	}

	s.logger.Info("player updated",
		slog.String("team_id", string(teamID)),
		slog.String("player_id", string(player.ID)),
	)
	return nil
}

// DeletePlayer removes a player and closes the gap in the ranking
func (s *Service) DeletePlayer(ctx context.Context, teamID model.TeamID, playerID model.PlayerID) error {
	teams := s.load(ctx)
	i := indexOf(teams, teamID)
	if i < 0 {
		return nil
	}
	team := &teams[i]
	if !team.RemovePlayer(playerID) {
		return nil
	}

	if err := s.save(ctx, teams); err != nil {
		return err
	}

	s.logger.Info("player deleted",
		slog.String("team_id", string(teamID)),
		slog.String("player_id", string(playerID)),
		slog.Int("remaining", len(team.Players)),
	)
	return nil
}

// MovePlayerUp swaps a player with the one ranked directly above.
// The top player stays put.
func (s *Service) MovePlayerUp(ctx context.Context, teamID model.TeamID, playerID model.PlayerID) error {
	return s.movePlayer(ctx, teamID, playerID, -1)
}

// MovePlayerDown swaps a player with the one ranked directly below.
// The bottom player stays put.
func (s *Service) MovePlayerDown(ctx context.Context, teamID model.TeamID, playerID model.PlayerID) error {
	return s.movePlayer(ctx, teamID, playerID, 1)
}

func (s *Service) movePlayer(ctx context.Context, teamID model.TeamID, playerID model.PlayerID, offset int) error {
	teams := s.load(ctx)
	i := indexOf(teams, teamID)
	if i < 0 {
		return nil
	}
	team := &teams[i]

	from := team.PlayerIndex(playerID)
	to := from + offset
	if from < 0 || to < 0 || to >= len(team.Players) {
		return nil
	}

	team.SwapPlayers(from, to)

	if err := s.save(ctx, teams); err != nil {
		return err
	}

	s.logger.Info("player moved",
		slog.String("team_id", string(teamID)),
		slog.String("player_id", string(playerID)),
		slog.Int("rank", to+1),
	)
	return nil
}

// load reads the roster and repairs rank drift in stored data
func (s *Service) load(ctx context.Context) []model.Team {
	var teams []model.Team
	if err := storage.LoadJSON(ctx, s.storage, storage.KeyTeams, &teams); err != nil {
		if storage.Degraded(err) {
			s.logger.Warn("roster unreadable, treating as empty", slog.String("error", err.Error()))
		}
		return nil
	}
	for i := range teams {
		if teams[i].Players == nil {
			teams[i].Players = []model.Player{}
		}
		teams[i].Renumber()
	}
	return teams
}

func (s *Service) save(ctx context.Context, teams []model.Team) error {
	if teams == nil {
		teams = []model.Team{}
	}
	if err := storage.SaveJSON(ctx, s.storage, storage.KeyTeams, teams); err != nil {
		s.logger.Error("failed to save roster", slog.String("error", err.Error()))
		return err
	}
	return nil
}

// validatePlayers checks each player's fields and that ids are present
// and unique within the list
func validatePlayers(players []model.Player) error {
	seen := make(map[model.PlayerID]bool, len(players))
	for _, p := range players {
		if p.ID == "" {
			return model.ErrMissingPlayerID
		}
		if seen[p.ID] {
			return fmt.Errorf("%w: %s", model.ErrDuplicatePlayerID, p.ID)
		}
		seen[p.ID] = true
		if err := p.Fields().Validate(); err != nil {
			return err
		}
	}
	return nil
}

func indexOf(teams []model.Team, id model.TeamID) int {
	for i := range teams {
		if teams[i].ID == id {
			return i
		}
	}
	return -1
}

func nameUnique(teams []model.Team, name string, excludeID model.TeamID) bool {
	for _, t := range teams {
		if t.ID != excludeID && model.SameTeamName(t.Name, name) {
			return false
		}
	}
	return true
}
