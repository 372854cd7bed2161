package roster

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/pickleball-scorekeeper/internal/dependencies/mocks"
	"github.com/mcoot/pickleball-scorekeeper/internal/model"
	"github.com/mcoot/pickleball-scorekeeper/internal/storage"
	"github.com/mcoot/pickleball-scorekeeper/internal/storage/memory"
	"github.com/mcoot/pickleball-scorekeeper/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.service = New(s.storage, mocks.NewSequentialIDs("id"), testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) createTeam(name string) *model.Team {
	team, err := s.service.CreateTeam(s.ctx, name)
	s.Require().NoError(err)
	return team
}

func (s *ServiceSuite) addPlayer(teamID model.TeamID, first string) *model.Player {
	player, err := s.service.AddPlayer(s.ctx, teamID, model.PlayerFields{
		FirstName: first,
		LastName:  "Smith",
		Gender:    model.GenderFemale,
		Level:     3.5,
	})
	s.Require().NoError(err)
	return player
}

func (s *ServiceSuite) team(id model.TeamID) *model.Team {
	team, err := s.service.GetTeam(s.ctx, id)
	s.Require().NoError(err)
	return team
}

func (s *ServiceSuite) firstNames(id model.TeamID) []string {
	var names []string
	for _, p := range s.team(id).Players {
		names = append(names, p.FirstName)
	}
	return names
}

// assertContiguousRanks checks ranks are exactly 1..N in slice order
func (s *ServiceSuite) assertContiguousRanks(id model.TeamID) {
	for i, p := range s.team(id).Players {
		s.Equal(i+1, p.Rank, "player %s at position %d", p.ID, i)
	}
}

// CreateTeam tests

func (s *ServiceSuite) TestCreateTeam() {
	team := s.createTeam("  Eagles  ")

	s.Equal("Eagles", team.Name)
	s.NotEmpty(team.ID)
	s.Empty(team.Players)
	s.NotNil(team.Players)
}

func (s *ServiceSuite) TestCreateTeamIsPersisted() {
	team := s.createTeam("Eagles")

	s.Equal("Eagles", s.team(team.ID).Name)
	s.Len(s.service.ListTeams(s.ctx), 1)
}

func (s *ServiceSuite) TestCreateTeamAssignsDistinctIDs() {
	a := s.createTeam("Eagles")
	b := s.createTeam("Hawks")
	s.NotEqual(a.ID, b.ID)
}

func (s *ServiceSuite) TestCreateTeamEmptyName() {
	_, err := s.service.CreateTeam(s.ctx, "   ")
	s.ErrorIs(err, model.ErrEmptyTeamName)
	s.ErrorIs(err, model.ErrValidation)
	s.Empty(s.service.ListTeams(s.ctx))
}

func (s *ServiceSuite) TestCreateTeamDuplicateNameIgnoresCase() {
	s.createTeam("Eagles")

	_, err := s.service.CreateTeam(s.ctx, "eagles")
	s.ErrorIs(err, model.ErrDuplicateName)

	_, err = s.service.CreateTeam(s.ctx, " EAGLES ")
	s.ErrorIs(err, model.ErrDuplicateName)
	s.Len(s.service.ListTeams(s.ctx), 1)
}

// ListTeams / GetTeam tests

func (s *ServiceSuite) TestListTeamsEmpty() {
	teams := s.service.ListTeams(s.ctx)
	s.NotNil(teams)
	s.Empty(teams)
}

func (s *ServiceSuite) TestListTeamsKeepsCreationOrder() {
	s.createTeam("Eagles")
	s.createTeam("Hawks")
	s.createTeam("Owls")

	var names []string
	for _, t := range s.service.ListTeams(s.ctx) {
		names = append(names, t.Name)
	}
	s.Equal([]string{"Eagles", "Hawks", "Owls"}, names)
}

func (s *ServiceSuite) TestGetTeamNotFound() {
	_, err := s.service.GetTeam(s.ctx, "missing")
	s.ErrorIs(err, model.ErrTeamNotFound)
	s.ErrorIs(err, model.ErrNotFound)
}

// IsTeamNameUnique tests

func (s *ServiceSuite) TestIsTeamNameUnique() {
	eagles := s.createTeam("Eagles")
	s.createTeam("Hawks")

	s.False(s.service.IsTeamNameUnique(s.ctx, "eagles", ""))
	s.True(s.service.IsTeamNameUnique(s.ctx, "Owls", ""))
	s.True(s.service.IsTeamNameUnique(s.ctx, "Eagles", eagles.ID), "self-exclusion for edits")
	s.False(s.service.IsTeamNameUnique(s.ctx, " hawks ", eagles.ID))
}

// UpdateTeam tests

func (s *ServiceSuite) TestUpdateTeamRenames() {
	team := s.createTeam("Eagles")
	team.Name = "  Golden Eagles "

	s.Require().NoError(s.service.UpdateTeam(s.ctx, *team))
	s.Equal("Golden Eagles", s.team(team.ID).Name)
}

func (s *ServiceSuite) TestUpdateTeamKeepsOwnNameWithDifferentCase() {
	team := s.createTeam("Eagles")
	team.Name = "EAGLES"

	s.Require().NoError(s.service.UpdateTeam(s.ctx, *team))
	s.Equal("EAGLES", s.team(team.ID).Name)
}

func (s *ServiceSuite) TestUpdateTeamRejectsNameOfOtherTeam() {
	s.createTeam("Eagles")
	hawks := s.createTeam("Hawks")
	hawks.Name = "eagles"

	err := s.service.UpdateTeam(s.ctx, *hawks)
	s.ErrorIs(err, model.ErrDuplicateName)
	s.Equal("Hawks", s.team(hawks.ID).Name)
}

func (s *ServiceSuite) TestUpdateTeamRejectsEmptyName() {
	team := s.createTeam("Eagles")
	team.Name = ""

	s.ErrorIs(s.service.UpdateTeam(s.ctx, *team), model.ErrEmptyTeamName)
}

func (s *ServiceSuite) TestUpdateTeamUnknownIDIsNoOp() {
	s.createTeam("Eagles")
	before, err := s.storage.Get(s.ctx, storage.KeyTeams)
	s.Require().NoError(err)

	err = s.service.UpdateTeam(s.ctx, model.Team{ID: "missing", Name: "Ghosts"})
	s.Require().NoError(err)

	after, err := s.storage.Get(s.ctx, storage.KeyTeams)
	s.Require().NoError(err)
	s.Equal(before, after)
}

func (s *ServiceSuite) TestUpdateTeamUnknownIDWithInvalidFieldsIsNoOp() {
	s.createTeam("Eagles")

	err := s.service.UpdateTeam(s.ctx, model.Team{ID: "missing", Name: "  "})
	s.NoError(err)
}

func (s *ServiceSuite) TestUpdateTeamRejectsDuplicatePlayerIDs() {
	team := s.createTeam("Eagles")
	s.addPlayer(team.ID, "Ann")
	s.addPlayer(team.ID, "Bob")
	before, err := s.storage.Get(s.ctx, storage.KeyTeams)
	s.Require().NoError(err)

	updated := *s.team(team.ID)
	updated.Players = append(updated.Players, updated.Players[0])
	updated.Players[1].ID = updated.Players[0].ID

	err = s.service.UpdateTeam(s.ctx, updated)
	s.ErrorIs(err, model.ErrDuplicatePlayerID)
	s.ErrorIs(err, model.ErrValidation)

	after, err := s.storage.Get(s.ctx, storage.KeyTeams)
	s.Require().NoError(err)
	s.Equal(before, after)
}

func (s *ServiceSuite) TestUpdateTeamRejectsMissingPlayerID() {
	team := s.createTeam("Eagles")
	s.addPlayer(team.ID, "Ann")

	updated := *s.team(team.ID)
	updated.Players[0].ID = ""

	s.ErrorIs(s.service.UpdateTeam(s.ctx, updated), model.ErrMissingPlayerID)
	s.Equal([]string{"Ann"}, s.firstNames(team.ID))
}

func (s *ServiceSuite) TestUpdateTeamRederivesRanks() {
	team := s.createTeam("Eagles")
	s.addPlayer(team.ID, "Ann")
	s.addPlayer(team.ID, "Bea")

	updated := s.team(team.ID)
	updated.Players[0], updated.Players[1] = updated.Players[1], updated.Players[0]
	updated.Players[0].Rank = 7
	updated.Players[1].Rank = 7

	s.Require().NoError(s.service.UpdateTeam(s.ctx, *updated))
	s.Equal([]string{"Bea", "Ann"}, s.firstNames(team.ID))
	s.assertContiguousRanks(team.ID)
}

// DeleteTeam tests

func (s *ServiceSuite) TestDeleteTeamCascadesPlayers() {
	eagles := s.createTeam("Eagles")
	hawks := s.createTeam("Hawks")
	s.addPlayer(eagles.ID, "Ann")

	s.Require().NoError(s.service.DeleteTeam(s.ctx, eagles.ID))

	_, err := s.service.GetTeam(s.ctx, eagles.ID)
	s.ErrorIs(err, model.ErrTeamNotFound)

	teams := s.service.ListTeams(s.ctx)
	s.Require().Len(teams, 1)
	s.Equal(hawks.ID, teams[0].ID)
}

func (s *ServiceSuite) TestDeleteTeamFreesName() {
	team := s.createTeam("Eagles")
	s.Require().NoError(s.service.DeleteTeam(s.ctx, team.ID))

	s.True(s.service.IsTeamNameUnique(s.ctx, "Eagles", ""))
	s.createTeam("Eagles")
}

// AddPlayer tests

func (s *ServiceSuite) TestAddPlayerAppendsWithNextRank() {
	team := s.createTeam("Eagles")

	first := s.addPlayer(team.ID, "Ann")
	second := s.addPlayer(team.ID, "Bea")

	s.Equal(1, first.Rank)
	s.Equal(2, second.Rank)
	s.NotEqual(first.ID, second.ID)
	s.Equal([]string{"Ann", "Bea"}, s.firstNames(team.ID))
}

func (s *ServiceSuite) TestAddPlayerCopiesFields() {
	team := s.createTeam("Eagles")

	player, err := s.service.AddPlayer(s.ctx, team.ID, model.PlayerFields{
		FirstName: "Cy",
		LastName:  "Young",
		Gender:    model.GenderMale,
		Level:     4.5,
	})
	s.Require().NoError(err)

	stored := s.team(team.ID).GetPlayer(player.ID)
	s.Require().NotNil(stored)
	s.Equal("Cy", stored.FirstName)
	s.Equal("Young", stored.LastName)
	s.Equal(model.GenderMale, stored.Gender)
	s.Equal(model.SkillLevel(4.5), stored.Level)
}

func (s *ServiceSuite) TestAddPlayerTeamNotFound() {
	_, err := s.service.AddPlayer(s.ctx, "missing", model.PlayerFields{Gender: model.GenderMale, Level: 3.0})
	s.ErrorIs(err, model.ErrTeamNotFound)
}

func (s *ServiceSuite) TestAddPlayerValidation() {
	team := s.createTeam("Eagles")

	_, err := s.service.AddPlayer(s.ctx, team.ID, model.PlayerFields{Gender: "X", Level: 3.0})
	s.ErrorIs(err, model.ErrInvalidGender)

	_, err = s.service.AddPlayer(s.ctx, team.ID, model.PlayerFields{Gender: model.GenderMale, Level: 3.2})
	s.ErrorIs(err, model.ErrInvalidSkillLevel)

	_, err = s.service.AddPlayer(s.ctx, team.ID, model.PlayerFields{Gender: model.GenderMale, Level: 5.5})
	s.ErrorIs(err, model.ErrValidation)

	s.Empty(s.team(team.ID).Players)
}

// UpdatePlayer tests

func (s *ServiceSuite) TestUpdatePlayerKeepsRank() {
	team := s.createTeam("Eagles")
	s.addPlayer(team.ID, "Ann")
	bea := s.addPlayer(team.ID, "Bea")

	bea.FirstName = "Beatrice"
	bea.Level = 4.0
	bea.Rank = 1

	s.Require().NoError(s.service.UpdatePlayer(s.ctx, team.ID, *bea))

	stored := s.team(team.ID)
	s.Equal([]string{"Ann", "Beatrice"}, s.firstNames(team.ID))
	s.Equal(2, stored.Players[1].Rank)
	s.Equal(model.SkillLevel(4.0), stored.Players[1].Level)
}

func (s *ServiceSuite) TestUpdatePlayerUnknownIsNoOp() {
	team := s.createTeam("Eagles")
	ann := s.addPlayer(team.ID, "Ann")

	ghost := *ann
	ghost.ID = "ghost"
	ghost.FirstName = "Ghost"
	s.NoError(s.service.UpdatePlayer(s.ctx, team.ID, ghost))
	s.NoError(s.service.UpdatePlayer(s.ctx, "missing", *ann))

	s.Equal([]string{"Ann"}, s.firstNames(team.ID))
}

func (s *ServiceSuite) TestUpdatePlayerValidation() {
	team := s.createTeam("Eagles")
	ann := s.addPlayer(team.ID, "Ann")
	ann.Gender = "?"

	s.ErrorIs(s.service.UpdatePlayer(s.ctx, team.ID, *ann), model.ErrInvalidGender)
}

// DeletePlayer tests

func (s *ServiceSuite) TestDeletePlayerRenumbers() {
	team := s.createTeam("Eagles")
	s.addPlayer(team.ID, "Ann")
	bea := s.addPlayer(team.ID, "Bea")
	s.addPlayer(team.ID, "Cal")
	s.addPlayer(team.ID, "Dee")

	s.Require().NoError(s.service.DeletePlayer(s.ctx, team.ID, bea.ID))

	s.Equal([]string{"Ann", "Cal", "Dee"}, s.firstNames(team.ID))
	s.assertContiguousRanks(team.ID)
}

func (s *ServiceSuite) TestDeletePlayerSequenceKeepsRanksContiguous() {
	team := s.createTeam("Eagles")
	var players []*model.Player
	for _, name := range []string{"Ann", "Bea", "Cal", "Dee", "Eve", "Fay"} {
		players = append(players, s.addPlayer(team.ID, name))
	}

	for _, idx := range []int{0, 3, 5, 2} {
		s.Require().NoError(s.service.DeletePlayer(s.ctx, team.ID, players[idx].ID))
		s.assertContiguousRanks(team.ID)
	}
	s.Equal([]string{"Bea", "Eve"}, s.firstNames(team.ID))
}

func (s *ServiceSuite) TestDeleteLastPlayer() {
	team := s.createTeam("Eagles")
	ann := s.addPlayer(team.ID, "Ann")

	s.Require().NoError(s.service.DeletePlayer(s.ctx, team.ID, ann.ID))
	s.Empty(s.team(team.ID).Players)
}

func (s *ServiceSuite) TestDeletePlayerUnknownIsNoOp() {
	team := s.createTeam("Eagles")
	s.addPlayer(team.ID, "Ann")

	s.NoError(s.service.DeletePlayer(s.ctx, team.ID, "ghost"))
	s.NoError(s.service.DeletePlayer(s.ctx, "missing", "ghost"))
	s.Len(s.team(team.ID).Players, 1)
}

// Move tests

func (s *ServiceSuite) TestMovePlayerUp() {
	team := s.createTeam("Eagles")
	s.addPlayer(team.ID, "Ann")
	s.addPlayer(team.ID, "Bea")
	cal := s.addPlayer(team.ID, "Cal")

	s.Require().NoError(s.service.MovePlayerUp(s.ctx, team.ID, cal.ID))

	s.Equal([]string{"Ann", "Cal", "Bea"}, s.firstNames(team.ID))
	s.assertContiguousRanks(team.ID)
}

func (s *ServiceSuite) TestMovePlayerDown() {
	team := s.createTeam("Eagles")
	ann := s.addPlayer(team.ID, "Ann")
	s.addPlayer(team.ID, "Bea")
	s.addPlayer(team.ID, "Cal")

	s.Require().NoError(s.service.MovePlayerDown(s.ctx, team.ID, ann.ID))

	s.Equal([]string{"Bea", "Ann", "Cal"}, s.firstNames(team.ID))
	s.assertContiguousRanks(team.ID)
}

func (s *ServiceSuite) TestMoveTopPlayerUpIsNoOp() {
	team := s.createTeam("Eagles")
	ann := s.addPlayer(team.ID, "Ann")
	s.addPlayer(team.ID, "Bea")
	before := *s.team(team.ID)

	s.Require().NoError(s.service.MovePlayerUp(s.ctx, team.ID, ann.ID))
	s.Equal(before, *s.team(team.ID))
}

func (s *ServiceSuite) TestMoveBottomPlayerDownIsNoOp() {
	team := s.createTeam("Eagles")
	s.addPlayer(team.ID, "Ann")
	bea := s.addPlayer(team.ID, "Bea")
	before := *s.team(team.ID)

	s.Require().NoError(s.service.MovePlayerDown(s.ctx, team.ID, bea.ID))
	s.Equal(before, *s.team(team.ID))
}

func (s *ServiceSuite) TestMoveUnknownPlayerIsNoOp() {
	team := s.createTeam("Eagles")
	s.addPlayer(team.ID, "Ann")

	s.NoError(s.service.MovePlayerUp(s.ctx, team.ID, "ghost"))
	s.NoError(s.service.MovePlayerDown(s.ctx, "missing", "ghost"))
	s.Equal([]string{"Ann"}, s.firstNames(team.ID))
}

func (s *ServiceSuite) TestMovesDoNotAffectOtherTeams() {
	eagles := s.createTeam("Eagles")
	hawks := s.createTeam("Hawks")
	s.addPlayer(eagles.ID, "Ann")
	bea := s.addPlayer(eagles.ID, "Bea")
	s.addPlayer(hawks.ID, "Zed")
	s.addPlayer(hawks.ID, "Yan")

	s.Require().NoError(s.service.MovePlayerUp(s.ctx, eagles.ID, bea.ID))

	s.Equal([]string{"Zed", "Yan"}, s.firstNames(hawks.ID))
}

// Storage tests

func (s *ServiceSuite) TestStoredRankDriftIsRepairedOnLoad() {
	s.Require().NoError(s.storage.Set(s.ctx, storage.KeyTeams,
		`[{"id":"t1","name":"Eagles","players":[
			{"id":"p1","firstName":"Ann","gender":"F","level":3,"rank":4},
			{"id":"p2","firstName":"Bea","gender":"F","level":3,"rank":4}]}]`))

	s.assertContiguousRanks("t1")
}

func (s *ServiceSuite) TestCorruptRosterIsEmpty() {
	s.Require().NoError(s.storage.Set(s.ctx, storage.KeyTeams, "[{"))

	s.Empty(s.service.ListTeams(s.ctx))
	s.createTeam("Eagles")
	s.Len(s.service.ListTeams(s.ctx), 1)
}

func (s *ServiceSuite) TestUnavailableStorage() {
	service := New(testutil.UnavailableStore{}, mocks.NewSequentialIDs("id"), testutil.NopLogger())

	s.Empty(service.ListTeams(s.ctx))
	s.True(service.IsTeamNameUnique(s.ctx, "Eagles", ""))

	_, err := service.CreateTeam(s.ctx, "Eagles")
	s.ErrorIs(err, storage.ErrUnavailable)
}
