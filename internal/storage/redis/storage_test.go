package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/pickleball-scorekeeper/internal/storage"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.Namespace = "court-1"
	cfg.MatchTTL = time.Hour

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) TestSetAndGet() {
	err := s.storage.Set(s.ctx, storage.KeyTeams, `[{"id":"t1"}]`)
	s.Require().NoError(err)

	value, err := s.storage.Get(s.ctx, storage.KeyTeams)
	s.Require().NoError(err)
	s.Equal(`[{"id":"t1"}]`, value)
}

func (s *StorageSuite) TestKeysAreNamespaced() {
	_ = s.storage.Set(s.ctx, storage.KeyTeams, "[]")

	s.True(s.mini.Exists("pbscore:court-1:teams"))
	s.False(s.mini.Exists("teams"))
}

func (s *StorageSuite) TestNamespacesAreIsolated() {
	other := NewWithClient(redis.NewClient(&redis.Options{Addr: s.mini.Addr()}), Config{Namespace: "court-2"})
	defer func() { _ = other.Close() }()

	_ = s.storage.Set(s.ctx, storage.KeyTeams, "[]")

	_, err := other.Get(s.ctx, storage.KeyTeams)
	s.ErrorIs(err, storage.ErrNotFound)
}

func (s *StorageSuite) TestGetNotFound() {
	_, err := s.storage.Get(s.ctx, "nonexistent")
	s.ErrorIs(err, storage.ErrNotFound)
}

func (s *StorageSuite) TestDelete() {
	_ = s.storage.Set(s.ctx, storage.KeyCurrentMatch, "{}")

	err := s.storage.Delete(s.ctx, storage.KeyCurrentMatch)
	s.Require().NoError(err)

	_, err = s.storage.Get(s.ctx, storage.KeyCurrentMatch)
	s.ErrorIs(err, storage.ErrNotFound)
}

func (s *StorageSuite) TestDeleteMissingKeySucceeds() {
	s.NoError(s.storage.Delete(s.ctx, "nonexistent"))
}

func (s *StorageSuite) TestMatchTTL() {
	_ = s.storage.Set(s.ctx, storage.KeyCurrentMatch, "{}")
	_ = s.storage.Set(s.ctx, storage.KeyTeams, "[]")

	matchTTL := s.mini.TTL(redisKey("court-1", storage.KeyCurrentMatch))
	teamsTTL := s.mini.TTL(redisKey("court-1", storage.KeyTeams))

	s.True(matchTTL > 0, "match record should have TTL")
	s.Equal(time.Duration(0), teamsTTL, "roster should not have TTL")
}

func (s *StorageSuite) TestMatchExpires() {
	_ = s.storage.Set(s.ctx, storage.KeyCurrentMatch, "{}")

	s.mini.FastForward(2 * time.Hour)

	_, err := s.storage.Get(s.ctx, storage.KeyCurrentMatch)
	s.ErrorIs(err, storage.ErrNotFound)
}

func (s *StorageSuite) TestServerDownIsUnavailable() {
	s.mini.Close()

	_, err := s.storage.Get(s.ctx, storage.KeyTeams)
	s.ErrorIs(err, storage.ErrUnavailable)
	s.NotErrorIs(err, storage.ErrNotFound)

	err = s.storage.Set(s.ctx, storage.KeyTeams, "[]")
	s.ErrorIs(err, storage.ErrUnavailable)
}
