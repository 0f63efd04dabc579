package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/drophunt/internal/model"
)

type StorageSuite struct {
	suite.Suite
	path    string
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	cfg := DefaultConfig()
	s.path = filepath.Join(s.T().TempDir(), "drophunt.db")
	cfg.Path = s.path

	st, err := New(cfg)
	s.Require().NoError(err)
	s.storage = st
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
}

func (s *StorageSuite) TestSetAndGet() {
	s.Require().NoError(s.storage.Set(s.ctx, "drophunt_daily_stats", `{"date":"2024-1-1"}`))

	v, err := s.storage.Get(s.ctx, "drophunt_daily_stats")
	s.Require().NoError(err)
	s.Equal(`{"date":"2024-1-1"}`, v)
}

func (s *StorageSuite) TestUpsert() {
	s.Require().NoError(s.storage.Set(s.ctx, "k", "one"))
	s.Require().NoError(s.storage.Set(s.ctx, "k", "two"))

	v, err := s.storage.Get(s.ctx, "k")
	s.Require().NoError(err)
	s.Equal("two", v)
}

func (s *StorageSuite) TestGetNotFound() {
	_, err := s.storage.Get(s.ctx, "missing")
	s.ErrorIs(err, model.ErrKeyNotFound)
}

func (s *StorageSuite) TestRemove() {
	_ = s.storage.Set(s.ctx, "k", "v")

	s.Require().NoError(s.storage.Remove(s.ctx, "k"))
	s.Require().NoError(s.storage.Remove(s.ctx, "k"))

	_, err := s.storage.Get(s.ctx, "k")
	s.ErrorIs(err, model.ErrKeyNotFound)
}

func (s *StorageSuite) TestPersistsAcrossReopen() {
	s.Require().NoError(s.storage.Set(s.ctx, "k", "durable"))
	s.Require().NoError(s.storage.Close())

	cfg := DefaultConfig()
	cfg.Path = s.path
	reopened, err := New(cfg)
	s.Require().NoError(err)
	s.storage = reopened

	v, err := reopened.Get(s.ctx, "k")
	s.Require().NoError(err)
	s.Equal("durable", v)
}
