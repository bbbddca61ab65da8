package state

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	serverError "github.com/supakorn-kn/travel-admin/errors"
)

type viewState struct {
	SearchTerm string `json:"search_term"`
	Page       int    `json:"current_page"`
}

type StoreTestSuite struct {
	suite.Suite
	newStore func() Store
	raw      func(key, value string)
}

func (s *StoreTestSuite) TestRoundTrip() {

	ctx := context.Background()
	store := s.newStore()

	s.Run("Should report missing key", func() {

		var out viewState
		found, err := store.Get(ctx, "filter:tours", &out)
		s.Require().NoError(err)
		s.False(found)
	})

	s.Run("Should read back saved value", func() {

		saved := viewState{SearchTerm: gofakeit.City(), Page: 3}
		s.Require().NoError(store.Set(ctx, "filter:tours", saved))

		var out viewState
		found, err := store.Get(ctx, "filter:tours", &out)
		s.Require().NoError(err)
		s.True(found)
		s.Equal(saved, out)
	})

	s.Run("Should forget deleted value", func() {

		s.Require().NoError(store.Delete(ctx, "filter:tours"))

		var out viewState
		found, err := store.Get(ctx, "filter:tours", &out)
		s.Require().NoError(err)
		s.False(found)
	})
}

func (s *StoreTestSuite) TestDrafts() {

	ctx := context.Background()
	drafts := NewDrafts(s.newStore())

	s.Run("Should read empty object for missing draft", func() {

		draft, err := drafts.Get(ctx, "enquiry")
		s.Require().NoError(err)
		s.Equal(map[string]any{}, draft)
	})

	s.Run("Should round trip a draft", func() {

		s.Require().NoError(drafts.Save(ctx, "booking", map[string]any{"name": "Amit", "adults": 2.0}))

		draft, err := drafts.Get(ctx, "booking")
		s.Require().NoError(err)
		s.Equal(map[string]any{"name": "Amit", "adults": 2.0}, draft)
	})

	s.Run("Should reject unknown key", func() {

		_, err := drafts.Get(ctx, "payment")
		s.ErrorIs(err, serverError.DraftKeyInvalidError.New("payment"))
		s.ErrorIs(drafts.Save(ctx, "", nil), serverError.DraftKeyInvalidError.New(""))
		s.ErrorIs(drafts.Remove(ctx, "users"), serverError.DraftKeyInvalidError.New("users"))
	})

	s.Run("Should clear every draft", func() {

		for _, key := range DraftKeys {
			s.Require().NoError(drafts.Save(ctx, key, map[string]any{"key": key}))
		}

		s.Require().NoError(drafts.Clear(ctx))

		for _, key := range DraftKeys {
			draft, err := drafts.Get(ctx, key)
			s.Require().NoError(err)
			s.Empty(draft)
		}
	})
}

type RedisStoreTestSuite struct {
	StoreTestSuite
	server *miniredis.Miniredis
}

func (s *RedisStoreTestSuite) SetupTest() {

	s.server = miniredis.RunT(s.T())
	client := redis.NewClient(&redis.Options{Addr: s.server.Addr()})
	store := NewRedisStore(client, "travel-admin:")

	s.newStore = func() Store { return store }
	s.raw = func(key, value string) {
		s.Require().NoError(s.server.Set("travel-admin:"+key, value))
	}
}

func (s *RedisStoreTestSuite) TestKeyPrefix() {

	store := s.newStore()
	s.Require().NoError(store.Set(context.Background(), "filter:users", viewState{Page: 2}))

	s.True(s.server.Exists("travel-admin:filter:users"))
	s.False(s.server.Exists("filter:users"))
}

func (s *RedisStoreTestSuite) TestCorruptDraft() {

	s.raw("draft:tour", "{not json")

	draft, err := NewDrafts(s.newStore()).Get(context.Background(), "tour")
	s.Require().NoError(err)
	s.Equal(map[string]any{}, draft)
}

type MemoryStoreTestSuite struct {
	StoreTestSuite
}

func (s *MemoryStoreTestSuite) SetupTest() {

	store := NewMemoryStore()
	s.newStore = func() Store { return store }
	s.raw = func(key, value string) {
		store.mu.Lock()
		store.values[key] = []byte(value)
		store.mu.Unlock()
	}
}

func (s *MemoryStoreTestSuite) TestCorruptDraft() {

	s.raw("draft:destination", `["not", "an", "object"]`)

	draft, err := NewDrafts(s.newStore()).Get(context.Background(), "destination")
	s.Require().NoError(err)
	s.Equal(map[string]any{}, draft)
}

func TestMemoryStore(t *testing.T) {
	suite.Run(t, new(MemoryStoreTestSuite))
}

func TestRedisStore(t *testing.T) {
	suite.Run(t, new(RedisStoreTestSuite))
}
