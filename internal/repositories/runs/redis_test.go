package runs

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/combat-arena/internal/domain/dungeon"
	apperr "github.com/KirkDiggler/combat-arena/internal/errors"
)

type RedisRepoTestSuite struct {
	suite.Suite
	mockClient *redis.Client
	mock       redismock.ClientMock
	repo       Repository
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.mockClient, s.mock = redismock.NewClientMock()
	s.repo = NewRedisRepository(&RedisRepoConfig{Client: s.mockClient})
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) testRun() *dungeon.Run {
	return &dungeon.Run{
		RunID:       "run-1",
		PlayerID:    "player-1",
		DungeonID:   "goblin_caves",
		Difficulty:  dungeon.DifficultyEasy,
		StartTime:   time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
		TotalFloors: 5,
		EntryCost:   10,
	}
}

func (s *RedisRepoTestSuite) TestCreate() {
	ctx := context.Background()
	run := s.testRun()

	data, err := json.Marshal(run)
	s.Require().NoError(err)

	// Happy path
	s.mock.ExpectSet("run:run-1", data, 0).SetVal("OK")
	s.mock.ExpectSAdd("player:player-1:runs", "run-1").SetVal(1)
	s.NoError(s.repo.Create(ctx, run))

	// Dependency error
	s.mock.ExpectSet("run:run-1", data, 0).SetErr(errors.New("redis error"))
	s.Error(s.repo.Create(ctx, run))

	// Input validation
	s.Error(s.repo.Create(ctx, nil))
	s.Error(s.repo.Create(ctx, &dungeon.Run{PlayerID: "player-1"}))
}

func (s *RedisRepoTestSuite) TestGet() {
	ctx := context.Background()
	run := s.testRun()

	data, err := json.Marshal(run)
	s.Require().NoError(err)

	s.mock.ExpectGet("run:run-1").SetVal(string(data))
	stored, err := s.repo.Get(ctx, "run-1")
	s.Require().NoError(err)
	s.Equal(run, stored)

	// Missing key maps to a not-found error
	s.mock.ExpectGet("run:missing").RedisNil()
	_, err = s.repo.Get(ctx, "missing")
	s.Require().Error(err)
	s.True(apperr.IsNotFound(err))

	// Corrupt payload
	s.mock.ExpectGet("run:bad").SetVal("{not json")
	_, err = s.repo.Get(ctx, "bad")
	s.Error(err)
}

func (s *RedisRepoTestSuite) TestDelete() {
	ctx := context.Background()
	run := s.testRun()

	data, err := json.Marshal(run)
	s.Require().NoError(err)

	s.mock.ExpectGet("run:run-1").SetVal(string(data))
	s.mock.ExpectDel("run:run-1").SetVal(1)
	s.mock.ExpectSRem("player:player-1:runs", "run-1").SetVal(1)
	s.NoError(s.repo.Delete(ctx, "run-1"))

	// Deleting a missing run surfaces the not-found from the lookup
	s.mock.ExpectGet("run:missing").RedisNil()
	err = s.repo.Delete(ctx, "missing")
	s.Require().Error(err)
	s.True(apperr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestListByPlayer() {
	ctx := context.Background()
	run := s.testRun()

	data, err := json.Marshal(run)
	s.Require().NoError(err)

	s.mock.ExpectSMembers("player:player-1:runs").SetVal([]string{"run-1"})
	s.mock.ExpectGet("run:run-1").SetVal(string(data))

	runs, err := s.repo.ListByPlayer(ctx, "player-1")
	s.Require().NoError(err)
	s.Require().Len(runs, 1)
	s.Equal("run-1", runs[0].RunID)

	// No runs indexed
	s.mock.ExpectSMembers("player:player-2:runs").SetVal([]string{})
	runs, err = s.repo.ListByPlayer(ctx, "player-2")
	s.Require().NoError(err)
	s.Empty(runs)
}
