package journeys

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/historical-personas/internal/entities"
	perr "github.com/KirkDiggler/historical-personas/internal/errors"
	"github.com/KirkDiggler/historical-personas/internal/testutils"
)

type RedisRepoTestSuite struct {
	suite.Suite
	mock redismock.ClientMock
	repo Repository
	ctx  context.Context
}

func (s *RedisRepoTestSuite) SetupTest() {
	client, mock := redismock.NewClientMock()
	s.mock = mock
	s.repo = NewRedis(client)
	s.ctx = context.Background()
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func testJourney() *entities.Journey {
	return &entities.Journey{
		ID:            "j-1",
		RootPersonaID: "root",
		Crumbs:        []entities.Crumb{{PersonaID: "root", Name: "Alice Fletcher"}},
		CreatedAt:     testutils.FixedTime,
		UpdatedAt:     testutils.FixedTime,
	}
}

func (s *RedisRepoTestSuite) marshal(j *entities.Journey) []byte {
	data, err := json.Marshal(j)
	s.Require().NoError(err)
	return data
}

func (s *RedisRepoTestSuite) TestCreate() {
	j := testJourney()
	s.mock.ExpectSetNX("journey:j-1", s.marshal(j), 0).SetVal(true)
	s.mock.ExpectSAdd("persona:root:journeys", "j-1").SetVal(1)

	s.NoError(s.repo.Create(s.ctx, j))
}

func (s *RedisRepoTestSuite) TestCreateDuplicate() {
	j := testJourney()
	s.mock.ExpectSetNX("journey:j-1", s.marshal(j), 0).SetVal(false)

	s.True(perr.IsAlreadyExists(s.repo.Create(s.ctx, j)))
}

func (s *RedisRepoTestSuite) TestGetRoundTrip() {
	s.mock.ExpectGet("journey:j-1").SetVal(string(s.marshal(testJourney())))

	got, err := s.repo.Get(s.ctx, "j-1")
	s.Require().NoError(err)
	s.Equal(testJourney(), got)
}

func (s *RedisRepoTestSuite) TestGetMissing() {
	s.mock.ExpectGet("journey:j-1").RedisNil()

	_, err := s.repo.Get(s.ctx, "j-1")
	s.True(perr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestUpdateMissing() {
	j := testJourney()
	s.mock.ExpectSetXX("journey:j-1", s.marshal(j), 0).SetVal(false)

	s.True(perr.IsNotFound(s.repo.Update(s.ctx, j)))
}

func (s *RedisRepoTestSuite) TestListByRoot() {
	s.mock.ExpectSMembers("persona:root:journeys").SetVal([]string{"j-1"})
	s.mock.ExpectGet("journey:j-1").SetVal(string(s.marshal(testJourney())))

	list, err := s.repo.ListByRoot(s.ctx, "root")
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal("j-1", list[0].ID)
}

func (s *RedisRepoTestSuite) TestValidation() {
	s.True(perr.IsInvalidArgument(s.repo.Create(s.ctx, nil)))
	s.True(perr.IsInvalidArgument(s.repo.Create(s.ctx, &entities.Journey{ID: "j-1"})))
	_, err := s.repo.ListByRoot(s.ctx, "")
	s.True(perr.IsInvalidArgument(err))
}
