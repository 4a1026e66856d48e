package pairrepo_test

import (
	"context"
	"testing"
	"time"

	"routeplan/internal/adapters/out/postgres/pairrepo"
	"routeplan/internal/core/domain/model/distance"
	"routeplan/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// PairStoreIntegrationTestSuite provides integration tests for the pair
// store using PostgreSQL containers, with a focus on the append-only
// conflict-ignore write path.
type PairStoreIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	store     *pairrepo.GormPairStore
}

func (suite *PairStoreIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&pairrepo.PairDTO{}))
}

func (suite *PairStoreIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE distance_pairs").Error)
	suite.store = pairrepo.NewGormPairStore(suite.db)
}

func (suite *PairStoreIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *PairStoreIntegrationTestSuite) TestAddPairs_ThenGetPairs_RoundTrips() {
	ctx := context.Background()

	a := kernel.NewUUID()
	b := kernel.NewUUID()

	pairs := []distance.Pair{
		{From: a, To: b, DistanceMeters: 1200, DurationMinutes: 4, Polyline: "abc"},
		{From: b, To: a, DistanceMeters: 1300, DurationMinutes: 5, Polyline: "cba"},
	}

	suite.Require().NoError(suite.store.AddPairs(ctx, pairs))

	stored, err := suite.store.GetPairs(ctx, []kernel.UUID{a, b})
	suite.Require().NoError(err)
	suite.Require().Len(stored, 2)

	byKey := make(map[distance.Key]distance.Pair)
	for _, pair := range stored {
		byKey[distance.KeyOf(pair)] = pair
	}

	forward := byKey[distance.Key{From: a, To: b}]
	suite.Equal(1200, forward.DistanceMeters)
	suite.Equal(4, forward.DurationMinutes)
	suite.Equal("abc", forward.Polyline)

	reverse := byKey[distance.Key{From: b, To: a}]
	suite.Equal(1300, reverse.DistanceMeters)
}

func (suite *PairStoreIntegrationTestSuite) TestAddPairs_DuplicateKey_KeepsFirstWriterValues() {
	ctx := context.Background()

	a := kernel.NewUUID()
	b := kernel.NewUUID()

	first := []distance.Pair{{From: a, To: b, DistanceMeters: 1000, DurationMinutes: 3, Polyline: "first"}}
	suite.Require().NoError(suite.store.AddPairs(ctx, first))

	// A later writer with different values must not overwrite the row.
	second := []distance.Pair{
		{From: a, To: b, DistanceMeters: 9999, DurationMinutes: 99, Polyline: "second"},
		{From: b, To: a, DistanceMeters: 1100, DurationMinutes: 4, Polyline: "fresh"},
	}
	suite.Require().NoError(suite.store.AddPairs(ctx, second))

	stored, err := suite.store.GetPairs(ctx, []kernel.UUID{a, b})
	suite.Require().NoError(err)
	suite.Require().Len(stored, 2)

	byKey := make(map[distance.Key]distance.Pair)
	for _, pair := range stored {
		byKey[distance.KeyOf(pair)] = pair
	}

	suite.Equal(1000, byKey[distance.Key{From: a, To: b}].DistanceMeters)
	suite.Equal("first", byKey[distance.Key{From: a, To: b}].Polyline)
	suite.Equal(1100, byKey[distance.Key{From: b, To: a}].DistanceMeters)
}

func (suite *PairStoreIntegrationTestSuite) TestGetPairs_UnrelatedEndpoints_AreExcluded() {
	ctx := context.Background()

	a := kernel.NewUUID()
	b := kernel.NewUUID()
	other := kernel.NewUUID()

	pairs := []distance.Pair{
		{From: a, To: b, DistanceMeters: 500, DurationMinutes: 2},
		{From: a, To: other, DistanceMeters: 700, DurationMinutes: 3},
		{From: other, To: b, DistanceMeters: 800, DurationMinutes: 3},
	}
	suite.Require().NoError(suite.store.AddPairs(ctx, pairs))

	stored, err := suite.store.GetPairs(ctx, []kernel.UUID{a, b})
	suite.Require().NoError(err)

	suite.Require().Len(stored, 1)
	suite.Equal(a, stored[0].From)
	suite.Equal(b, stored[0].To)
}

func (suite *PairStoreIntegrationTestSuite) TestAddPairs_EmptySlice_IsNoOp() {
	ctx := context.Background()

	suite.Require().NoError(suite.store.AddPairs(ctx, nil))

	var count int64
	suite.Require().NoError(suite.db.Model(&pairrepo.PairDTO{}).Count(&count).Error)
	suite.Zero(count)
}

func TestPairStoreIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PairStoreIntegrationTestSuite))
}
