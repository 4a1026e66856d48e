package queries_test

import (
	"context"
	"testing"
	"time"

	"routeplan/internal/adapters/out/postgres/computerepo"
	"routeplan/internal/core/application/usecases/queries"
	"routeplan/internal/core/domain/model/compute"
	"routeplan/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetAllComputesQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetAllComputesQueryHandler
}

func (suite *GetAllComputesQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&computerepo.ComputeDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetAllComputesQueryHandler(db)
}

func (suite *GetAllComputesQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetAllComputesQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE computes CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetAllComputesQueryHandlerTestSuite) TestHandle_NoComputes_ReturnsEmptySlice() {
	query, err := queries.NewGetAllComputesQuery(kernel.UUID{}, "")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(result)
}

func (suite *GetAllComputesQueryHandlerTestSuite) TestHandle_NoFilters_ReturnsNewestFirst() {
	base := time.Now().Unix()
	older := suite.addPendingCompute(kernel.NewUUID(), base-300)
	newer := suite.addPendingCompute(kernel.NewUUID(), base)

	query, err := queries.NewGetAllComputesQuery(kernel.UUID{}, "")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(newer.ID(), result[0].ID)
	suite.Equal(older.ID(), result[1].ID)
}

func (suite *GetAllComputesQueryHandlerTestSuite) TestHandle_OrderFilter_ReturnsOnlyThatOrder() {
	base := time.Now().Unix()
	orderID := kernel.NewUUID()
	wanted := suite.addPendingCompute(orderID, base)
	suite.addPendingCompute(kernel.NewUUID(), base)

	query, err := queries.NewGetAllComputesQuery(orderID, "")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(wanted.ID(), result[0].ID)
	suite.Equal(orderID, result[0].OrderID)
}

func (suite *GetAllComputesQueryHandlerTestSuite) TestHandle_StatusFilter_ReturnsOnlyThatStatus() {
	base := time.Now().Unix()
	suite.addPendingCompute(kernel.NewUUID(), base)
	failed := suite.addFailedCompute(kernel.NewUUID(), base)

	query, err := queries.NewGetAllComputesQuery(kernel.UUID{}, "failed")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(failed.ID(), result[0].ID)
	suite.Equal("failed", result[0].Status)
}

func (suite *GetAllComputesQueryHandlerTestSuite) TestHandle_BothFilters_Combine() {
	base := time.Now().Unix()
	orderID := kernel.NewUUID()
	suite.addPendingCompute(orderID, base)
	suite.addFailedCompute(orderID, base)
	suite.addFailedCompute(kernel.NewUUID(), base)

	query, err := queries.NewGetAllComputesQuery(orderID, "failed")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(orderID, result[0].OrderID)
	suite.Equal("failed", result[0].Status)
}

func (suite *GetAllComputesQueryHandlerTestSuite) TestNewGetAllComputesQuery_UnknownStatus_ReturnsError() {
	_, err := queries.NewGetAllComputesQuery(kernel.UUID{}, "done")

	suite.Require().Error(err)
}

func (suite *GetAllComputesQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetAllComputesQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetAllComputesQuery constructor")
}

func (suite *GetAllComputesQueryHandlerTestSuite) addPendingCompute(orderID kernel.UUID, startTime int64) *compute.Compute {
	job, err := compute.NewCompute(kernel.NewUUID(), orderID, compute.Policy{TimeLimitSeconds: 30}, startTime)
	suite.Require().NoError(err)
	suite.saveComputeJob(job)
	return job
}

func (suite *GetAllComputesQueryHandlerTestSuite) addFailedCompute(orderID kernel.UUID, startTime int64) *compute.Compute {
	job, err := compute.RestoreCompute(
		kernel.NewUUID(),
		orderID,
		compute.Failed,
		startTime,
		startTime+60,
		"no feasible solution",
		compute.Policy{TimeLimitSeconds: 30},
	)
	suite.Require().NoError(err)
	suite.saveComputeJob(job)
	return job
}

func (suite *GetAllComputesQueryHandlerTestSuite) saveComputeJob(job *compute.Compute) {
	repo := computerepo.NewGormComputeRepository(suite.db, &mockAggregateTracker{})
	err := repo.Add(context.Background(), job)
	suite.Require().NoError(err)
}

func TestGetAllComputesQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetAllComputesQueryHandlerTestSuite))
}
