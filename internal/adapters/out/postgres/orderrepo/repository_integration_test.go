package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"controltower/internal/adapters/out/postgres/orderrepo"
	"controltower/internal/core/domain/model/order"
	"controltower/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id int64, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite exercises the repository against a real
// PostgreSQL container: identity assignment, line item round-trips and the
// optimistic version check.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ProductOrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, product_orders RESTART IDENTITY CASCADE").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_AssignsIdentity() {
	ctx := context.Background()

	testOrder := suite.newTestOrder()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.Positive(testOrder.ID())
	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_RoundTripsLineItems() {
	ctx := context.Background()

	item1, err := order.NewLineItem(11, 2)
	suite.Require().NoError(err)
	item2, err := order.NewLineItem(12, 5)
	suite.Require().NoError(err)

	original, err := order.NewOrder("12 Elm St", 1, []order.LineItem{item1, item2})
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal("12 Elm St", retrieved.Address())
	suite.Equal(int64(1), retrieved.WarehouseID())
	suite.Equal(order.Preparing, retrieved.State())
	suite.Require().Len(retrieved.Items(), 2)
	suite.Equal(int64(11), retrieved.Items()[0].ProductID())
	suite.Equal(2, retrieved.Items()[0].Quantity())
	suite.Equal(int64(12), retrieved.Items()[1].ProductID())
	suite.Equal(5, retrieved.Items()[1].Quantity())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, 12345)

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsStateAndBumpsVersion() {
	ctx := context.Background()

	testOrder := suite.newTestOrder()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), mock.Anything).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.MarkPrepared())

	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	reloaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Prepared, reloaded.State())
	suite.Equal(loaded.Version()+1, reloaded.Version())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsStaleObjectError() {
	ctx := context.Background()

	testOrder := suite.newTestOrder()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), mock.Anything).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// Two aggregates loaded from the same row; the first write wins.
	first, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.MarkPrepared())
	suite.Require().NoError(suite.repository.Update(ctx, first))

	suite.Require().NoError(second.MarkPrepared())
	err = suite.repository.Update(ctx, second)
	suite.Require().Error(err)

	var staleErr *errs.StaleObjectError
	suite.Require().ErrorAs(err, &staleErr)

	// The winner's state stands.
	reloaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Prepared, reloaded.State())
	suite.Equal(first.Version()+1, reloaded.Version())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsStaleObjectError() {
	ctx := context.Background()

	item, err := order.NewLineItem(1, 1)
	suite.Require().NoError(err)
	phantom, err := order.RestoreOrder(9999, "12 Elm St", 1, order.Preparing, []order.LineItem{item}, 0)
	suite.Require().NoError(err)

	err = suite.repository.Update(ctx, phantom)
	suite.Require().Error(err)

	var staleErr *errs.StaleObjectError
	suite.Require().ErrorAs(err, &staleErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAll_ReturnsAllOrdersSorted() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), mock.Anything).Times(3)

	for range 3 {
		suite.Require().NoError(suite.repository.Add(ctx, suite.newTestOrder()))
	}

	all, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(all, 3)

	for i := range len(all) - 1 {
		suite.Less(all[i].ID(), all[i+1].ID())
	}
	for _, o := range all {
		suite.NotEmpty(o.Items())
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAll_EmptyDatabase_ReturnsEmptySlice() {
	all, err := suite.repository.GetAll(context.Background())
	suite.Require().NoError(err)
	suite.Empty(all)
}

func (suite *OrderRepositoryIntegrationTestSuite) newTestOrder() *order.Order {
	item, err := order.NewLineItem(1, 2)
	suite.Require().NoError(err)
	testOrder, err := order.NewOrder("12 Elm St", 1, []order.LineItem{item})
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
