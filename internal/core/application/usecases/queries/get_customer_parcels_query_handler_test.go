package queries_test

import (
	"context"
	"testing"
	"time"

	"jastip/internal/adapters/out/postgres/batchrepo"
	"jastip/internal/adapters/out/postgres/customerrepo"
	"jastip/internal/adapters/out/postgres/parcelrepo"
	"jastip/internal/core/application/usecases/queries"
	"jastip/internal/core/domain/model/customer"
	"jastip/internal/core/domain/model/kernel"
	"jastip/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetCustomerParcelsQueryHandlerTestSuite struct {
	suite.Suite
	container    *postgres.PostgresContainer
	db           *gorm.DB
	handler      queries.GetCustomerParcelsQueryHandler
	parcelRepo   *parcelrepo.GormParcelRepository
	customerRepo *customerrepo.GormCustomerRepository
	testCustomer *customer.Customer
}

func (suite *GetCustomerParcelsQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&customerrepo.CustomerDTO{}, &parcelrepo.ParcelDTO{}, &batchrepo.BatchDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetCustomerParcelsQueryHandler(db)
	suite.parcelRepo = parcelrepo.NewGormParcelRepository(db, &mockAggregateTracker{})
	suite.customerRepo = customerrepo.NewGormCustomerRepository(db, &mockAggregateTracker{})

	suite.testCustomer, err = customer.NewCustomer(
		kernel.NewUUID(), "Maria Kelen", "+6281234567890", "Jl. Eltari 15", "FLRAB12",
	)
	suite.Require().NoError(err)
	err = suite.customerRepo.Add(ctx, suite.testCustomer)
	suite.Require().NoError(err)
}

func (suite *GetCustomerParcelsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetCustomerParcelsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE parcels CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetCustomerParcelsQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewGetCustomerParcelsQuery(suite.testCustomer.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetCustomerParcelsQueryHandlerTestSuite) TestHandle_ReturnsOnlyOwnParcels() {
	ctx := context.Background()

	own := suite.addParcel(ctx, "JD001", suite.testCustomer.ID())
	otherOwner := kernel.NewUUID()
	suite.addParcel(ctx, "JD002", otherOwner)

	query, err := queries.NewGetCustomerParcelsQuery(suite.testCustomer.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(own.ID(), result[0].ID)
	suite.Equal("JD001", result[0].TrackingNumber)
	suite.Equal(parcel.Expected.String(), result[0].Status)
}

func (suite *GetCustomerParcelsQueryHandlerTestSuite) TestHandle_ReceivedParcel_ExposesBillingFields() {
	ctx := context.Background()

	aggregate := suite.addParcel(ctx, "JD003", suite.testCustomer.ID())
	err := aggregate.Receive(
		parcel.Measurements{Weight: 2.5},
		"R3",
		"https://storage.example/proof/jd003.jpg",
		2.5,
		50000,
	)
	suite.Require().NoError(err)
	err = suite.parcelRepo.Update(ctx, aggregate)
	suite.Require().NoError(err)

	query, err := queries.NewGetCustomerParcelsQuery(suite.testCustomer.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(parcel.Received.String(), result[0].Status)
	suite.InDelta(2.5, result[0].BillableWeight, 0.0001)
	suite.Equal(int64(50000), result[0].Fee)
	suite.Equal("https://storage.example/proof/jd003.jpg", result[0].ProofPhotoURL)
	suite.Nil(result[0].PaidAt)
}

func (suite *GetCustomerParcelsQueryHandlerTestSuite) TestHandle_PaidParcel_ExposesPaymentTimestamp() {
	ctx := context.Background()

	aggregate := suite.addParcel(ctx, "JD004", suite.testCustomer.ID())
	err := aggregate.Receive(parcel.Measurements{Weight: 1}, "R1", "", 1, 20000)
	suite.Require().NoError(err)
	paidAt := time.Date(2025, 7, 10, 9, 30, 0, 0, time.UTC)
	err = aggregate.MarkPaid(paidAt)
	suite.Require().NoError(err)
	err = suite.parcelRepo.Update(ctx, aggregate)
	suite.Require().NoError(err)

	query, err := queries.NewGetCustomerParcelsQuery(suite.testCustomer.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(parcel.Paid.String(), result[0].Status)
	suite.Require().NotNil(result[0].PaidAt)
	suite.True(result[0].PaidAt.Equal(paidAt))
}

func (suite *GetCustomerParcelsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetCustomerParcelsQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetCustomerParcelsQuery constructor")
}

func (suite *GetCustomerParcelsQueryHandlerTestSuite) addParcel(
	ctx context.Context,
	trackingNumber string,
	customerID kernel.UUID,
) *parcel.Parcel {
	aggregate, err := parcel.NewParcel(kernel.NewUUID(), trackingNumber, customerID, "shopee", 150000)
	suite.Require().NoError(err)
	err = suite.parcelRepo.Add(ctx, aggregate)
	suite.Require().NoError(err)
	return aggregate
}

// mockAggregateTracker is a no-op tracker shared by the query handler suites;
// query tests never participate in a unit of work.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ any, _ any) {}

func TestGetCustomerParcelsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetCustomerParcelsQueryHandlerTestSuite))
}
