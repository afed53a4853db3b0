package parcelrepo_test

import (
	"context"
	"testing"
	"time"

	"jastip/internal/adapters/out/postgres/parcelrepo"
	"jastip/internal/core/domain/model/kernel"
	"jastip/internal/core/domain/model/parcel"
	"jastip/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id any, aggregate any) {
	m.Called(id, aggregate)
}

// ParcelRepositoryIntegrationTestSuite verifies parcel persistence behavior
// against a real PostgreSQL database.
type ParcelRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *parcelrepo.GormParcelRepository
	tracker    *MockAggregateTracker
}

func (suite *ParcelRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&parcelrepo.ParcelDTO{}))
}

func (suite *ParcelRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE parcels").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = parcelrepo.NewGormParcelRepository(suite.db, suite.tracker)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestAdd_ValidParcel_Success() {
	ctx := context.Background()

	testParcel := suite.createTestParcel("JD001")
	suite.tracker.On("TrackAggregate", testParcel.ID(), testParcel).Once()

	err := suite.repository.Add(ctx, testParcel)
	suite.Require().NoError(err)

	suite.assertParcelCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestAdd_DuplicateTrackingNumber_ReturnsError() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()

	first := suite.createTestParcel("JD001")
	suite.Require().NoError(suite.repository.Add(ctx, first))

	second := suite.createTestParcel("JD001")
	err := suite.repository.Add(ctx, second)
	suite.Require().Error(err)

	suite.assertParcelCount(1)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGet_ExistingParcel_ReturnsParcel() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()

	testParcel := suite.createTestParcel("JD001")
	suite.Require().NoError(suite.repository.Add(ctx, testParcel))

	retrieved, err := suite.repository.Get(ctx, testParcel.ID())
	suite.Require().NoError(err)

	suite.Equal(testParcel.ID(), retrieved.ID())
	suite.Equal("JD001", retrieved.TrackingNumber())
	suite.Equal(testParcel.CustomerID(), retrieved.CustomerID())
	suite.Equal("shopee", retrieved.Marketplace())
	suite.Equal(int64(150000), retrieved.DeclaredValue())
	suite.Equal(parcel.Expected, retrieved.Status())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGet_NonExistentParcel_ReturnsNotFoundError() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGetByTrackingNumber_ExistingParcel_ReturnsParcel() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()

	testParcel := suite.createTestParcel("JD002")
	suite.Require().NoError(suite.repository.Add(ctx, testParcel))

	retrieved, err := suite.repository.GetByTrackingNumber(ctx, "JD002")
	suite.Require().NoError(err)
	suite.Equal(testParcel.ID(), retrieved.ID())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGetByTrackingNumber_UnknownNumber_ReturnsNotFoundError() {
	ctx := context.Background()

	_, err := suite.repository.GetByTrackingNumber(ctx, "NO-SUCH-RESI")

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGetByTrackingNumber_EmptyNumber_ReturnsError() {
	ctx := context.Background()

	_, err := suite.repository.GetByTrackingNumber(ctx, "")

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrValueIsRequired)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestUpdate_LifecycleTransitions_PersistsEveryField() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()

	testParcel := suite.createTestParcel("JD003")
	suite.Require().NoError(suite.repository.Add(ctx, testParcel))

	measurements := parcel.Measurements{Weight: 2, Length: 30, Width: 20, Height: 10}
	err := testParcel.Receive(measurements, "R4", "https://storage.example/proof/jd003.jpg", 2, 40000)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, testParcel))

	retrieved, err := suite.repository.Get(ctx, testParcel.ID())
	suite.Require().NoError(err)
	suite.Equal(parcel.Received, retrieved.Status())
	suite.Equal(measurements, retrieved.Measurements())
	suite.Equal("R4", retrieved.Rack())
	suite.Equal("https://storage.example/proof/jd003.jpg", retrieved.ProofPhotoURL())
	suite.InDelta(2, retrieved.BillableWeight(), 0.0001)
	suite.Equal(int64(40000), retrieved.Fee())

	paidAt := time.Date(2025, 7, 10, 9, 30, 0, 0, time.UTC)
	suite.Require().NoError(testParcel.MarkPaid(paidAt))
	suite.Require().NoError(suite.repository.Update(ctx, testParcel))

	retrieved, err = suite.repository.Get(ctx, testParcel.ID())
	suite.Require().NoError(err)
	suite.Equal(parcel.Paid, retrieved.Status())
	suite.Require().NotNil(retrieved.PaidAt())
	suite.True(retrieved.PaidAt().Equal(paidAt))

	suite.Require().NoError(testParcel.AssignToBatch("BATCH-2025-07", "BAG-1", "SEAL-1"))
	suite.Require().NoError(suite.repository.Update(ctx, testParcel))

	retrieved, err = suite.repository.Get(ctx, testParcel.ID())
	suite.Require().NoError(err)
	suite.Equal(parcel.Bagged, retrieved.Status())
	suite.Equal("BATCH-2025-07", retrieved.BatchCode())
	suite.Equal("BAG-1", retrieved.BagID())
	suite.Equal("SEAL-1", retrieved.SealNumber())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestUpdate_NonExistentParcel_ReturnsError() {
	ctx := context.Background()

	testParcel := suite.createTestParcel("JD004")

	err := suite.repository.Update(ctx, testParcel)

	suite.Require().Error(err)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGetAllByCustomer_ReturnsNewestFirst() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()

	ownerID := kernel.NewUUID()

	first, err := parcel.NewParcel(kernel.NewUUID(), "JD005", ownerID, "shopee", 100000)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, first))

	time.Sleep(10 * time.Millisecond)

	second, err := parcel.NewParcel(kernel.NewUUID(), "JD006", ownerID, "tokopedia", 200000)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, second))

	other, err := parcel.NewParcel(kernel.NewUUID(), "JD007", kernel.NewUUID(), "shopee", 100000)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, other))

	result, err := suite.repository.GetAllByCustomer(ctx, ownerID)
	suite.Require().NoError(err)

	suite.Require().Len(result, 2)
	suite.Equal(second.ID(), result[0].ID())
	suite.Equal(first.ID(), result[1].ID())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGetAllByBatch_ReturnsStableInsertionOrder() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()

	var assigned []*parcel.Parcel
	for _, resi := range []string{"JD010", "JD011", "JD012"} {
		p := suite.createTestParcel(resi)
		suite.Require().NoError(p.Receive(parcel.Measurements{Weight: 1}, "R1", "", 1, 20000))
		suite.Require().NoError(p.AssignToBatch("BATCH-2025-07", "", ""))
		suite.Require().NoError(suite.repository.Add(ctx, p))
		assigned = append(assigned, p)
		time.Sleep(5 * time.Millisecond)
	}

	first, err := suite.repository.GetAllByBatch(ctx, "BATCH-2025-07")
	suite.Require().NoError(err)
	second, err := suite.repository.GetAllByBatch(ctx, "BATCH-2025-07")
	suite.Require().NoError(err)

	suite.Require().Len(first, len(assigned))
	for i, p := range assigned {
		suite.Equal(p.ID(), first[i].ID())
		suite.Equal(first[i].ID(), second[i].ID())
	}
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGetAllInExpectedStatus_FiltersReceivedParcels() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()

	expected := suite.createTestParcel("JD020")
	suite.Require().NoError(suite.repository.Add(ctx, expected))

	received := suite.createTestParcel("JD021")
	suite.Require().NoError(received.Receive(parcel.Measurements{Weight: 1}, "R1", "", 1, 20000))
	suite.Require().NoError(suite.repository.Add(ctx, received))

	result, err := suite.repository.GetAllInExpectedStatus(ctx)
	suite.Require().NoError(err)

	suite.Require().Len(result, 1)
	suite.Equal(expected.ID(), result[0].ID())
}

func (suite *ParcelRepositoryIntegrationTestSuite) createTestParcel(trackingNumber string) *parcel.Parcel {
	testParcel, err := parcel.NewParcel(kernel.NewUUID(), trackingNumber, kernel.NewUUID(), "shopee", 150000)
	suite.Require().NoError(err)
	return testParcel
}

func (suite *ParcelRepositoryIntegrationTestSuite) assertParcelCount(expected int) {
	var count int64
	suite.Require().NoError(suite.db.Model(&parcelrepo.ParcelDTO{}).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func TestParcelRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ParcelRepositoryIntegrationTestSuite))
}
