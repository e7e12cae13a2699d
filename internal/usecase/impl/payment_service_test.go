package impl

import (
	"context"
	"testing"

	"zapshift/internal/domain/entity"
	domainerrors "zapshift/internal/domain/errors"
	"zapshift/internal/domain/repository"
	"zapshift/internal/domain/service"
	mockRepo "zapshift/internal/mocks/repository"
	mockService "zapshift/internal/mocks/service"
	"zapshift/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testTrackingID = "ZAP-20250101-ABCDEF"

type paymentServiceMocks struct {
	txManager   *mockRepo.MockTransactionManager
	parcelRepo  *mockRepo.MockParcelRepository
	paymentRepo *mockRepo.MockPaymentRepository
	gateway     *mockService.MockCheckoutGateway
	trackingGen *mockService.MockTrackingIDGenerator
}

func newPaymentService(t *testing.T) (usecase.PaymentUsecase, *paymentServiceMocks) {
	t.Helper()

	mocks := &paymentServiceMocks{
		txManager:   mockRepo.NewMockTransactionManager(t),
		parcelRepo:  mockRepo.NewMockParcelRepository(t),
		paymentRepo: mockRepo.NewMockPaymentRepository(t),
		gateway:     mockService.NewMockCheckoutGateway(t),
		trackingGen: mockService.NewMockTrackingIDGenerator(t),
	}

	svc := NewPaymentService(PaymentServiceParams{
		TxManager:   mocks.txManager,
		ParcelRepo:  mocks.parcelRepo,
		PaymentRepo: mocks.paymentRepo,
		Gateway:     mocks.gateway,
		TrackingGen: mocks.trackingGen,
		Logger:      newDiscardLogger(),
	})

	return svc, mocks
}

// newTxFactory rewires the service's transaction manager to run callbacks
// against a factory exposing the given repositories.
func (m *paymentServiceMocks) bindTxFactory(t *testing.T) {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().ParcelRepo().Return(m.parcelRepo).Maybe()
	factory.EXPECT().PaymentRepo().Return(m.paymentRepo).Maybe()

	m.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func paidSessionDetails(parcelID uuid.UUID) *service.SessionDetails {
	return &service.SessionDetails{
		TransactionID: "pi_1",
		PaymentStatus: "paid",
		AmountTotal:   50000,
		Currency:      "bdt",
		CustomerEmail: "sender@example.com",
		ParcelID:      parcelID.String(),
		ParcelName:    "documents",
	}
}

func TestPaymentService_ConfirmPayment_RecordsPaymentOnce(t *testing.T) {
	svc, mocks := newPaymentService(t)
	mocks.bindTxFactory(t)

	ctx := context.Background()
	parcelID := uuid.New()
	details := paidSessionDetails(parcelID)

	mocks.gateway.EXPECT().RetrieveSession(ctx, "sess_1").Return(details, nil)
	mocks.paymentRepo.EXPECT().
		FindByTransactionID(ctx, "pi_1").
		Return(nil, repository.ErrPaymentNotFound)
	mocks.trackingGen.EXPECT().Generate().Return(testTrackingID)
	mocks.parcelRepo.EXPECT().MarkPaid(ctx, parcelID, testTrackingID).Return(nil)
	mocks.paymentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Payment")).
		Return(nil)

	output, err := svc.ConfirmPayment(ctx, &usecase.ConfirmPaymentInput{SessionID: "sess_1"})
	require.NoError(t, err)

	assert.True(t, output.Paid)
	assert.False(t, output.AlreadyReconciled)
	assert.Equal(t, testTrackingID, output.TrackingID)
	require.NotNil(t, output.Payment)
	// The gateway reported 50000 minor units; the stored amount is major units.
	assert.Equal(t, int64(500), output.Payment.Amount)
	assert.Equal(t, "pi_1", output.Payment.TransactionID)
	assert.Equal(t, parcelID, output.Payment.ParcelID)
	assert.Equal(t, testTrackingID, output.Payment.TrackingID)
	assert.Equal(t, "sender@example.com", output.Payment.CustomerEmail)
}

func TestPaymentService_ConfirmPayment_UnpaidSessionWritesNothing(t *testing.T) {
	svc, mocks := newPaymentService(t)

	ctx := context.Background()
	details := paidSessionDetails(uuid.New())
	details.PaymentStatus = "unpaid"
	details.TransactionID = ""

	mocks.gateway.EXPECT().RetrieveSession(ctx, "sess_1").Return(details, nil)

	output, err := svc.ConfirmPayment(ctx, &usecase.ConfirmPaymentInput{SessionID: "sess_1"})
	require.NoError(t, err)

	assert.False(t, output.Paid)
	assert.False(t, output.AlreadyReconciled)
	assert.Empty(t, output.TrackingID)
	assert.Nil(t, output.Payment)
}

func TestPaymentService_ConfirmPayment_SecondConfirmationIsIdempotent(t *testing.T) {
	svc, mocks := newPaymentService(t)

	ctx := context.Background()
	parcelID := uuid.New()
	details := paidSessionDetails(parcelID)
	recorded := &entity.Payment{
		ID:            uuid.New(),
		Amount:        500,
		TransactionID: "pi_1",
		ParcelID:      parcelID,
		TrackingID:    testTrackingID,
	}

	mocks.gateway.EXPECT().RetrieveSession(ctx, "sess_1").Return(details, nil)
	mocks.paymentRepo.EXPECT().FindByTransactionID(ctx, "pi_1").Return(recorded, nil)

	output, err := svc.ConfirmPayment(ctx, &usecase.ConfirmPaymentInput{SessionID: "sess_1"})
	require.NoError(t, err)

	assert.True(t, output.Paid)
	assert.True(t, output.AlreadyReconciled)
	assert.Equal(t, testTrackingID, output.TrackingID)
	assert.Equal(t, recorded, output.Payment)
}

func TestPaymentService_ConfirmPayment_ConcurrentLoserReturnsWinnersRecord(t *testing.T) {
	svc, mocks := newPaymentService(t)
	mocks.bindTxFactory(t)

	ctx := context.Background()
	parcelID := uuid.New()
	details := paidSessionDetails(parcelID)
	winner := &entity.Payment{
		ID:            uuid.New(),
		Amount:        500,
		TransactionID: "pi_1",
		ParcelID:      parcelID,
		TrackingID:    "ZAP-20250101-0F0F0F",
	}

	mocks.gateway.EXPECT().RetrieveSession(ctx, "sess_1").Return(details, nil)
	// The guard sees nothing, then the insert loses the race, then the
	// winner's record is fetched.
	mocks.paymentRepo.EXPECT().
		FindByTransactionID(ctx, "pi_1").
		Return(nil, repository.ErrPaymentNotFound).Once()
	mocks.trackingGen.EXPECT().Generate().Return(testTrackingID)
	mocks.parcelRepo.EXPECT().MarkPaid(ctx, parcelID, testTrackingID).Return(nil)
	mocks.paymentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Payment")).
		Return(repository.ErrDuplicateTransaction)
	mocks.paymentRepo.EXPECT().
		FindByTransactionID(ctx, "pi_1").
		Return(winner, nil).Once()

	output, err := svc.ConfirmPayment(ctx, &usecase.ConfirmPaymentInput{SessionID: "sess_1"})
	require.NoError(t, err)

	assert.True(t, output.Paid)
	assert.True(t, output.AlreadyReconciled)
	assert.Equal(t, winner.TrackingID, output.TrackingID)
	assert.Equal(t, winner, output.Payment)
}

func TestPaymentService_ConfirmPayment_MissingParcelLeavesNoPayment(t *testing.T) {
	svc, mocks := newPaymentService(t)
	mocks.bindTxFactory(t)

	ctx := context.Background()
	parcelID := uuid.New()
	details := paidSessionDetails(parcelID)

	mocks.gateway.EXPECT().RetrieveSession(ctx, "sess_1").Return(details, nil)
	mocks.paymentRepo.EXPECT().
		FindByTransactionID(ctx, "pi_1").
		Return(nil, repository.ErrPaymentNotFound)
	mocks.trackingGen.EXPECT().Generate().Return(testTrackingID)
	mocks.parcelRepo.EXPECT().
		MarkPaid(ctx, parcelID, testTrackingID).
		Return(repository.ErrParcelNotFound)

	output, err := svc.ConfirmPayment(ctx, &usecase.ConfirmPaymentInput{SessionID: "sess_1"})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrParcelNotFound))
	// Create is never expected on paymentRepo; the mock asserts that on cleanup.
}

func TestPaymentService_ConfirmPayment_GatewayFailure(t *testing.T) {
	svc, mocks := newPaymentService(t)

	ctx := context.Background()
	mocks.gateway.EXPECT().
		RetrieveSession(ctx, "sess_1").
		Return(nil, errors.New("connection refused"))

	output, err := svc.ConfirmPayment(ctx, &usecase.ConfirmPaymentInput{SessionID: "sess_1"})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUpstreamUnavailable))
}

func TestPaymentService_CreateCheckoutSession(t *testing.T) {
	svc, mocks := newPaymentService(t)

	ctx := context.Background()
	parcelID := uuid.New()
	parcel := &entity.Parcel{
		ID:            parcelID,
		Name:          "documents",
		SenderEmail:   "sender@example.com",
		Cost:          500,
		PaymentStatus: entity.PaymentStatusUnpaid,
	}

	mocks.parcelRepo.EXPECT().FindByID(ctx, parcelID).Return(parcel, nil)
	mocks.gateway.EXPECT().
		CreateSession(ctx, service.CheckoutSessionInput{
			ParcelID:    parcelID.String(),
			ParcelName:  "documents",
			Cost:        500,
			SenderEmail: "sender@example.com",
		}).
		Return(&service.CheckoutSession{ID: "sess_1", URL: "https://checkout.example/sess_1"}, nil)

	output, err := svc.CreateCheckoutSession(ctx, &usecase.CreateCheckoutSessionInput{ParcelID: parcelID.String()})
	require.NoError(t, err)
	assert.Equal(t, "sess_1", output.SessionID)
	assert.Equal(t, "https://checkout.example/sess_1", output.URL)
}

func TestPaymentService_CreateCheckoutSession_PaidParcelRefused(t *testing.T) {
	svc, mocks := newPaymentService(t)

	ctx := context.Background()
	parcelID := uuid.New()
	parcel := &entity.Parcel{
		ID:            parcelID,
		PaymentStatus: entity.PaymentStatusPaid,
		TrackingID:    testTrackingID,
	}

	mocks.parcelRepo.EXPECT().FindByID(ctx, parcelID).Return(parcel, nil)

	output, err := svc.CreateCheckoutSession(ctx, &usecase.CreateCheckoutSessionInput{ParcelID: parcelID.String()})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrConflict))
}

func TestPaymentService_CreateCheckoutSession_MalformedParcelID(t *testing.T) {
	svc, _ := newPaymentService(t)

	output, err := svc.CreateCheckoutSession(context.Background(), &usecase.CreateCheckoutSessionInput{ParcelID: "not-a-uuid"})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestPaymentService_ListPayments_OwnEmail(t *testing.T) {
	svc, mocks := newPaymentService(t)

	ctx := context.Background()
	expected := []*entity.Payment{{ID: uuid.New(), CustomerEmail: "me@example.com"}}

	mocks.paymentRepo.EXPECT().FindAll(ctx, "me@example.com").Return(expected, nil)

	payments, err := svc.ListPayments(ctx, &usecase.ListPaymentsInput{
		Email:          "me@example.com",
		RequesterEmail: "me@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, expected, payments)
}

func TestPaymentService_ListPayments_ForeignEmailForbidden(t *testing.T) {
	svc, _ := newPaymentService(t)

	payments, err := svc.ListPayments(context.Background(), &usecase.ListPaymentsInput{
		Email:          "victim@example.com",
		RequesterEmail: "attacker@example.com",
	})
	require.Error(t, err)
	assert.Nil(t, payments)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestPaymentService_ListPayments_NoFilter(t *testing.T) {
	svc, mocks := newPaymentService(t)

	ctx := context.Background()
	mocks.paymentRepo.EXPECT().FindAll(ctx, "").Return([]*entity.Payment{}, nil)

	payments, err := svc.ListPayments(ctx, &usecase.ListPaymentsInput{RequesterEmail: "me@example.com"})
	require.NoError(t, err)
	assert.Empty(t, payments)
}
