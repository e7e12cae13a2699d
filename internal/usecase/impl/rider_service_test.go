package impl

import (
	"context"
	"testing"

	"zapshift/internal/domain/entity"
	domainerrors "zapshift/internal/domain/errors"
	"zapshift/internal/domain/repository"
	mockRepo "zapshift/internal/mocks/repository"
	"zapshift/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type riderServiceMocks struct {
	txManager *mockRepo.MockTransactionManager
	riderRepo *mockRepo.MockRiderRepository
	userRepo  *mockRepo.MockUserRepository
}

func newRiderService(t *testing.T) (usecase.RiderUsecase, *riderServiceMocks) {
	t.Helper()

	mocks := &riderServiceMocks{
		txManager: mockRepo.NewMockTransactionManager(t),
		riderRepo: mockRepo.NewMockRiderRepository(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
	}

	svc := NewRiderService(RiderServiceParams{
		TxManager: mocks.txManager,
		RiderRepo: mocks.riderRepo,
		Logger:    newDiscardLogger(),
	})

	return svc, mocks
}

func (m *riderServiceMocks) bindTxFactory(t *testing.T) {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().RiderRepo().Return(m.riderRepo).Maybe()
	factory.EXPECT().UserRepo().Return(m.userRepo).Maybe()

	m.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestRiderService_ApplyRider(t *testing.T) {
	svc, mocks := newRiderService(t)

	ctx := context.Background()
	mocks.riderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Rider")).
		Return(nil)

	rider, err := svc.ApplyRider(ctx, &usecase.ApplyRiderInput{
		Name:   "Arif",
		Email:  "arif@example.com",
		Phone:  "+8801700000000",
		Region: "Dhaka",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RiderStatusPending, rider.Status)
	assert.Equal(t, "arif@example.com", rider.Email)
}

func TestRiderService_SetRiderStatus_ApprovalElevatesUser(t *testing.T) {
	svc, mocks := newRiderService(t)
	mocks.bindTxFactory(t)

	ctx := context.Background()
	riderID := uuid.New()
	rider := &entity.Rider{
		ID:     riderID,
		Email:  "arif@example.com",
		Status: entity.RiderStatusPending,
	}

	mocks.riderRepo.EXPECT().FindByID(ctx, riderID).Return(rider, nil)
	mocks.riderRepo.EXPECT().UpdateStatus(ctx, riderID, entity.RiderStatusApproved).Return(nil)
	mocks.userRepo.EXPECT().UpdateRole(ctx, "arif@example.com", entity.RoleRider).Return(nil)

	output, err := svc.SetRiderStatus(ctx, &usecase.SetRiderStatusInput{
		RiderID: riderID,
		Status:  "approved",
	})
	require.NoError(t, err)
	assert.True(t, output.UserElevated)
	assert.Equal(t, entity.RiderStatusApproved, output.Rider.Status)
}

func TestRiderService_SetRiderStatus_ApprovalWithoutAccountIsNoOp(t *testing.T) {
	svc, mocks := newRiderService(t)
	mocks.bindTxFactory(t)

	ctx := context.Background()
	riderID := uuid.New()
	rider := &entity.Rider{
		ID:     riderID,
		Email:  "ghost@example.com",
		Status: entity.RiderStatusPending,
	}

	mocks.riderRepo.EXPECT().FindByID(ctx, riderID).Return(rider, nil)
	mocks.riderRepo.EXPECT().UpdateStatus(ctx, riderID, entity.RiderStatusApproved).Return(nil)
	mocks.userRepo.EXPECT().
		UpdateRole(ctx, "ghost@example.com", entity.RoleRider).
		Return(repository.ErrUserNotFound)

	output, err := svc.SetRiderStatus(ctx, &usecase.SetRiderStatusInput{
		RiderID: riderID,
		Status:  "approved",
	})
	require.NoError(t, err)
	assert.False(t, output.UserElevated)
	assert.Equal(t, entity.RiderStatusApproved, output.Rider.Status)
}

func TestRiderService_SetRiderStatus_RejectionDoesNotTouchUsers(t *testing.T) {
	svc, mocks := newRiderService(t)
	mocks.bindTxFactory(t)

	ctx := context.Background()
	riderID := uuid.New()
	rider := &entity.Rider{
		ID:     riderID,
		Email:  "arif@example.com",
		Status: entity.RiderStatusPending,
	}

	mocks.riderRepo.EXPECT().FindByID(ctx, riderID).Return(rider, nil)
	mocks.riderRepo.EXPECT().UpdateStatus(ctx, riderID, entity.RiderStatusRejected).Return(nil)

	output, err := svc.SetRiderStatus(ctx, &usecase.SetRiderStatusInput{
		RiderID: riderID,
		Status:  "rejected",
	})
	require.NoError(t, err)
	assert.False(t, output.UserElevated)
	assert.Equal(t, entity.RiderStatusRejected, output.Rider.Status)
}

func TestRiderService_SetRiderStatus_UnknownStatus(t *testing.T) {
	svc, _ := newRiderService(t)

	output, err := svc.SetRiderStatus(context.Background(), &usecase.SetRiderStatusInput{
		RiderID: uuid.New(),
		Status:  "maybe",
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestRiderService_SetRiderStatus_UnknownRider(t *testing.T) {
	svc, mocks := newRiderService(t)
	mocks.bindTxFactory(t)

	ctx := context.Background()
	riderID := uuid.New()

	mocks.riderRepo.EXPECT().
		FindByID(ctx, riderID).
		Return(nil, repository.ErrRiderNotFound)

	output, err := svc.SetRiderStatus(ctx, &usecase.SetRiderStatusInput{
		RiderID: riderID,
		Status:  "approved",
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrRiderNotFound))
}

func TestRiderService_ListRiders_StatusFilter(t *testing.T) {
	svc, mocks := newRiderService(t)

	ctx := context.Background()
	expected := []*entity.Rider{{ID: uuid.New(), Status: entity.RiderStatusPending}}

	mocks.riderRepo.EXPECT().FindAll(ctx, entity.RiderStatusPending).Return(expected, nil)

	riders, err := svc.ListRiders(ctx, "pending")
	require.NoError(t, err)
	assert.Equal(t, expected, riders)
}

func TestRiderService_ListRiders_UnknownStatusFilter(t *testing.T) {
	svc, _ := newRiderService(t)

	riders, err := svc.ListRiders(context.Background(), "limbo")
	require.Error(t, err)
	assert.Nil(t, riders)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestRiderService_DeleteRider_Unknown(t *testing.T) {
	svc, mocks := newRiderService(t)

	ctx := context.Background()
	riderID := uuid.New()
	mocks.riderRepo.EXPECT().Delete(ctx, riderID).Return(repository.ErrRiderNotFound)

	err := svc.DeleteRider(ctx, riderID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRiderNotFound))
}
