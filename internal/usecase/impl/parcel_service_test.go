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

func newParcelService(t *testing.T) (usecase.ParcelUsecase, *mockRepo.MockParcelRepository) {
	t.Helper()

	parcelRepo := mockRepo.NewMockParcelRepository(t)
	svc := NewParcelService(ParcelServiceParams{
		ParcelRepo: parcelRepo,
		Logger:     newDiscardLogger(),
	})

	return svc, parcelRepo
}

func TestParcelService_CreateParcel(t *testing.T) {
	svc, parcelRepo := newParcelService(t)

	ctx := context.Background()
	parcelRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Parcel")).
		Return(nil)

	parcel, err := svc.CreateParcel(ctx, &usecase.CreateParcelInput{
		Name:        "documents",
		SenderEmail: "sender@example.com",
		Cost:        500,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusUnpaid, parcel.PaymentStatus)
	assert.Empty(t, parcel.TrackingID)
	assert.Equal(t, int64(500), parcel.Cost)
}

func TestParcelService_CreateParcel_NonPositiveCost(t *testing.T) {
	svc, _ := newParcelService(t)

	parcel, err := svc.CreateParcel(context.Background(), &usecase.CreateParcelInput{
		Name:        "documents",
		SenderEmail: "sender@example.com",
		Cost:        0,
	})
	require.Error(t, err)
	assert.Nil(t, parcel)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestParcelService_GetParcel_NotFound(t *testing.T) {
	svc, parcelRepo := newParcelService(t)

	ctx := context.Background()
	parcelID := uuid.New()
	parcelRepo.EXPECT().
		FindByID(ctx, parcelID).
		Return(nil, repository.ErrParcelNotFound)

	parcel, err := svc.GetParcel(ctx, parcelID)
	require.Error(t, err)
	assert.Nil(t, parcel)
	assert.True(t, errors.Is(err, domainerrors.ErrParcelNotFound))
}

func TestParcelService_ListParcels_SenderFilter(t *testing.T) {
	svc, parcelRepo := newParcelService(t)

	ctx := context.Background()
	expected := []*entity.Parcel{{ID: uuid.New(), SenderEmail: "sender@example.com"}}

	parcelRepo.EXPECT().FindAll(ctx, "sender@example.com").Return(expected, nil)

	parcels, err := svc.ListParcels(ctx, "sender@example.com")
	require.NoError(t, err)
	assert.Equal(t, expected, parcels)
}

func TestParcelService_DeleteParcel_NotFound(t *testing.T) {
	svc, parcelRepo := newParcelService(t)

	ctx := context.Background()
	parcelID := uuid.New()
	parcelRepo.EXPECT().Delete(ctx, parcelID).Return(repository.ErrParcelNotFound)

	err := svc.DeleteParcel(ctx, parcelID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrParcelNotFound))
}
