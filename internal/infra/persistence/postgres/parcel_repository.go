package postgres

import (
	"context"

	"zapshift/internal/domain/entity"
	domainerrors "zapshift/internal/domain/errors"
	"zapshift/internal/domain/repository"
	"zapshift/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// parcelRepository implements the repository.ParcelRepository interface.
type parcelRepository struct {
	db *gorm.DB
}

// NewParcelRepository is the constructor for parcelRepository.
func NewParcelRepository(db *gorm.DB) repository.ParcelRepository {
	return &parcelRepository{
		db: db,
	}
}

// FindByID retrieves a single parcel by its unique ID.
func (repo *parcelRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Parcel, error) {
	var parcelM model.ParcelModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&parcelM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrParcelNotFound
		}

		return nil, errors.Wrap(err, "failed to find parcel by ID")
	}

	return toParcelDomain(&parcelM), nil
}

// FindAll retrieves parcels, newest first, optionally scoped to a sender.
func (repo *parcelRepository) FindAll(ctx context.Context, senderEmail string) ([]*entity.Parcel, error) {
	var parcelModels []*model.ParcelModel

	query := repo.db.WithContext(ctx).Order("created_at DESC")
	if senderEmail != "" {
		query = query.Where("sender_email = ?", senderEmail)
	}

	if err := query.Find(&parcelModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find parcels")
	}

	parcels := make([]*entity.Parcel, 0, len(parcelModels))
	for _, parcelM := range parcelModels {
		parcels = append(parcels, toParcelDomain(parcelM))
	}

	return parcels, nil
}

// Create persists a new parcel. Parcels always enter the store unpaid.
func (repo *parcelRepository) Create(ctx context.Context, parcel *entity.Parcel) error {
	parcelM := fromParcelDomain(parcel)

	if err := repo.db.WithContext(ctx).Create(parcelM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required parcel information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create parcel")
	}

	// Update the entity with generated values
	parcel.ID = parcelM.ID
	parcel.CreatedAt = parcelM.CreatedAt
	parcel.UpdatedAt = parcelM.UpdatedAt

	return nil
}

// MarkPaid flips the parcel to paid and stamps its tracking ID.
func (repo *parcelRepository) MarkPaid(ctx context.Context, id uuid.UUID, trackingID string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ParcelModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"payment_status": entity.PaymentStatusPaid.String(),
			"tracking_id":    trackingID,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark parcel paid")
	}

	if result.RowsAffected == 0 {
		return repository.ErrParcelNotFound
	}

	return nil
}

// Delete removes a parcel.
func (repo *parcelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ParcelModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete parcel")
	}

	if result.RowsAffected == 0 {
		return repository.ErrParcelNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toParcelDomain converts a GORM ParcelModel to a domain Parcel entity.
func toParcelDomain(data *model.ParcelModel) *entity.Parcel {
	if data == nil {
		return nil
	}

	return &entity.Parcel{
		ID:            data.ID,
		Name:          data.Name,
		SenderEmail:   data.SenderEmail,
		Cost:          data.Cost,
		PaymentStatus: entity.PaymentStatus(data.PaymentStatus),
		TrackingID:    data.TrackingID,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromParcelDomain converts a domain Parcel entity to a GORM ParcelModel.
func fromParcelDomain(data *entity.Parcel) *model.ParcelModel {
	if data == nil {
		return nil
	}

	return &model.ParcelModel{
		ID:            data.ID,
		Name:          data.Name,
		SenderEmail:   data.SenderEmail,
		Cost:          data.Cost,
		PaymentStatus: data.PaymentStatus.String(),
		TrackingID:    data.TrackingID,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
