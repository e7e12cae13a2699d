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

// riderRepository implements the repository.RiderRepository interface.
type riderRepository struct {
	db *gorm.DB
}

// NewRiderRepository is the constructor for riderRepository.
func NewRiderRepository(db *gorm.DB) repository.RiderRepository {
	return &riderRepository{
		db: db,
	}
}

// FindByID retrieves a single rider application by its unique ID.
func (repo *riderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Rider, error) {
	var riderM model.RiderModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&riderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRiderNotFound
		}

		return nil, errors.Wrap(err, "failed to find rider by ID")
	}

	return toRiderDomain(&riderM), nil
}

// FindAll retrieves rider applications, newest first, optionally filtered
// by onboarding status.
func (repo *riderRepository) FindAll(ctx context.Context, status entity.RiderStatus) ([]*entity.Rider, error) {
	var riderModels []*model.RiderModel

	query := repo.db.WithContext(ctx).Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status.String())
	}

	if err := query.Find(&riderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find riders")
	}

	riders := make([]*entity.Rider, 0, len(riderModels))
	for _, riderM := range riderModels {
		riders = append(riders, toRiderDomain(riderM))
	}

	return riders, nil
}

// Create persists a new rider application.
func (repo *riderRepository) Create(ctx context.Context, rider *entity.Rider) error {
	riderM := fromRiderDomain(rider)

	if err := repo.db.WithContext(ctx).Create(riderM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required rider information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create rider application")
	}

	// Update the entity with generated values
	rider.ID = riderM.ID
	rider.CreatedAt = riderM.CreatedAt
	rider.UpdatedAt = riderM.UpdatedAt

	return nil
}

// UpdateStatus sets the application's onboarding status.
func (repo *riderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.RiderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RiderModel{}).
		Where("id = ?", id).
		Update("status", status.String())

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update rider status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRiderNotFound
	}

	return nil
}

// Delete removes a rider application.
func (repo *riderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.RiderModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete rider")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRiderNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toRiderDomain converts a GORM RiderModel to a domain Rider entity.
func toRiderDomain(data *model.RiderModel) *entity.Rider {
	if data == nil {
		return nil
	}

	return &entity.Rider{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Phone:     data.Phone,
		Region:    data.Region,
		Status:    entity.RiderStatus(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromRiderDomain converts a domain Rider entity to a GORM RiderModel.
func fromRiderDomain(data *entity.Rider) *model.RiderModel {
	if data == nil {
		return nil
	}

	return &model.RiderModel{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Phone:     data.Phone,
		Region:    data.Region,
		Status:    data.Status.String(),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
