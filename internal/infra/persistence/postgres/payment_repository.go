package postgres

import (
	"context"

	"zapshift/internal/domain/entity"
	domainerrors "zapshift/internal/domain/errors"
	"zapshift/internal/domain/repository"
	"zapshift/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// paymentRepository implements the repository.PaymentRepository interface.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{
		db: db,
	}
}

// FindByTransactionID retrieves the payment recorded for a gateway
// transaction. This lookup is the idempotency guard for reconciliation.
func (repo *paymentRepository) FindByTransactionID(ctx context.Context, transactionID string) (*entity.Payment, error) {
	var paymentM model.PaymentModel

	if err := repo.db.WithContext(ctx).
		Where("transaction_id = ?", transactionID).
		First(&paymentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment by transaction ID")
	}

	return toPaymentDomain(&paymentM), nil
}

// FindAll retrieves payments, most recently paid first, optionally scoped
// to a customer.
func (repo *paymentRepository) FindAll(ctx context.Context, customerEmail string) ([]*entity.Payment, error) {
	var paymentModels []*model.PaymentModel

	query := repo.db.WithContext(ctx).Order("paid_at DESC")
	if customerEmail != "" {
		query = query.Where("customer_email = ?", customerEmail)
	}

	if err := query.Find(&paymentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find payments")
	}

	payments := make([]*entity.Payment, 0, len(paymentModels))
	for _, paymentM := range paymentModels {
		payments = append(payments, toPaymentDomain(paymentM))
	}

	return payments, nil
}

// Create persists a new payment record. The unique index on the
// transaction ID makes this insert the linearization point for
// concurrent confirmations: the loser gets ErrDuplicateTransaction.
func (repo *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	paymentM := fromPaymentDomain(payment)

	if err := repo.db.WithContext(ctx).Create(paymentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateTransaction
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required payment information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment")
	}

	// Update the entity with generated values
	payment.ID = paymentM.ID

	return nil
}

// --- Mapper Functions ---

// toPaymentDomain converts a GORM PaymentModel to a domain Payment entity.
func toPaymentDomain(data *model.PaymentModel) *entity.Payment {
	if data == nil {
		return nil
	}

	return &entity.Payment{
		ID:            data.ID,
		Amount:        data.Amount,
		Currency:      data.Currency,
		CustomerEmail: data.CustomerEmail,
		ParcelID:      data.ParcelID,
		ParcelName:    data.ParcelName,
		TransactionID: data.TransactionID,
		PaymentStatus: data.PaymentStatus,
		TrackingID:    data.TrackingID,
		PaidAt:        data.PaidAt,
	}
}

// fromPaymentDomain converts a domain Payment entity to a GORM PaymentModel.
func fromPaymentDomain(data *entity.Payment) *model.PaymentModel {
	if data == nil {
		return nil
	}

	return &model.PaymentModel{
		ID:            data.ID,
		Amount:        data.Amount,
		Currency:      data.Currency,
		CustomerEmail: data.CustomerEmail,
		ParcelID:      data.ParcelID,
		ParcelName:    data.ParcelName,
		TransactionID: data.TransactionID,
		PaymentStatus: data.PaymentStatus,
		TrackingID:    data.TrackingID,
		PaidAt:        data.PaidAt,
	}
}
