package repository

import "context"

// RepositoryFactory creates repository instances bound to a single
// store transaction. Use cases receive one inside TransactionManager.Execute
// so that multi-entity fan-out either fully commits or fully rolls back.
type RepositoryFactory interface {
	ParcelRepo() ParcelRepository
	PaymentRepo() PaymentRepository
	RiderRepo() RiderRepository
	UserRepo() UserRepository
}

// TransactionManager runs application logic within a single store transaction.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
