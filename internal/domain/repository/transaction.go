package repository

import "context"

// TransactionManager runs a unit of work against the relational store.
type TransactionManager interface {
	// Execute runs fn within a database transaction.
	// If fn returns an error, the transaction is rolled back. Otherwise, it's committed.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the current transaction.
type RepositoryFactory interface {
	NewDeviceRepository() DeviceRepository
	NewNotificationRepository() NotificationRepository
}
