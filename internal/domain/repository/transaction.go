package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific transaction.
type RepositoryFactory interface {
	// NewChannelRepository returns a ChannelRepository instance bound to the current transaction.
	NewChannelRepository() ChannelRepository

	// NewDeliveryRepository returns a DeliveryRepository instance bound to the current transaction.
	NewDeliveryRepository() DeliveryRepository

	// NewWatchlistRepository returns a WatchlistRepository instance bound to the current transaction.
	NewWatchlistRepository() WatchlistRepository
}
