package ports

import (
	"context"
)

// UnitOfWorkFactory hands out a fresh UnitOfWork per command; instances are
// never shared between requests.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork spans one database transaction. Every repository it returns reads
// and writes through that transaction, so a command either commits all of its
// aggregate changes or none of them.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit commits the transaction, then publishes the status events of every
	// order the repositories added or updated. Publishing failures are logged,
	// not returned.
	Commit(ctx context.Context) error

	// Rollback discards the transaction. Handlers defer it right after Begin and
	// ignore its error once Commit has run.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	AgentRepository() AgentRepository
	InventoryRepository() InventoryRepository
	StationRepository() StationRepository
	UserRepository() UserRepository
}
