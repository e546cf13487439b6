package repository

import "context"

// UnitOfWork groups the repositories into one coordinated session and turns
// their queued writes into a single atomic commit. This allows the use case
// layer to express transactional work without depending on a specific DB
// driver like GORM.
//
// Timestamp discipline is owned by this layer: immediately before a commit,
// newly added entities get createdAt/updatedAt set, modified entities get
// updatedAt refreshed, and todo completion timestamps are stamped or
// cleared from the entity's in-memory state at that moment.
type UnitOfWork interface {
	// Users returns the user repository bound to this session.
	Users() UserRepository

	// Todos returns the todo repository bound to this session.
	Todos() TodoRepository

	// SaveChanges commits all queued creates, updates and removals
	// atomically. Either all of them persist or none do. Inside an explicit
	// transaction it flushes without committing the transaction.
	SaveChanges(ctx context.Context) error

	// Begin opens an explicit transaction for multi-step sequences that
	// need isolation beyond a single SaveChanges call.
	Begin(ctx context.Context) error

	// Commit commits the explicit transaction opened by Begin.
	Commit(ctx context.Context) error

	// Rollback aborts the explicit transaction opened by Begin.
	Rollback() error

	// Close releases any held transaction resource. It rolls back an open
	// explicit transaction and is safe to defer on every exit path.
	Close() error
}

// UnitOfWorkFactory produces one unit-of-work session per request. Sessions
// are not safe for concurrent use.
type UnitOfWorkFactory interface {
	New() UnitOfWork
}
