package postgres

import (
	"context"
	"time"

	"todo/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// stamped is implemented by every persistence model the unit of work
// manages. Stamping runs immediately before a change is written, from the
// entity's in-memory state at that moment.
type stamped interface {
	StampCreate(now time.Time)
	StampUpdate(now time.Time)
}

type changeKind int

const (
	changeInsert changeKind = iota
	changeUpdate
	changeDelete
)

// pendingChange is one queued write. The model is built lazily at flush
// time so that every mutation a service applies to the domain entity before
// SaveChanges is reflected; only the final state is persisted.
type pendingChange struct {
	kind changeKind

	// build maps the domain entity to its persistence model.
	build func() stamped

	// sync copies generated ids and stamped timestamps back onto the
	// domain entity after the statement succeeded.
	sync func(m stamped)

	// mapErr translates storage constraint violations into domain errors.
	// Optional; other failures surface unmodified.
	mapErr func(err error) error
}

// unitOfWork implements repository.UnitOfWork on top of a GORM connection.
// One instance serves one request; it is not safe for concurrent use.
type unitOfWork struct {
	db      *gorm.DB
	tx      *gorm.DB // open explicit transaction, nil otherwise
	pending []pendingChange

	users repository.UserRepository
	todos repository.TodoRepository
}

// unitOfWorkFactory implements repository.UnitOfWorkFactory.
type unitOfWorkFactory struct {
	db *gorm.DB
}

// NewUnitOfWorkFactory is the constructor for unitOfWorkFactory.
// This function is used as an Fx provider.
func NewUnitOfWorkFactory(db *gorm.DB) repository.UnitOfWorkFactory {
	return &unitOfWorkFactory{db: db}
}

// New produces a fresh session with its own change set. The repositories it
// exposes are bound to the session, so reads inside an explicit transaction
// observe that transaction.
func (f *unitOfWorkFactory) New() repository.UnitOfWork {
	uow := &unitOfWork{db: f.db}
	uow.users = newUserRepository(uow)
	uow.todos = newTodoRepository(uow)

	return uow
}

// conn returns the connection all session operations run on.
func (u *unitOfWork) conn() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}

	return u.db
}

func (u *unitOfWork) enqueue(change pendingChange) {
	u.pending = append(u.pending, change)
}

// Users returns the user repository bound to this session.
func (u *unitOfWork) Users() repository.UserRepository {
	return u.users
}

// Todos returns the todo repository bound to this session.
func (u *unitOfWork) Todos() repository.TodoRepository {
	return u.todos
}

// SaveChanges writes every queued change atomically. Outside an explicit
// transaction it opens one for the flush; inside one it only flushes, and
// Commit/Rollback still decide the outcome.
func (u *unitOfWork) SaveChanges(ctx context.Context) error {
	if len(u.pending) == 0 {
		return nil
	}

	if u.tx != nil {
		if err := u.flush(ctx, u.tx); err != nil {
			return err
		}
		u.pending = nil

		return nil
	}

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	// A panic inside the flush must not leak an open transaction.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := u.flush(ctx, tx); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Wrapf(err, "transaction rollback failed: %v (original error)", rbErr)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}
	u.pending = nil

	return nil
}

// flush stamps and executes the queued changes in order. Timestamp
// discipline lives here: added entities get createdAt/updatedAt, modified
// entities get updatedAt refreshed plus the todo completion-timestamp rule.
func (u *unitOfWork) flush(ctx context.Context, tx *gorm.DB) error {
	now := time.Now().UTC()

	for _, change := range u.pending {
		m := change.build()

		var err error
		switch change.kind {
		case changeInsert:
			m.StampCreate(now)
			err = tx.WithContext(ctx).Create(m).Error
		case changeUpdate:
			m.StampUpdate(now)
			err = tx.WithContext(ctx).Save(m).Error
		case changeDelete:
			err = tx.WithContext(ctx).Delete(m).Error
		}

		if err != nil {
			if change.mapErr != nil {
				return change.mapErr(err)
			}

			return errors.Wrap(err, "failed to apply pending change")
		}

		if change.sync != nil {
			change.sync(m)
		}
	}

	return nil
}

// Begin opens an explicit transaction for multi-step sequences.
func (u *unitOfWork) Begin(ctx context.Context) error {
	if u.tx != nil {
		return errors.New("transaction already begun")
	}

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}
	u.tx = tx

	return nil
}

// Commit commits the explicit transaction.
func (u *unitOfWork) Commit(_ context.Context) error {
	if u.tx == nil {
		return errors.New("no transaction to commit")
	}

	err := u.tx.Commit().Error
	u.tx = nil
	if err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}

// Rollback aborts the explicit transaction.
func (u *unitOfWork) Rollback() error {
	if u.tx == nil {
		return errors.New("no transaction to rollback")
	}

	err := u.tx.Rollback().Error
	u.tx = nil
	if err != nil {
		return errors.Wrap(err, "failed to rollback transaction")
	}

	return nil
}

// Close releases the session. An explicit transaction still open at this
// point is rolled back, whatever path led here.
func (u *unitOfWork) Close() error {
	u.pending = nil

	if u.tx != nil {
		err := u.tx.Rollback().Error
		u.tx = nil
		if err != nil && !errors.Is(err, gorm.ErrInvalidTransaction) {
			return errors.Wrap(err, "failed to release transaction")
		}
	}

	return nil
}
