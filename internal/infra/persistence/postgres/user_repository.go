package postgres

import (
	"context"

	"todo/internal/domain/entity"
	domainerrors "todo/internal/domain/errors"
	"todo/internal/domain/repository"
	"todo/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain's UserRepository interface using GORM.
// It composes the generic accessor for reads and queues writes on the
// owning unit of work.
type userRepository struct {
	uow  *unitOfWork
	repo repo[model.UserModel]
}

func newUserRepository(uow *unitOfWork) repository.UserRepository {
	return &userRepository{
		uow:  uow,
		repo: repo[model.UserModel]{session: uow.conn},
	}
}

// FindByID retrieves a single user by their unique ID.
func (r *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	userM, err := r.repo.findByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(userM), nil
}

// FindByEmail retrieves a single user by their email address.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	userM, err := r.repo.first(ctx, "email = ?", email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(userM), nil
}

// FindByUsername retrieves a single user by their username.
func (r *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	userM, err := r.repo.first(ctx, "username = ?", username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	return toUserDomain(userM), nil
}

// EmailExists reports whether any user already uses the email.
func (r *userRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	exists, err := r.repo.exists(ctx, "email = ?", email)
	if err != nil {
		return false, errors.Wrap(err, "failed to check email existence")
	}

	return exists, nil
}

// UsernameExists reports whether any user already uses the username.
func (r *userRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	exists, err := r.repo.exists(ctx, "username = ?", username)
	if err != nil {
		return false, errors.Wrap(err, "failed to check username existence")
	}

	return exists, nil
}

// Count returns the total number of users.
func (r *userRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.repo.count(ctx, nil)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count users")
	}

	return count, nil
}

// Create queues the insertion of a new user. The storage unique constraints
// on email and username remain the authoritative duplicate check; a
// violation at flush time maps to the same validation errors the service's
// fast-path existence checks produce.
func (r *userRepository) Create(user *entity.User) {
	r.uow.enqueue(pendingChange{
		kind:   changeInsert,
		build:  func() stamped { return fromUserDomain(user) },
		sync:   func(m stamped) { syncUser(user, m.(*model.UserModel)) },
		mapErr: mapUserWriteError,
	})
}

// Update queues the modification of an existing user.
func (r *userRepository) Update(user *entity.User) {
	r.uow.enqueue(pendingChange{
		kind:   changeUpdate,
		build:  func() stamped { return fromUserDomain(user) },
		sync:   func(m stamped) { syncUser(user, m.(*model.UserModel)) },
		mapErr: mapUserWriteError,
	})
}

// mapUserWriteError converts PostgreSQL constraint violations into domain errors.
func mapUserWriteError(err error) error {
	if isUniqueConstraintViolation(err) {
		if violatedColumn(err, "username") {
			return domainerrors.ErrUsernameAlreadyExists.WrapMessage("username unique constraint violated")
		}

		return domainerrors.ErrEmailAlreadyExists.WrapMessage("email unique constraint violated")
	}

	return domainerrors.NewDatabaseExecuteError(err, "failed to persist user")
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Username:     data.Username,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:           data.ID,
		Username:     data.Username,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// syncUser copies the generated id and stamped timestamps back onto the
// domain entity after a successful flush.
func syncUser(user *entity.User, m *model.UserModel) {
	user.ID = m.ID
	user.CreatedAt = m.CreatedAt
	user.UpdatedAt = m.UpdatedAt
}
