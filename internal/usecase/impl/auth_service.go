// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "todo/internal/delivery/context"
	"todo/internal/domain/entity"
	domainerrors "todo/internal/domain/errors"
	"todo/internal/domain/repository"
	"todo/internal/domain/service"
	"todo/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	uowFactory   repository.UnitOfWorkFactory
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UowFactory   repository.UnitOfWorkFactory
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		uowFactory:   params.UowFactory,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete account registration process: duplicate
// checks, password hashing, persistence and token issuance. The existence
// checks are a fast path; the storage unique constraints remain authoritative
// for concurrent registrations, and a constraint violation surfaces as the
// same duplicate error.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	uow := srv.uowFactory.New()
	defer uow.Close()

	emailTaken, err := uow.Users().EmailExists(ctx, input.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check email existence")
	}
	if emailTaken {
		srv.log(ctx).Warn("Registration rejected, email taken", slog.String("email", input.Email))

		return nil, domainerrors.ErrEmailAlreadyExists
	}

	usernameTaken, err := uow.Users().UsernameExists(ctx, input.Username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check username existence")
	}
	if usernameTaken {
		srv.log(ctx).Warn("Registration rejected, username taken", slog.String("username", input.Username))

		return nil, domainerrors.ErrUsernameAlreadyExists
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}

	uow.Users().Create(newUser)
	if err := uow.SaveChanges(ctx); err != nil {
		srv.log(ctx).Error("Failed to persist registration", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Int64("userID", newUser.ID))

	return srv.issueToken(ctx, newUser)
}

// Login verifies the credentials and issues a fresh bearer token. An unknown
// email and a wrong password produce the identical error, so a caller cannot
// probe which addresses are registered.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	uow := srv.uowFactory.New()
	defer uow.Close()

	user, err := uow.Users().FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed, unknown email", slog.String("email", input.Email))

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed, password mismatch", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	srv.log(ctx).Debug("Login succeeded", slog.Int64("userID", user.ID))

	return srv.issueToken(ctx, user)
}

func (srv *authService) issueToken(ctx context.Context, user *entity.User) (*usecase.AuthOutput, error) {
	token, expiresAt, err := srv.tokenService.Issue(user.ID, user.Email, user.Username)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.Int64("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token")
	}

	return &usecase.AuthOutput{
		UserID:    user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
