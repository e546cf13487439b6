package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"todo/internal/domain/entity"
	domainerrors "todo/internal/domain/errors"
	"todo/internal/domain/repository"
	mockRepo "todo/internal/mocks/repository"
	mockSvc "todo/internal/mocks/service"
	"todo/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	uowFactory   *mockRepo.MockUnitOfWorkFactory
	uow          *mockRepo.MockUnitOfWork
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	uowFactory := mockRepo.NewMockUnitOfWorkFactory(t)
	uow := mockRepo.NewMockUnitOfWork(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	uowFactory.EXPECT().New().Return(uow)
	uow.EXPECT().Close().Return(nil)

	service := NewAuthService(AuthServiceParams{
		UowFactory:   uowFactory,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})

	return authServiceFixtures{
		service:      service,
		uowFactory:   uowFactory,
		uow:          uow,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "password123",
	}
	expiresAt := time.Now().Add(7 * 24 * time.Hour)

	fx.uow.EXPECT().Users().Return(fx.userRepo)
	fx.userRepo.EXPECT().EmailExists(ctx, input.Email).Return(false, nil)
	fx.userRepo.EXPECT().UsernameExists(ctx, input.Username).Return(false, nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.userRepo.EXPECT().
		Create(mock.AnythingOfType("*entity.User")).
		Run(func(user *entity.User) {
			user.ID = 42
		}).
		Return()
	fx.uow.EXPECT().SaveChanges(ctx).Return(nil)
	fx.tokenService.EXPECT().
		Issue(int64(42), input.Email, input.Username).
		Return("signed.jwt.token", expiresAt, nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, int64(42), output.UserID)
	assert.Equal(t, input.Username, output.Username)
	assert.Equal(t, input.Email, output.Email)
	assert.Equal(t, "signed.jwt.token", output.Token)
	assert.Equal(t, expiresAt, output.ExpiresAt)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "testuser",
		Email:    "taken@example.com",
		Password: "password123",
	}

	fx.uow.EXPECT().Users().Return(fx.userRepo)
	fx.userRepo.EXPECT().EmailExists(ctx, input.Email).Return(true, nil)

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyExists)
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "taken",
		Email:    "test@example.com",
		Password: "password123",
	}

	fx.uow.EXPECT().Users().Return(fx.userRepo)
	fx.userRepo.EXPECT().EmailExists(ctx, input.Email).Return(false, nil)
	fx.userRepo.EXPECT().UsernameExists(ctx, input.Username).Return(true, nil)

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUsernameAlreadyExists)
}

// A concurrent registration can slip past the existence checks; the unique
// constraint fires at flush time and must surface as the same duplicate error.
func TestAuthService_Register_ConstraintRace(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "password123",
	}

	fx.uow.EXPECT().Users().Return(fx.userRepo)
	fx.userRepo.EXPECT().EmailExists(ctx, input.Email).Return(false, nil)
	fx.userRepo.EXPECT().UsernameExists(ctx, input.Username).Return(false, nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().Create(mock.AnythingOfType("*entity.User")).Return()
	fx.uow.EXPECT().SaveChanges(ctx).Return(domainerrors.ErrEmailAlreadyExists)

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyExists)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Email:    "test@example.com",
		Password: "password123",
	}
	user := &entity.User{
		ID:           42,
		Username:     "testuser",
		Email:        input.Email,
		PasswordHash: "hashed_password",
	}
	expiresAt := time.Now().Add(7 * 24 * time.Hour)

	fx.uow.EXPECT().Users().Return(fx.userRepo)
	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(user, nil)
	fx.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(true)
	fx.tokenService.EXPECT().
		Issue(user.ID, user.Email, user.Username).
		Return("signed.jwt.token", expiresAt, nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, user.ID, output.UserID)
	assert.Equal(t, "signed.jwt.token", output.Token)
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestAuthService_Login_IndistinguishableFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAuthService(t)

		fx.uow.EXPECT().Users().Return(fx.userRepo)
		fx.userRepo.EXPECT().
			FindByEmail(ctx, "nobody@example.com").
			Return(nil, repository.ErrUserNotFound)

		output, err := fx.service.Login(ctx, &usecase.LoginInput{
			Email:    "nobody@example.com",
			Password: "whatever",
		})

		assert.Nil(t, output)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAuthService(t)

		user := &entity.User{ID: 42, Email: "test@example.com", PasswordHash: "hashed"}

		fx.uow.EXPECT().Users().Return(fx.userRepo)
		fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
		fx.hasher.EXPECT().Check("wrong", user.PasswordHash).Return(false)

		output, err := fx.service.Login(ctx, &usecase.LoginInput{
			Email:    user.Email,
			Password: "wrong",
		})

		assert.Nil(t, output)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}
