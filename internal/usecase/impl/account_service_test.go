package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"ecobin/internal/domain/entity"
	domainerrors "ecobin/internal/domain/errors"
	"ecobin/internal/domain/repository"
	mockRepo "ecobin/internal/mocks/repository"
	mockSvc "ecobin/internal/mocks/service"
	"ecobin/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service      usecase.AccountUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAccountService(AccountServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		Hasher:    hasher,
		TokenSvc:  tokenService,
		Logger:    logger,
	})

	return accountServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func registerInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		FullName: "Alice Chen",
		Username: "alice",
		Password: "Password123!",
		RFIDTag:  "TAG-001",
	}
}

func TestAccountService_Register_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	input := registerInput()

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByUsername(ctx, input.Username).
				Return(nil, repository.ErrUserNotFound)
			mockUserRepo.EXPECT().
				FindByRFIDTag(ctx, input.RFIDTag).
				Return(nil, repository.ErrUserNotFound)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					assert.Equal(t, input.FullName, user.FullName)
					assert.Equal(t, "hashed_password", user.PasswordHash)
					assert.Equal(t, entity.RoleUser, user.Role)
					user.ID = 42
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, uint(42), output.UserID)
}

func TestAccountService_Register_UsernameTaken(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	input := registerInput()

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().
				FindByUsername(ctx, input.Username).
				Return(&entity.User{ID: 1, Username: input.Username}, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrUsernameTaken.WrapMessage("username already registered"))

	_, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
}

func TestAccountService_Register_RFIDTaken(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	input := registerInput()

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().
				FindByUsername(ctx, input.Username).
				Return(nil, repository.ErrUserNotFound)
			mockUserRepo.EXPECT().
				FindByRFIDTag(ctx, input.RFIDTag).
				Return(&entity.User{ID: 2, RFIDTag: input.RFIDTag}, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrRFIDTaken.WrapMessage("rfid tag already registered"))

	_, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRFIDTaken)
}

func TestAccountService_Register_HashFailure(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	input := registerInput()

	fx.hasher.EXPECT().Hash(input.Password).Return("", errors.New("bcrypt blew up"))

	_, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	user := &entity.User{
		ID:           7,
		FullName:     "Alice Chen",
		Username:     "alice",
		PasswordHash: "hashed_password",
		Role:         entity.RoleUser,
		Points:       120,
	}

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", "hashed_password").Return(true)
	fx.tokenService.EXPECT().GenerateToken(user.ID, "user").Return("signed.jwt.token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Username: "alice",
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", output.AccessToken)
	require.NotNil(t, output.User)
	assert.Equal(t, user.ID, output.User.UserID)
	assert.Equal(t, 120, output.User.Points)
}

func TestAccountService_Login_UnknownUser(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{
		Username: "ghost",
		Password: "whatever",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	user := &entity.User{ID: 7, Username: "alice", PasswordHash: "hashed_password"}

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed_password").Return(false)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{
		Username: "alice",
		Password: "wrong",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}
