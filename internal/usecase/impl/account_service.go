package impl

import (
	"context"
	"log/slog"

	"ecobin/config"
	deliverycontext "ecobin/internal/delivery/context"
	"ecobin/internal/domain/entity"
	domainerrors "ecobin/internal/domain/errors"
	"ecobin/internal/domain/repository"
	"ecobin/internal/domain/service"
	"ecobin/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	tokenSvc  service.TokenService
	logger    *slog.Logger
}

// AccountServiceParams holds dependencies for the account service, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	TokenSvc  service.TokenService
	Config    *config.Config
	Logger    *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		tokenSvc:  params.TokenSvc,
		logger:    params.Logger,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account. The duplicate checks and the insert run
// in one transaction so concurrent registrations cannot race past them.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("username", input.Username))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	newUser := &entity.User{
		FullName:     input.FullName,
		Username:     input.Username,
		PasswordHash: hashedPassword,
		RFIDTag:      input.RFIDTag,
		Role:         entity.RoleUser,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if _, err := userRepo.FindByUsername(ctx, input.Username); err == nil {
			return domainerrors.ErrUsernameTaken.WrapMessage("username already registered")
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check username")
		}

		if _, err := userRepo.FindByRFIDTag(ctx, input.RFIDTag); err == nil {
			return domainerrors.ErrRFIDTaken.WrapMessage("rfid tag already registered")
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check rfid tag")
		}

		return userRepo.Create(ctx, newUser)
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Uint64("userID", uint64(newUser.ID)))

	return &usecase.RegisterOutput{UserID: newUser.ID}, nil
}

// Login authenticates by username and password and issues an access token.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("username", input.Username))

	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	// bcrypt comparison is CPU-bound and runs outside any transaction.
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	accessToken, err := srv.tokenSvc.GenerateToken(user.ID, user.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Debug("User logged in", slog.Uint64("userID", uint64(user.ID)))

	return &usecase.LoginOutput{
		User:        usecase.NewProfile(user),
		AccessToken: accessToken,
	}, nil
}
