package impl

import (
	"context"
	"log/slog"

	deliverycontext "ecobin/internal/delivery/context"
	"ecobin/internal/domain/entity"
	domainerrors "ecobin/internal/domain/errors"
	"ecobin/internal/domain/repository"
	"ecobin/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultHistoryLimit = 10

// queryService implements the QueryUsecase interface. Reads always hit the
// store fresh; there is no in-memory caching of stats or leaderboards.
type queryService struct {
	userRepo     repository.UserRepository
	binRepo      repository.BinRepository
	disposalRepo repository.DisposalRepository
	logger       *slog.Logger
}

// QueryServiceParams holds dependencies for the query service, injected by Fx.
type QueryServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	BinRepo      repository.BinRepository
	DisposalRepo repository.DisposalRepository
	Logger       *slog.Logger
}

// NewQueryService is the constructor for queryService.
func NewQueryService(params QueryServiceParams) usecase.QueryUsecase {
	return &queryService{
		userRepo:     params.UserRepo,
		binRepo:      params.BinRepo,
		disposalRepo: params.DisposalRepo,
		logger:       params.Logger,
	}
}

func (srv *queryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UserStats returns a user's profile with cumulative totals.
func (srv *queryService) UserStats(ctx context.Context, userID uint) (*usecase.Profile, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("no user with requested id")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return usecase.NewProfile(user), nil
}

// UserHistory returns the user's disposal logs newest-first.
func (srv *queryService) UserHistory(ctx context.Context, userID uint, limit int) ([]*usecase.HistoryEntry, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	logs, err := srv.disposalRepo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list disposal history")
	}

	entries := make([]*usecase.HistoryEntry, 0, len(logs))
	for _, log := range logs {
		entries = append(entries, &usecase.HistoryEntry{
			LogID:     log.ID,
			WasteType: log.WasteType,
			ItemCount: log.ItemCount,
			Points:    log.Points,
			ImageURL:  log.ImageURL,
			Timestamp: log.CreatedAt,
		})
	}

	return entries, nil
}

// Leaderboard returns the top regular users by points. Admin accounts are
// excluded from the ranking.
func (srv *queryService) Leaderboard(ctx context.Context, limit int) ([]*usecase.Profile, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	users, err := srv.userRepo.Leaderboard(ctx, entity.RoleUser, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load leaderboard")
	}

	profiles := make([]*usecase.Profile, 0, len(users))
	for _, user := range users {
		profiles = append(profiles, usecase.NewProfile(user))
	}

	return profiles, nil
}

// Bins returns all bins ordered by ID.
func (srv *queryService) Bins(ctx context.Context) ([]*usecase.BinView, error) {
	bins, err := srv.binRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bins")
	}

	views := make([]*usecase.BinView, 0, len(bins))
	for _, bin := range bins {
		views = append(views, &usecase.BinView{
			BinID:       bin.ID,
			Name:        bin.Name,
			Location:    bin.Location,
			FillLevel:   bin.FillLevel,
			Capacity:    bin.Capacity,
			FillPercent: bin.FillPercent(),
			Status:      bin.Status,
		})
	}

	return views, nil
}

// ResetBin zeroes a bin's fill level and reactivates it. This is the only
// path that may decrease a fill level.
func (srv *queryService) ResetBin(ctx context.Context, binID uint) error {
	if _, err := srv.binRepo.FindByID(ctx, binID); err != nil {
		if errors.Is(err, repository.ErrBinNotFound) {
			return domainerrors.ErrBinNotFound.WrapMessage("no bin with requested id")
		}

		return errors.Wrap(err, "failed to find bin by id")
	}

	if err := srv.binRepo.Reset(ctx, binID); err != nil {
		return errors.Wrap(err, "failed to reset bin")
	}

	srv.log(ctx).Info("Bin reset", slog.Uint64("binID", uint64(binID)))

	return nil
}
