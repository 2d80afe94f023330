// Package impl contains the implementation of the application's business logic.
package impl

import (
	"bytes"
	"context"
	"image"
	"log/slog"
	"strconv"
	"time"

	// Registered decoders define which snapshot formats count as valid images.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"ecobin/config"
	deliverycontext "ecobin/internal/delivery/context"
	"ecobin/internal/domain/entity"
	domainerrors "ecobin/internal/domain/errors"
	"ecobin/internal/domain/repository"
	"ecobin/internal/domain/reward"
	"ecobin/internal/domain/service"
	"ecobin/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// disposalService implements the DisposalUsecase interface. It is the only
// writer of user stats and bin fill levels, and applies the three disposal
// writes as a single atomic unit.
type disposalService struct {
	txManager     repository.TransactionManager
	userRepo      repository.UserRepository
	binRepo       repository.BinRepository
	detector      service.ObjectDetector
	imageStore    service.ImageStore
	calc          *reward.Calculator
	uploadTimeout time.Duration
	logger        *slog.Logger
}

// DisposalServiceParams holds dependencies for the disposal service, injected by Fx.
type DisposalServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	UserRepo   repository.UserRepository
	BinRepo    repository.BinRepository
	Detector   service.ObjectDetector
	ImageStore service.ImageStore
	Config     *config.Config
	Logger     *slog.Logger
}

// NewDisposalService is the constructor for disposalService. It receives all dependencies as interfaces.
func NewDisposalService(params DisposalServiceParams) usecase.DisposalUsecase {
	pointsPerItem := 0
	carbonPerItem := 0
	uploadTimeout := 10 * time.Second
	if params.Config != nil && params.Config.Reward != nil {
		pointsPerItem = params.Config.Reward.PointsPerItem
		carbonPerItem = params.Config.Reward.CarbonPerItemGrams
	}
	if params.Config != nil && params.Config.ImageStore != nil && params.Config.ImageStore.Timeout > 0 {
		uploadTimeout = params.Config.ImageStore.Timeout
	}

	return &disposalService{
		txManager:     params.TxManager,
		userRepo:      params.UserRepo,
		binRepo:       params.BinRepo,
		detector:      params.Detector,
		imageStore:    params.ImageStore,
		calc:          reward.NewCalculator(pointsPerItem, carbonPerItem),
		uploadTimeout: uploadTimeout,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *disposalService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ProcessDisposal runs one disposal attempt through validation, detection,
// reward computation and atomic persistence. Validation and lookup failures
// short-circuit with no side effects; only the persistence step can fail
// after state has been touched, and it rolls back completely.
func (srv *disposalService) ProcessDisposal(ctx context.Context, input *usecase.ProcessDisposalInput) (*usecase.ProcessDisposalOutput, error) {
	binID, err := validateDisposalInput(input)
	if err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByRFIDTag(ctx, input.RFIDTag)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Disposal from unregistered tag", slog.String("rfidTag", input.RFIDTag))

			return nil, domainerrors.ErrUnknownUser.WrapMessage("no user for presented tag")
		}

		return nil, errors.Wrap(err, "failed to resolve user by tag")
	}

	bin, err := srv.binRepo.FindByID(ctx, binID)
	if err != nil {
		if errors.Is(err, repository.ErrBinNotFound) {
			return nil, domainerrors.ErrInvalidBin.WrapMessage("no bin with id " + input.BinID)
		}

		return nil, errors.Wrap(err, "failed to resolve bin")
	}

	if _, _, err := image.DecodeConfig(bytes.NewReader(input.Image)); err != nil {
		return nil, domainerrors.ErrInvalidImage.WrapMessage("snapshot is not a decodable image")
	}

	detections, err := srv.detector.Detect(ctx, input.Image)
	if err != nil {
		srv.log(ctx).Error("Object detection failed", slog.Any("error", err))

		return nil, domainerrors.ErrDetectionFailed.WrapMessage("detector call failed")
	}

	// Absence of detected waste is a valid zero-reward outcome: no log entry,
	// no stat or fill mutation.
	if len(detections) == 0 {
		return &usecase.ProcessDisposalOutput{
			Status:       usecase.StatusNoDetection,
			Count:        0,
			VoiceCommand: "No items detected. Please try again.",
			Timestamp:    time.Now().UTC(),
		}, nil
	}

	itemCount := len(detections)
	points := srv.calc.Points(itemCount)
	carbon := srv.calc.CarbonSaved(itemCount)
	labels := make([]string, 0, itemCount)
	for _, d := range detections {
		labels = append(labels, d.Label)
	}
	wasteType := reward.DominantType(labels)

	imageURL := srv.uploadSnapshot(ctx, input.Image)

	logEntry := &entity.DisposalLog{
		UserID:    user.ID,
		BinID:     bin.ID,
		WasteType: wasteType,
		ItemCount: itemCount,
		Points:    points,
		ImageURL:  imageURL,
	}

	// The three writes commit or roll back together: a reader must never
	// observe the log row without the matching stat and fill increments.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.DisposalRepo().Create(ctx, logEntry); err != nil {
			return errors.Wrap(err, "failed to insert disposal log")
		}
		if err := repoFactory.UserRepo().IncrementStats(ctx, user.ID, points, itemCount, carbon); err != nil {
			return errors.Wrap(err, "failed to increment user stats")
		}
		if err := repoFactory.BinRepo().IncrementFill(ctx, bin.ID, itemCount); err != nil {
			return errors.Wrap(err, "failed to increment bin fill level")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute disposal transaction",
			slog.Uint64("userID", uint64(user.ID)),
			slog.Uint64("binID", uint64(bin.ID)),
			slog.Any("error", err))

		return nil, domainerrors.ErrPersistenceFailed.WrapMessage("disposal transaction aborted")
	}

	srv.markBinFull(ctx, bin.ID)

	totals := srv.readBackTotals(ctx, user, points, itemCount, carbon)

	srv.log(ctx).Info("Disposal recorded",
		slog.Uint64("userID", uint64(user.ID)),
		slog.Uint64("binID", uint64(bin.ID)),
		slog.Int("items", itemCount),
		slog.Int("points", points),
		slog.String("wasteType", wasteType))

	return &usecase.ProcessDisposalOutput{
		Status:       usecase.StatusSuccess,
		Detections:   detections,
		Count:        itemCount,
		WasteType:    wasteType,
		PointsEarned: points,
		CarbonGrams:  carbon,
		User:         totals,
		ImageURL:     imageURL,
		VoiceCommand: voiceConfirmation(user.FirstName(), points, totals.TotalPoints),
		Timestamp:    time.Now().UTC(),
	}, nil
}

// validateDisposalInput checks the raw kiosk input and parses the bin ID.
func validateDisposalInput(input *usecase.ProcessDisposalInput) (uint, error) {
	if input == nil || len(input.Image) == 0 {
		return 0, domainerrors.ErrInvalidRequest.WrapMessage("image is required")
	}
	if input.RFIDTag == "" {
		return 0, domainerrors.ErrInvalidRequest.WrapMessage("rfid_uid is required")
	}

	binID, err := strconv.ParseUint(input.BinID, 10, 32)
	if err != nil || binID == 0 {
		return 0, domainerrors.ErrInvalidRequest.WrapMessage("bin_id must be a positive integer")
	}

	return uint(binID), nil
}

// uploadSnapshot hosts the snapshot within the configured timeout. Hosting
// failure degrades to the sentinel URL and never aborts the disposal.
func (srv *disposalService) uploadSnapshot(ctx context.Context, snapshot []byte) string {
	uploadCtx, cancel := context.WithTimeout(ctx, srv.uploadTimeout)
	defer cancel()

	url, err := srv.imageStore.Upload(uploadCtx, snapshot)
	if err != nil {
		srv.log(ctx).Warn("Snapshot upload failed, continuing with sentinel", slog.Any("error", err))

		return entity.SentinelUploadFailed
	}

	return url
}

// markBinFull re-reads the bin after commit and flips it to full when the
// fill level has reached capacity. Best-effort: the disposal is already
// committed, so failures here are logged and swallowed.
func (srv *disposalService) markBinFull(ctx context.Context, binID uint) {
	bin, err := srv.binRepo.FindByID(ctx, binID)
	if err != nil {
		srv.log(ctx).Warn("Post-commit bin re-read failed", slog.Uint64("binID", uint64(binID)), slog.Any("error", err))

		return
	}

	if !bin.IsFull() || bin.Status == entity.BinStatusFull {
		return
	}

	if err := srv.binRepo.UpdateStatus(ctx, binID, entity.BinStatusFull); err != nil {
		srv.log(ctx).Warn("Failed to mark bin full", slog.Uint64("binID", uint64(binID)), slog.Any("error", err))
	}
}

// readBackTotals fetches the user's stats after the increment. If the
// re-read fails the totals are derived from the pre-transaction snapshot
// plus the committed deltas, so the response stays consistent.
func (srv *disposalService) readBackTotals(ctx context.Context, user *entity.User, points, items, carbon int) *usecase.UserTotals {
	updated, err := srv.userRepo.FindByID(ctx, user.ID)
	if err != nil {
		srv.log(ctx).Warn("Post-commit user re-read failed", slog.Uint64("userID", uint64(user.ID)), slog.Any("error", err))

		return &usecase.UserTotals{
			Name:             user.FullName,
			TotalPoints:      user.Points + points,
			TotalRecycled:    user.RecycledItems + items,
			TotalCarbonGrams: user.CarbonGrams + carbon,
		}
	}

	return &usecase.UserTotals{
		Name:             updated.FullName,
		TotalPoints:      updated.Points,
		TotalRecycled:    updated.RecycledItems,
		TotalCarbonGrams: updated.CarbonGrams,
	}
}

func voiceConfirmation(firstName string, earned, total int) string {
	return "Thank you " + firstName + ", you earned " + strconv.Itoa(earned) +
		" points. Your total is now " + strconv.Itoa(total) + " points."
}
