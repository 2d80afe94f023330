package impl

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"io"
	"log/slog"
	"testing"
	"time"

	"ecobin/config"
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

// disposalServiceFixtures holds all test dependencies for disposal service tests.
type disposalServiceFixtures struct {
	service    usecase.DisposalUsecase
	txManager  *mockRepo.MockTransactionManager
	userRepo   *mockRepo.MockUserRepository
	binRepo    *mockRepo.MockBinRepository
	detector   *mockSvc.MockObjectDetector
	imageStore *mockSvc.MockImageStore
}

func createTestDisposalService(t *testing.T) disposalServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	binRepo := mockRepo.NewMockBinRepository(t)
	detector := mockSvc.NewMockObjectDetector(t)
	imageStore := mockSvc.NewMockImageStore(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{
		Reward: &config.RewardConfig{
			PointsPerItem:      10,
			CarbonPerItemGrams: 50,
		},
		ImageStore: &config.ImageStoreConfig{
			Timeout: time.Second,
		},
	}

	service := NewDisposalService(DisposalServiceParams{
		TxManager:  txManager,
		UserRepo:   userRepo,
		BinRepo:    binRepo,
		Detector:   detector,
		ImageStore: imageStore,
		Config:     cfg,
		Logger:     logger,
	})

	return disposalServiceFixtures{
		service:    service,
		txManager:  txManager,
		userRepo:   userRepo,
		binRepo:    binRepo,
		detector:   detector,
		imageStore: imageStore,
	}
}

// validSnapshot encodes a minimal PNG so the decode check passes.
func validSnapshot(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 1, 1))))

	return buf.Bytes()
}

func testUser() *entity.User {
	return &entity.User{
		ID:            7,
		FullName:      "Alice Chen",
		Username:      "alice",
		RFIDTag:       "TAG-001",
		Role:          entity.RoleUser,
		Points:        100,
		RecycledItems: 12,
		CarbonGrams:   600,
	}
}

func testBin() *entity.Bin {
	return &entity.Bin{
		ID:       3,
		Name:     "Lobby",
		Capacity: 50,
		Status:   entity.BinStatusActive,
	}
}

func TestDisposalService_ProcessDisposal_MissingImage(t *testing.T) {
	fx := createTestDisposalService(t)

	_, err := fx.service.ProcessDisposal(context.Background(), &usecase.ProcessDisposalInput{
		RFIDTag: "TAG-001",
		BinID:   "3",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRequest)
}

func TestDisposalService_ProcessDisposal_MissingRFIDTag(t *testing.T) {
	fx := createTestDisposalService(t)

	_, err := fx.service.ProcessDisposal(context.Background(), &usecase.ProcessDisposalInput{
		Image: validSnapshot(t),
		BinID: "3",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRequest)
}

func TestDisposalService_ProcessDisposal_MalformedBinID(t *testing.T) {
	fx := createTestDisposalService(t)

	for _, binID := range []string{"", "abc", "-1", "0"} {
		_, err := fx.service.ProcessDisposal(context.Background(), &usecase.ProcessDisposalInput{
			Image:   validSnapshot(t),
			RFIDTag: "TAG-001",
			BinID:   binID,
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidRequest)
	}
}

func TestDisposalService_ProcessDisposal_UnknownRFIDTag(t *testing.T) {
	fx := createTestDisposalService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByRFIDTag(ctx, "TAG-NOBODY").
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.ProcessDisposal(ctx, &usecase.ProcessDisposalInput{
		Image:   validSnapshot(t),
		RFIDTag: "TAG-NOBODY",
		BinID:   "3",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnknownUser)
}

func TestDisposalService_ProcessDisposal_UnknownBin(t *testing.T) {
	fx := createTestDisposalService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByRFIDTag(ctx, "TAG-001").Return(testUser(), nil)
	fx.binRepo.EXPECT().FindByID(ctx, uint(99)).Return(nil, repository.ErrBinNotFound)

	_, err := fx.service.ProcessDisposal(ctx, &usecase.ProcessDisposalInput{
		Image:   validSnapshot(t),
		RFIDTag: "TAG-001",
		BinID:   "99",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidBin)
}

func TestDisposalService_ProcessDisposal_UndecodableImage(t *testing.T) {
	fx := createTestDisposalService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByRFIDTag(ctx, "TAG-001").Return(testUser(), nil)
	fx.binRepo.EXPECT().FindByID(ctx, uint(3)).Return(testBin(), nil)

	_, err := fx.service.ProcessDisposal(ctx, &usecase.ProcessDisposalInput{
		Image:   []byte("definitely not an image"),
		RFIDTag: "TAG-001",
		BinID:   "3",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidImage)
}

func TestDisposalService_ProcessDisposal_DetectorFailure(t *testing.T) {
	fx := createTestDisposalService(t)
	ctx := context.Background()
	snapshot := validSnapshot(t)

	fx.userRepo.EXPECT().FindByRFIDTag(ctx, "TAG-001").Return(testUser(), nil)
	fx.binRepo.EXPECT().FindByID(ctx, uint(3)).Return(testBin(), nil)
	fx.detector.EXPECT().Detect(ctx, snapshot).Return(nil, errors.New("inference server down"))

	_, err := fx.service.ProcessDisposal(ctx, &usecase.ProcessDisposalInput{
		Image:   snapshot,
		RFIDTag: "TAG-001",
		BinID:   "3",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrDetectionFailed)
}

func TestDisposalService_ProcessDisposal_NoDetections(t *testing.T) {
	fx := createTestDisposalService(t)
	ctx := context.Background()
	snapshot := validSnapshot(t)

	fx.userRepo.EXPECT().FindByRFIDTag(ctx, "TAG-001").Return(testUser(), nil)
	fx.binRepo.EXPECT().FindByID(ctx, uint(3)).Return(testBin(), nil)
	fx.detector.EXPECT().Detect(ctx, snapshot).Return([]entity.Detection{}, nil)

	output, err := fx.service.ProcessDisposal(ctx, &usecase.ProcessDisposalInput{
		Image:   snapshot,
		RFIDTag: "TAG-001",
		BinID:   "3",
	})

	require.NoError(t, err)
	assert.Equal(t, usecase.StatusNoDetection, output.Status)
	assert.Zero(t, output.Count)
	assert.Nil(t, output.User)
	assert.NotEmpty(t, output.VoiceCommand)
	// No writes of any kind: the mocks would fail the test on an
	// unexpected Execute, Upload or IncrementStats call.
}

func TestDisposalService_ProcessDisposal_Success(t *testing.T) {
	fx := createTestDisposalService(t)
	ctx := context.Background()
	snapshot := validSnapshot(t)
	user := testUser()
	bin := testBin()

	detections := []entity.Detection{
		{Label: "plastic_bottle", Confidence: 0.91, Box: [4]int{10, 20, 30, 40}},
		{Label: "plastic_bottle", Confidence: 0.84, Box: [4]int{60, 20, 30, 40}},
		{Label: "paper_cup", Confidence: 0.77, Box: [4]int{120, 15, 25, 35}},
	}

	fx.userRepo.EXPECT().FindByRFIDTag(ctx, "TAG-001").Return(user, nil)
	fx.binRepo.EXPECT().FindByID(ctx, uint(3)).Return(bin, nil).Once()
	fx.detector.EXPECT().Detect(ctx, snapshot).Return(detections, nil)
	fx.imageStore.EXPECT().Upload(mock.Anything, snapshot).Return("https://img.example/abc.jpg", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockBinRepo := mockRepo.NewMockBinRepository(t)
			mockDisposalRepo := mockRepo.NewMockDisposalRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().BinRepo().Return(mockBinRepo)
			mockFactory.EXPECT().DisposalRepo().Return(mockDisposalRepo)

			mockDisposalRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.DisposalLog")).
				Run(func(ctx context.Context, logEntry *entity.DisposalLog) {
					assert.Equal(t, user.ID, logEntry.UserID)
					assert.Equal(t, bin.ID, logEntry.BinID)
					assert.Equal(t, "plastic_bottle", logEntry.WasteType)
					assert.Equal(t, 3, logEntry.ItemCount)
					assert.Equal(t, 30, logEntry.Points)
					assert.Equal(t, "https://img.example/abc.jpg", logEntry.ImageURL)
				}).
				Return(nil)

			mockUserRepo.EXPECT().IncrementStats(ctx, user.ID, 30, 3, 150).Return(nil)
			mockBinRepo.EXPECT().IncrementFill(ctx, bin.ID, 3).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	// Post-commit reads.
	updatedBin := testBin()
	updatedBin.FillLevel = 3
	fx.binRepo.EXPECT().FindByID(ctx, uint(3)).Return(updatedBin, nil).Once()

	updatedUser := testUser()
	updatedUser.Points = 130
	updatedUser.RecycledItems = 15
	updatedUser.CarbonGrams = 750
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(updatedUser, nil)

	output, err := fx.service.ProcessDisposal(ctx, &usecase.ProcessDisposalInput{
		Image:   snapshot,
		RFIDTag: "TAG-001",
		BinID:   "3",
	})

	require.NoError(t, err)
	assert.Equal(t, usecase.StatusSuccess, output.Status)
	assert.Equal(t, 3, output.Count)
	assert.Equal(t, "plastic_bottle", output.WasteType)
	assert.Equal(t, 30, output.PointsEarned)
	assert.Equal(t, 150, output.CarbonGrams)
	assert.Equal(t, "https://img.example/abc.jpg", output.ImageURL)
	require.NotNil(t, output.User)
	assert.Equal(t, 130, output.User.TotalPoints)
	assert.Equal(t, 15, output.User.TotalRecycled)
	assert.Equal(t, 750, output.User.TotalCarbonGrams)
	assert.Contains(t, output.VoiceCommand, "Alice")
	assert.Contains(t, output.VoiceCommand, "30")
	assert.Contains(t, output.VoiceCommand, "130")
}

func TestDisposalService_ProcessDisposal_UploadFailureUsesSentinel(t *testing.T) {
	fx := createTestDisposalService(t)
	ctx := context.Background()
	snapshot := validSnapshot(t)
	user := testUser()
	bin := testBin()

	detections := []entity.Detection{{Label: "can", Confidence: 0.9}}

	fx.userRepo.EXPECT().FindByRFIDTag(ctx, "TAG-001").Return(user, nil)
	fx.binRepo.EXPECT().FindByID(ctx, uint(3)).Return(bin, nil).Once()
	fx.detector.EXPECT().Detect(ctx, snapshot).Return(detections, nil)
	fx.imageStore.EXPECT().Upload(mock.Anything, snapshot).Return("", errors.New("host unreachable"))

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockBinRepo := mockRepo.NewMockBinRepository(t)
			mockDisposalRepo := mockRepo.NewMockDisposalRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().BinRepo().Return(mockBinRepo)
			mockFactory.EXPECT().DisposalRepo().Return(mockDisposalRepo)

			mockDisposalRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.DisposalLog")).
				Run(func(ctx context.Context, logEntry *entity.DisposalLog) {
					assert.Equal(t, entity.SentinelUploadFailed, logEntry.ImageURL)
				}).
				Return(nil)
			mockUserRepo.EXPECT().IncrementStats(ctx, user.ID, 10, 1, 50).Return(nil)
			mockBinRepo.EXPECT().IncrementFill(ctx, bin.ID, 1).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	postBin := testBin()
	postBin.FillLevel = 1
	fx.binRepo.EXPECT().FindByID(ctx, uint(3)).Return(postBin, nil).Once()
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	output, err := fx.service.ProcessDisposal(ctx, &usecase.ProcessDisposalInput{
		Image:   snapshot,
		RFIDTag: "TAG-001",
		BinID:   "3",
	})

	require.NoError(t, err)
	assert.Equal(t, usecase.StatusSuccess, output.Status)
	assert.Equal(t, entity.SentinelUploadFailed, output.ImageURL)
}

func TestDisposalService_ProcessDisposal_TransactionFailure(t *testing.T) {
	fx := createTestDisposalService(t)
	ctx := context.Background()
	snapshot := validSnapshot(t)
	user := testUser()
	bin := testBin()

	fx.userRepo.EXPECT().FindByRFIDTag(ctx, "TAG-001").Return(user, nil)
	fx.binRepo.EXPECT().FindByID(ctx, uint(3)).Return(bin, nil)
	fx.detector.EXPECT().Detect(ctx, snapshot).Return([]entity.Detection{{Label: "can", Confidence: 0.9}}, nil)
	fx.imageStore.EXPECT().Upload(mock.Anything, snapshot).Return("https://img.example/abc.jpg", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("deadlock detected"))

	_, err := fx.service.ProcessDisposal(ctx, &usecase.ProcessDisposalInput{
		Image:   snapshot,
		RFIDTag: "TAG-001",
		BinID:   "3",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPersistenceFailed)
}

func TestDisposalService_ProcessDisposal_MarksBinFull(t *testing.T) {
	fx := createTestDisposalService(t)
	ctx := context.Background()
	snapshot := validSnapshot(t)
	user := testUser()

	bin := testBin()
	bin.Capacity = 10
	bin.FillLevel = 9

	detections := []entity.Detection{
		{Label: "can", Confidence: 0.9},
		{Label: "can", Confidence: 0.8},
	}

	fx.userRepo.EXPECT().FindByRFIDTag(ctx, "TAG-001").Return(user, nil)
	fx.binRepo.EXPECT().FindByID(ctx, uint(3)).Return(bin, nil).Once()
	fx.detector.EXPECT().Detect(ctx, snapshot).Return(detections, nil)
	fx.imageStore.EXPECT().Upload(mock.Anything, snapshot).Return("https://img.example/abc.jpg", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(nil)

	fullBin := testBin()
	fullBin.Capacity = 10
	fullBin.FillLevel = 11
	fx.binRepo.EXPECT().FindByID(ctx, uint(3)).Return(fullBin, nil).Once()
	fx.binRepo.EXPECT().UpdateStatus(ctx, uint(3), entity.BinStatusFull).Return(nil)

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	output, err := fx.service.ProcessDisposal(ctx, &usecase.ProcessDisposalInput{
		Image:   snapshot,
		RFIDTag: "TAG-001",
		BinID:   "3",
	})

	require.NoError(t, err)
	assert.Equal(t, usecase.StatusSuccess, output.Status)
}

func TestDisposalService_ProcessDisposal_PostCommitReadFailuresAreNonFatal(t *testing.T) {
	fx := createTestDisposalService(t)
	ctx := context.Background()
	snapshot := validSnapshot(t)
	user := testUser()
	bin := testBin()

	fx.userRepo.EXPECT().FindByRFIDTag(ctx, "TAG-001").Return(user, nil)
	fx.binRepo.EXPECT().FindByID(ctx, uint(3)).Return(bin, nil).Once()
	fx.detector.EXPECT().Detect(ctx, snapshot).Return([]entity.Detection{{Label: "can", Confidence: 0.9}}, nil)
	fx.imageStore.EXPECT().Upload(mock.Anything, snapshot).Return("https://img.example/abc.jpg", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(nil)

	// Both post-commit reads fail. The disposal is committed, so the totals
	// fall back to the pre-transaction snapshot plus the applied deltas.
	fx.binRepo.EXPECT().FindByID(ctx, uint(3)).Return(nil, errors.New("connection reset")).Once()
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(nil, errors.New("connection reset"))

	output, err := fx.service.ProcessDisposal(ctx, &usecase.ProcessDisposalInput{
		Image:   snapshot,
		RFIDTag: "TAG-001",
		BinID:   "3",
	})

	require.NoError(t, err)
	assert.Equal(t, usecase.StatusSuccess, output.Status)
	require.NotNil(t, output.User)
	assert.Equal(t, user.Points+10, output.User.TotalPoints)
	assert.Equal(t, user.RecycledItems+1, output.User.TotalRecycled)
	assert.Equal(t, user.CarbonGrams+50, output.User.TotalCarbonGrams)
}
