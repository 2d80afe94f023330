package postgres

import (
	"context"

	"ecobin/internal/domain/entity"
	domainerrors "ecobin/internal/domain/errors"
	"ecobin/internal/domain/repository"
	"ecobin/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// disposalRepository implements the repository.DisposalRepository interface using GORM.
type disposalRepository struct {
	db *gorm.DB
}

// NewDisposalRepository is the constructor for disposalRepository.
func NewDisposalRepository(db *gorm.DB) repository.DisposalRepository {
	return &disposalRepository{
		db: db,
	}
}

// Create persists a new disposal log entry. The ID is assigned here when
// the entity does not carry one yet.
func (repo *disposalRepository) Create(ctx context.Context, log *entity.DisposalLog) error {
	logM := fromDisposalDomain(log)
	if logM.ID == uuid.Nil {
		logM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user or bin reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required disposal information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create disposal log")
	}

	// Update the entity with generated values
	log.ID = logM.ID
	log.CreatedAt = logM.CreatedAt

	return nil
}

// ListByUser returns the user's disposal logs ordered newest-first, capped at limit.
func (repo *disposalRepository) ListByUser(ctx context.Context, userID uint, limit int) ([]*entity.DisposalLog, error) {
	var logModels []*model.DisposalLogModel

	query := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&logModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list disposal logs by user")
	}

	logs := make([]*entity.DisposalLog, 0, len(logModels))
	for _, logM := range logModels {
		logs = append(logs, toDisposalDomain(logM))
	}

	return logs, nil
}

// toDisposalDomain converts a GORM DisposalLogModel to a domain DisposalLog entity.
func toDisposalDomain(data *model.DisposalLogModel) *entity.DisposalLog {
	if data == nil {
		return nil
	}

	return &entity.DisposalLog{
		ID:        data.ID,
		UserID:    data.UserID,
		BinID:     data.BinID,
		WasteType: data.WasteType,
		ItemCount: data.ItemCount,
		Points:    data.Points,
		ImageURL:  data.ImageURL,
		CreatedAt: data.CreatedAt,
	}
}

// fromDisposalDomain converts a domain DisposalLog entity to a GORM DisposalLogModel.
func fromDisposalDomain(data *entity.DisposalLog) *model.DisposalLogModel {
	if data == nil {
		return nil
	}

	return &model.DisposalLogModel{
		ID:        data.ID,
		UserID:    data.UserID,
		BinID:     data.BinID,
		WasteType: data.WasteType,
		ItemCount: data.ItemCount,
		Points:    data.Points,
		ImageURL:  data.ImageURL,
	}
}
