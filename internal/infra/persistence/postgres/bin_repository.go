package postgres

import (
	"context"

	"ecobin/internal/domain/entity"
	"ecobin/internal/domain/repository"
	"ecobin/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// binRepository implements the repository.BinRepository interface using GORM.
type binRepository struct {
	db *gorm.DB
}

// NewBinRepository is the constructor for binRepository.
func NewBinRepository(db *gorm.DB) repository.BinRepository {
	return &binRepository{
		db: db,
	}
}

// FindByID retrieves a single bin by its internal ID.
func (repo *binRepository) FindByID(ctx context.Context, id uint) (*entity.Bin, error) {
	var binM model.BinModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&binM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBinNotFound
		}

		return nil, errors.Wrap(err, "failed to find bin by id")
	}

	return toBinDomain(&binM), nil
}

// List returns all bins ordered by ID.
func (repo *binRepository) List(ctx context.Context) ([]*entity.Bin, error) {
	var binModels []*model.BinModel

	if err := repo.db.WithContext(ctx).
		Order("id ASC").
		Find(&binModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list bins")
	}

	bins := make([]*entity.Bin, 0, len(binModels))
	for _, binM := range binModels {
		bins = append(bins, toBinDomain(binM))
	}

	return bins, nil
}

// IncrementFill atomically adds delta items to the bin's fill level.
func (repo *binRepository) IncrementFill(ctx context.Context, id uint, delta int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BinModel{}).
		Where("id = ?", id).
		Update("fill_level", gorm.Expr("fill_level + ?", delta))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment bin fill level")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBinNotFound
	}

	return nil
}

// UpdateStatus sets the bin's operational status.
func (repo *binRepository) UpdateStatus(ctx context.Context, id uint, status entity.BinStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BinModel{}).
		Where("id = ?", id).
		Update("status", string(status))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update bin status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBinNotFound
	}

	return nil
}

// Reset zeroes the fill level and sets the status back to active.
func (repo *binRepository) Reset(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BinModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"fill_level": 0,
			"status":     string(entity.BinStatusActive),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to reset bin")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBinNotFound
	}

	return nil
}

// toBinDomain converts a GORM BinModel to a domain Bin entity.
func toBinDomain(data *model.BinModel) *entity.Bin {
	if data == nil {
		return nil
	}

	return &entity.Bin{
		ID:        data.ID,
		Name:      data.Name,
		Location:  data.Location,
		FillLevel: data.FillLevel,
		Capacity:  data.Capacity,
		Status:    entity.BinStatus(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
