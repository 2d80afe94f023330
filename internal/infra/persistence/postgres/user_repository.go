package postgres

import (
	"context"

	"ecobin/internal/domain/entity"
	domainerrors "ecobin/internal/domain/errors"
	"ecobin/internal/domain/repository"
	"ecobin/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a single user by their internal ID.
func (repo *userRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByRFIDTag retrieves a single user by their RFID tag.
func (repo *userRepository) FindByRFIDTag(ctx context.Context, tag string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("rfid_tag = ?", tag).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by rfid tag")
	}

	return toUserDomain(&userM), nil
}

// FindByUsername retrieves a single user by their login name.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("username = ?", username).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity to the database.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUsernameTaken.WrapMessage("username or rfid tag already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the entity with the generated ID and timestamps
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// IncrementStats atomically adds the given deltas to the user's cumulative
// columns. The arithmetic happens inside the database so concurrent
// disposals never lose an update.
func (repo *userRepository) IncrementStats(ctx context.Context, id uint, points, items, carbonGrams int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"points":         gorm.Expr("points + ?", points),
			"recycled_items": gorm.Expr("recycled_items + ?", items),
			"carbon_grams":   gorm.Expr("carbon_grams + ?", carbonGrams),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment user stats")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// Leaderboard returns the top users with the given role, ordered by points descending.
func (repo *userRepository) Leaderboard(ctx context.Context, role entity.Role, limit int) ([]*entity.User, error) {
	var userModels []*model.UserModel

	query := repo.db.WithContext(ctx).
		Where("role = ?", role.String()).
		Order("points DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load leaderboard")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:            data.ID,
		FullName:      data.FullName,
		Username:      data.Username,
		PasswordHash:  data.PasswordHash,
		RFIDTag:       data.RFIDTag,
		Role:          entity.Role(data.Role),
		Points:        data.Points,
		RecycledItems: data.RecycledItems,
		CarbonGrams:   data.CarbonGrams,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:            data.ID,
		FullName:      data.FullName,
		Username:      data.Username,
		PasswordHash:  data.PasswordHash,
		RFIDTag:       data.RFIDTag,
		Role:          data.Role.String(),
		Points:        data.Points,
		RecycledItems: data.RecycledItems,
		CarbonGrams:   data.CarbonGrams,
	}
}
