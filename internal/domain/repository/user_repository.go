// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"ecobin/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
// A lookup miss is a normal, expected outcome, not a system failure.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their internal ID.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// FindByRFIDTag retrieves a single user by their RFID tag.
	FindByRFIDTag(ctx context.Context, tag string) (*entity.User, error)

	// FindByUsername retrieves a single user by their login name.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// IncrementStats atomically adds the given deltas to the user's points,
	// recycled-item count and carbon-saved totals.
	IncrementStats(ctx context.Context, id uint, points, items, carbonGrams int) error

	// Leaderboard returns the top users with the given role, ordered by
	// points descending.
	Leaderboard(ctx context.Context, role entity.Role, limit int) ([]*entity.User, error)
}
