package repository

import (
	"context"
	"errors"

	"ecobin/internal/domain/entity"
)

// ErrBinNotFound is a domain-specific error returned when a bin is not found.
var ErrBinNotFound = errors.New("bin not found")

// BinRepository defines the standard operations for smart-bin persistence.
type BinRepository interface {
	// FindByID retrieves a single bin by its internal ID.
	FindByID(ctx context.Context, id uint) (*entity.Bin, error)

	// List returns all bins ordered by ID.
	List(ctx context.Context) ([]*entity.Bin, error)

	// IncrementFill atomically adds delta items to the bin's fill level.
	IncrementFill(ctx context.Context, id uint, delta int) error

	// UpdateStatus sets the bin's operational status.
	UpdateStatus(ctx context.Context, id uint, status entity.BinStatus) error

	// Reset zeroes the fill level and sets the status back to active.
	Reset(ctx context.Context, id uint) error
}
