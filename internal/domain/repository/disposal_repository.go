package repository

import (
	"context"

	"ecobin/internal/domain/entity"
)

// DisposalRepository defines the operations for the immutable disposal log.
// Logs are created exactly once per successful detection event and never
// mutated or deleted.
type DisposalRepository interface {
	// Create persists a new disposal log entry.
	Create(ctx context.Context, log *entity.DisposalLog) error

	// ListByUser returns the user's disposal logs ordered newest-first,
	// capped at limit.
	ListByUser(ctx context.Context, userID uint, limit int) ([]*entity.DisposalLog, error)
}
