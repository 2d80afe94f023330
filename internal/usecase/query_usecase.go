package usecase

import (
	"context"
	"time"

	"ecobin/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Output DTOs ---

// HistoryEntry is one disposal log in a user's history.
type HistoryEntry struct {
	LogID     uuid.UUID `json:"log_id"`
	WasteType string    `json:"waste_type"`
	ItemCount int       `json:"waste_count"`
	Points    int       `json:"points_earned"`
	ImageURL  string    `json:"image_url,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// BinView is one bin in the administrative listing.
type BinView struct {
	BinID       uint             `json:"bin_id"`
	Name        string           `json:"bin_name"`
	Location    string           `json:"location,omitempty"`
	FillLevel   int              `json:"current_fill_level"`
	Capacity    int              `json:"max_capacity"`
	FillPercent int              `json:"fill_percent"`
	Status      entity.BinStatus `json:"status"`
}

// QueryUsecase exposes the stateless read paths plus the administrative bin
// reset. These are thin projections; the disposal transaction never goes
// through them.
type QueryUsecase interface {
	// UserStats returns a user's profile with cumulative totals.
	UserStats(ctx context.Context, userID uint) (*Profile, error)

	// UserHistory returns the user's disposal logs newest-first, capped at limit.
	UserHistory(ctx context.Context, userID uint, limit int) ([]*HistoryEntry, error)

	// Leaderboard returns the top regular users by points.
	Leaderboard(ctx context.Context, limit int) ([]*Profile, error)

	// Bins returns all bins ordered by ID.
	Bins(ctx context.Context) ([]*BinView, error)

	// ResetBin zeroes a bin's fill level and reactivates it.
	ResetBin(ctx context.Context, binID uint) error
}
