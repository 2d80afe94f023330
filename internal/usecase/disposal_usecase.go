// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"ecobin/internal/domain/entity"
)

// Disposal response status discriminators. Every disposal response carries
// one of these so kiosks can branch without parsing messages.
const (
	StatusSuccess     = "success"
	StatusNoDetection = "no_detection"
	StatusError       = "error"
)

// --- Input DTOs ---

// ProcessDisposalInput carries one disposal attempt from a bin kiosk.
type ProcessDisposalInput struct {
	Image   []byte // Raw snapshot captured at the bin.
	RFIDTag string // Tag presented by the user.
	BinID   string // Bin identifier as received on the wire; must parse as a positive integer.
}

// --- Output DTOs ---

// UserTotals is the user's stats snapshot read back after the increment.
type UserTotals struct {
	Name             string `json:"name"`
	TotalPoints      int    `json:"total_points"`
	TotalRecycled    int    `json:"total_recycled"`
	TotalCarbonGrams int    `json:"total_carbon_saved_g"`
}

// ProcessDisposalOutput is the assembled disposal response.
type ProcessDisposalOutput struct {
	Status       string             `json:"status"`
	Detections   []entity.Detection `json:"detections,omitempty"`
	Count        int                `json:"count"`
	WasteType    string             `json:"waste_type,omitempty"`
	PointsEarned int                `json:"points_earned"`
	CarbonGrams  int                `json:"carbon_saved_g"`
	User         *UserTotals        `json:"user,omitempty"`
	ImageURL     string             `json:"image_url,omitempty"`
	VoiceCommand string             `json:"voice_command"`
	Timestamp    time.Time          `json:"timestamp"`
}

// DisposalUsecase coordinates one disposal attempt end to end: validation,
// detection, reward computation and the atomic persistence of the event.
type DisposalUsecase interface {
	ProcessDisposal(ctx context.Context, input *ProcessDisposalInput) (*ProcessDisposalOutput, error)
}
