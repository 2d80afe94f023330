package entity

import (
	"time"

	"github.com/google/uuid"
)

// SentinelUploadFailed is stored as the image URL when external image
// hosting fails. Hosting failure never aborts the disposal transaction.
const SentinelUploadFailed = "upload_failed"

// Detection is one labeled bounding box reported by the object detector.
type Detection struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
	// Box is origin x, origin y, width, height in pixels.
	Box [4]int `json:"box"`
}

// DisposalLog is the immutable record of one disposal event. It references
// exactly one user and one bin and is never mutated or deleted.
type DisposalLog struct {
	ID        uuid.UUID
	UserID    uint
	BinID     uint
	WasteType string // Dominant label among the event's detections.
	ItemCount int
	Points    int
	ImageURL  string // Hosted snapshot URL, or SentinelUploadFailed.
	CreatedAt time.Time
}
