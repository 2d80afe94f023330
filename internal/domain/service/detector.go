// Package service defines contracts for external capabilities the use cases
// depend on. Concrete implementations live under internal/infra.
package service

import (
	"context"

	"ecobin/internal/domain/entity"
)

// ObjectDetector classifies waste items in an image. It is a black box
// producing labeled bounding boxes; an empty result is a normal outcome,
// not an error.
type ObjectDetector interface {
	Detect(ctx context.Context, image []byte) ([]entity.Detection, error)
}
