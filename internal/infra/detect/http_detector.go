// Package detect implements the object-detection client against an
// external inference service.
package detect

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"ecobin/config"
	"ecobin/internal/domain/entity"
	"ecobin/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultScoreThreshold = 0.5

// httpDetector calls an inference service over HTTP. The service accepts a
// multipart image and answers with labeled bounding boxes.
type httpDetector struct {
	endpoint       string
	scoreThreshold float64
	client         *http.Client
	logger         *slog.Logger
}

// Params defines the dependencies for the detector, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// detectResponse is the inference service's wire format.
type detectResponse struct {
	Detections []entity.Detection `json:"detections"`
}

// New is the constructor for httpDetector.
func New(params Params) (service.ObjectDetector, error) {
	cfg := params.Config.Detector
	if cfg == nil || cfg.Endpoint == "" {
		return nil, errors.New("detector endpoint must be configured")
	}

	threshold := cfg.ScoreThreshold
	if threshold <= 0 {
		threshold = defaultScoreThreshold
	}

	return &httpDetector{
		endpoint:       cfg.Endpoint,
		scoreThreshold: threshold,
		client:         &http.Client{Timeout: cfg.Timeout},
		logger:         params.Logger,
	}, nil
}

// Detect submits the snapshot and returns detections at or above the score
// threshold. An empty slice is a normal outcome.
func (d *httpDetector) Detect(ctx context.Context, image []byte) ([]entity.Detection, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("image", "capture.jpg")
	if err != nil {
		return nil, errors.Wrap(err, "failed to build multipart body")
	}
	if _, err := part.Write(image); err != nil {
		return nil, errors.Wrap(err, "failed to write image part")
	}
	if err := writer.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to finalize multipart body")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build detect request")
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "detect request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		d.logger.Warn("Inference service returned non-200",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(payload)))

		return nil, errors.Errorf("inference service returned status %d", resp.StatusCode)
	}

	var decoded detectResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, errors.Wrap(err, "failed to decode detect response")
	}

	detections := make([]entity.Detection, 0, len(decoded.Detections))
	for _, det := range decoded.Detections {
		if det.Confidence < d.scoreThreshold {
			continue
		}
		detections = append(detections, det)
	}

	return detections, nil
}
