// Package imagestore hosts disposal snapshots and hands back durable URLs.
package imagestore

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"mime/multipart"
	"net/http"

	"ecobin/config"
	"ecobin/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultFreeimageUploadURL = "https://freeimage.host/api/1/upload"

// freeimageStore uploads snapshots to the freeimage.host API.
type freeimageStore struct {
	apiKey    string
	uploadURL string
	client    *http.Client
	logger    *slog.Logger
}

// freeimageResponse is the subset of the API reply we care about.
type freeimageResponse struct {
	StatusCode int `json:"status_code"`
	Image      struct {
		URL string `json:"url"`
	} `json:"image"`
}

func newFreeimageStore(cfg *config.ImageStoreConfig, logger *slog.Logger) (service.ImageStore, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("freeimage api key must be configured")
	}

	uploadURL := cfg.UploadURL
	if uploadURL == "" {
		uploadURL = defaultFreeimageUploadURL
	}

	return &freeimageStore{
		apiKey:    cfg.APIKey,
		uploadURL: uploadURL,
		client:    &http.Client{},
		logger:    logger,
	}, nil
}

// Upload posts the snapshot and returns the hosted URL. The caller bounds
// the call with a context deadline.
func (s *freeimageStore) Upload(ctx context.Context, image []byte) (string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	fields := map[string]string{
		"key":    s.apiKey,
		"action": "upload",
		"format": "json",
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return "", errors.Wrapf(err, "failed to write field %s", name)
		}
	}

	part, err := writer.CreateFormFile("source", "capture.jpg")
	if err != nil {
		return "", errors.Wrap(err, "failed to build multipart body")
	}
	if _, err := part.Write(image); err != nil {
		return "", errors.Wrap(err, "failed to write image part")
	}
	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finalize multipart body")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.uploadURL, body)
	if err != nil {
		return "", errors.Wrap(err, "failed to build upload request")
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "upload request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("image host returned status %d", resp.StatusCode)
	}

	var decoded freeimageResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", errors.Wrap(err, "failed to decode upload response")
	}
	if decoded.StatusCode != http.StatusOK || decoded.Image.URL == "" {
		return "", errors.Errorf("image host rejected upload with status %d", decoded.StatusCode)
	}

	return decoded.Image.URL, nil
}
