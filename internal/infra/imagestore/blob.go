package imagestore

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"ecobin/config"
	"ecobin/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gocloud.dev/blob"

	// Registered bucket schemes for the blob provider.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/s3blob"
)

// blobStore writes snapshots into a gocloud.dev bucket (file://, s3://)
// and returns a URL built from the configured public prefix.
type blobStore struct {
	bucketURL string
	publicURL string
	logger    *slog.Logger
}

func newBlobStore(cfg *config.ImageStoreConfig, logger *slog.Logger) (service.ImageStore, error) {
	if cfg.BucketURL == "" {
		return nil, errors.New("blob bucket url must be configured")
	}

	return &blobStore{
		bucketURL: cfg.BucketURL,
		publicURL: strings.TrimSuffix(cfg.PublicURL, "/"),
		logger:    logger,
	}, nil
}

// Upload writes the snapshot under a date-partitioned key.
func (s *blobStore) Upload(ctx context.Context, image []byte) (string, error) {
	bucket, err := blob.OpenBucket(ctx, s.bucketURL)
	if err != nil {
		return "", errors.Wrap(err, "failed to open snapshot bucket")
	}
	defer bucket.Close()

	key := time.Now().UTC().Format("2006/01/02") + "/" + uuid.New().String() + ".jpg"

	opts := &blob.WriterOptions{ContentType: "image/jpeg"}
	if err := bucket.WriteAll(ctx, key, image, opts); err != nil {
		return "", errors.Wrap(err, "failed to write snapshot")
	}

	return s.publicURL + "/" + key, nil
}
