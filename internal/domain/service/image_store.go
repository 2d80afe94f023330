package service

import "context"

// ImageStore hosts a disposal snapshot and returns a durable URL.
// Callers bound the call with a context deadline; a failure here is never
// fatal to the disposal transaction.
type ImageStore interface {
	Upload(ctx context.Context, image []byte) (string, error)
}
