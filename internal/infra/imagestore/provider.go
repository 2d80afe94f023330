package imagestore

import (
	"log/slog"

	"ecobin/config"
	"ecobin/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the dependencies for the image store, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New builds the image store named by the configured provider.
func New(params Params) (service.ImageStore, error) {
	cfg := params.Config.ImageStore
	if cfg == nil {
		return nil, errors.New("image store must be configured")
	}

	switch cfg.Provider {
	case "freeimage", "":
		return newFreeimageStore(cfg, params.Logger)
	case "blob":
		return newBlobStore(cfg, params.Logger)
	default:
		return nil, errors.Errorf("unknown image store provider: %s", cfg.Provider)
	}
}
