package kvstore

import (
	"context"
	"log/slog"

	"gwdining/config"
	"gwdining/internal/domain/repository"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the store provider, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New selects and opens the configured store backend. The close function
// is hooked into the fx lifecycle.
func New(params Params) (repository.KVStore, error) {
	cfg := params.Config.Store

	var (
		store   repository.KVStore
		closeFn func() error
		err     error
	)

	switch cfg.Backend {
	case "redis":
		store, closeFn, err = NewRedisStore(params.Ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.Prefix)
	case "blob", "":
		store, closeFn, err = NewBlobStore(params.Ctx, cfg.BucketURL)
	default:
		return nil, errors.Errorf("unknown store backend: %s", cfg.Backend)
	}
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Opened key/value store", slog.String("backend", cfg.Backend))

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return closeFn()
		},
	})

	return store, nil
}
