package cli

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"studyplan/internal/config"
	"studyplan/internal/planner"
	"studyplan/internal/service"
	"studyplan/internal/storage"
)

// OpenStore is the production ServiceFactory: it opens the configured
// storage backend under cfg.Dir and loads the task collection from it.
func OpenStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (service.Service, error) {
	st, err := storage.Open(cfg.Storage, cfg.Dir)
	if err != nil {
		return nil, err
	}

	s, err := planner.Open(ctx, st, planner.WithLogger(log))
	if err != nil {
		if cerr := st.Close(); cerr != nil {
			log.Warn("closing storage failed", zap.Error(cerr))
		}
		return nil, fmt.Errorf("open %s storage: %w", cfg.Storage, err)
	}
	return s, nil
}
