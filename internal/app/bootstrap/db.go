// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	"github.com/geolearnhq/geolearn/internal/app/store/jsonstore"
)

// ConnectDB opens the flat-file store. There is no network connection to
// make; opening just ensures the data directory exists.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	db, err := jsonstore.Open(appCfg.DataDir, logger)
	if err != nil {
		logger.Error("open data dir failed", zap.String("data_dir", appCfg.DataDir), zap.Error(err))
		return DBDeps{}, err
	}
	logger.Info("flat-file store ready", zap.String("data_dir", appCfg.DataDir))
	return DBDeps{Files: db}, nil
}

// EnsureSchema initializes every collection file so the data directory is
// fully populated before the first request.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	return deps.Files.EnsureCollections(jsonstore.Collections...)
}
