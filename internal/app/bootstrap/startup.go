// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	"github.com/geolearnhq/geolearn/internal/app/resources"
	userstore "github.com/geolearnhq/geolearn/internal/app/store/users"
)

// Startup runs one-time application initialization after the store is open
// and the collection files exist, but before the HTTP handler is built. It
// loads the shared templates and seeds the bootstrap admin account when one
// is configured.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()

	if appCfg.AdminEmail != "" {
		if err := userstore.New(deps.Files).EnsureAdmin(appCfg.AdminEmail, appCfg.AdminPassword); err != nil {
			logger.Error("seed admin account failed", zap.Error(err))
			return err
		}
		logger.Info("admin account ensured", zap.String("email", appCfg.AdminEmail))
	}
	return nil
}
