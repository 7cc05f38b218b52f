package handlers

import (
	"time"

	"go.uber.org/zap"

	"github.com/andrewpaige1/vocabook-api/config"
	"github.com/andrewpaige1/vocabook-api/importer"
	"github.com/andrewpaige1/vocabook-api/service"
)

// Handler serves the HTTP API on top of the services.
type Handler struct {
	Progress  *service.ProgressService
	Dashboard *service.DashboardService
	Catalog   *service.CatalogService
	Users     *service.UserService
	Importer  *importer.Importer
	JWT       config.JWT
	Cookie    config.Cookie
	Log       *zap.Logger
	Now       func() time.Time
}
