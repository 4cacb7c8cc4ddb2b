// Package api wires the HTTP API routes onto the web handler.
package api

import (
	"github.com/jrazmi/tasklist/app/tasklist/config"
	"github.com/jrazmi/tasklist/bridge/repositories/tasksrepobridge"
	"github.com/jrazmi/tasklist/infrastructure/web"
)

// AddHandlers registers all API routes under the /api prefix.
func AddHandlers(wh *web.WebHandler, cfg config.Tasklist) {
	group := wh.Group("/" + config.ApiRoute)

	tasksrepobridge.AddHttpRoutes(group, tasksrepobridge.Config{
		Log:        cfg.Logger,
		Repository: cfg.Repositories.Tasks,
	})

	checks := newChecks(cfg.Build, cfg.DB)
	group.GET("/liveness", checks.liveness)
	group.GET("/readiness", checks.readiness)
}
