package tasksrepobridge

import (
	"github.com/jrazmi/tasklist/core/repositories/tasksrepo"
	"github.com/jrazmi/tasklist/infrastructure/web"
	"github.com/jrazmi/tasklist/sdk/logger"
)

// Config holds the dependencies for the Task HTTP routes.
type Config struct {
	Log        *logger.Logger
	Repository *tasksrepo.Repository
	Middleware []web.Middleware
}

// AddHttpRoutes registers the Task routes on the given route group.
func AddHttpRoutes(group *web.RouteGroup, cfg Config) {
	b := newBridge(cfg.Repository)

	group.GET("/tasks", b.httpList, cfg.Middleware...)
	group.GET("/tasks/{task_id}", b.httpGetByID, cfg.Middleware...)
	group.POST("/tasks", b.httpCreate, cfg.Middleware...)
	group.PUT("/tasks/{task_id}", b.httpUpdate, cfg.Middleware...)
	group.DELETE("/tasks/{task_id}", b.httpDelete, cfg.Middleware...)
}
