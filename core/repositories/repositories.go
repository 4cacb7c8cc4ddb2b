// Package repositories wires every repository against a shared database pool
// so main constructs the whole set in one call.
package repositories

import (
	"github.com/jrazmi/tasklist/core/repositories/tasksrepo"
	"github.com/jrazmi/tasklist/core/repositories/tasksrepo/stores/taskspgxstore"
	"github.com/jrazmi/tasklist/infrastructure/postgresdb"
	"github.com/jrazmi/tasklist/sdk/logger"
)

// Repositories aggregates every repository the application uses.
type Repositories struct {
	Tasks *tasksrepo.Repository
}

// NewPostgresRepositories constructs all repositories backed by the given
// Postgres pool.
func NewPostgresRepositories(log *logger.Logger, pool *postgresdb.Pool) Repositories {
	return Repositories{
		Tasks: tasksrepo.NewRepository(log, taskspgxstore.NewStore(log, pool)),
	}
}
