package api

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/jrazmi/tasklist/bridge/scaffolding/errs"
	"github.com/jrazmi/tasklist/infrastructure/postgresdb"
	"github.com/jrazmi/tasklist/infrastructure/web"
)

type checks struct {
	build string
	db    *postgresdb.Pool
}

func newChecks(build string, db *postgresdb.Pool) *checks {
	return &checks{
		build: build,
		db:    db,
	}
}

type livenessInfo struct {
	Status     string `json:"status"`
	Build      string `json:"build"`
	Host       string `json:"host"`
	GOMAXPROCS int    `json:"gomaxprocs"`
}

// liveness returns process info. The handler responding at all is the check.
func (c *checks) liveness(ctx context.Context, r *http.Request) web.Encoder {
	host, err := os.Hostname()
	if err != nil {
		host = "unavailable"
	}

	return web.NewJSONResponse(livenessInfo{
		Status:     "up",
		Build:      c.build,
		Host:       host,
		GOMAXPROCS: runtime.GOMAXPROCS(0),
	})
}

type readinessInfo struct {
	Status string `json:"status"`
}

// readiness checks the database is reachable. A failure here should pull the
// instance out of rotation.
func (c *checks) readiness(ctx context.Context, r *http.Request) web.Encoder {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := postgresdb.StatusCheck(ctx, c.db); err != nil {
		return errs.New(errs.Unavailable, err)
	}

	return web.NewJSONResponse(readinessInfo{Status: "ok"})
}
