package config

import (
	"github.com/jrazmi/tasklist/core/repositories"
	"github.com/jrazmi/tasklist/infrastructure/postgresdb"
	"github.com/jrazmi/tasklist/sdk/logger"
	"github.com/jrazmi/tasklist/sdk/telemetry"
)

// site wide globals.
const (
	ApiRoute = "api"
)

// Tasklist is the overall configuration for the tasklist application.
type Tasklist struct {
	Build  string
	Logger *logger.Logger

	Repositories repositories.Repositories
	Telemetry    telemetry.Telemetry

	DB *postgresdb.Pool
}
