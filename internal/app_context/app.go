package appcontext

import (
	"github.com/SeakMengs/name2ecert/internal/config"
	filestorage "github.com/SeakMengs/name2ecert/internal/file_storage"
	"github.com/SeakMengs/name2ecert/internal/metrics"
	"github.com/SeakMengs/name2ecert/pkg/ecert"
	"go.uber.org/zap"
)

// Application contains core dependencies for the app.
type Application struct {
	// Config holds application settings provided from .env file.
	Config *config.Config

	Logger *zap.SugaredLogger

	// Generator renders previews and certificate batches. It is shared by all requests.
	Generator *ecert.Generator

	// EngineConfig is the configuration Generator was built with.
	EngineConfig *ecert.Config

	Metrics *metrics.Metrics

	// Exporter uploads archives to object storage. Nil when MinIO is disabled.
	Exporter filestorage.Exporter
}
