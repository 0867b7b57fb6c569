package di

import (
	"time"

	"graphbench/application/ports"
	"graphbench/application/services"
	"graphbench/domain/core/validators"
	"graphbench/infrastructure/config"
	"graphbench/infrastructure/persistence/archive"
	"graphbench/infrastructure/remote"
	"graphbench/pkg/observability"

	"github.com/google/wire"
	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *zap.Logger
	Metrics     *observability.Collector
	GraphClient ports.GraphServiceClient
	Archive     ports.DocumentArchive
	Session     *services.GraphSession
	Constraints *services.ConstraintService
	Measures    *services.MeasureService
}

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideMetrics,
	ProvideGraphClient,
	ProvideDocumentArchive,
	ProvideSymbolValidator,
	ProvideGraphSession,
	ProvideConstraintService,
	ProvideMeasureService,
	wire.Struct(new(Container), "*"),
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideMetrics creates the Prometheus metrics collector
func ProvideMetrics() *observability.Collector {
	return observability.NewCollector("graphbench")
}

// ProvideGraphClient creates the computation service client
func ProvideGraphClient(cfg *config.Config, metrics *observability.Collector, logger *zap.Logger) ports.GraphServiceClient {
	return remote.NewGraphClient(
		cfg.GraphServiceURL,
		time.Duration(cfg.GraphServiceTimeout)*time.Second,
		metrics,
		logger,
	)
}

// ProvideDocumentArchive creates the constraint document archive
func ProvideDocumentArchive(cfg *config.Config, logger *zap.Logger) (ports.DocumentArchive, error) {
	return archive.NewFileArchive(cfg.DataDir, logger)
}

// ProvideSymbolValidator creates the symbol validator
func ProvideSymbolValidator() *validators.SymbolValidator {
	return validators.NewSymbolValidator()
}

// ProvideGraphSession creates the graph session
func ProvideGraphSession(client ports.GraphServiceClient, metrics *observability.Collector, logger *zap.Logger) *services.GraphSession {
	return services.NewGraphSession(client, metrics, logger)
}

// ProvideConstraintService creates the constraint service
func ProvideConstraintService(
	session *services.GraphSession,
	validator *validators.SymbolValidator,
	archive ports.DocumentArchive,
	logger *zap.Logger,
) *services.ConstraintService {
	return services.NewConstraintService(session, validator, archive, logger)
}

// ProvideMeasureService creates the measure service
func ProvideMeasureService(
	client ports.GraphServiceClient,
	session *services.GraphSession,
	metrics *observability.Collector,
	logger *zap.Logger,
) *services.MeasureService {
	return services.NewMeasureService(client, session, metrics, logger)
}
