package di

import (
	"go.uber.org/zap"

	"github.com/Switchdoctorstu/Archimate-Ingester/application/ports"
	appservices "github.com/Switchdoctorstu/Archimate-Ingester/application/services"
	"github.com/Switchdoctorstu/Archimate-Ingester/domain/registry"
	domainservices "github.com/Switchdoctorstu/Archimate-Ingester/domain/services"
	"github.com/Switchdoctorstu/Archimate-Ingester/infrastructure/archixml"
	"github.com/Switchdoctorstu/Archimate-Ingester/infrastructure/config"
	"github.com/Switchdoctorstu/Archimate-Ingester/infrastructure/persistence/sqlite"
	"github.com/Switchdoctorstu/Archimate-Ingester/interfaces/http/rest"
)

// Container holds all application dependencies
type Container struct {
	Config       *config.Config
	Logger       *zap.Logger
	Registry     *registry.Registry
	ModelRepo    ports.ModelRepository
	ModelService *appservices.ModelService
	Router       *rest.Router
}

// Close releases container-held resources
func (c *Container) Close() error {
	if c.ModelRepo != nil {
		return c.ModelRepo.Close()
	}
	return nil
}

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideRegistry loads the standard rule registry
func ProvideRegistry() *registry.Registry {
	return registry.Default()
}

// ProvideConsistencyEngine creates the consistency engine
func ProvideConsistencyEngine(reg *registry.Registry, logger *zap.Logger) *domainservices.ConsistencyEngine {
	return domainservices.NewConsistencyEngine(reg, logger)
}

// ProvideAutocompleteEngine creates the autocomplete engine
func ProvideAutocompleteEngine(reg *registry.Registry, logger *zap.Logger) *domainservices.AutocompleteEngine {
	return domainservices.NewAutocompleteEngine(reg, logger)
}

// ProvideStagingService creates the staging merger
func ProvideStagingService(reg *registry.Registry, logger *zap.Logger) *appservices.StagingService {
	return appservices.NewStagingService(reg, logger)
}

// ProvideModelCodec creates the .archimate document codec
func ProvideModelCodec() ports.ModelCodec {
	return archixml.New()
}

// ProvideModelRepository opens the SQLite model store
func ProvideModelRepository(cfg *config.Config, logger *zap.Logger) (ports.ModelRepository, error) {
	return sqlite.NewModelRepository(cfg.DatabasePath, logger)
}

// ProvideModelService creates the model session
func ProvideModelService(
	cfg *config.Config,
	reg *registry.Registry,
	staging *appservices.StagingService,
	consistency *domainservices.ConsistencyEngine,
	autocomplete *domainservices.AutocompleteEngine,
	codec ports.ModelCodec,
	repo ports.ModelRepository,
	logger *zap.Logger,
) *appservices.ModelService {
	return appservices.NewModelService(reg, staging, consistency, autocomplete, codec, repo, cfg.HistoryLimit, logger)
}

// ProvideRouter creates the HTTP router
func ProvideRouter(models *appservices.ModelService, cfg *config.Config, logger *zap.Logger) *rest.Router {
	return rest.NewRouter(models, cfg, logger)
}
