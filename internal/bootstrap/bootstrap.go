package bootstrap

import (
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/grantsphere/internal/app/controllers"
	appRepos "github.com/yigit/grantsphere/internal/app/repositories"
	appRoutes "github.com/yigit/grantsphere/internal/app/routes"
	appServices "github.com/yigit/grantsphere/internal/app/services"
	"github.com/yigit/grantsphere/internal/config"
	appMiddleware "github.com/yigit/grantsphere/internal/middleware"
	"github.com/yigit/grantsphere/internal/pkg/logger"
	"github.com/yigit/grantsphere/internal/pkg/validation"
	"github.com/yigit/grantsphere/internal/pkg/websocket"
	"github.com/yigit/grantsphere/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	ScholarshipService    appServices.ScholarshipService
	BrowseService         appServices.BrowseService
	ScholarshipController *appControllers.ScholarshipController
	BrowseController      *appControllers.BrowseController
	HealthController      *appControllers.HealthController
	Hub                   *websocket.Hub
	WebSocketHandler      *websocket.Handler
	Repos                 *appRepos.Repositories
	Logger                zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := config.GetEnv("CONFIG_PATH", filepath.Join("configs", "config.yaml"))
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: cfg.Logging.Format == "text",
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// LoadCatalog reads the scholarship dataset and indexes it.
func LoadCatalog(cfg *config.Config, lgr zerolog.Logger) (*appRepos.Repositories, error) {
	records, err := seed.LoadScholarships(cfg.Catalog.DatasetPath, lgr)
	if err != nil {
		lgr.Error().Err(err).Str("path", cfg.Catalog.DatasetPath).Msg("Failed to load scholarship dataset")
		return nil, err
	}

	repos, err := appRepos.NewRepositories(records)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to index scholarship dataset")
		return nil, err
	}

	lgr.Info().Int("scholarships", repos.ScholarshipRepository.Count()).Msg("Scholarship catalog loaded")
	return repos, nil
}

// BuildDependencies initializes application services and controllers.
func BuildDependencies(cfg *config.Config, repos *appRepos.Repositories, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Repos:  repos,
		Logger: lgr,
	}

	deps.Hub = websocket.NewHub(logger.Component("websocket"))

	deps.ScholarshipService = appServices.NewScholarshipService(
		repos.ScholarshipRepository,
		appServices.ScholarshipServiceConfig{
			SearchLimit:       cfg.Catalog.SearchLimit,
			GroupSize:         cfg.Catalog.GroupSize,
			RecommendationIDs: cfg.Catalog.RecommendationIDs,
			Recommendations:   cfg.Catalog.Recommendations,
		},
		logger.Component("catalog"),
	)

	deps.BrowseService = appServices.NewBrowseService(
		deps.ScholarshipService,
		appServices.BrowseServiceConfig{
			FilterDebounce: cfg.Catalog.FilterDebounce,
			TTL:            cfg.Sessions.TTL,
			SweepInterval:  cfg.Sessions.SweepInterval,
			MaxSessions:    cfg.Sessions.MaxSessions,
		},
		deps.Hub,
		logger.Component("sessions"),
	)

	deps.ScholarshipController = appControllers.NewScholarshipController(deps.ScholarshipService)
	deps.BrowseController = appControllers.NewBrowseController(deps.BrowseService)
	deps.HealthController = appControllers.NewHealthController(repos.ScholarshipRepository, deps.BrowseService)
	deps.WebSocketHandler = websocket.NewHandler(deps.Hub, deps.BrowseService, logger.Component("websocket"))

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	if err := validation.RegisterBindingRules(); err != nil {
		return nil, fmt.Errorf("failed to register validation rules: %w", err)
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(lgr), appMiddleware.Recovery())

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router,
		deps.ScholarshipController,
		deps.BrowseController,
		deps.HealthController,
		deps.WebSocketHandler,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router, nil
}
