package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/yigit/studentroster/internal/app/controllers"
	appRepos "github.com/yigit/studentroster/internal/app/repositories"
	appRoutes "github.com/yigit/studentroster/internal/app/routes"
	appServices "github.com/yigit/studentroster/internal/app/services"
	"github.com/yigit/studentroster/internal/config"
	"github.com/yigit/studentroster/internal/db"
	appMiddleware "github.com/yigit/studentroster/internal/middleware"
	"github.com/yigit/studentroster/internal/pkg/logger"
	"github.com/yigit/studentroster/internal/pkg/websocket"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos             *appRepos.Repositories
	Services          *appServices.Services
	EventHub          *websocket.Hub
	EventsHandler     *websocket.Handler
	StudentController *appControllers.StudentController
	HealthController  *appControllers.HealthController
	PageController    *appControllers.PageController
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger // Get the configured global logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase creates the connection pool. An unreachable database is
// logged but does not stop startup; requests report it until it comes back.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().
		Str("host", cfg.Database.Host).
		Str("dbname", cfg.Database.DBName).
		Str("table", cfg.Database.Table).
		Msg("Creating database connection pool...")

	database, err := db.NewLazyPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to configure database pool")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Ping(ctx); err != nil {
		lgr.Warn().Err(err).Msg("Database is not reachable yet, continuing startup")
	} else {
		lgr.Info().Msg("Database connection successfully established.")
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, gateway db.Gateway, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.EventHub = websocket.NewHub(logger.WithField("component", "events"))
	deps.EventsHandler = websocket.NewHandler(deps.EventHub, cfg.Server.AllowedOrigins, lgr)

	deps.Repos = appRepos.NewRepositories(gateway, cfg)
	deps.Services = appServices.NewServices(deps.Repos, deps.EventHub, cfg)

	deps.StudentController = appControllers.NewStudentController(deps.Services.StudentService)
	deps.HealthController = appControllers.NewHealthController(gateway)
	deps.PageController = appControllers.NewPageController()

	return deps
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

	appMiddleware.RegisterValidation()

	router := gin.New()
	router.Use(
		appMiddleware.RequestID(),
		appMiddleware.RequestLogger(),
		appMiddleware.Recovery(),
		appMiddleware.CORS(cfg.Server.AllowedOrigins),
	)

	appRoutes.SetupSwagger(router)

	err := appRoutes.SetupRouter(router,
		deps.StudentController,
		deps.HealthController,
		deps.PageController,
		deps.EventsHandler,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to setup routes: %w", err)
	}

	return router, nil
}
