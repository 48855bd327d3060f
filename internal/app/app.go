package app

import (
	"career_backend/internal/config"
	"career_backend/internal/controller"
	"career_backend/internal/repository"
	"career_backend/internal/service"
	"career_backend/pkg/configwatcher"
	"career_backend/pkg/database"
	"career_backend/pkg/logger"
	"career_backend/pkg/monitoring"
	"career_backend/pkg/security"
	"career_backend/pkg/tracing"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	tracerProvider  *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user           *repository.UserRepository
	profile        *repository.ProfileRepository
	assessment     *repository.AssessmentRepository
	recommendation *repository.RecommendationRepository
	savedJob       *repository.SavedJobRepository
	marketTrend    *repository.MarketTrendRepository
}

type services struct {
	auth           *service.AuthService
	profile        *service.ProfileService
	assessment     *service.AssessmentService
	recommendation *service.RecommendationService
	job            *service.JobService
	marketTrends   *service.MarketTrendsService
}

type controllers struct {
	auth           *controller.AuthController
	profile        *controller.ProfileController
	assessment     *controller.AssessmentController
	recommendation *controller.RecommendationController
	job            *controller.JobController
	marketTrends   *controller.MarketTrendsController
	health         *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:           repository.NewUserRepository(db),
		profile:        repository.NewProfileRepository(db),
		assessment:     repository.NewAssessmentRepository(db),
		recommendation: repository.NewRecommendationRepository(db),
		savedJob:       repository.NewSavedJobRepository(db),
		marketTrend:    repository.NewMarketTrendRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	return &services{
		auth:           service.NewAuthService(repos.user, cfg),
		profile:        service.NewProfileService(repos.profile),
		assessment:     service.NewAssessmentService(repos.assessment),
		recommendation: service.NewRecommendationService(repos.recommendation, repos.assessment),
		job:            service.NewJobService(repos.savedJob),
		marketTrends:   service.NewMarketTrendsService(repos.marketTrend, rdb),
	}
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:           controller.NewAuthController(s.auth),
		profile:        controller.NewProfileController(s.profile),
		assessment:     controller.NewAssessmentController(s.assessment),
		recommendation: controller.NewRecommendationController(s.recommendation),
		job:            controller.NewJobController(s.job),
		marketTrends:   controller.NewMarketTrendsController(s.marketTrends),
		health:         controller.NewHealthController(db, a.Config),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	gin.SetMode(func() string {
		if cfg.Server.Mode == "release" {
			return gin.ReleaseMode
		}
		return gin.DebugMode
	}())

	// Migrate on every debug-mode start; release mode requires the flag.
	runMigration := cfg.Server.Mode != "release" || cfg.ForceMigrate
	db, err := database.InitDB(&cfg.Database, runMigration)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// The only redis consumer is the market-trends cache; run without it.
		logger.Log.Warn("Failed to initialize redis, caching disabled", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("career-backend", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	app.registerRoutes(router, controllers, repos, cfg)

	app.RegisterConfigCallback(func(newCfg *config.Config) {
		logger.Log.Info("Config reloaded", zap.String("mode", newCfg.Server.Mode))
		*app.Config = *newCfg
	})

	go configwatcher.WatchConfig("configs/config.yaml", func(newCfg *config.Config) {
		for _, callback := range app.configCallbacks {
			callback(newCfg)
		}
	})

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
