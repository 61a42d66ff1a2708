package app

import (
	"context"
	"log"
	"net/http"
	"neuroscreen_backend/internal/config"
	"neuroscreen_backend/internal/controller"
	"neuroscreen_backend/internal/repository"
	"neuroscreen_backend/internal/service"
	"neuroscreen_backend/internal/util"
	"neuroscreen_backend/pkg/database"
	"neuroscreen_backend/pkg/logger"
	"neuroscreen_backend/pkg/monitoring"
	"neuroscreen_backend/pkg/security"
	"neuroscreen_backend/pkg/tracing"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user      *repository.UserRepository
	profile   *repository.ProfileRepository
	screening *repository.ScreeningRepository
	modality  *repository.ModalityRepository
	report    *repository.ReportRepository
}

type services struct {
	auth      *service.AuthService
	storage   *service.StorageService
	patient   *service.PatientService
	screening *service.ScreeningService
	report    *service.ReportService
	result    *service.ResultService
	vision    *service.VisionService
	analysis  *service.AnalysisService
}

type controllers struct {
	auth      *controller.AuthController
	patient   *controller.PatientController
	screening *controller.ScreeningController
	report    *controller.ReportController
	vision    *controller.VisionController
	analysis  *controller.AnalysisController
	result    *controller.ResultController
	health    *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ReloadConfig swaps the active configuration and notifies every
// registered callback. Called by the config watcher goroutine.
func (a *App) ReloadConfig(cfg *config.Config) {
	a.Config = cfg
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
	logger.Log.Info("Configuration reloaded")
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:      repository.NewUserRepository(db),
		profile:   repository.NewProfileRepository(db),
		screening: repository.NewScreeningRepository(db),
		modality:  repository.NewModalityRepository(db),
		report:    repository.NewReportRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.patient = service.NewPatientService(repos.profile, repos.user)
	s.screening = service.NewScreeningService(repos.screening)

	templates, err := service.LoadReportTemplates(cfg.Reports.TemplatePath)
	if err != nil {
		logger.Log.Fatal("Failed to load report templates", zap.Error(err))
	}
	s.report = service.NewReportService(templates, repos.screening, repos.report)

	s.result = service.NewResultService(repos.modality, repos.report, s.screening, s.storage)
	s.vision = service.NewVisionService(rdb, cfg.Vision, s.result)
	s.analysis = service.NewAnalysisService(cfg.Inference, cfg.Speech, s.storage, s.result)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:      controller.NewAuthController(s.auth),
		patient:   controller.NewPatientController(s.patient),
		screening: controller.NewScreeningController(s.screening),
		report:    controller.NewReportController(s.report),
		vision:    controller.NewVisionController(s.vision),
		analysis:  controller.NewAnalysisController(s.analysis),
		result:    controller.NewResultController(s.result),
		health:    controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("neuroscreen", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == util.StorageLocal {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	// Contrast stimuli referenced by vision rounds.
	if _, err := os.Stat("static/vision"); os.IsNotExist(err) {
		os.MkdirAll("static/vision", os.ModePerm)
	}
	router.Static("/api/vision/stimuli", "static/vision")

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
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
