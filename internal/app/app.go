package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cultivatecmx-maker/cultivatec-school/internal/config"
	"github.com/cultivatecmx-maker/cultivatec-school/internal/controller"
	"github.com/cultivatecmx-maker/cultivatec-school/internal/notify"
	"github.com/cultivatecmx-maker/cultivatec-school/internal/repository"
	"github.com/cultivatecmx-maker/cultivatec-school/internal/seed"
	"github.com/cultivatecmx-maker/cultivatec-school/internal/service"
	"github.com/cultivatecmx-maker/cultivatec-school/internal/store"
	"github.com/cultivatecmx-maker/cultivatec-school/pkg/database"
	"github.com/cultivatecmx-maker/cultivatec-school/pkg/logger"
	"github.com/cultivatecmx-maker/cultivatec-school/pkg/monitoring"
	"github.com/cultivatecmx-maker/cultivatec-school/pkg/security"
	"github.com/cultivatecmx-maker/cultivatec-school/pkg/tracing"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const Version = "1.0.0"

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
	Store  *store.Store
	Notify *notify.Center
}

type repositories struct {
	class    *repository.ClassRepository
	progress *repository.ProgressRepository
	user     *repository.UserRepository
	school   *repository.SchoolRepository
}

type services struct {
	auth      *service.AuthService
	storage   *service.StorageService
	dashboard *service.DashboardService
	class     *service.ClassService
	progress  *service.ProgressService
	account   *service.AccountService
	report    *service.ReportService
}

type controllers struct {
	auth         *controller.AuthController
	class        *controller.ClassController
	progress     *controller.ProgressController
	dashboard    *controller.DashboardController
	account      *controller.AccountController
	report       *controller.ReportController
	notification *controller.NotificationController
	health       *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		class:    repository.NewClassRepository(db),
		progress: repository.NewProgressRepository(db),
		user:     repository.NewUserRepository(db),
		school:   repository.NewSchoolRepository(db),
	}
}

func (a *App) initServices(st *store.Store, persister *service.Persister, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	storage, err := service.NewStorageService(cfg.Storage)
	if err != nil {
		logger.Log.Fatal("failed to initialize storage", zap.Error(err))
	}
	s.storage = storage

	cacheTTL := time.Duration(cfg.Dashboard.CacheTTLSeconds) * time.Second
	s.dashboard = service.NewDashboardService(st, rdb, cacheTTL)
	s.auth = service.NewAuthService(cfg, st, persister)
	s.class = service.NewClassService(st, persister, s.dashboard)
	s.progress = service.NewProgressService(st, persister, s.dashboard)
	s.account = service.NewAccountService(st, persister, s.storage)
	s.report = service.NewReportService(st)

	return s
}

func (a *App) initControllers(s *services) *controllers {
	return &controllers{
		auth:         controller.NewAuthController(s.auth),
		class:        controller.NewClassController(s.class),
		progress:     controller.NewProgressController(s.progress),
		dashboard:    controller.NewDashboardController(s.dashboard),
		account:      controller.NewAccountController(s.account),
		report:       controller.NewReportController(s.report),
		notification: controller.NewNotificationController(a.Notify),
		health:       controller.NewHealthController(Version),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests,
		time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// bootstrapSeed returns the state the store boots from. With the
// database enabled, rows already persisted win over fixtures; an empty
// database is seeded with the fixtures so first boot and later boots
// see the same data.
func bootstrapSeed(repos *repositories) store.Seed {
	fixtures := store.Seed{
		Classes:  seed.Classes(),
		Progress: seed.Progress(),
		User:     seed.User(),
		School:   seed.School(),
		Stats:    seed.Stats(),
	}
	if repos == nil {
		return fixtures
	}

	classes, err := repos.class.ListAll()
	if err != nil {
		logger.Log.Error("failed to load classes, using fixtures", zap.Error(err))
		return fixtures
	}

	if len(classes) == 0 {
		persistFixtures(repos, fixtures)
		return fixtures
	}

	rows, err := repos.progress.ListAll()
	if err != nil {
		logger.Log.Error("failed to load progress, using fixtures", zap.Error(err))
		return fixtures
	}

	loaded := fixtures
	loaded.Classes = classes
	loaded.Progress = rows
	if u, err := repos.user.FindByUID(fixtures.User.UID); err == nil {
		loaded.User = *u
	}
	if sc, err := repos.school.FindByID(fixtures.School.SchoolID); err == nil {
		loaded.School = *sc
	}
	return loaded
}

func persistFixtures(repos *repositories, s store.Seed) {
	for i := range s.Classes {
		if err := repos.class.Save(&s.Classes[i]); err != nil {
			logger.Log.Error("failed to persist class fixture", zap.Error(err))
		}
	}
	for i := range s.Progress {
		if err := repos.progress.Save(&s.Progress[i]); err != nil {
			logger.Log.Error("failed to persist progress fixture", zap.Error(err))
		}
	}
	if err := repos.user.Save(&s.User); err != nil {
		logger.Log.Error("failed to persist user fixture", zap.Error(err))
	}
	if err := repos.school.Save(&s.School); err != nil {
		logger.Log.Error("failed to persist school fixture", zap.Error(err))
	}
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("logger initialized")

	app := &App{Config: cfg}

	var repos *repositories
	if cfg.Database.Enabled {
		db, err := database.InitDB(&cfg.Database)
		if err != nil {
			logger.Log.Fatal("failed to initialize database", zap.Error(err))
		}
		app.DB = db
		repos = app.initRepositories(db)
	}

	if cfg.Redis.Enabled {
		rdb, err := database.InitRedis(&cfg.Redis)
		if err != nil {
			logger.Log.Fatal("failed to initialize redis", zap.Error(err))
		}
		app.Redis = rdb
	}

	ttl := time.Duration(cfg.Notifications.TTLSeconds) * time.Second
	app.Notify = notify.NewCenter(ttl, cfg.Notifications.MaxQueue)
	app.Store = store.New(bootstrapSeed(repos), app.Notify)

	var persister *service.Persister
	if repos != nil {
		persister = service.NewPersister(repos.class, repos.progress, repos.user, repos.school)
	}

	services := app.initServices(app.Store, persister, cfg, app.Redis)
	controllers := app.initControllers(services)

	monitoring.Init()

	gin.SetMode(cfg.Server.Mode)
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("cultivatec-schools", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		logger.Log.Info("server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server forced to shutdown:", err)
	}

	logger.Log.Info("server exiting")
	logger.Log.Sync()
}
