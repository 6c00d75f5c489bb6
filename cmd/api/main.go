package main

import (
	"time"

	appcontext "github.com/SeakMengs/name2ecert/internal/app_context"
	"github.com/SeakMengs/name2ecert/internal/config"
	"github.com/SeakMengs/name2ecert/internal/constant"
	"github.com/SeakMengs/name2ecert/internal/controller"
	"github.com/SeakMengs/name2ecert/internal/env"
	filestorage "github.com/SeakMengs/name2ecert/internal/file_storage"
	"github.com/SeakMengs/name2ecert/internal/metrics"
	"github.com/SeakMengs/name2ecert/internal/middleware"
	ratelimiter "github.com/SeakMengs/name2ecert/internal/rate_limiter"
	"github.com/SeakMengs/name2ecert/internal/route"
	"github.com/SeakMengs/name2ecert/internal/util"
	"github.com/SeakMengs/name2ecert/pkg/ecert"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// this function run before main
func init() {
	env.LoadEnv(".env")
}

func main() {
	cfg := config.GetConfig()

	logger := util.NewLogger(cfg.ENV)
	logger.Debugf("Configuration: %+v \n", cfg)

	appMetrics := metrics.New()

	engineConfig := cfg.EngineConfig()
	engineConfig.OnRender = appMetrics.ObserveRender

	app := appcontext.Application{
		Config:       &cfg,
		Logger:       logger,
		EngineConfig: engineConfig,
		Generator:    ecert.NewGenerator(engineConfig, logger),
		Metrics:      appMetrics,
	}

	if cfg.Minio.ENABLED {
		s3, err := filestorage.NewMinioClient(&cfg.Minio)
		if err != nil {
			logger.Error("Error connecting to minio")
			logger.Panic(err)
		}
		app.Exporter = filestorage.NewMinioExporter(s3, cfg.Minio, logger)
		logger.Infof("Archive export enabled, bucket %s", cfg.Minio.BUCKET)
	}

	// Custom validation
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := util.RegisterValidations(v); err != nil {
			logger.Panic(err)
		}
	}

	rateLimiter := ratelimiter.NewRateLimiter(cfg.RateLimiter, logger)
	stopCleanup := make(chan struct{})
	defer close(stopCleanup)
	rateLimiter.StartCleanup(5*time.Minute, stopCleanup)

	_middleware := middleware.NewMiddleware(&app, rateLimiter)

	if cfg.IsProduction() {
		logger.Info("Running in production mode")
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	// Uploads stay in memory up to the body limit.
	r.MaxMultipartMemory = cfg.MaxUploadSize

	// docs: https://github.com/gin-contrib/cors?tab=readme-ov-file#using-defaultconfig-as-start-point
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Accept", "X-Requested-With", constant.HEADER_REQUEST_ID}
	corsConfig.ExposeHeaders = []string{"Content-Disposition", constant.HEADER_REQUEST_ID, constant.HEADER_FAILED_RECIPIENTS}
	r.Use(cors.New(corsConfig))
	r.Use(middleware.RequestID)
	r.Use(appMetrics.Middleware)
	r.Use(_middleware.RateLimiterMiddleware)
	r.Use(middleware.BodyLimit(cfg.MaxUploadSize))

	_controller := controller.NewController(&app)

	r.GET("/", _controller.Index.Index)
	r.GET("/metrics", appMetrics.Handler())

	rApi := r.Group("/api")

	route.V1_Fonts(rApi, _controller.Font)
	route.V1_Templates(rApi, _controller.Template)
	route.V1_Certificates(rApi, _controller.Certificate)

	if err := r.Run("0.0.0.0:" + app.Config.Port); err != nil {
		logger.Panicf("Error running server: %v \n", err)
	}
}
