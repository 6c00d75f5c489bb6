package config

import (
	"strings"
	"time"

	"github.com/SeakMengs/name2ecert/internal/env"
	"github.com/SeakMengs/name2ecert/pkg/ecert"
)

type Config struct {
	Port          string
	ENV           string
	RateLimiter   RateLimiterConfig
	MaxUploadSize int64
	Engine        EngineConfig
	Minio         MinioConfig
}

type RateLimiterConfig struct {
	RequestsPerTimeFrame int
	TimeFrame            time.Duration
	Enabled              bool
}

type EngineConfig struct {
	// 0 lets the engine size its worker pool from GOMAXPROCS
	MaxWorkers    int
	FailurePolicy ecert.FailurePolicy
}

type MinioConfig struct {
	ENABLED        bool
	ENDPOINT       string
	ACCESS_KEY     string
	SECRET_KEY     string
	USE_SSL        bool
	BUCKET         string
	PRESIGN_EXPIRY time.Duration
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.ENV, "production")
}

func GetConfig() Config {
	rateLimiteTimeFrame, err := time.ParseDuration(env.GetString("RATE_LIMIT_TIME_FRAME", "1m"))
	if err != nil {
		rateLimiteTimeFrame = 60 * time.Second
	}

	presignExpiry, err := time.ParseDuration(env.GetString("MINIO_PRESIGN_EXPIRY", "1h"))
	if err != nil {
		presignExpiry = time.Hour
	}

	failurePolicy, err := ecert.ParseFailurePolicy(env.GetString("ENGINE_FAILURE_POLICY", string(ecert.FailFast)))
	if err != nil {
		failurePolicy = ecert.FailFast
	}

	return Config{
		Port: env.GetString("PORT", "8080"),
		ENV:  env.GetString("ENV", "development"),
		// By default if not specified, we allow 5000 requests per minute on all routes
		RateLimiter: RateLimiterConfig{
			RequestsPerTimeFrame: env.GetInt("RATE_LIMIT_REQUESTS_PER_TIME_FRAME", 5000),
			TimeFrame:            rateLimiteTimeFrame,
			Enabled:              env.GetBool("RATE_LIMIT_ENABLED", true),
		},
		// 32 MiB covers a template plus a recipient list with room to spare
		MaxUploadSize: env.GetInt64("MAX_UPLOAD_SIZE", 32<<20),
		Engine: EngineConfig{
			MaxWorkers:    env.GetInt("ENGINE_MAX_WORKERS", 0),
			FailurePolicy: failurePolicy,
		},
		Minio: MinioConfig{
			ENABLED:        env.GetBool("MINIO_ENABLED", false),
			ENDPOINT:       env.GetString("MINIO_ENDPOINT", "127.0.0.1:9000"),
			ACCESS_KEY:     env.GetString("MINIO_ACCESS_KEY", ""),
			SECRET_KEY:     env.GetString("MINIO_SECRET_KEY", ""),
			USE_SSL:        env.GetBool("MINIO_USE_SSL", false),
			BUCKET:         env.GetString("MINIO_BUCKET", "name2ecert"),
			PRESIGN_EXPIRY: presignExpiry,
		},
	}
}

// EngineConfig builds the engine configuration for this deployment.
func (c Config) EngineConfig() *ecert.Config {
	cfg := ecert.NewDefaultConfig()
	cfg.MaxWorkers = c.Engine.MaxWorkers
	cfg.FailurePolicy = c.Engine.FailurePolicy
	return cfg
}
