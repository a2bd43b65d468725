package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// PublicBaseURL is the externally visible origin, used to build links
	// in verification mail and notifications.
	PublicBaseURL string `env:"PUBLIC_BASE_URL, default=http://localhost:8080"`

	Mongo    MongoConfig
	Redis    RedisConfig
	Session  SessionConfig
	Storage  StorageConfig
	Identity IdentityConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=agency"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type SessionConfig struct {
	// TTL is the sliding lifetime of a server-side session.
	TTL time.Duration `env:"SESSION_TTL, default=720h"`
	// Cookie is the name of the HTTP-only session cookie.
	Cookie string `env:"SESSION_COOKIE, default=agency_session"`
}

type StorageConfig struct {
	Bucket string `env:"S3_BUCKET, default=agency-uploads"`
	Region string `env:"S3_REGION, default=us-east-1"`
	// PublicBaseURL is prepended to object keys to build download URLs.
	// When empty the standard virtual-hosted S3 URL is used.
	PublicBaseURL string `env:"S3_PUBLIC_BASE_URL"`
}

type IdentityConfig struct {
	// CertsURL serves the provider's current token-signing certificates.
	CertsURL string `env:"GOOGLE_CERTS_URL, default=https://www.googleapis.com/robot/v1/metadata/x509/securetoken@system.gserviceaccount.com"`
	// Audience is the expected aud claim, i.e. the Firebase project id.
	Audience string `env:"FIREBASE_PROJECT_ID"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}
