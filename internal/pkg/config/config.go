package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,       default=8080"`
	Env       string        `env:"ENV,        default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,  default=24h"`
	LogLevel  string        `env:"LOG_LEVEL,  default=info"`

	// CookieSecure controls the Secure attribute on the auth cookie. It is
	// deliberately explicit configuration: deployers opt out for plain-HTTP
	// local development, the code never sniffs the environment.
	CookieSecure bool `env:"COOKIE_SECURE, default=true"`

	Mongo  MongoConfig
	Redis  RedisConfig
	Routes RoutesConfig
	Login  LoginLimitConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=movienight"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// RoutesConfig is the page classification consumed by the route guard.
// Lists are |-delimited so they can be adjusted per deployment without a
// code change.
type RoutesConfig struct {
	Public        []string `env:"ROUTES_PUBLIC,         delimiter=|, default=/|/login|/register"`
	Protected     []string `env:"ROUTES_PROTECTED,      delimiter=|, default=/home|/browse|/favorites"`
	PublicLanding string   `env:"ROUTES_PUBLIC_LANDING, default=/"`
	AuthLanding   string   `env:"ROUTES_AUTH_LANDING,   default=/home"`
}

// LoginLimitConfig tunes failed-login throttling. MaxAttempts 0 disables it.
type LoginLimitConfig struct {
	MaxAttempts int           `env:"LOGIN_ATTEMPT_LIMIT,  default=5"`
	Window      time.Duration `env:"LOGIN_ATTEMPT_WINDOW, default=15m"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
