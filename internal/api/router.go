package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/cinewatch/movienight/docs"
	"github.com/cinewatch/movienight/internal/api/handler"
	"github.com/cinewatch/movienight/internal/api/middleware"
	"github.com/cinewatch/movienight/internal/core/service"
	mongodb "github.com/cinewatch/movienight/internal/infrastructure/db/mongo"
	redisdb "github.com/cinewatch/movienight/internal/infrastructure/db/redis"
	"github.com/cinewatch/movienight/internal/pkg/config"
	"github.com/cinewatch/movienight/internal/session"
	"github.com/cinewatch/movienight/internal/token"
)

// guardExcluded lists the prefixes the route guard never touches. Static
// assets are excluded separately by file extension.
var guardExcluded = []string{"/api/", "/health", "/metrics", "/swagger"}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, codec *token.Codec, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("movienight"))

	// --- Dependencies ---
	cookies := session.NewCookieManager(cfg.CookieSecure, codec.TTL())
	userRepo := mongodb.NewUserRepository(db)

	var limiter *redisdb.LoginLimiter
	if cfg.Login.MaxAttempts > 0 {
		limiter = redisdb.NewLoginLimiter(rdb, cfg.Login.MaxAttempts, cfg.Login.Window)
	}

	authService := newAuthService(userRepo, codec, limiter, log)
	authHandler := handler.NewAuthHandler(authService, codec, cookies)

	// --- Route guard over page navigation ---
	e.Use(middleware.Guard(middleware.RouteConfig{
		Public:           cfg.Routes.Public,
		Protected:        cfg.Routes.Protected,
		ExcludedPrefixes: guardExcluded,
		PublicLanding:    cfg.Routes.PublicLanding,
		AuthLanding:      cfg.Routes.AuthLanding,
	}, codec, cookies))

	// --- Auth API ---
	e.POST("/api/register", authHandler.Register)
	e.POST("/api/login", authHandler.Login)
	e.POST("/api/logout", authHandler.Logout)
	e.GET("/api/auth/verify", authHandler.Verify)

	// --- Pages (shells only; the client renders against the catalog API) ---
	e.GET("/", handler.Page("Welcome"))
	e.GET("/home", handler.Page("Home"))
	e.GET("/browse", handler.Page("Browse"))
	e.GET("/favorites", handler.Page("Favorites"))
	e.GET("/movie/:movieId", handler.Page("Movie"))

	// --- Observability & docs ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// newAuthService keeps the nil-interface pitfall out of NewRouter: a nil
// *LoginLimiter must become a nil interface, not a non-nil interface
// wrapping a nil pointer.
func newAuthService(repo *mongodb.UserRepository, codec *token.Codec, limiter *redisdb.LoginLimiter, log zerolog.Logger) *service.AuthService {
	if limiter == nil {
		return service.NewAuthService(repo, codec, nil, log)
	}
	return service.NewAuthService(repo, codec, limiter, log)
}
