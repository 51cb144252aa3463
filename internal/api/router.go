package api

import (
	"context"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pressroom/content-api/internal/api/handler"
	"github.com/pressroom/content-api/internal/api/middleware"
	"github.com/pressroom/content-api/internal/core/policy"
	"github.com/pressroom/content-api/internal/core/ports"
	"github.com/pressroom/content-api/internal/core/service"
	"github.com/pressroom/content-api/internal/infrastructure/config"
	mongodb "github.com/pressroom/content-api/internal/infrastructure/db/mongo"
	redisdb "github.com/pressroom/content-api/internal/infrastructure/db/redis"
	"github.com/pressroom/content-api/internal/infrastructure/queue"
)

// NewRouter builds the Echo instance with all routes registered and returns
// it together with the activity dispatcher, whose workers live until ctx is
// cancelled. Callers join the workers with Dispatcher.Wait at shutdown.
func NewRouter(ctx context.Context, db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, *queue.Dispatcher) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("content_api"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	postRepo := mongodb.NewPostRepository(db)
	activityRepo := mongodb.NewActivityRepository(db)
	sessions := redisdb.NewSessionStore(rdb, cfg.Session.TTL)

	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, tokens, log)
	resolver := service.NewResolver(userRepo, sessions, tokens, time.Now)

	activityService := service.NewActivityService(activityRepo, log)
	dispatcher := queue.NewDispatcher(cfg.ActivityWorkers, activityService, log)
	dispatcher.Start(ctx)

	postService := service.NewPostService(
		postRepo,
		policy.ForPosts(policy.PostVisibility(cfg.PostVisibility)),
		dispatcher,
		activityService,
		log,
	)
	userService := service.NewUserService(userRepo, policy.ForUsers(), log)

	authHandler := handler.NewAuthHandler(authService, sessions, handler.SessionConfig{
		CookieName: cfg.Session.CookieName,
		TTL:        cfg.Session.TTL,
		Secure:     cfg.Session.Secure,
	})
	postHandler := handler.NewPostHandler(postService)
	userHandler := handler.NewUserHandler(userService)

	// --- Auth routes (no principal required) ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/token", authHandler.Token)
	e.POST("/auth/login", authHandler.Login)
	e.DELETE("/auth/logout", authHandler.Logout)

	// --- Session route: resolves the browser cookie, anonymous gets 401 ---
	e.GET("/me", authHandler.Me, middleware.Authenticate(resolver, ports.FormatHTML, cfg.Session.CookieName))

	// --- API routes: bearer token only, resolved once per request ---
	api := e.Group("/v1", middleware.Authenticate(resolver, ports.FormatJSON, cfg.Session.CookieName))

	api.GET("/posts", postHandler.List)
	api.POST("/posts", postHandler.Create)
	api.GET("/posts/:id", postHandler.Get)
	api.PUT("/posts/:id", postHandler.Update)
	api.DELETE("/posts/:id", postHandler.Delete)
	api.GET("/posts/:id/activity", postHandler.Activity)

	api.GET("/users", userHandler.List)
	api.GET("/users/:id", userHandler.Get)
	api.PUT("/users/:id", userHandler.Update)
	api.DELETE("/users/:id", userHandler.Delete)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler().WithMongo(db).WithRedis(rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, dispatcher
}
