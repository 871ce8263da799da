// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"fmt"
	"log"
	"time"

	_ "pescart/docs" // swagger docs
	"pescart/internal/cache"
	"pescart/internal/config"
	"pescart/internal/database"
	"pescart/internal/middleware"
	"pescart/internal/models"
	"pescart/internal/observability"
	"pescart/internal/repository"
	"pescart/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config             *config.Config
	db                 *gorm.DB
	redis              *redis.Client
	app                *fiber.App
	promMiddleware     *fiberprometheus.FiberPrometheus
	userRepo           repository.UserRepository
	recordRepo         repository.RecordRepository
	locationRepo       repository.LocationRepository
	authService        *service.AuthService
	authorizer         service.Authorizer
	recordService      *service.RecordService
	leaderboardService *service.LeaderboardService
	locationService    *service.LocationService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)

	return NewServerWithDeps(cfg, db, cache.GetClient())
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	if db == nil {
		return nil, fmt.Errorf("database is required")
	}

	userRepo := repository.NewUserRepository(db)
	recordRepo := repository.NewRecordRepository(db)
	locationRepo := repository.NewLocationRepository(db)

	tokens := service.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)
	authService := service.NewAuthService(userRepo, tokens, cfg.AdminEmail)

	return &Server{
		config:             cfg,
		db:                 db,
		redis:              redisClient,
		promMiddleware:     middleware.InitMetrics(observability.ServiceName),
		userRepo:           userRepo,
		recordRepo:         recordRepo,
		locationRepo:       locationRepo,
		authService:        authService,
		authorizer:         authService,
		recordService:      service.NewRecordService(recordRepo, userRepo, locationRepo),
		leaderboardService: service.NewLeaderboardService(recordRepo, userRepo, locationRepo),
		locationService:    service.NewLocationService(locationRepo),
	}, nil
}

// NewApp builds a Fiber app with the full middleware chain and routes.
func (s *Server) NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "PescArt API",
		ErrorHandler: s.ErrorHandler,
	})
	s.SetupMiddleware(app)
	s.SetupRoutes(app)
	return app
}

// ErrorHandler answers errors that escape handlers. fiber.Error keeps its
// status; anything unknown becomes a generic 500.
func (s *Server) ErrorHandler(c *fiber.Ctx, err error) error {
	return fail(c, err)
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.TracingMiddleware())

	// Context Middleware to propagate Request ID and Trace ID
	app.Use(middleware.ContextMiddleware())

	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	app.Use(helmet.New())
	app.Use(middleware.StructuredLogger())

	// CORS runs before the limiter so rejected requests still carry CORS headers.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		ExposeHeaders:    "X-Leaderboard-Type, X-Trace-ID",
		AllowCredentials: origins != "*",
		MaxAge:           86400,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(models.ErrorResponse{
				Message: "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)

	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	api := app.Group("/api")
	api.Get("/metrics/dashboard", s.AuthRequired(), s.AdminRequired(), monitor.New(monitor.Config{
		Title: "PescArt API Metrics",
	}))
	api.Get("/swagger/*", swagger.HandlerDefault)

	auth := api.Group("/auth")
	auth.Post("/register", middleware.RateLimit(s.redis, 5, 10*time.Minute, "register"), s.Register)
	auth.Post("/login", middleware.RateLimit(s.redis, 10, 5*time.Minute, "login"), s.Login)
	auth.Post("/logout", s.AuthRequired(), s.Logout)
	auth.Get("/me", s.AuthRequired(), s.Me)

	locations := api.Group("/fishing-locations")
	locations.Get("/", s.GetLocations)
	locations.Get("/:id", s.GetLocation)

	records := api.Group("/fishing-records")
	records.Get("/", s.GetRecords)
	// specific routes before the generic /:id
	records.Get("/user/:userId", s.GetUserRecords)
	records.Get("/:id", s.OptionalAuth(), s.GetRecord)
	records.Post("/", s.AuthRequired(),
		middleware.RateLimit(s.redis, 20, time.Hour, "submit_record"), s.CreateRecord)

	admin := api.Group("/admin", s.AuthRequired(), s.AdminRequired())
	admin.Get("/pending-records", s.GetPendingRecords)
	admin.Post("/verify-record/:recordId", s.VerifyRecord)

	api.Get("/leaderboards/:type", s.GetLeaderboard)
	api.Get("/users/:userId/profile", s.GetUserProfile)
	api.Get("/stats", s.GetStats)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck reports database and Redis health. Redis is optional, so
// only a failing database makes the service unready.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	if err := database.Ping(ctx, s.db); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "unavailable"
	if s.redis != nil {
		redisStatus = "healthy"
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus != "healthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	} else if redisStatus != "healthy" {
		overallStatus = "degraded"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// AuthRequired rejects requests without a valid bearer token and stores the
// caller's id in locals.
func (s *Server) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Authorization required"))
		}

		claims, err := s.authService.VerifyToken(c.UserContext(), token)
		if err != nil {
			return fail(c, err)
		}

		setUser(c, claims.UserID)
		return c.Next()
	}
}

// OptionalAuth identifies the caller when a valid token is present and
// otherwise lets the request through anonymously.
func (s *Server) OptionalAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token := bearerToken(c); token != "" {
			if claims, err := s.authService.VerifyToken(c.UserContext(), token); err == nil {
				setUser(c, claims.UserID)
			}
		}
		return c.Next()
	}
}

// AdminRequired returns middleware that rejects non-admin users with 403.
// Must be placed after AuthRequired so that userID is available in locals.
func (s *Server) AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := s.authorizer.RequireAdmin(c.UserContext(), currentUserID(c)); err != nil {
			return fail(c, err)
		}
		return c.Next()
	}
}

func setUser(c *fiber.Ctx, userID string) {
	c.Locals("userID", userID)
	c.SetUserContext(context.WithValue(c.UserContext(), middleware.UserIDKey, userID))
}

// Start starts the server
func (s *Server) Start() error {
	s.app = s.NewApp()
	log.Printf("Server starting on port %s...", s.config.Port)
	return s.app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			log.Printf("error shutting down HTTP server: %v", err)
		}
	}

	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Printf("error closing sql DB: %v", cerr)
		}
	}

	if s.redis != nil {
		if rerr := cache.Close(); rerr != nil {
			log.Printf("error closing redis: %v", rerr)
		}
	}

	log.Println("Server shutdown complete")
	return nil
}
