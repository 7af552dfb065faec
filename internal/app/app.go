package app

import (
	"esg-backend/internal/auth"
	"esg-backend/internal/config"
	"esg-backend/internal/database"
	"esg-backend/internal/export"
	"esg-backend/internal/health"
	"esg-backend/internal/middleware"
	"esg-backend/internal/responses"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type gormDBPinger struct {
	db *gorm.DB
}

func (g *gormDBPinger) Ping() error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// CreateApp builds the Fiber app with all global middleware and route
// registration. DB and Redis are optional: without DATABASE_URL only the
// health routes are mounted, without REDIS_URL the traffic counters are off.
func CreateApp(cfg *config.Config) (*fiber.App, *gorm.DB, *redis.Client, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          middleware.ErrorHandler,
	})

	app.Use(middleware.CORS(cfg.AllowedOrigin))

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, nil, nil, err
		}
		rdb = redis.NewClient(opts)
	}
	app.Use(middleware.HealthMarker(rdb))
	app.Use(middleware.Tracing())
	app.Use(middleware.RouteLogger())

	var db *gorm.DB
	if cfg.DatabaseURL != "" {
		var err error
		db, err = database.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := database.AutoMigrate(db); err != nil {
			return nil, nil, nil, err
		}
	}

	var dbPinger health.DBPinger
	if db != nil {
		dbPinger = &gormDBPinger{db: db}
	}
	healthHandlers := &health.Handlers{
		Rdb:            rdb,
		DB:             dbPinger,
		HealthAdminKey: cfg.HealthAdminKey,
	}
	app.Get("/health/json", healthHandlers.JSON)
	app.Get("/health/reset", healthHandlers.Reset)

	if db != nil {
		RegisterRoutes(app, db, cfg.JWTSecret)
	}

	return app, db, rdb, nil
}

// RegisterRoutes mounts the API surface on the given DB. Split out so tests
// can run the full route table against an in-memory database.
func RegisterRoutes(app *fiber.App, db *gorm.DB, jwtSecret string) {
	requireAuth := middleware.RequireAuth(jwtSecret)

	authService := &auth.Service{DB: db, Secret: jwtSecret}
	authHandlers := &auth.Handlers{Service: authService}
	authGroup := app.Group("/api/auth")
	authGroup.Post("/register", authHandlers.Register)
	authGroup.Post("/login", authHandlers.Login)
	authGroup.Get("/me", requireAuth, authHandlers.Me)

	responseService := &responses.Service{DB: db}
	responseHandlers := &responses.Handlers{Service: responseService}
	responseGroup := app.Group("/api/responses", requireAuth)
	responseGroup.Get("/", responseHandlers.List)
	responseGroup.Post("/", responseHandlers.Create)
	responseGroup.Delete("/:id", responseHandlers.Delete)

	exportService := &export.Service{DB: db, Responses: responseService}
	exportHandlers := &export.Handlers{Service: exportService}
	exportGroup := app.Group("/api/export", requireAuth)
	exportGroup.Get("/pdf", exportHandlers.ExportPDF)
	exportGroup.Get("/excel", exportHandlers.ExportExcel)
}
