package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"skincare-backend/internal/catalog"
	"skincare-backend/internal/recommendations"
	"skincare-backend/internal/shared/config"
	"skincare-backend/internal/shared/metrics"
	"skincare-backend/internal/shared/server/middleware"
	"skincare-backend/internal/shared/server/respond"
	"skincare-backend/internal/shared/storage/db"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	// Dependencies
	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			log.Printf("failed to connect database, falling back to memory catalog: %v", err)
		} else {
			if err := db.RunMigrations(context.Background(), dbConn); err != nil {
				log.Printf("failed to run migrations, falling back to memory catalog: %v", err)
				dbConn = nil
			}
		}
		sqlDB = dbConn
	}

	var catalogRepo catalog.Repo
	if sqlDB != nil {
		catalogRepo = &catalog.PGRepo{DB: sqlDB}
	} else {
		memRepo := catalog.NewMemoryRepo()
		catalog.SeedDemo(memRepo)
		catalogRepo = memRepo
	}
	catalogHandler := catalog.NewHandler(catalogRepo)
	recSvc := recommendations.NewService(catalogRepo, cfg.RetrievalTimeout)
	recHandler := recommendations.NewHandler(recSvc)

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"DEFAULT": {Rate: 5, Burst: 20},
		},
	}))
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	catalogHandler.RegisterRoutes(api)
	recHandler.RegisterRoutes(api)

	r.GET("/metrics", metrics.Handler())

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
