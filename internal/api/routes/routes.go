package routes

import (
	"eurobot-backend/internal/api/handlers"
	"eurobot-backend/internal/api/middleware"
	"eurobot-backend/internal/auth"
	"eurobot-backend/internal/config"
	"eurobot-backend/internal/database"
	"eurobot-backend/internal/metrics"
	"eurobot-backend/internal/repository"
	"eurobot-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// Dependencies are the runtime collaborators the router needs besides the database
type Dependencies struct {
	Reseeder handlers.Reseeder
	Metrics  *metrics.Recorder
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, deps Dependencies) *gin.Engine {
	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	teamRepo := repository.NewTeamRepository(db)
	matchRepo := repository.NewMatchRepository(db)
	rankingRepo := repository.NewRankingRepository(db)
	serieRepo := repository.NewSerieRepository(db)

	// Initialize services
	services := Services{
		Teams:    service.NewTeamService(teamRepo, matchRepo),
		Matches:  service.NewMatchService(matchRepo),
		Rankings: service.NewRankingService(rankingRepo),
		Series:   service.NewSerieService(serieRepo, matchRepo, rankingRepo, validator),
		Stats:    service.NewStatsService(teamRepo, matchRepo, rankingRepo, serieRepo),
	}

	health := handlers.PingFunc(func() error { return database.Ping(db) })
	return NewRouter(cfg, services, health, deps)
}

// Services bundles the service layer so the router can be built over mocks
type Services struct {
	Teams    service.TeamServiceInterface
	Matches  service.MatchServiceInterface
	Rankings service.RankingServiceInterface
	Series   service.SerieServiceInterface
	Stats    service.StatsServiceInterface
}

// NewRouter wires middleware, handlers and routes
func NewRouter(cfg *config.Config, services Services, health handlers.Pinger, deps Dependencies) *gin.Engine {
	// Create router
	router := gin.New()
	// match on the escaped path so a team name containing "/" stays one segment
	router.UseRawPath = true

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))
	if deps.Metrics != nil {
		router.Use(middleware.Metrics(deps.Metrics))
	}

	// Admin guard is a pass-through when no secret is configured
	var authService *auth.Service
	if cfg.AdminAuthEnabled() {
		authService = auth.NewService(cfg.AdminJWTSecret)
	}
	requireAdmin := auth.NewMiddleware(authService).RequireAdmin()

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(health, Version)
	teamHandler := handlers.NewTeamHandler(services.Teams)
	matchHandler := handlers.NewMatchHandler(services.Matches)
	rankingHandler := handlers.NewRankingHandler(services.Rankings)
	serieHandler := handlers.NewSerieHandler(services.Series)
	statsHandler := handlers.NewStatsHandler(services.Stats)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/live", healthHandler.Live)

	if deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		api.GET("/health", healthHandler.Health)

		// Team routes. /:id/matches takes a team name, gin requires one wildcard name per segment.
		teams := api.Group("/teams")
		{
			teams.GET("", teamHandler.GetAllTeams)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.GET("/:id/matches", teamHandler.GetTeamMatches)
		}

		// Match routes
		matches := api.Group("/matches")
		{
			matches.GET("", matchHandler.ListMatches)
			matches.GET("/:id", matchHandler.GetMatch)
		}

		// Ranking routes
		rankings := api.Group("/rankings")
		{
			rankings.GET("", rankingHandler.ListRankings)
			rankings.GET("/serie/:serie", rankingHandler.GetRankingsBySerie)
		}

		// Serie routes
		series := api.Group("/series")
		{
			series.GET("", serieHandler.ListSeries)
			series.GET("/number/:number", serieHandler.GetSerieByNumber)
			series.GET("/:id", serieHandler.GetSerie)
			series.GET("/:id/stats", serieHandler.GetSerieStats)
			series.POST("", requireAdmin, serieHandler.CreateSerie)
			series.PUT("/:id", requireAdmin, serieHandler.UpdateSerie)
			series.DELETE("/:id", requireAdmin, serieHandler.DeleteSerie)
		}

		api.GET("/stats", statsHandler.GetStats)

		if deps.Reseeder != nil {
			adminHandler := handlers.NewAdminHandler(deps.Reseeder)
			api.POST("/reseed", requireAdmin, adminHandler.Reseed)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}
