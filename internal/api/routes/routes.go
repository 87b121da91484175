package routes

import (
	"fmt"

	"badminton-directory-backend/internal/api/handlers"
	"badminton-directory-backend/internal/api/middleware"
	"badminton-directory-backend/internal/auth"
	"badminton-directory-backend/internal/config"
	"badminton-directory-backend/internal/geo"
	"badminton-directory-backend/internal/repository"
	"badminton-directory-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"
)

// Handlers groups the API handlers mounted under /api/v1
type Handlers struct {
	Listing *handlers.ListingHandler
	Fact    *handlers.FactHandler
	Upvote  *handlers.UpvoteHandler
	Claim   *handlers.ClaimHandler
	User    *handlers.UserHandler
}

// NewHandlers builds the repositories, services and handlers on top of db
func NewHandlers(db *gorm.DB, cfg *config.Config) (*Handlers, error) {
	validate := validator.New()

	// Type-keyed stores for every listing and fact table
	registry, err := repository.NewDefaultRegistry(db)
	if err != nil {
		return nil, fmt.Errorf("failed to build entity registry: %w", err)
	}
	resolver, err := repository.NewTypeKeyedResolver(registry)
	if err != nil {
		return nil, fmt.Errorf("failed to build resolver: %w", err)
	}

	upvoteRepo := repository.NewUpvoteRepository(db)
	claimRepo := repository.NewClaimRepository(db)
	userRepo := repository.NewUserRepository(db)
	transactor := repository.NewGormTransactor(db)

	settings := service.SearchSettings{
		Home:            geo.Point{Latitude: cfg.HomeLatitude, Longitude: cfg.HomeLongitude},
		DefaultPageSize: cfg.DefaultPageSize,
		MaxPageSize:     cfg.MaxPageSize,
	}

	listingService := service.NewListingService(resolver, settings, validate)
	factService := service.NewFactService(resolver, validate)
	upvoteService := service.NewUpvoteService(resolver, upvoteRepo, userRepo, transactor, validate)
	claimService := service.NewClaimService(resolver, claimRepo, transactor, validate)
	userService := service.NewUserService(userRepo, validate)

	return &Handlers{
		Listing: handlers.NewListingHandler(listingService),
		Fact:    handlers.NewFactHandler(factService),
		Upvote:  handlers.NewUpvoteHandler(upvoteService),
		Claim:   handlers.NewClaimHandler(claimService),
		User:    handlers.NewUserHandler(userService),
	}, nil
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg.JWTSecret))
	if err != nil {
		return nil, err
	}
	h, err := NewHandlers(db, cfg)
	if err != nil {
		return nil, err
	}
	return NewRouter(cfg, handlers.NewHealthHandler(db), h, auth.NewAuthMiddleware(authService)), nil
}

// NewRouter mounts the middleware chain and every route
func NewRouter(cfg *config.Config, health *handlers.HealthHandler, h *Handlers, authMiddleware *auth.AuthMiddleware) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))
	if cfg.OtelEnabled {
		serviceName := cfg.OtelServiceName
		if serviceName == "" {
			serviceName = "badminton-directory"
		}
		router.Use(otelgin.Middleware(serviceName))
	}

	// Health check routes
	router.GET("/health", health.Health)
	router.GET("/health/ready", health.Ready)
	router.GET("/health/live", health.Live)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		listings := v1.Group("/listings")
		{
			listings.GET("/:entityType", h.Listing.SearchListings)
			listings.POST("/:entityType", h.Listing.CreateListing)
			listings.GET("/:entityType/:id", h.Listing.GetListing)
			listings.POST("/:entityType/:id/prices", h.Fact.SubmitPrice)
			listings.POST("/:entityType/:id/schedules", h.Fact.SubmitSchedule)
			listings.GET("/:entityType/:id/:infoType", h.Fact.ListFacts)
		}

		upvotes := v1.Group("/upvotes")
		{
			upvotes.POST("", h.Upvote.AddUpvote)
			upvotes.GET("", h.Upvote.ListUpvotes)
		}

		claims := v1.Group("/claims")
		{
			admin := authMiddleware.RequireRole(auth.RoleAdmin)
			claims.POST("", h.Claim.CreateClaim)
			claims.GET("", admin, h.Claim.ListClaims)
			claims.GET("/:id", h.Claim.GetClaim)
			claims.POST("/:id/approve", admin, h.Claim.ApproveClaim)
			claims.POST("/:id/reject", admin, h.Claim.RejectClaim)
		}

		users := v1.Group("/users")
		{
			users.POST("", h.User.RegisterProfile)
			users.GET("/:id", h.User.GetProfile)
		}
	}

	// Catch-all route for undefined endpoints
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
