package routes

import (
	"receptionist-backend/internal/api/handlers"
	"receptionist-backend/internal/api/middleware"
	"receptionist-backend/internal/auth"
	"receptionist-backend/internal/config"
	"receptionist-backend/internal/repository"
	"receptionist-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	tenantRepo := repository.NewTenantRepository(db)
	userRepo := repository.NewUserRepository(db)
	conversationRepo := repository.NewConversationRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)

	// Initialize services
	tenantService := service.NewTenantService(tenantRepo, validator)
	conversationService := service.NewConversationService(conversationRepo, messageRepo, validator)
	appointmentService := service.NewAppointmentService(appointmentRepo, conversationRepo, validator)
	subscriptionService := service.NewSubscriptionService(subscriptionRepo, validator)

	// Initialize auth
	authService := auth.NewAuthService(cfg, tenantRepo, userRepo, subscriptionRepo, validator)
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	tenantHandler := handlers.NewTenantHandler(tenantService)
	conversationHandler := handlers.NewConversationHandler(conversationService)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionService)
	widgetHandler := handlers.NewWidgetHandler(tenantService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		// Auth routes
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.GET("/auth/me", authMiddleware.RequireAuth(), authHandler.Me)
		api.POST("/auth/logout", authHandler.Logout)

		// Public widget route
		api.GET("/widget/config", widgetHandler.GetConfig)

		// Tenant-scoped routes: the tenant id always comes from the token
		protected := api.Group("")
		protected.Use(authMiddleware.RequireAuth())
		{
			protected.GET("/tenant", tenantHandler.GetTenant)
			protected.PATCH("/tenant", tenantHandler.UpdateTenant)

			protected.GET("/conversations", conversationHandler.ListConversations)
			protected.POST("/conversations", conversationHandler.CreateConversation)
			protected.GET("/conversations/:id", conversationHandler.GetConversation)
			protected.POST("/conversations/:id/messages", conversationHandler.CreateMessage)

			protected.GET("/appointments", appointmentHandler.ListAppointments)
			protected.POST("/appointments", appointmentHandler.CreateAppointment)

			protected.GET("/billing/subscription", subscriptionHandler.GetSubscription)
			protected.PUT("/billing/subscription/plan", subscriptionHandler.ChangePlan)
		}
	}

	return router
}
