package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/vendora/vendora-server/src/cache"
	"github.com/vendora/vendora-server/src/config"
	"github.com/vendora/vendora-server/src/database"
	"github.com/vendora/vendora-server/src/handlers"
	"github.com/vendora/vendora-server/src/logging"
	"github.com/vendora/vendora-server/src/middleware"
	"github.com/vendora/vendora-server/src/models"
	"github.com/vendora/vendora-server/src/repositories/postgres"
	"github.com/vendora/vendora-server/src/services"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := config.Load()

	logging.Setup(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	log.Info().
		Int("port", cfg.Port).
		Str("log_level", cfg.LogLevel).
		Msg("starting server")

	// Initialize database
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	db, err := database.New(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer db.Close()

	log.Info().Msg("database connected")

	// Token service; signing secret is validated once at startup
	tokenService, err := services.NewTokenService(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize token service")
	}

	// Auth-gate account cache
	store := cache.New(cache.Config{
		Backend:    cfg.CacheBackend,
		RedisAddr:  cfg.RedisAddr,
		RedisDB:    cfg.RedisDB,
		DefaultTTL: cfg.AuthCacheTTL,
	})
	log.Info().Str("backend", cfg.CacheBackend).Msg("auth cache initialized")

	// Repositories
	userRepo := postgres.NewUserRepository(db.GetPool())
	productRepo := postgres.NewProductRepository(db.GetPool())

	// Services
	userService := services.NewUserService(userRepo, store, cfg.AuthCacheTTL)
	authService := services.NewAuthService(userRepo, tokenService, userService)
	onboardingService := services.NewOnboardingService(userRepo)
	adminService := services.NewAdminService(userRepo, userService)
	productService := services.NewProductService(productRepo, userRepo)

	// Bootstrap the super admin on first run
	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	err = onboardingService.EnsureSuperAdmin(ctx, cfg.SuperAdminEmail, cfg.SuperAdminPassword)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to ensure super admin")
	}

	// Create Gin router
	router := gin.New()

	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(gin.Recovery())

	if cfg.AllowedOrigins != "" {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowOrigins = []string{cfg.AllowedOrigins}
		corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
		corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
		router.Use(cors.New(corsConfig))
	}

	setupRoutes(router, db, tokenService, userService, authService, onboardingService, adminService, productService)

	// HTTP server with timeouts to protect against slow clients
	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.Port).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	sig := <-sigChan

	log.Info().Str("signal", sig.String()).Msg("received shutdown signal")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}

	log.Info().Msg("server shut down successfully")
}

func setupRoutes(
	router *gin.Engine,
	db *database.Database,
	tokenService *services.TokenService,
	userService *services.UserService,
	authService *services.AuthService,
	onboardingService *services.OnboardingService,
	adminService *services.AdminService,
	productService *services.ProductService,
) {
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(authService)
	onboardingHandler := handlers.NewOnboardingHandler(onboardingService)
	adminHandler := handlers.NewAdminHandler(adminService)
	productHandler := handlers.NewProductHandler(productService)
	userHandler := handlers.NewUserHandler(userService)

	// Stage A: token + account validity. Stage B: role check, declared
	// per route below.
	requireAuth := middleware.RequireAuth(tokenService, userService)
	adminOnly := middleware.RequireRoles(models.RoleAdmin)
	superAdminOnly := middleware.RequireRoles(models.RoleSuperAdmin)

	router.GET("/health", healthHandler.HandleHealth)
	router.GET("/ready", healthHandler.HandleReady)

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/login", middleware.AuthRateLimitMiddleware(), authHandler.HandleLogin)
		auth.PATCH("/change-password", requireAuth, authHandler.HandleChangePassword)
		auth.POST("/refresh-token", authHandler.HandleRefreshToken)
	}

	onboarding := v1.Group("/onboarding")
	{
		onboarding.POST("/register", middleware.AuthRateLimitMiddleware(), onboardingHandler.HandleRegister)
		onboarding.POST("/create-admin", requireAuth, superAdminOnly, onboardingHandler.HandleCreateAdmin)
		onboarding.GET("/check-email", onboardingHandler.HandleCheckEmail)
	}

	admin := v1.Group("/admin", requireAuth, adminOnly)
	{
		admin.PATCH("/update-status", adminHandler.HandleUpdateStatus)
		admin.GET("/users", adminHandler.HandleListUsers)
	}

	users := v1.Group("/users", requireAuth)
	{
		users.GET("/profile", userHandler.HandleProfile)
	}

	products := v1.Group("/products")
	{
		products.GET("/approved", productHandler.HandleListApproved)
		products.POST("", requireAuth, productHandler.HandleCreate)
		products.GET("/user", requireAuth, productHandler.HandleListMine)
		products.GET("/admin/all", requireAuth, adminOnly, productHandler.HandleListAll)
		products.PATCH("/:id/approve", requireAuth, adminOnly, productHandler.HandleApprove)
		products.PATCH("/:id", requireAuth, productHandler.HandleUpdate)
		products.DELETE("/:id", requireAuth, productHandler.HandleDelete)
		products.GET("/:id", productHandler.HandleGet)
	}
}
