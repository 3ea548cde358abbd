package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/comunidadevida/acampamento-api/internal/config"
	"github.com/comunidadevida/acampamento-api/internal/handlers"
	"github.com/comunidadevida/acampamento-api/internal/logging"
	"github.com/comunidadevida/acampamento-api/internal/middleware"
	"github.com/comunidadevida/acampamento-api/internal/observability"
	"github.com/comunidadevida/acampamento-api/internal/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/comunidadevida/acampamento-api/docs"
)

// @title           Acampamento API
// @version         1.0
// @description     API de inscrições para acampamentos e retiros da comunidade. Fornece verificação de vagas por evento, envio de inscrição com comprovante de pagamento e lista de espera, e moderação de status pela equipe.

// @contact.name   API Support

// @host      localhost:8080
// @BasePath  /v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// @tag.name evento
// @tag.description Consulta de eventos e vagas

// @tag.name inscricao
// @tag.description Envio e moderação de inscrições

// @tag.name health
// @tag.description Health check operations

func main() {
	// Initialize logger first
	if err := logging.InitLogger(); err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}

	// Load configuration
	if err := config.LoadConfig(); err != nil {
		logging.Logger.Fatal("failed to load config", zap.Error(err))
	}

	// Initialize observability
	observability.InitTracer()
	defer observability.ShutdownTracer()

	// Initialize database connections
	config.InitMongoDB()
	config.InitRedis()

	// Wire service singletons
	services.InitServices(logging.Logger)

	// Set Gin mode
	if config.AppConfig.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router with middleware
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RequestTracker(),
		cors.Default(),
	)

	// Metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/v1")
	{
		// Health check endpoint
		v1.GET("/health", handlers.HealthCheck)

		// Public registration flow
		v1.GET("/eventos/:id", handlers.GetEvent)
		v1.GET("/eventos/:id/vagas", handlers.GetEventCapacity)
		v1.POST("/inscricoes", handlers.SubmitRegistration)

		// Staff-only moderation endpoints
		staff := v1.Group("")
		staff.Use(middleware.AuthMiddleware(), middleware.RequireStaff())
		{
			staff.PATCH("/inscricoes/status", handlers.UpdateInscricaoStatus)
			staff.GET("/eventos/:id/inscricoes", handlers.ListEventInscricoes)
		}
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Create server with timeouts
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", config.AppConfig.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logging.Logger.Info("starting server",
			zap.Int("port", config.AppConfig.Port),
			zap.String("environment", config.AppConfig.Environment),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Graceful shutdown
	logging.Logger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logging.Logger.Info("server exited gracefully")
}
