// @title MCQ Quiz API
// @version 1.0
// @description Multi-user multiple choice quiz service.
// @host localhost:8090
// @BasePath /
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_SESSION_TOKEN' to authorize, or rely on the session cookie.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"mcq-quiz/internal/adapter"
	"mcq-quiz/internal/cache"
	"mcq-quiz/internal/config"
	"mcq-quiz/internal/database"
	"mcq-quiz/internal/handler"
	"mcq-quiz/internal/logger"
	"mcq-quiz/internal/middleware"
	"mcq-quiz/internal/repository"
	"mcq-quiz/internal/service"
	"mcq-quiz/internal/validation"

	_ "mcq-quiz/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)
		return err
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	db, err := database.NewSQLXDB(cfg.DB.Driver, cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.String("driver", cfg.DB.Driver), zap.Error(err))
	}
	defer db.Close()

	userRepository := repository.NewUserRepository(db)
	questionRepository := repository.NewQuestionRepository(db)
	attemptRepository := repository.NewAttemptRepository(db)
	txManager := repository.NewTransactionManagerAdapter(db)

	redisClient, err := cache.NewRedisClient(context.Background(), cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()
	appLogger.Info("Successfully connected to Redis")
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)

	authService, err := service.NewAuthService(userRepository, cacheAdapter, validation.NewValidator(), cfg.Auth)
	if err != nil {
		appLogger.Fatal("Failed to create AuthService", zap.Error(err))
	}
	quizService := service.NewQuizService(questionRepository, attemptRepository, txManager)
	dashboardService := service.NewDashboardService(questionRepository, attemptRepository, txManager, cacheAdapter, cfg.Cache.SubjectLevelsTTL)

	authHandler := handler.NewAuthHandler(authService, cfg.Auth)
	quizHandler := handler.NewQuizHandler(quizService)
	userHandler := handler.NewUserHandler(dashboardService)
	healthHandler := handler.NewHealthHandler(db, handler.PingFunc(cacheAdapter.Ping))
	validationMiddleware := middleware.NewValidationMiddleware(cfg.Quiz.DefaultLimit)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
		MaxAge:       300,
	}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/healthz", healthHandler.Health)

	app.Post("/register", authHandler.Register)
	app.Post("/login", authHandler.Login)
	app.Get("/logout", authHandler.Logout)
	app.Post("/logout", authHandler.Logout)

	protected := middleware.Protected(authService, cfg.Auth.CookieName)
	app.Get("/", protected, userHandler.Dashboard)
	app.Get("/reset-progress", protected, userHandler.ResetProgress)
	app.Post("/reset-progress", protected, userHandler.ResetProgress)
	app.Get("/quiz", protected, validationMiddleware.ValidateQuizQuery(), quizHandler.GetQuiz)
	app.Post("/quiz", protected, quizHandler.SubmitQuiz)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
