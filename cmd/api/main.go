// @title EduQuest API
// @version 0.1.0
// @description Turns study material (PDF/DOCX or raw text) into quizzes.
// @host localhost:8080
// @BasePath /
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"eduquest/internal/adapter"
	"eduquest/internal/adapter/extractor"
	"eduquest/internal/adapter/llm"
	"eduquest/internal/adapter/ocr"
	"eduquest/internal/cache"
	"eduquest/internal/config"
	"eduquest/internal/domain"
	"eduquest/internal/handler"
	"eduquest/internal/logger"
	"eduquest/internal/middleware"
	"eduquest/internal/service"
	"eduquest/internal/store"
	"eduquest/internal/util"
	"eduquest/internal/validation"

	_ "eduquest/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests, tagging each
// with a ULID for log correlation
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()
		requestID := util.NewULID()
		c.Set("X-Request-Id", requestID)

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("request_id", requestID),
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
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
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Extraction cache is optional: without a Redis address every
	// extraction runs fresh.
	var extractionCache domain.Cache
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		extractionCache = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("Extraction cache enabled", zap.String("address", cfg.Redis.Address))
	} else {
		appLogger.Info("Redis not configured; extraction cache disabled")
	}

	documentExtractor := extractor.NewDocumentExtractor()

	var ocrService domain.OCRService
	if cfg.OCR.Enabled {
		visionOCR, err := ocr.NewVisionOCR(context.Background(), cfg.OCR.CredentialsFile)
		if err != nil {
			appLogger.Fatal("Failed to create Vision OCR client", zap.Error(err))
		}
		defer visionOCR.Close()
		ocrService = visionOCR
		appLogger.Info("OCR service initialized")
	} else {
		appLogger.Info("OCR disabled")
	}

	var questionGenerator domain.QuestionGenerator
	if cfg.OpenRouter.APIKey != "" {
		questionGenerator, err = llm.NewOpenRouterGenerator(cfg.OpenRouter)
		if err != nil {
			appLogger.Fatal("Failed to create question generator", zap.Error(err))
		}
		appLogger.Info("Question generator initialized", zap.String("model", cfg.OpenRouter.Model))
	} else {
		appLogger.Warn("OPENROUTER_API_KEY not set; LLM generation endpoint will fail")
	}

	quizStore := store.NewMemoryQuizStore()

	documentService := service.NewDocumentService(documentExtractor, ocrService, extractionCache, cfg)
	quizService := service.NewQuizService(documentService, quizStore, cfg)
	generationService := service.NewGenerationService(documentService, questionGenerator, cfg)

	validator := validation.NewValidator()
	documentHandler := handler.NewDocumentHandler(documentService)
	quizHandler := handler.NewQuizHandler(quizService, validator)
	generationHandler := handler.NewGenerationHandler(generationService, validator)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BodyLimit:    cfg.Server.BodyLimitMB * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "http://localhost:3000,http://localhost:5173,http://127.0.0.1:3000,http://127.0.0.1:5173",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
		MaxAge:       300,
	}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "¡Bienvenido a EduQuest API!",
			"status":  "running",
		})
	})
	app.Get("/healthz", func(c *fiber.Ctx) error {
		if extractionCache != nil {
			if err := extractionCache.Ping(c.Context()); err != nil {
				return domain.NewInternalError("Cache no disponible", err)
			}
		}
		return c.JSON(fiber.Map{
			"status":  "ok",
			"quizzes": quizStore.Len(),
		})
	})

	app.Post("/generate-from-text-or-file", generationHandler.GenerateFromTextOrFile)

	docsGroup := app.Group("/docs")
	docsGroup.Post("/extract", documentHandler.Extract)
	docsGroup.Post("/extract-batch", documentHandler.ExtractBatch)
	docsGroup.Post("/generate-quiz", quizHandler.GenerateQuiz)

	quizGroup := app.Group("/quiz")
	quizGroup.Post("/answer", quizHandler.SubmitAnswers)
	quizGroup.Get("/:quiz_id", quizHandler.GetQuiz)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", os.Getenv("ENV")))
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
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
