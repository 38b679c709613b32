package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"examshorts/api-gateway/config"
	"examshorts/api-gateway/handlers"
	"examshorts/api-gateway/internal/scriptgen"
	"examshorts/api-gateway/internal/store"
	"examshorts/api-gateway/internal/videogen"
	"examshorts/api-gateway/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := config.NewLogger(cfg.LogLevel)

	supabaseClient, err := config.NewSupabaseClient(cfg)
	if err != nil {
		logger.Fatalf("Failed to initialize Supabase: %v", err)
	}

	dataStore := store.New(supabaseClient)
	scriptClient := scriptgen.NewClient(cfg.GenerationBaseURL, cfg.GenerationAPIKey, cfg.GenerationModel)
	orchestrator := videogen.NewOrchestrator(
		dataStore,
		scriptClient,
		logger,
		rand.New(rand.NewSource(time.Now().UnixNano())),
	)

	h := handlers.NewApplicationHandler(dataStore, orchestrator, logger)

	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*", // Allow all origins for development
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Use(middleware.RequestLogger(logger))

	// Health check route
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "ok",
			"message": "API Gateway is healthy",
		})
	})

	registerRoutes(app, h)
	registerRoutes(app.Group("/api/v1"), h)

	logger.Infof("Starting API Gateway on %s", cfg.ListenAddr)
	logger.Fatal(app.Listen(cfg.ListenAddr))
}

// registerRoutes mounts the API surface. The original frontend called the
// routes unprefixed, so they are mounted both at the root and under /api/v1.
func registerRoutes(r fiber.Router, h *handlers.ApplicationHandler) {
	r.Get("/exams", h.ListExams)
	r.Get("/courses", h.ListCourses)
	r.Get("/templates", h.ListTemplates)
	r.Post("/generate-video", h.GenerateVideo)
}
