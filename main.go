package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"platefeed/internal/config"
	"platefeed/internal/handlers"
	"platefeed/internal/models"
	"platefeed/internal/repositories"
	"platefeed/internal/services"
	"platefeed/pkg/blobstore"
	"platefeed/pkg/rabbitmq"
)

func main() {
	cfg := config.Load()

	// --- Database ---
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Post{}, &models.Like{}, &models.Comment{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- Object store ---
	blobs := blobstore.NewClient(blobstore.Config{
		Endpoint:  cfg.S3Endpoint,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		Region:    cfg.S3Region,
		PublicURL: cfg.S3PublicURL,
	})

	// --- RabbitMQ ---
	// The broker is an audit side channel; the API still runs without it.
	var events services.EventPublisher
	mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
	if err != nil {
		log.Printf("Warning: RabbitMQ unavailable, activity events disabled: %v", err)
	} else {
		defer mqClient.Close()
		events = mqClient
	}

	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	postRepo := repositories.NewGORMPostRepository(db)
	likeRepo := repositories.NewGORMLikeRepository(db)
	commentRepo := repositories.NewGORMCommentRepository(db)

	// --- Services ---
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	userService := services.NewUserService(userRepo, blobs, events)
	postService := services.NewPostService(postRepo, userRepo, blobs, events)
	likeService := services.NewLikeService(likeRepo, postRepo, userRepo, events)
	commentService := services.NewCommentService(commentRepo, postRepo, userRepo, events)

	seedAdmin(userService, cfg.SeedAdminPassword)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService, authService)
	postHandler := handlers.NewPostHandler(postService, authService)
	likeHandler := handlers.NewLikeHandler(likeService, authService)
	commentHandler := handlers.NewCommentHandler(commentService, authService)
	uploadHandler := handlers.NewUploadHandler(blobs, authService)

	// --- Fiber app ---
	app := fiber.New()
	app.Use(logger.New())

	api := app.Group("/api")
	api.Get("/hello", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Hello from backend"})
	})
	authHandler.RegisterRoutes(api)
	userHandler.RegisterRoutes(api)
	postHandler.RegisterRoutes(api)
	likeHandler.RegisterRoutes(api)
	commentHandler.RegisterRoutes(api)
	uploadHandler.RegisterRoutes(api)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Activity consumer ---
	// Mirrors the request log on the broker side so operators can tail the
	// event stream without touching the API process.
	if mqClient != nil {
		if consumerErr := mqClient.ConsumeActivityEvents(func(msg amqp.Delivery) error {
			log.Printf("[AUDIT] %s", string(msg.Body))
			return nil
		}); consumerErr != nil {
			log.Printf("Failed to start activity consumer: %v", consumerErr)
		}
	}

	// --- Start HTTP server ---
	log.Printf("Starting server on port %s", cfg.AppPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}

// seedAdmin creates an initial admin user when a seed password is configured
// and no admin exists yet.
func seedAdmin(userService *services.UserService, password string) {
	if password == "" {
		return
	}
	existing, err := userService.GetUser("admin")
	if err != nil {
		log.Printf("Failed to check for seed admin: %v", err)
		return
	}
	if existing != nil {
		return
	}
	if _, _, err := userService.CreateUser(context.Background(), "admin", password, models.Roles{"admin", "user"}); err != nil {
		log.Printf("Failed to seed admin user: %v", err)
		return
	}
	log.Println("Seeded initial admin user")
}
