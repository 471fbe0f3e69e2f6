package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"chat-app/config"
	"chat-app/controllers"
	"chat-app/models"
	"chat-app/repositories"
	"chat-app/repositories/memory"
	"chat-app/routes"
	"chat-app/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment")
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()

	var userRepo repositories.UserRepository
	var convRepo repositories.ConversationRepository

	switch cfg.StorageBackend {
	case "memory":
		userRepo = memory.NewUserStore()
		convRepo = memory.NewConversationStore()
	default:
		db, err := config.InitDB(cfg)
		if err != nil {
			log.Fatalf("Database connection failed: %v", err)
		}
		if err := models.Migrate(db); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		userRepo = repositories.NewGormUserRepository(db)
		convRepo = repositories.NewGormConversationRepository(db)
	}

	var llmClient services.LLMClient
	if cfg.UseMockLLM {
		llmClient = services.NewMockLLM()
	} else {
		client, err := services.NewGeminiClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatalf("LLM client init failed: %v", err)
		}
		llmClient = client
	}

	jwtSecret := []byte(cfg.JWTSecret)
	authSvc := services.NewAuthService(userRepo, jwtSecret)
	convSvc := services.NewConversationService(convRepo)
	llmSvc := services.NewLLMService(llmClient)

	r := routes.RegisterRoutes(
		controllers.NewAuthController(authSvc),
		controllers.NewConversationController(convSvc),
		controllers.NewLLMController(llmSvc),
		jwtSecret,
	)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
