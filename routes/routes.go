package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"chat-app/controllers"
	"chat-app/middlewares"
)

// RegisterRoutes wires all endpoints onto a gin engine.
func RegisterRoutes(
	auth *controllers.AuthController,
	conversations *controllers.ConversationController,
	llm *controllers.LLMController,
	jwtSecret []byte,
) *gin.Engine {
	r := gin.Default()

	corsConfig := cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}
	r.Use(cors.New(corsConfig))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Server is running...")
	})

	api := r.Group("/api")

	api.POST("/auth/register", auth.Register)
	api.POST("/auth/login", auth.Login)
	api.POST("/llm", llm.Generate)

	chat := api.Group("/chat")
	chat.Use(middlewares.TokenAuthMiddleware(jwtSecret))
	{
		chat.GET("/conversations", conversations.GetConversations)
		chat.POST("/conversations", conversations.CreateConversation)
		chat.GET("/conversations/:conversation_id", conversations.GetMessagesByConversationID)
		chat.POST("/conversations/:conversation_id", conversations.SendMessages)
		chat.DELETE("/conversations/:conversation_id", conversations.DeleteConversation)
		chat.PATCH("/conversations/:conversation_id", conversations.RenameConversation)
	}

	return r
}
