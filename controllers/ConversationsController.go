package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"chat-app/middlewares"
	"chat-app/services"
	"chat-app/utils"
)

type ConversationController struct {
	conversations *services.ConversationService
}

func NewConversationController(conversations *services.ConversationService) *ConversationController {
	return &ConversationController{conversations: conversations}
}

// GetConversations lists the caller's conversations, most recently updated
// first, each with its latest message as a preview.
func (ctl *ConversationController) GetConversations(c *gin.Context) {
	userID := c.GetString(middlewares.UserIDKey)

	conversations, err := ctl.conversations.List(userID)
	if err != nil {
		if errors.Is(err, services.ErrMissingUser) {
			utils.RespondError(c, http.StatusBadRequest, "User ID is required")
			return
		}
		slog.Error("failed to fetch conversations", "error", err, "user_id", userID)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to fetch conversations")
		return
	}

	utils.RespondSuccess(c, http.StatusOK, conversations)
}

// CreateConversation starts a new conversation owned by the caller.
func (ctl *ConversationController) CreateConversation(c *gin.Context) {
	userID := c.GetString(middlewares.UserIDKey)

	var input struct {
		Title string `json:"title" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Valid title is required")
		return
	}

	conversation, err := ctl.conversations.Create(userID, input.Title)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingUser):
			utils.RespondError(c, http.StatusBadRequest, "User ID is required")
		case errors.Is(err, services.ErrInvalidTitle):
			utils.RespondError(c, http.StatusBadRequest, "Valid title is required")
		default:
			slog.Error("failed to create conversation", "error", err, "user_id", userID)
			utils.RespondError(c, http.StatusInternalServerError, "Failed to create conversation")
		}
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, gin.H{"conversation": conversation})
}

// GetMessagesByConversationID returns the conversation's messages in
// chronological order. Non-owners are denied.
func (ctl *ConversationController) GetMessagesByConversationID(c *gin.Context) {
	conversationID := c.Param("conversation_id")
	userID := c.GetString(middlewares.UserIDKey)

	messages, err := ctl.conversations.GetMessages(conversationID, userID)
	if err != nil {
		if errors.Is(err, services.ErrForbidden) {
			utils.RespondError(c, http.StatusForbidden, "Access denied")
			return
		}
		slog.Error("failed to fetch messages", "error", err, "conversation_id", conversationID)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to fetch messages")
		return
	}

	utils.RespondSuccess(c, http.StatusOK, gin.H{
		"conversation_id": conversationID,
		"messages":        messages,
	})
}

// SendMessages appends a batch of messages to the conversation.
func (ctl *ConversationController) SendMessages(c *gin.Context) {
	conversationID := c.Param("conversation_id")
	userID := c.GetString(middlewares.UserIDKey)

	var input struct {
		Content []services.MessageInput `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "At least one message is required")
		return
	}

	messages, err := ctl.conversations.Append(conversationID, userID, input.Content)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrConversationNotFound):
			utils.RespondError(c, http.StatusNotFound, "Conversation not found")
		case errors.Is(err, services.ErrForbidden):
			utils.RespondError(c, http.StatusForbidden, "Access denied")
		case errors.Is(err, services.ErrInvalidMessage):
			utils.RespondError(c, http.StatusBadRequest, "At least one message is required")
		default:
			slog.Error("failed to send messages", "error", err, "conversation_id", conversationID)
			utils.RespondError(c, http.StatusInternalServerError, "Failed to send message")
		}
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, gin.H{"messages": messages})
}

// DeleteConversation removes the conversation and all its messages.
// The 201 on success is the documented contract of this API.
func (ctl *ConversationController) DeleteConversation(c *gin.Context) {
	conversationID := c.Param("conversation_id")
	userID := c.GetString(middlewares.UserIDKey)

	if err := ctl.conversations.Delete(conversationID, userID); err != nil {
		if errors.Is(err, services.ErrForbidden) {
			utils.RespondError(c, http.StatusForbidden, "Access denied")
			return
		}
		slog.Error("failed to delete conversation", "error", err, "conversation_id", conversationID)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to delete conversation")
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, gin.H{"message": "Conversation deleted successfully"})
}

// RenameConversation updates the conversation title only.
func (ctl *ConversationController) RenameConversation(c *gin.Context) {
	conversationID := c.Param("conversation_id")
	userID := c.GetString(middlewares.UserIDKey)

	var input struct {
		Title string `json:"title" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Valid title is required")
		return
	}

	conversation, err := ctl.conversations.Rename(conversationID, userID, input.Title)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrForbidden):
			utils.RespondError(c, http.StatusForbidden, "Access denied")
		case errors.Is(err, services.ErrInvalidTitle):
			utils.RespondError(c, http.StatusBadRequest, "Valid title is required")
		default:
			slog.Error("failed to rename conversation", "error", err, "conversation_id", conversationID)
			utils.RespondError(c, http.StatusInternalServerError, "Failed to update conversation")
		}
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, gin.H{"conversation": conversation})
}
