package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"chat-app/models"
	"chat-app/repositories"
)

var (
	ErrMissingUser          = errors.New("user id is required")
	ErrInvalidTitle         = errors.New("valid title is required")
	ErrInvalidMessage       = errors.New("at least one message with content and sender type is required")
	ErrConversationNotFound = errors.New("conversation not found")
	ErrForbidden            = errors.New("access denied")
)

// ConversationService implements owner-scoped CRUD over conversations and
// their messages. Every operation re-verifies ownership against the store;
// nothing is trusted across calls.
type ConversationService struct {
	conversations repositories.ConversationRepository
}

func NewConversationService(conversations repositories.ConversationRepository) *ConversationService {
	return &ConversationService{conversations: conversations}
}

// List returns the user's conversations, most recently updated first, each
// with its latest message as a preview.
func (s *ConversationService) List(userID string) ([]models.Conversation, error) {
	if userID == "" {
		return nil, ErrMissingUser
	}
	return s.conversations.ListByUser(userID)
}

// Create starts a new conversation owned by userID.
func (s *ConversationService) Create(userID, title string) (*models.Conversation, error) {
	if userID == "" {
		return nil, ErrMissingUser
	}
	if strings.TrimSpace(title) == "" {
		return nil, ErrInvalidTitle
	}

	conversation := &models.Conversation{
		ID:     uuid.New().String(),
		Title:  title,
		UserID: userID,
	}
	if err := s.conversations.Create(conversation); err != nil {
		return nil, err
	}
	return conversation, nil
}

// requireOwner loads the conversation and checks ownership. A missing
// conversation is reported as notFoundErr so callers can pick between
// NotFound and Forbidden semantics.
func (s *ConversationService) requireOwner(conversationID, userID string, notFoundErr error) (*models.Conversation, error) {
	conversation, err := s.conversations.FindByID(conversationID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, notFoundErr
		}
		return nil, err
	}
	if conversation.UserID != userID {
		return nil, ErrForbidden
	}
	return conversation, nil
}

// GetMessages returns the conversation's messages in chronological order.
// A conversation that does not exist or is owned by someone else is denied.
func (s *ConversationService) GetMessages(conversationID, userID string) ([]models.Message, error) {
	if _, err := s.requireOwner(conversationID, userID, ErrForbidden); err != nil {
		return nil, err
	}
	return s.conversations.ListMessages(conversationID)
}

// MessageInput is one message of an append batch.
type MessageInput struct {
	Content    string `json:"content" binding:"required"`
	SenderType string `json:"senderType" binding:"required"`
}

// Append persists a batch of messages and bumps the conversation's
// updated_at. The whole batch is written in one transaction.
func (s *ConversationService) Append(conversationID, userID string, inputs []MessageInput) ([]models.Message, error) {
	if _, err := s.requireOwner(conversationID, userID, ErrConversationNotFound); err != nil {
		return nil, err
	}
	if len(inputs) == 0 {
		return nil, ErrInvalidMessage
	}

	messages := make([]*models.Message, 0, len(inputs))
	for _, in := range inputs {
		if strings.TrimSpace(in.Content) == "" || !models.ValidSenderType(in.SenderType) {
			return nil, ErrInvalidMessage
		}
		msg := &models.Message{
			ID:             uuid.New().String(),
			ConversationID: conversationID,
			SenderType:     in.SenderType,
			Content:        in.Content,
		}
		if in.SenderType == models.SenderUser {
			msg.SenderID = userID
		}
		messages = append(messages, msg)
	}

	if err := s.conversations.AppendMessages(conversationID, messages); err != nil {
		return nil, err
	}

	created := make([]models.Message, 0, len(messages))
	for _, msg := range messages {
		created = append(created, *msg)
	}
	return created, nil
}

// Delete removes the conversation and all its messages.
func (s *ConversationService) Delete(conversationID, userID string) error {
	if _, err := s.requireOwner(conversationID, userID, ErrForbidden); err != nil {
		return err
	}
	return s.conversations.Delete(conversationID)
}

// Rename updates the conversation's title.
func (s *ConversationService) Rename(conversationID, userID, title string) (*models.Conversation, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrInvalidTitle
	}
	if _, err := s.requireOwner(conversationID, userID, ErrForbidden); err != nil {
		return nil, err
	}
	return s.conversations.UpdateTitle(conversationID, title)
}
