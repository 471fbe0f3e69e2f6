package repositories

import (
	"errors"

	"chat-app/models"
)

// ErrNotFound is returned when a looked-up record does not exist, regardless
// of the backing store.
var ErrNotFound = errors.New("record not found")

// UserRepository persists accounts.
type UserRepository interface {
	Create(user *models.User) error
	FindByEmail(email string) (*models.User, error)
	FindByID(id string) (*models.User, error)
}

// ConversationRepository persists conversations and their messages.
type ConversationRepository interface {
	Create(conversation *models.Conversation) error
	FindByID(id string) (*models.Conversation, error)

	// ListByUser returns the user's conversations ordered by updated_at
	// descending, each with at most its latest message attached as a preview.
	ListByUser(userID string) ([]models.Conversation, error)

	UpdateTitle(id, title string) (*models.Conversation, error)

	// Delete removes the conversation and all its messages.
	Delete(id string) error

	// AppendMessages inserts the batch and bumps the conversation's
	// updated_at in a single transaction.
	AppendMessages(conversationID string, messages []*models.Message) error

	// ListMessages returns all messages ordered by created_at ascending.
	ListMessages(conversationID string) ([]models.Message, error)
}
