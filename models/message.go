package models

import "time"

// Sender roles. SenderID is set for SenderUser messages only.
const (
	SenderUser   = "User"
	SenderSystem = "System"
)

// Message is one turn in a conversation. Messages are append-only.
type Message struct {
	ID             string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	ConversationID string    `gorm:"type:varchar(36);index;not null" json:"conversation_id"`
	SenderType     string    `gorm:"type:varchar(10);not null" json:"sender_type"`
	SenderID       string    `gorm:"type:varchar(36)" json:"sender_id,omitempty"`
	Content        string    `gorm:"type:text" json:"content"`
	CreatedAt      time.Time `json:"created_at"`
}

// ValidSenderType reports whether s is one of the known sender roles.
func ValidSenderType(s string) bool {
	return s == SenderUser || s == SenderSystem
}
