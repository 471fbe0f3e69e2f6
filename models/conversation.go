package models

import "time"

// Conversation is a user-owned message thread. UserID is the single owner;
// only the owner may read, mutate or delete the conversation.
type Conversation struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	UserID    string    `gorm:"type:varchar(36);index;not null" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Messages cascade on delete. In list responses this carries at most the
	// latest message as a preview.
	Messages []Message `gorm:"foreignKey:ConversationID;constraint:OnDelete:CASCADE" json:"messages,omitempty"`
}
