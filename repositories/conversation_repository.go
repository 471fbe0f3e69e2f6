package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"chat-app/models"
)

type GormConversationRepository struct {
	db *gorm.DB
}

func NewGormConversationRepository(db *gorm.DB) *GormConversationRepository {
	return &GormConversationRepository{db: db}
}

func (r *GormConversationRepository) Create(conversation *models.Conversation) error {
	return r.db.Create(conversation).Error
}

func (r *GormConversationRepository) FindByID(id string) (*models.Conversation, error) {
	var conversation models.Conversation
	if err := r.db.Where("id = ?", id).First(&conversation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &conversation, nil
}

func (r *GormConversationRepository) ListByUser(userID string) ([]models.Conversation, error) {
	var conversations []models.Conversation
	err := r.db.
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&conversations).Error
	if err != nil {
		return nil, err
	}

	// Attach the latest message of each conversation as a preview.
	for i := range conversations {
		var last models.Message
		err := r.db.
			Where("conversation_id = ?", conversations[i].ID).
			Order("created_at DESC").
			First(&last).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}
		conversations[i].Messages = []models.Message{last}
	}
	return conversations, nil
}

func (r *GormConversationRepository) UpdateTitle(id, title string) (*models.Conversation, error) {
	res := r.db.Model(&models.Conversation{}).Where("id = ?", id).Update("title", title)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.FindByID(id)
}

// Delete removes the conversation and its messages in one transaction. The
// schema also declares ON DELETE CASCADE, but the explicit delete keeps the
// guarantee on stores that do not enforce foreign keys.
func (r *GormConversationRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("conversation_id = ?", id).Delete(&models.Message{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&models.Conversation{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (r *GormConversationRepository) AppendMessages(conversationID string, messages []*models.Message) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, msg := range messages {
			if err := tx.Create(msg).Error; err != nil {
				return err
			}
		}
		return tx.Model(&models.Conversation{}).
			Where("id = ?", conversationID).
			Update("updated_at", time.Now()).Error
	})
}

func (r *GormConversationRepository) ListMessages(conversationID string) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
