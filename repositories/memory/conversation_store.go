package memory

import (
	"sort"
	"sync"
	"time"

	"chat-app/models"
	"chat-app/repositories"
)

// ConversationStore is an in-process ConversationRepository used for local
// development and tests. Messages are kept in insertion order, which matches
// created_at ascending.
type ConversationStore struct {
	mu            sync.RWMutex
	conversations map[string]*models.Conversation
	messages      map[string][]models.Message
}

func NewConversationStore() *ConversationStore {
	return &ConversationStore{
		conversations: make(map[string]*models.Conversation),
		messages:      make(map[string][]models.Message),
	}
}

func (s *ConversationStore) Create(conversation *models.Conversation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	conversation.CreatedAt = now
	conversation.UpdatedAt = now

	clone := *conversation
	clone.Messages = nil
	s.conversations[conversation.ID] = &clone
	return nil
}

func (s *ConversationStore) FindByID(id string) (*models.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	conv, ok := s.conversations[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	clone := *conv
	return &clone, nil
}

func (s *ConversationStore) ListByUser(userID string) ([]models.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Conversation, 0)
	for _, conv := range s.conversations {
		if conv.UserID != userID {
			continue
		}
		clone := *conv
		if msgs := s.messages[conv.ID]; len(msgs) > 0 {
			clone.Messages = []models.Message{msgs[len(msgs)-1]}
		}
		result = append(result, clone)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].UpdatedAt.After(result[j].UpdatedAt)
	})
	return result, nil
}

func (s *ConversationStore) UpdateTitle(id, title string) (*models.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.conversations[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	conv.Title = title
	conv.UpdatedAt = time.Now()

	clone := *conv
	return &clone, nil
}

func (s *ConversationStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.conversations[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(s.conversations, id)
	delete(s.messages, id)
	return nil
}

func (s *ConversationStore) AppendMessages(conversationID string, messages []*models.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.conversations[conversationID]
	if !ok {
		return repositories.ErrNotFound
	}

	now := time.Now()
	for _, msg := range messages {
		msg.CreatedAt = now
		s.messages[conversationID] = append(s.messages[conversationID], *msg)
	}
	conv.UpdatedAt = now
	return nil
}

func (s *ConversationStore) ListMessages(conversationID string) ([]models.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	msgs := s.messages[conversationID]
	result := make([]models.Message, len(msgs))
	copy(result, msgs)
	return result, nil
}
