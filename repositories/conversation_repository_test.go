package repositories_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"chat-app/models"
	"chat-app/repositories"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, models.Migrate(db))
	return db
}

func newConversation(t *testing.T, repo *repositories.GormConversationRepository, userID, title string) *models.Conversation {
	t.Helper()

	conv := &models.Conversation{
		ID:     uuid.New().String(),
		Title:  title,
		UserID: userID,
	}
	require.NoError(t, repo.Create(conv))
	return conv
}

func TestUserRepository(t *testing.T) {
	repo := repositories.NewGormUserRepository(newTestDB(t))

	user := &models.User{
		ID:       uuid.New().String(),
		Username: "alice",
		Email:    "a@x.com",
		Password: "hashed",
	}
	require.NoError(t, repo.Create(user))

	byEmail, err := repo.FindByEmail("a@x.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	byID, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)

	_, err = repo.FindByEmail("nobody@x.com")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	_, err = repo.FindByID("missing")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestConversationRepository_CreateAndFind(t *testing.T) {
	repo := repositories.NewGormConversationRepository(newTestDB(t))

	conv := newConversation(t, repo, "user-1", "chat")

	found, err := repo.FindByID(conv.ID)
	require.NoError(t, err)
	assert.Equal(t, "chat", found.Title)
	assert.Equal(t, "user-1", found.UserID)

	_, err = repo.FindByID("missing")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestConversationRepository_AppendAndListMessages(t *testing.T) {
	repo := repositories.NewGormConversationRepository(newTestDB(t))
	conv := newConversation(t, repo, "user-1", "chat")

	first := &models.Message{
		ID:             uuid.New().String(),
		ConversationID: conv.ID,
		SenderType:     models.SenderUser,
		SenderID:       "user-1",
		Content:        "hi",
	}
	require.NoError(t, repo.AppendMessages(conv.ID, []*models.Message{first}))

	time.Sleep(5 * time.Millisecond)

	second := &models.Message{
		ID:             uuid.New().String(),
		ConversationID: conv.ID,
		SenderType:     models.SenderSystem,
		Content:        "hello back",
	}
	require.NoError(t, repo.AppendMessages(conv.ID, []*models.Message{second}))

	messages, err := repo.ListMessages(conv.ID)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "hi", messages[0].Content, "ascending by creation time")
	assert.Equal(t, "hello back", messages[1].Content)

	after, err := repo.FindByID(conv.ID)
	require.NoError(t, err)
	assert.False(t, after.UpdatedAt.Before(conv.UpdatedAt), "append bumps updated_at")
}

func TestConversationRepository_ListByUser(t *testing.T) {
	repo := repositories.NewGormConversationRepository(newTestDB(t))

	older := newConversation(t, repo, "user-1", "older")
	time.Sleep(5 * time.Millisecond)
	newer := newConversation(t, repo, "user-1", "newer")
	newConversation(t, repo, "user-2", "other user")

	msg := &models.Message{
		ID:             uuid.New().String(),
		ConversationID: older.ID,
		SenderType:     models.SenderUser,
		SenderID:       "user-1",
		Content:        "latest in older",
	}
	require.NoError(t, repo.AppendMessages(older.ID, []*models.Message{msg}))

	list, err := repo.ListByUser("user-1")
	require.NoError(t, err)
	require.Len(t, list, 2)

	// The append moved "older" to the front.
	assert.Equal(t, older.ID, list[0].ID)
	require.Len(t, list[0].Messages, 1)
	assert.Equal(t, "latest in older", list[0].Messages[0].Content)

	assert.Equal(t, newer.ID, list[1].ID)
	assert.Empty(t, list[1].Messages)
}

func TestConversationRepository_DeleteCascades(t *testing.T) {
	repo := repositories.NewGormConversationRepository(newTestDB(t))
	conv := newConversation(t, repo, "user-1", "chat")

	msg := &models.Message{
		ID:             uuid.New().String(),
		ConversationID: conv.ID,
		SenderType:     models.SenderUser,
		SenderID:       "user-1",
		Content:        "hi",
	}
	require.NoError(t, repo.AppendMessages(conv.ID, []*models.Message{msg}))

	require.NoError(t, repo.Delete(conv.ID))

	_, err := repo.FindByID(conv.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	messages, err := repo.ListMessages(conv.ID)
	require.NoError(t, err)
	assert.Empty(t, messages)

	assert.ErrorIs(t, repo.Delete(conv.ID), repositories.ErrNotFound)
}

func TestConversationRepository_UpdateTitle(t *testing.T) {
	repo := repositories.NewGormConversationRepository(newTestDB(t))
	conv := newConversation(t, repo, "user-1", "old")

	updated, err := repo.UpdateTitle(conv.ID, "new")
	require.NoError(t, err)
	assert.Equal(t, "new", updated.Title)

	_, err = repo.UpdateTitle("missing", "new")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
