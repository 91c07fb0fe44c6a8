package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/imagine-ke/imagine-api/internal/models"
	"github.com/imagine-ke/imagine-api/internal/repo/memory"
)

func TestCreateQuestion(t *testing.T) {
	tests := []struct {
		name       string
		question   models.Question
		wantErr    error
		wantLocale string
	}{
		{
			name:       "locale defaults",
			question:   models.Question{Mode: "arts", Text: "Invent a new tradition."},
			wantLocale: "en-KE",
		},
		{
			name:       "explicit locale kept",
			question:   models.Question{Mode: "child", Text: "Describe a friendly robot.", Locale: "sw-KE"},
			wantLocale: "sw-KE",
		},
		{
			name:     "mode outside the fixed set",
			question: models.Question{Mode: "cooking", Text: "whatever"},
			wantErr:  models.ErrInvalidMode,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := memory.NewStore()
			content := NewContentUsecase(store)

			id, err := content.CreateQuestion(ctx, tt.question)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				count, err := store.Count(ctx, models.CollectionQuestion, bson.M{})
				require.NoError(t, err)
				assert.Zero(t, count)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, id)

			questions, err := content.ListQuestions(ctx, tt.question.Mode, 10)
			require.NoError(t, err)
			require.Len(t, questions, 1)
			assert.Equal(t, tt.wantLocale, questions[0].Locale)
		})
	}
}

func TestListModesSynthesizesWithoutWrite(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	content := NewContentUsecase(store)

	modes, err := content.ListModes(ctx)
	require.NoError(t, err)
	assert.Len(t, modes, 4)

	count, err := store.Count(ctx, models.CollectionMode, bson.M{})
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestListModesPrefersStoredDocuments(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	content := NewContentUsecase(store)

	_, err := store.Insert(ctx, models.CollectionMode, models.Mode{
		Key: "arts", Title: "Arts", Description: "d", Color: "#000",
	})
	require.NoError(t, err)

	modes, err := content.ListModes(ctx)
	require.NoError(t, err)
	require.Len(t, modes, 1)
	assert.Equal(t, "arts", modes[0].Key)
}

func TestCreateBlogPostDefaults(t *testing.T) {
	ctx := context.Background()
	content := NewContentUsecase(memory.NewStore())

	before := time.Now().Add(-time.Second)
	_, err := content.CreateBlogPost(ctx, models.BlogPost{
		Title:   "t",
		Slug:    "s",
		Excerpt: "e",
		Content: "c",
	})
	require.NoError(t, err)

	posts, err := content.ListBlogPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, models.DefaultAuthor, posts[0].Author)
	assert.True(t, posts[0].PublishedAt.After(before))
}

func TestCreateBlogPostKeepsSuppliedFields(t *testing.T) {
	ctx := context.Background()
	content := NewContentUsecase(memory.NewStore())

	published := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	_, err := content.CreateBlogPost(ctx, models.BlogPost{
		Title:       "t",
		Slug:        "s",
		Excerpt:     "e",
		Content:     "c",
		Author:      "Guest Writer",
		PublishedAt: published,
	})
	require.NoError(t, err)

	posts, err := content.ListBlogPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Guest Writer", posts[0].Author)
	assert.True(t, published.Equal(posts[0].PublishedAt))
}

func TestListAnswersRawKeepsStrayFields(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	content := NewContentUsecase(store)

	_, err := store.Insert(ctx, models.CollectionAnswer, bson.M{
		"mode":          "arts",
		"question_text": "q",
		"answer_text":   "a",
		"stray_field":   "kept",
	})
	require.NoError(t, err)

	docs, err := content.ListAnswers(ctx, "arts", 10)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "kept", docs[0]["stray_field"])
	assert.Contains(t, docs[0], "_id")
}

func TestReadsDegradeToEmptyWithoutStore(t *testing.T) {
	ctx := context.Background()
	content := NewContentUsecase(memory.NewUnavailableStore())

	questions, err := content.ListQuestions(ctx, "", 50)
	require.NoError(t, err)
	assert.Empty(t, questions)

	chat, err := content.ListChatMessages(ctx, 30)
	require.NoError(t, err)
	assert.Empty(t, chat)

	// reference data still synthesizes from the embedded defaults
	modes, err := content.ListModes(ctx)
	require.NoError(t, err)
	assert.Len(t, modes, 4)
}

func TestWritesFailWithoutStore(t *testing.T) {
	ctx := context.Background()
	content := NewContentUsecase(memory.NewUnavailableStore())

	_, err := content.CreateChatMessage(ctx, models.ChatMessage{Username: "u", Text: "t"})
	assert.ErrorIs(t, err, models.ErrStorageUnavailable)
}
