package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/imagine-ke/imagine-api/internal/models"
)

func TestInsertAndFind(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	id, err := store.Insert(ctx, "question", models.Question{Mode: "arts", Text: "q1", Locale: "en-KE"})
	require.NoError(t, err)
	assert.Len(t, id, 24, "insert returns a hex object id")

	_, err = store.Insert(ctx, "question", models.Question{Mode: "child", Text: "q2", Locale: "en-KE"})
	require.NoError(t, err)

	docs, err := store.Find(ctx, "question", bson.M{"mode": "arts"}, 10)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "q1", docs[0]["text"])
	assert.Contains(t, docs[0], "_id")
}

func TestFindLimitAndEmptyFilter(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	for i := 0; i < 5; i++ {
		_, err := store.Insert(ctx, "chatmessage", models.ChatMessage{Username: "u", Text: "t"})
		require.NoError(t, err)
	}

	docs, err := store.Find(ctx, "chatmessage", bson.M{}, 3)
	require.NoError(t, err)
	assert.Len(t, docs, 3)

	docs, err = store.Find(ctx, "chatmessage", nil, 0)
	require.NoError(t, err)
	assert.Len(t, docs, 5, "zero limit means no limit")
}

func TestFindMissingCollection(t *testing.T) {
	docs, err := NewStore().Find(context.Background(), "nope", bson.M{}, 10)
	require.NoError(t, err)
	assert.Empty(t, docs)
	assert.NotNil(t, docs)
}

func TestCount(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	_, err := store.Insert(ctx, "answer", models.Answer{Mode: "arts", QuestionText: "q", AnswerText: "a"})
	require.NoError(t, err)
	_, err = store.Insert(ctx, "answer", models.Answer{Mode: "child", QuestionText: "q", AnswerText: "a"})
	require.NoError(t, err)

	total, err := store.Count(ctx, "answer", bson.M{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)

	arts, err := store.Count(ctx, "answer", bson.M{"mode": "arts"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, arts)
}

func TestCollectionNamesSorted(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	_, err := store.Insert(ctx, "mode", models.Mode{Key: "arts", Title: "t", Description: "d", Color: "#000"})
	require.NoError(t, err)
	_, err = store.Insert(ctx, "answer", models.Answer{Mode: "arts", QuestionText: "q", AnswerText: "a"})
	require.NoError(t, err)

	names, err := store.CollectionNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"answer", "mode"}, names)
}

func TestUnavailableStore(t *testing.T) {
	ctx := context.Background()
	store := NewUnavailableStore()

	assert.False(t, store.Available())

	_, err := store.Insert(ctx, "mode", models.Mode{Key: "arts", Title: "t", Description: "d", Color: "#000"})
	assert.ErrorIs(t, err, models.ErrStorageUnavailable)

	docs, err := store.Find(ctx, "mode", bson.M{}, 10)
	require.NoError(t, err)
	assert.Empty(t, docs)

	count, err := store.Count(ctx, "mode", bson.M{})
	require.NoError(t, err)
	assert.Zero(t, count)

	names, err := store.CollectionNames(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)
}
