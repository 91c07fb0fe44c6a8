package usecase

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/imagine-ke/imagine-api/internal/models"
	"github.com/imagine-ke/imagine-api/internal/repo"
)

const (
	referenceListLimit = 10
	blogListLimit      = 20
)

// ContentUsecase exposes the read and write operations behind the public
// endpoints. List methods returning typed slices are schema-filtered: raw
// documents are decoded into the entity structs, which drops _id and any
// stray fields. ListAnswers and ListChatMessages intentionally return raw
// documents; unifying them with the filtered reads would change the output
// shape clients already see.
type ContentUsecase interface {
	ListQuestions(ctx context.Context, mode string, limit int64) ([]models.Question, error)
	CreateQuestion(ctx context.Context, question models.Question) (string, error)
	CreateAnswer(ctx context.Context, answer models.Answer) (string, error)
	ListAnswers(ctx context.Context, mode string, limit int64) ([]bson.M, error)
	ListModes(ctx context.Context) ([]models.Mode, error)
	ListPricingPlans(ctx context.Context) ([]models.PricingPlan, error)
	ListBlogPosts(ctx context.Context) ([]models.BlogPost, error)
	CreateBlogPost(ctx context.Context, post models.BlogPost) (string, error)
	CreateContactMessage(ctx context.Context, message models.ContactMessage) (string, error)
	CreateChatMessage(ctx context.Context, message models.ChatMessage) (string, error)
	ListChatMessages(ctx context.Context, limit int64) ([]bson.M, error)
}

type contentUsecase struct {
	store repo.Store
}

func NewContentUsecase(store repo.Store) ContentUsecase {
	return &contentUsecase{store: store}
}

func (u *contentUsecase) ListQuestions(ctx context.Context, mode string, limit int64) ([]models.Question, error) {
	docs, err := u.store.Find(ctx, models.CollectionQuestion, modeFilter(mode), limit)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Question](docs)
}

func (u *contentUsecase) CreateQuestion(ctx context.Context, question models.Question) (string, error) {
	if !models.ValidModeKey(question.Mode) {
		return "", models.ErrInvalidMode
	}
	if question.Locale == "" {
		question.Locale = models.DefaultLocale
	}
	return u.store.Insert(ctx, models.CollectionQuestion, question)
}

func (u *contentUsecase) CreateAnswer(ctx context.Context, answer models.Answer) (string, error) {
	return u.store.Insert(ctx, models.CollectionAnswer, answer)
}

func (u *contentUsecase) ListAnswers(ctx context.Context, mode string, limit int64) ([]bson.M, error) {
	return u.store.Find(ctx, models.CollectionAnswer, modeFilter(mode), limit)
}

func (u *contentUsecase) ListModes(ctx context.Context) ([]models.Mode, error) {
	docs, err := u.store.Find(ctx, models.CollectionMode, bson.M{}, referenceListLimit)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		// unseeded store: serve the defaults without writing them
		return DefaultModes()
	}
	return decodeAll[models.Mode](docs)
}

func (u *contentUsecase) ListPricingPlans(ctx context.Context) ([]models.PricingPlan, error) {
	docs, err := u.store.Find(ctx, models.CollectionPricingPlan, bson.M{}, referenceListLimit)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return DefaultPricingPlans()
	}
	return decodeAll[models.PricingPlan](docs)
}

func (u *contentUsecase) ListBlogPosts(ctx context.Context) ([]models.BlogPost, error) {
	docs, err := u.store.Find(ctx, models.CollectionBlogPost, bson.M{}, blogListLimit)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.BlogPost](docs)
}

func (u *contentUsecase) CreateBlogPost(ctx context.Context, post models.BlogPost) (string, error) {
	if post.Author == "" {
		post.Author = models.DefaultAuthor
	}
	if post.PublishedAt.IsZero() {
		post.PublishedAt = time.Now().UTC()
	}
	return u.store.Insert(ctx, models.CollectionBlogPost, post)
}

func (u *contentUsecase) CreateContactMessage(ctx context.Context, message models.ContactMessage) (string, error) {
	return u.store.Insert(ctx, models.CollectionContactMessage, message)
}

func (u *contentUsecase) CreateChatMessage(ctx context.Context, message models.ChatMessage) (string, error) {
	return u.store.Insert(ctx, models.CollectionChatMessage, message)
}

func (u *contentUsecase) ListChatMessages(ctx context.Context, limit int64) ([]bson.M, error) {
	return u.store.Find(ctx, models.CollectionChatMessage, bson.M{}, limit)
}

func modeFilter(mode string) bson.M {
	if mode == "" {
		return bson.M{}
	}
	return bson.M{"mode": mode}
}

func decodeAll[E any](docs []bson.M) ([]E, error) {
	entities := make([]E, 0, len(docs))
	for _, doc := range docs {
		data, err := bson.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("marshal document: %w", err)
		}
		var entity E
		if err := bson.Unmarshal(data, &entity); err != nil {
			return nil, fmt.Errorf("decode document: %w", err)
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
