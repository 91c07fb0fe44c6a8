package models

import (
	"time"
)

// Collection names follow the original data layout: the lowercased entity
// name. Existing deployments already hold documents under these names.
const (
	CollectionMode           = "mode"
	CollectionQuestion       = "question"
	CollectionAnswer         = "answer"
	CollectionBlogPost       = "blogpost"
	CollectionContactMessage = "contactmessage"
	CollectionChatMessage    = "chatmessage"
	CollectionPricingPlan    = "pricingplan"
)

const (
	DefaultLocale = "en-KE"
	DefaultAuthor = "IMAGINE Team"
)

// ModeKeys is the fixed set of game modes a question may belong to.
var ModeKeys = []string{"child", "arts", "creative", "technology"}

func ValidModeKey(key string) bool {
	for _, k := range ModeKeys {
		if k == key {
			return true
		}
	}
	return false
}

// Mode is a seeded reference entity describing one of the game's play modes.
// The key is unique among seeded modes by convention, not enforced by the store.
type Mode struct {
	Key         string `bson:"key" json:"key" yaml:"key" validate:"required"`
	Title       string `bson:"title" json:"title" yaml:"title" validate:"required"`
	Description string `bson:"description" json:"description" yaml:"description" validate:"required"`
	Color       string `bson:"color" json:"color" yaml:"color" validate:"required"`
}

// Question is a creative prompt. Mode is a soft label referencing a mode key,
// not a foreign key.
type Question struct {
	Mode   string   `bson:"mode" json:"mode" validate:"required"`
	Text   string   `bson:"text" json:"text" validate:"required"`
	Tags   []string `bson:"tags,omitempty" json:"tags,omitempty"`
	Locale string   `bson:"locale" json:"locale"`
}

type Answer struct {
	Mode          string `bson:"mode" json:"mode" validate:"required"`
	QuestionText  string `bson:"question_text" json:"question_text" validate:"required"`
	AnswerText    string `bson:"answer_text" json:"answer_text" validate:"required"`
	Username      string `bson:"username,omitempty" json:"username,omitempty"`
	PointsAwarded int    `bson:"points_awarded" json:"points_awarded"`
}

type BlogPost struct {
	Title       string    `bson:"title" json:"title" validate:"required"`
	Slug        string    `bson:"slug" json:"slug" validate:"required"`
	Excerpt     string    `bson:"excerpt" json:"excerpt" validate:"required"`
	Content     string    `bson:"content" json:"content" validate:"required"`
	Image       string    `bson:"image,omitempty" json:"image,omitempty"`
	Author      string    `bson:"author" json:"author"`
	PublishedAt time.Time `bson:"published_at" json:"published_at"`
}

type ContactMessage struct {
	Name    string `bson:"name" json:"name" validate:"required"`
	Email   string `bson:"email" json:"email" validate:"required,email"`
	Subject string `bson:"subject" json:"subject" validate:"required"`
	Message string `bson:"message" json:"message" validate:"required"`
}

type ChatMessage struct {
	Username string `bson:"username" json:"username" validate:"required"`
	Text     string `bson:"text" json:"text" validate:"required"`
	Mode     string `bson:"mode,omitempty" json:"mode,omitempty"`
}

type PricingPlan struct {
	Name       string   `bson:"name" json:"name" yaml:"name" validate:"required"`
	PriceMonth float64  `bson:"price_month" json:"price_month" yaml:"price_month"`
	PriceYear  float64  `bson:"price_year" json:"price_year" yaml:"price_year"`
	Features   []string `bson:"features" json:"features" yaml:"features" validate:"required"`
}
