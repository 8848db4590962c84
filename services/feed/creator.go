package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"readycleans/models"

	"github.com/google/uuid"
)

const (
	DefaultAuthor = "ReadyCleans Team"
	defaultImage  = "/images/blog/default.jpg"
	dateLayout    = "Jan 02, 2006"
)

// ErrInvalidDraft is returned when the model reply lacks a title or body.
var ErrInvalidDraft = errors.New("generated post is missing title or content")

// ContentModel produces a JSON document for a prompt.
type ContentModel interface {
	GenerateJSON(ctx context.Context, prompt string) (string, error)
}

var topics = []string{
	"Move-out cleaning checklist for Phoenix renters",
	"How Airbnb hosts cut turnover time between guests",
	"Keeping desert dust out of your home during monsoon season",
	"Deep cleaning your oven without harsh chemicals",
	"What a standard clean covers and what it doesn't",
	"Streak-free interior windows in the Arizona sun",
	"Fridge organization tips after a deep clean",
	"Preparing your home for a same-day cleaning visit",
}

type draft struct {
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
	Category string `json:"category"`
	ReadTime string `json:"readTime"`
}

// Creator drafts one post per call, rotating through the topic list.
type Creator struct {
	model ContentModel
	now   func() time.Time

	mu   sync.Mutex
	next int
}

func NewCreator(model ContentModel) *Creator {
	return &Creator{model: model, now: time.Now}
}

func (c *Creator) nextTopic() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := topics[c.next%len(topics)]
	c.next++
	return t
}

// Create asks the model for a post on the next topic and fills in the
// fields the model is not trusted with.
func (c *Creator) Create(ctx context.Context) (models.BlogPost, error) {
	topic := c.nextTopic()
	raw, err := c.model.GenerateJSON(ctx, buildPrompt(topic))
	if err != nil {
		return models.BlogPost{}, fmt.Errorf("generate post %q: %w", topic, err)
	}

	var d draft
	if err := json.Unmarshal([]byte(stripFences(raw)), &d); err != nil {
		return models.BlogPost{}, fmt.Errorf("parse generated post: %w", err)
	}
	if strings.TrimSpace(d.Title) == "" || strings.TrimSpace(d.Content) == "" {
		return models.BlogPost{}, ErrInvalidDraft
	}

	post := models.BlogPost{
		ID:       uuid.NewString(),
		Title:    strings.TrimSpace(d.Title),
		Excerpt:  strings.TrimSpace(d.Excerpt),
		Content:  d.Content,
		Date:     c.now().Format(dateLayout),
		Author:   DefaultAuthor,
		Category: d.Category,
		ReadTime: d.ReadTime,
		Image:    defaultImage,
	}
	if post.Category == "" {
		post.Category = "Cleaning Tips"
	}
	if post.ReadTime == "" {
		post.ReadTime = "5 min read"
	}
	return post, nil
}

func buildPrompt(topic string) string {
	return fmt.Sprintf(`Write a blog post for ReadyCleans, a home cleaning company serving the Phoenix metro area.
Topic: %s

Respond with a single JSON object with these fields:
"title" (string), "excerpt" (one or two sentences), "content" (the full post in markdown),
"category" (short label), "readTime" (for example "5 min read").`, topic)
}

// stripFences removes a surrounding markdown code fence, with or without a
// language tag.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
