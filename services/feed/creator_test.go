package feed

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeModel struct {
	reply   string
	err     error
	prompts []string
}

func (f *fakeModel) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.reply, f.err
}

const sampleDraft = `{"title":"Dust-Free Monsoon","excerpt":"Keep the dust out.","content":"# Tips\nClose windows.","category":"Seasonal","readTime":"4 min read"}`

func TestCreatorCreate(t *testing.T) {
	model := &fakeModel{reply: sampleDraft}
	c := NewCreator(model)
	c.now = func() time.Time { return time.Date(2025, 7, 4, 12, 0, 0, 0, time.UTC) }

	post, err := c.Create(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, post.ID)
	assert.Equal(t, "Dust-Free Monsoon", post.Title)
	assert.Equal(t, "Jul 04, 2025", post.Date)
	assert.Equal(t, DefaultAuthor, post.Author)
	assert.Equal(t, "Seasonal", post.Category)
	assert.Equal(t, "4 min read", post.ReadTime)
	assert.NotEmpty(t, post.Image)
	require.Len(t, model.prompts, 1)
	assert.Contains(t, model.prompts[0], topics[0])
}

func TestCreatorRotatesTopics(t *testing.T) {
	model := &fakeModel{reply: sampleDraft}
	c := NewCreator(model)
	for i := 0; i < len(topics)+1; i++ {
		_, err := c.Create(context.Background())
		require.NoError(t, err)
	}
	assert.Contains(t, model.prompts[1], topics[1])
	assert.Contains(t, model.prompts[len(topics)], topics[0])
}

func TestCreatorFencedReplyAndDefaults(t *testing.T) {
	model := &fakeModel{reply: "```json\n{\"title\":\"T\",\"content\":\"C\"}\n```"}
	post, err := NewCreator(model).Create(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "T", post.Title)
	assert.Equal(t, "Cleaning Tips", post.Category)
	assert.Equal(t, "5 min read", post.ReadTime)
}

func TestCreatorRejectsBadReplies(t *testing.T) {
	_, err := NewCreator(&fakeModel{reply: `{"title":"","content":"body"}`}).Create(context.Background())
	assert.ErrorIs(t, err, ErrInvalidDraft)

	_, err = NewCreator(&fakeModel{reply: "sorry, I can't"}).Create(context.Background())
	assert.Error(t, err)

	boom := errors.New("quota")
	_, err = NewCreator(&fakeModel{err: boom}).Create(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestStripFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripFences("```\n{\"a\":1}```"))
	assert.Equal(t, `{"a":1}`, stripFences("  {\"a\":1} "))
}
