package feed

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"readycleans/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memCache struct {
	posts       []models.BlogPost
	has         bool
	getErr      error
	sets        int
	invalidated int
}

func (m *memCache) GetPosts(ctx context.Context) ([]models.BlogPost, bool, error) {
	return m.posts, m.has, m.getErr
}

func (m *memCache) SetPosts(ctx context.Context, posts []models.BlogPost) error {
	m.posts, m.has = posts, true
	m.sets++
	return nil
}

func (m *memCache) Invalidate(ctx context.Context) error {
	m.posts, m.has = nil, false
	m.invalidated++
	return nil
}

func newTestService(t *testing.T, cache PostCache, model ContentModel) *Service {
	t.Helper()
	store := NewFileStore(filepath.Join(t.TempDir(), "blogs.json"))
	var creator *Creator
	if model != nil {
		creator = NewCreator(model)
	}
	return NewService(store, cache, creator, zap.NewNop())
}

func TestServiceListNewestFirst(t *testing.T) {
	svc := newTestService(t, nil, nil)
	_, err := svc.store.Append(models.BlogPost{ID: "old"})
	require.NoError(t, err)
	_, err = svc.store.Append(models.BlogPost{ID: "new"})
	require.NoError(t, err)

	posts, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "new", posts[0].ID)
	assert.Equal(t, "old", posts[1].ID)
}

func TestServiceListUsesCache(t *testing.T) {
	cache := &memCache{}
	svc := newTestService(t, cache, nil)
	_, err := svc.store.Append(models.BlogPost{ID: "a"})
	require.NoError(t, err)

	_, err = svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets)

	cache.posts = []models.BlogPost{{ID: "cached"}}
	posts, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "cached", posts[0].ID)
}

func TestServiceListFallsBackOnCacheError(t *testing.T) {
	cache := &memCache{getErr: errors.New("redis down")}
	svc := newTestService(t, cache, nil)
	_, err := svc.store.Append(models.BlogPost{ID: "a"})
	require.NoError(t, err)

	posts, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "a", posts[0].ID)
}

func TestServiceGet(t *testing.T) {
	svc := newTestService(t, nil, nil)
	_, err := svc.store.Append(models.BlogPost{ID: "a", Title: "A"})
	require.NoError(t, err)

	post, err := svc.Get(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, "A", post.Title)

	_, err = svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestServiceGenerate(t *testing.T) {
	cache := &memCache{}
	svc := newTestService(t, cache, &fakeModel{reply: sampleDraft})

	post, err := svc.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, cache.invalidated)

	posts, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, post.ID, posts[0].ID)
}

func TestServiceGenerateFailures(t *testing.T) {
	_, err := newTestService(t, nil, nil).Generate(context.Background())
	assert.ErrorIs(t, err, ErrGenerationDisabled)

	svc := newTestService(t, nil, &fakeModel{reply: `{"title":"x"}`})
	_, err = svc.Generate(context.Background())
	assert.ErrorIs(t, err, ErrInvalidDraft)
	posts, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, posts)
}
