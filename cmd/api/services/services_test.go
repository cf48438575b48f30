package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/eventbus"
	"blog-backend/events"
	"blog-backend/models"
	"blog-backend/repositories"
	"blog-backend/repositories/memory"
)

const testTopic = "blog.events"

type fixture struct {
	blog *BlogService
	tags *TagService
	bus  *eventbus.MemoryEventBus
	now  time.Time
}

// tick advances the shared fake clock by one second.
func (f *fixture) tick() { f.now = f.now.Add(time.Second) }

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	bus := eventbus.NewMemoryEventBus()
	pub := events.NewPublisher(bus, eventbus.NewTopic(testTopic))

	f := &fixture{
		blog: NewBlogService(store.Posts(), store.Tags(), pub, BlogOptions{}),
		tags: NewTagService(store.Tags(), store.Posts(), pub),
		bus:  bus,
		now:  time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	clock := func() time.Time { return f.now }
	f.blog.now = clock
	f.tags.now = clock
	return f
}

func (f *fixture) eventTypes() []string {
	var out []string
	for _, e := range f.bus.Events(testTopic) {
		out = append(out, e.Type)
	}
	return out
}

func (f *fixture) mustTag(t *testing.T, name string) *models.Tag {
	t.Helper()
	tag, err := f.tags.CreateTag(context.Background(), models.Tag{Name: name})
	require.NoError(t, err)
	return tag
}

func (f *fixture) mustPost(t *testing.T, in models.BlogPost) *models.BlogPost {
	t.Helper()
	p, err := f.blog.CreatePost(context.Background(), in)
	require.NoError(t, err)
	f.tick()
	return p
}

type failingSetTags struct {
	repositories.TagRepository
}

func (failingSetTags) SetPostTags(context.Context, string, []string) error {
	return errors.New("tag store unavailable")
}

func TestCreatePostRemovesPostWhenTaggingFails(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	tag := &models.Tag{ID: "t-go", Name: "Go"}
	require.NoError(t, store.Tags().CreateTag(ctx, tag))

	svc := NewBlogService(store.Posts(), failingSetTags{store.Tags()}, nil, BlogOptions{})
	_, err := svc.CreatePost(ctx, models.BlogPost{Title: "Tagged", TagIDs: []string{tag.ID}})
	require.Error(t, err)

	posts, total, err := store.Posts().ListPosts(ctx, repositories.PostQuery{})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, posts)

	exists, err := store.Posts().SlugExists(ctx, "tagged", "")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCreateTagRejectsDuplicateNameIgnoringCase(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.tags.CreateTag(ctx, models.Tag{Name: "  Go  ", Color: "#00ADD8"})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, "Go", first.Name)

	_, err = f.tags.CreateTag(ctx, models.Tag{Name: "Go"})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = f.tags.CreateTag(ctx, models.Tag{Name: "go"})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCreateTagRequiresName(t *testing.T) {
	f := newFixture(t)

	_, err := f.tags.CreateTag(context.Background(), models.Tag{Name: "   "})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestTagRoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.tags.CreateTag(ctx, models.Tag{Name: "Databases", Color: "#336791"})
	require.NoError(t, err)

	got, err := f.tags.GetTag(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Databases", got.Name)
	assert.Equal(t, "#336791", got.Color)
	assert.False(t, got.UpdatedAt.Before(got.CreatedAt))

	byName, err := f.tags.GetTagByName(ctx, "DATABASES")
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, created.ID, byName.ID)

	missing, err := f.tags.GetTag(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUpdateTag(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	goTag := f.mustTag(t, "Go")
	f.mustTag(t, "Rust")

	_, err := f.tags.UpdateTag(ctx, models.Tag{ID: "", Name: "x"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = f.tags.UpdateTag(ctx, models.Tag{ID: "missing", Name: "x"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.tags.UpdateTag(ctx, models.Tag{ID: goTag.ID, Name: "RUST"})
	assert.ErrorIs(t, err, ErrConflict)

	f.tick()
	updated, err := f.tags.UpdateTag(ctx, models.Tag{ID: goTag.ID, Name: " golang ", Color: "#fff"})
	require.NoError(t, err)
	assert.Equal(t, "golang", updated.Name)
	assert.Equal(t, goTag.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(goTag.UpdatedAt))

	// Renaming to its own name in another case is not a conflict.
	_, err = f.tags.UpdateTag(ctx, models.Tag{ID: goTag.ID, Name: "GOLANG"})
	assert.NoError(t, err)
}

func TestDeleteTag(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	tag := f.mustTag(t, "Go")

	ok, err := f.tags.DeleteTag(ctx, "  ")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = f.tags.DeleteTag(ctx, tag.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.tags.DeleteTag(ctx, tag.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Equal(t, []string{"tag.created", "tag.deleted"}, f.eventTypes())
}

func TestTagAssociationsAreSetOperations(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	goTag := f.mustTag(t, "Go")
	rust := f.mustTag(t, "Rust")
	post := f.mustPost(t, models.BlogPost{Title: "Hello", Content: "hi"})

	ok, err := f.tags.AddTagsToPost(ctx, "", []string{goTag.ID})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = f.tags.AddTagsToPost(ctx, post.ID, []string{goTag.ID, rust.ID, goTag.ID, "unknown"})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.tags.AddTagsToPost(ctx, post.ID, []string{rust.ID})
	require.NoError(t, err)
	assert.False(t, ok, "adding an attached tag again changes nothing")

	tags, err := f.tags.GetTagsForPost(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "Go", tags[0].Name)
	assert.Equal(t, "Rust", tags[1].Name)
	assert.EqualValues(t, 1, tags[0].PostCount)

	ok, err = f.tags.RemoveTagsFromPost(ctx, post.ID, []string{goTag.ID})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.tags.RemoveTagsFromPost(ctx, post.ID, []string{goTag.ID})
	require.NoError(t, err)
	assert.False(t, ok, "removing a detached tag again changes nothing")

	_, err = f.tags.AddTagsToPost(ctx, "ghost-1", []string{goTag.ID})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetTagsPaginated(t *testing.T) {
	f := newFixture(t)
	for _, n := range []string{"alpha", "beta", "gamma", "delta", "epsilon"} {
		f.mustTag(t, n)
	}

	page, err := f.tags.GetTagsPaginated(context.Background(), 2, 2, "")
	require.NoError(t, err)
	assert.EqualValues(t, 5, page.TotalCount)
	assert.Equal(t, 3, page.TotalPages())
	assert.True(t, page.HasPreviousPage())
	assert.True(t, page.HasNextPage())
	require.Len(t, page.Items, 2)
	assert.Equal(t, "delta", page.Items[0].Name)
	assert.Equal(t, "epsilon", page.Items[1].Name)
}

func TestCreatePostStampsDerivedFields(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	goTag := f.mustTag(t, "Go")

	post, err := f.blog.CreatePost(ctx, models.BlogPost{
		Title:   "  Héllo, Wörld!  ",
		Content: "# Heading\n\nSome **bold** text here.",
		Author:  "alice",
		TagIDs:  []string{goTag.ID, "unknown"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, post.ID)
	assert.Equal(t, "Héllo, Wörld!", post.Title)
	assert.Equal(t, "hello-world", post.Slug)
	assert.Equal(t, "Heading Some bold text here.", post.Excerpt)
	assert.Equal(t, f.now, post.CreatedAt)
	assert.Equal(t, post.CreatedAt, post.UpdatedAt)
	assert.Zero(t, post.ViewCount)
	require.Len(t, post.Tags, 1)
	assert.Equal(t, "Go", post.Tags[0].Name)

	_, err = f.blog.CreatePost(ctx, models.BlogPost{Title: " "})
	assert.ErrorIs(t, err, ErrValidation)

	assert.Equal(t, []string{"tag.created", "post.created"}, f.eventTypes())
}

func TestCreatePostSlugs(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a := f.mustPost(t, models.BlogPost{Title: "Same Title"})
	b := f.mustPost(t, models.BlogPost{Title: "Same Title"})
	assert.Equal(t, "same-title", a.Slug)
	assert.Equal(t, "same-title-2", b.Slug)

	_, err := f.blog.CreatePost(ctx, models.BlogPost{Title: "Other", Slug: "Same Title"})
	assert.ErrorIs(t, err, ErrConflict)

	slug, err := f.blog.GenerateSlug(ctx, "Same Title", a.ID)
	require.NoError(t, err)
	assert.Equal(t, "same-title", slug)

	slug, err = f.blog.GenerateSlug(ctx, "Same Title", "")
	require.NoError(t, err)
	assert.Equal(t, "same-title-3", slug)

	_, err = f.blog.GenerateSlug(ctx, "", "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdatePost(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	goTag := f.mustTag(t, "Go")
	rust := f.mustTag(t, "Rust")
	post := f.mustPost(t, models.BlogPost{Title: "First", Content: "x", TagIDs: []string{goTag.ID}})

	_, err := f.blog.UpdatePost(ctx, models.BlogPost{ID: "ghost-1", Title: "t"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.blog.UpdatePost(ctx, models.BlogPost{ID: post.ID, Title: ""})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = f.blog.UpdatePost(ctx, models.BlogPost{Title: "t"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = f.blog.GetPost(ctx, post.ID, true)
	require.NoError(t, err)

	// nil TagIDs keeps the current tags.
	updated, err := f.blog.UpdatePost(ctx, models.BlogPost{ID: post.ID, Title: "Second", Content: "y"})
	require.NoError(t, err)
	assert.Equal(t, "Second", updated.Title)
	assert.Equal(t, post.Slug, updated.Slug)
	assert.Equal(t, post.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(post.UpdatedAt))
	assert.EqualValues(t, 1, updated.ViewCount)
	assert.Equal(t, []string{goTag.ID}, updated.TagIDs)

	updated, err = f.blog.UpdatePost(ctx, models.BlogPost{ID: post.ID, Title: "Second", TagIDs: []string{rust.ID}})
	require.NoError(t, err)
	assert.Equal(t, []string{rust.ID}, updated.TagIDs)

	updated, err = f.blog.UpdatePost(ctx, models.BlogPost{ID: post.ID, Title: "Second", TagIDs: []string{}})
	require.NoError(t, err)
	assert.Empty(t, updated.Tags)
}

func TestGetPostIncrementsViewCountAtomically(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	post := f.mustPost(t, models.BlogPost{Title: "Popular"})

	got, err := f.blog.GetPost(ctx, post.ID, false)
	require.NoError(t, err)
	assert.Zero(t, got.ViewCount)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = f.blog.GetPost(ctx, post.ID, true)
		}()
	}
	wg.Wait()

	got, err = f.blog.GetPost(ctx, post.ID, true)
	require.NoError(t, err)
	assert.EqualValues(t, 21, got.ViewCount)

	missing, err := f.blog.GetPost(ctx, "ghost-1", true)
	require.NoError(t, err)
	assert.Nil(t, missing)

	bySlug, err := f.blog.GetPostBySlug(ctx, post.Slug, false)
	require.NoError(t, err)
	require.NotNil(t, bySlug)
	assert.Equal(t, post.ID, bySlug.ID)
}

func TestDeletePost(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	post := f.mustPost(t, models.BlogPost{Title: "Doomed"})

	ok, err := f.blog.DeletePost(ctx, "ghost-1")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = f.blog.DeletePost(ctx, post.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := f.blog.GetPost(ctx, post.ID, false)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSetFeatured(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	post := f.mustPost(t, models.BlogPost{Title: "Star"})

	ok, err := f.blog.SetFeatured(ctx, post.ID, true)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := f.blog.GetPost(ctx, post.ID, false)
	require.NoError(t, err)
	assert.True(t, got.IsFeatured)
	assert.True(t, got.UpdatedAt.After(post.UpdatedAt))

	ok, err = f.blog.SetFeatured(ctx, "post-1", true)
	require.NoError(t, err)
	assert.False(t, ok)

	featured, err := f.blog.GetFeaturedPosts(ctx, 0)
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, post.ID, featured[0].ID)

	evts := f.bus.Events(testTopic)
	var last events.PostEvent
	require.NoError(t, json.Unmarshal(evts[len(evts)-1].Payload, &last))
	assert.Equal(t, events.PostFeatured, last.Type)
	assert.True(t, last.IsFeatured)
}

func TestGetPostsSearch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		f.mustPost(t, models.BlogPost{Title: "Rust tips", Content: "ownership"})
	}
	f.mustPost(t, models.BlogPost{Title: "Go tips", Content: "goroutines"})
	f.mustPost(t, models.BlogPost{Title: "Notes", Content: "Trusting the borrow checker"})

	page, err := f.blog.GetPosts(ctx, repositories.PostQuery{Page: 1, PageSize: 10, SearchTerm: "rust"})
	require.NoError(t, err)
	assert.EqualValues(t, 13, page.TotalCount)
	assert.LessOrEqual(t, len(page.Items), 10)
	assert.Equal(t, 2, page.TotalPages())
	for _, p := range page.Items {
		matches := strings.Contains(strings.ToLower(p.Title), "rust") ||
			strings.Contains(strings.ToLower(p.Content), "rust")
		assert.True(t, matches, "unexpected post %q", p.Title)
	}

	// Default ordering is newest first.
	assert.Equal(t, "Notes", page.Items[0].Title)
}

func TestGetRecentPostsLimit(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 7; i++ {
		f.mustPost(t, models.BlogPost{Title: "Post"})
	}

	recent, err := f.blog.GetRecentPosts(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, recent, DefaultListLimit)

	recent, err = f.blog.GetRecentPosts(context.Background(), 3)
	require.NoError(t, err)
	assert.Len(t, recent, 3)
}

func TestCalculateReadingTime(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, 0, f.blog.CalculateReadingTime(""))
	assert.Equal(t, 1, f.blog.CalculateReadingTime("just a few words"))
	assert.Equal(t, 2, f.blog.CalculateReadingTime(strings.Repeat("word ", 201)))
}

type countingPublisher struct{ calls int }

func (p *countingPublisher) Publish(context.Context, events.Event) { p.calls++ }

func TestServicesAcceptNilPublisher(t *testing.T) {
	store := memory.NewStore()
	svc := NewTagService(store.Tags(), store.Posts(), nil)

	_, err := svc.CreateTag(context.Background(), models.Tag{Name: "Go"})
	assert.NoError(t, err)

	pub := &countingPublisher{}
	svc = NewTagService(store.Tags(), store.Posts(), pub)
	_, err = svc.CreateTag(context.Background(), models.Tag{Name: "Rust"})
	require.NoError(t, err)
	assert.Equal(t, 1, pub.calls)
}

func TestErrorsWrapSentinels(t *testing.T) {
	f := newFixture(t)

	_, err := f.tags.CreateTag(context.Background(), models.Tag{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
	assert.False(t, errors.Is(err, ErrConflict))
}
