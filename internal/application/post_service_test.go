package application

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/inkpress/inkpress/internal/domain/entity"
	"github.com/inkpress/inkpress/internal/infrastructure/gormdb"
	"github.com/inkpress/inkpress/pkg/apperror"
)

func newPostService(t *testing.T) (*PostService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewPostService(gormdb.NewPostRepository(db), nil, "", nil, "", testLogger()), db
}

func boolPtr(b bool) *bool { return &b }
func uintPtr(v uint) *uint { return &v }

func TestPostCreate(t *testing.T) {
	svc, db := newPostService(t)
	u := seedUser(t, db, "author@example.com", entity.RoleUser)
	cat := seedCategory(t, db, "Go")

	p, err := svc.Create(t.Context(), CreatePostInput{
		Title:      "Hello World!",
		Content:    "first",
		CategoryID: cat.ID,
		AuthorID:   u.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "hello-world", p.Slug)
	assert.False(t, p.Published, "drafts by default")
	assert.Zero(t, p.Views)
	require.NotNil(t, p.Author)
	assert.Equal(t, u.ID, p.Author.ID)

	published, err := svc.Create(t.Context(), CreatePostInput{
		Title:      "Second",
		Content:    "second",
		Published:  boolPtr(true),
		CategoryID: cat.ID,
		AuthorID:   u.ID,
	})
	require.NoError(t, err)
	assert.True(t, published.Published)
}

func TestPostCreateSimilarTitleConflicts(t *testing.T) {
	svc, db := newPostService(t)
	u := seedUser(t, db, "author@example.com", entity.RoleUser)
	cat := seedCategory(t, db, "Go")

	_, err := svc.Create(t.Context(), CreatePostInput{Title: "Hello World", Content: "x", CategoryID: cat.ID, AuthorID: u.ID})
	require.NoError(t, err)

	_, err = svc.Create(t.Context(), CreatePostInput{Title: "Hello, World!", Content: "y", CategoryID: cat.ID, AuthorID: u.ID})
	appErr := apperror.From(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
}

func TestPostCreateUnknownCategory(t *testing.T) {
	svc, db := newPostService(t)
	u := seedUser(t, db, "author@example.com", entity.RoleUser)

	_, err := svc.Create(t.Context(), CreatePostInput{Title: "Orphan", Content: "x", CategoryID: 999, AuthorID: u.ID})
	appErr := apperror.From(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Contains(t, appErr.Message, "category")
}

func TestPostGetBySlugIncrementsViews(t *testing.T) {
	svc, db := newPostService(t)
	u := seedUser(t, db, "author@example.com", entity.RoleUser)
	cat := seedCategory(t, db, "Go")
	seedPost(t, db, "Popular Post", u.ID, cat.ID, true)

	first, err := svc.GetBySlug("popular-post")
	require.NoError(t, err)
	assert.Zero(t, first.Views, "returned snapshot predates the bump")

	_, err = svc.GetBySlug("popular-post")
	require.NoError(t, err)

	stored, err := svc.Get(first.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(2), stored.Views)
}

func TestPostListPublished(t *testing.T) {
	svc, db := newPostService(t)
	u := seedUser(t, db, "author@example.com", entity.RoleUser)
	cat := seedCategory(t, db, "Go")
	seedPost(t, db, "Live", u.ID, cat.ID, true)
	seedPost(t, db, "Draft", u.ID, cat.ID, false)

	published, err := svc.ListPublished()
	require.NoError(t, err)
	require.Len(t, published, 1)
	assert.Equal(t, "live", published[0].Slug)

	all, err := svc.ListAll()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestPostUpdateSlugRules(t *testing.T) {
	svc, db := newPostService(t)
	u := seedUser(t, db, "author@example.com", entity.RoleUser)
	cat := seedCategory(t, db, "Go")
	other := seedCategory(t, db, "Rust")
	p := seedPost(t, db, "Original Title", u.ID, cat.ID, false)

	// content-only update keeps the slug
	updated, err := svc.Update(t.Context(), p.ID, UpdatePostInput{Content: strPtr("revised")})
	require.NoError(t, err)
	assert.Equal(t, "original-title", updated.Slug)
	assert.Equal(t, "revised", updated.Content)

	// retitle regenerates the slug and can move category
	updated, err = svc.Update(t.Context(), p.ID, UpdatePostInput{
		Title:      strPtr("Brand New Title"),
		CategoryID: uintPtr(other.ID),
	})
	require.NoError(t, err)
	assert.Equal(t, "brand-new-title", updated.Slug)
	assert.Equal(t, other.ID, updated.CategoryID)
}

func TestPostUpdateSlugCollision(t *testing.T) {
	svc, db := newPostService(t)
	u := seedUser(t, db, "author@example.com", entity.RoleUser)
	cat := seedCategory(t, db, "Go")
	seedPost(t, db, "Taken Title", u.ID, cat.ID, true)
	p2 := seedPost(t, db, "Free Title", u.ID, cat.ID, true)

	_, err := svc.Update(t.Context(), p2.ID, UpdatePostInput{Title: strPtr("Taken Title!")})
	appErr := apperror.From(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
}

func TestPostUpdateDoesNotClobberViews(t *testing.T) {
	svc, db := newPostService(t)
	u := seedUser(t, db, "author@example.com", entity.RoleUser)
	cat := seedCategory(t, db, "Go")
	p := seedPost(t, db, "Evergreen", u.ID, cat.ID, true)

	// a reader bumps the counter between the editor's fetch and save
	posts := gormdb.NewPostRepository(db)
	snapshot, err := posts.FindByID(p.ID)
	require.NoError(t, err)
	require.Zero(t, snapshot.Views)
	require.NoError(t, posts.IncrementViews(p.ID))

	snapshot.Content = "edited"
	require.NoError(t, posts.Update(snapshot))

	stored, err := svc.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "edited", stored.Content)
	assert.Equal(t, uint(1), stored.Views, "the counter only ever grows")
}

func TestPostDelete(t *testing.T) {
	svc, db := newPostService(t)
	u := seedUser(t, db, "author@example.com", entity.RoleUser)
	cat := seedCategory(t, db, "Go")
	p := seedPost(t, db, "Short Lived", u.ID, cat.ID, true)

	require.NoError(t, svc.Delete(t.Context(), p.ID))

	err := svc.Delete(t.Context(), p.ID)
	appErr := apperror.From(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
}

func TestPostSearchWithoutBackend(t *testing.T) {
	svc, _ := newPostService(t)
	hits, err := svc.Search(t.Context(), "anything", 10)
	require.NoError(t, err)
	assert.NotNil(t, hits)
	assert.Empty(t, hits)
}
