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

func newCategoryService(t *testing.T) (*CategoryService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewCategoryService(gormdb.NewCategoryRepository(db)), db
}

func TestCategoryCreate(t *testing.T) {
	svc, _ := newCategoryService(t)

	c, err := svc.Create(CreateCategoryInput{Name: "Web Development", Description: "frontend and backend"})
	require.NoError(t, err)
	assert.Equal(t, "web-development", c.Slug)

	got, err := svc.GetBySlug("web-development")
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)
}

func TestCategoryCreateSimilarNameConflicts(t *testing.T) {
	svc, _ := newCategoryService(t)

	_, err := svc.Create(CreateCategoryInput{Name: "Web Development"})
	require.NoError(t, err)

	// different name, same derived slug
	_, err = svc.Create(CreateCategoryInput{Name: "  Web   Development!  "})
	appErr := apperror.From(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
}

func TestCategoryUpdateSlugRules(t *testing.T) {
	svc, _ := newCategoryService(t)
	c, err := svc.Create(CreateCategoryInput{Name: "Web Development"})
	require.NoError(t, err)

	// description-only update leaves the slug alone
	updated, err := svc.Update(c.ID, UpdateCategoryInput{Description: strPtr("all things web")})
	require.NoError(t, err)
	assert.Equal(t, "web-development", updated.Slug)

	// cosmetic rename with the same derived slug keeps it too
	updated, err = svc.Update(c.ID, UpdateCategoryInput{Name: strPtr("WEB DEVELOPMENT")})
	require.NoError(t, err)
	assert.Equal(t, "web-development", updated.Slug)

	// real rename regenerates
	updated, err = svc.Update(c.ID, UpdateCategoryInput{Name: strPtr("Cloud Native")})
	require.NoError(t, err)
	assert.Equal(t, "cloud-native", updated.Slug)
}

func TestCategoryUpdateSlugCollision(t *testing.T) {
	svc, _ := newCategoryService(t)
	_, err := svc.Create(CreateCategoryInput{Name: "Go"})
	require.NoError(t, err)
	c2, err := svc.Create(CreateCategoryInput{Name: "Rust"})
	require.NoError(t, err)

	_, err = svc.Update(c2.ID, UpdateCategoryInput{Name: strPtr("Go")})
	appErr := apperror.From(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
}

func TestCategoryDelete(t *testing.T) {
	svc, _ := newCategoryService(t)
	c, err := svc.Create(CreateCategoryInput{Name: "Ephemeral"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(c.ID))

	err = svc.Delete(c.ID)
	appErr := apperror.From(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
}

func TestCategoryDeleteWithPostsIsRejected(t *testing.T) {
	svc, db := newCategoryService(t)
	u := seedUser(t, db, "author@example.com", entity.RoleUser)
	c, err := svc.Create(CreateCategoryInput{Name: "Busy"})
	require.NoError(t, err)
	seedPost(t, db, "Keeps the category alive", u.ID, c.ID, true)

	err = svc.Delete(c.ID)
	appErr := apperror.From(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Contains(t, appErr.Message, "associated posts")
}
