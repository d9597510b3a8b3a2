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
	"github.com/inkpress/inkpress/pkg/helpers"
)

func newUserService(t *testing.T) (*UserService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewUserService(gormdb.NewUserRepository(db), nil, "", testLogger()), db
}

func strPtr(s string) *string { return &s }

func TestUserGetNotFound(t *testing.T) {
	svc, _ := newUserService(t)
	_, err := svc.Get(999)
	appErr := apperror.From(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
}

func TestUserSparseUpdate(t *testing.T) {
	svc, db := newUserService(t)
	u := seedUser(t, db, "alex@example.com", entity.RoleUser)

	updated, err := svc.Update(u.ID, UpdateUserInput{Bio: strPtr("writes about Go")})
	require.NoError(t, err)
	assert.Equal(t, "writes about Go", updated.Bio)
	// untouched fields survive a sparse update
	assert.Equal(t, u.Name, updated.Name)
	assert.Equal(t, u.Email, updated.Email)
}

func TestUserUpdatePasswordIsRehashed(t *testing.T) {
	svc, db := newUserService(t)
	u := seedUser(t, db, "alex@example.com", entity.RoleUser)

	updated, err := svc.Update(u.ID, UpdateUserInput{Password: strPtr("new-password")})
	require.NoError(t, err)
	assert.NotEqual(t, "new-password", updated.Password)
	assert.True(t, helpers.CheckPassword(updated.Password, "new-password"))
	assert.False(t, helpers.CheckPassword(updated.Password, "password123"))
}

func TestUserUpdateDuplicateEmail(t *testing.T) {
	svc, db := newUserService(t)
	seedUser(t, db, "first@example.com", entity.RoleUser)
	second := seedUser(t, db, "second@example.com", entity.RoleUser)

	_, err := svc.Update(second.ID, UpdateUserInput{Email: strPtr("first@example.com")})
	appErr := apperror.From(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
}

func TestUserDelete(t *testing.T) {
	svc, db := newUserService(t)
	u := seedUser(t, db, "alex@example.com", entity.RoleUser)

	require.NoError(t, svc.Delete(u.ID))

	err := svc.Delete(u.ID)
	appErr := apperror.From(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
}

func TestUserDeleteWithPostsIsRejected(t *testing.T) {
	svc, db := newUserService(t)
	u := seedUser(t, db, "alex@example.com", entity.RoleUser)
	cat := seedCategory(t, db, "Go")
	seedPost(t, db, "First Post", u.ID, cat.ID, true)

	err := svc.Delete(u.ID)
	appErr := apperror.From(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Contains(t, appErr.Message, "posts")
}

func TestUserUploadAvatarWithoutStorage(t *testing.T) {
	svc, db := newUserService(t)
	u := seedUser(t, db, "alex@example.com", entity.RoleUser)

	_, err := svc.UploadAvatar(t.Context(), u.ID, nil, "a.png", "image/png")
	appErr := apperror.From(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.Status)
}
