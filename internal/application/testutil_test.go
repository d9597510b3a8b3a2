package application

import (
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/inkpress/inkpress/internal/domain/entity"
	"github.com/inkpress/inkpress/internal/infrastructure/gormdb"
	"github.com/inkpress/inkpress/pkg/helpers"
	"github.com/inkpress/inkpress/pkg/slug"
)

// newTestDB opens a per-test in-memory sqlite database with foreign keys
// enforced, so RESTRICT and CASCADE behave like the real store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), gormdb.Config())
	require.NoError(t, err)
	require.NoError(t, gormdb.AutoMigrate(db))
	return db
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func testJWT() *helpers.JWTManager {
	return helpers.NewJWTManager("test-secret", time.Hour)
}

func seedUser(t *testing.T, db *gorm.DB, email string, role entity.Role) *entity.User {
	t.Helper()
	hash, err := helpers.HashPassword("password123")
	require.NoError(t, err)
	u := &entity.User{Name: "Writer", Email: email, Password: hash, Role: role}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *entity.Category {
	t.Helper()
	c := &entity.Category{Name: name, Slug: slug.Make(name)}
	require.NoError(t, db.Create(c).Error)
	return c
}

func seedPost(t *testing.T, db *gorm.DB, title string, authorID, categoryID uint, published bool) *entity.Post {
	t.Helper()
	p := &entity.Post{
		Title:      title,
		Slug:       slug.Make(title),
		Content:    "content for " + title,
		Published:  published,
		AuthorID:   authorID,
		CategoryID: categoryID,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}
