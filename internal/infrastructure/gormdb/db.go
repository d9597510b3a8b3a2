package gormdb

import (
	"context"
	"errors"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"

	"github.com/inkpress/inkpress/internal/domain/entity"
	"github.com/inkpress/inkpress/internal/domain/repository"
)

// Open connects to Postgres. TranslateError is required: the repositories
// depend on gorm's translated constraint errors to surface duplicate slugs,
// duplicate emails and the category/post FK restriction as domain conflicts.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), Config())
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return db, nil
}

// Config is the gorm configuration shared by production and test databases.
func Config() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger:         glogger.Default.LogMode(glogger.Warn),
	}
}

// AutoMigrate creates/updates the schema. Referenced tables first so the FK
// constraints on posts resolve.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Category{},
		&entity.Tag{},
		&entity.Post{},
		&entity.Comment{},
	)
}

// translate maps gorm errors onto the repository sentinels.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return repository.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return repository.ErrDuplicate
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return repository.ErrRestricted
	default:
		return err
	}
}
