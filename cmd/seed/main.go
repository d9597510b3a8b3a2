package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"gorm.io/gorm/clause"

	"github.com/inkpress/inkpress/config"
	"github.com/inkpress/inkpress/internal/domain/entity"
	"github.com/inkpress/inkpress/internal/infrastructure/gormdb"
	"github.com/inkpress/inkpress/pkg/helpers"
	"github.com/inkpress/inkpress/pkg/slug"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := gormdb.Open(cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	if err := gormdb.AutoMigrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	email := "admin@inkpress.local"
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	admin := entity.User{
		Name:     "Admin",
		Email:    email,
		Password: hash,
		Role:     entity.RoleAdmin,
	}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"role"}),
	}).Create(&admin).Error; err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}
	fmt.Printf("seeded admin: id=%d email=%s password=%s\n", admin.ID, email, password)

	name := "General"
	cat := entity.Category{
		Name:        name,
		Slug:        slug.Make(name),
		Description: "Default category for uncategorized posts",
	}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		DoNothing: true,
	}).Create(&cat).Error; err != nil {
		log.Fatalf("failed to seed category: %v", err)
	}
	fmt.Printf("seeded category: %s (%s)\n", cat.Name, cat.Slug)
}
