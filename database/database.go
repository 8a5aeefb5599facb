package database

import (
	"fmt"
	"log"
	"os"

	"landing-app/internal/domain/admins"
	"landing-app/internal/domain/analytics"
	"landing-app/internal/domain/campaigns"
	"landing-app/internal/domain/items"
	"landing-app/internal/domain/leads"
	"landing-app/internal/domain/pages"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("❌ DB_URL not set")
	}

	// TranslateError so unique violations surface as gorm.ErrDuplicatedKey
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	// Required for UUID generation
	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Fatal("❌ Failed to enable pgcrypto extension:", err)
	}

	if err := DB.AutoMigrate(
		// content
		&pages.PageType{},
		&pages.LandingPage{},
		&pages.Placement{},
		&items.Item{},

		// marketing
		&campaigns.Campaign{},
		&leads.Lead{},

		// analytics
		&analytics.PageView{},
		&analytics.ClickEvent{},

		// admin
		&admins.Admin{},
	); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	seedAdmin()

	fmt.Println("✅ Connected and migrated successfully")
}

// seedAdmin bootstraps the first admin account from ADMIN_EMAIL /
// ADMIN_PASSWORD when the table is empty.
func seedAdmin() {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	var count int64
	if err := DB.Model(&admins.Admin{}).Count(&count).Error; err != nil || count > 0 {
		return
	}

	hashed, err := admins.HashPassword(password)
	if err != nil {
		log.Println("⚠️ Failed to hash admin password:", err)
		return
	}

	admin := admins.Admin{Name: "Admin", Email: email, Password: hashed, Role: "admin"}
	if err := DB.Create(&admin).Error; err != nil {
		log.Println("⚠️ Failed to seed admin account:", err)
		return
	}
	fmt.Println("✅ Seeded initial admin account:", email)
}
