package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"sinafite_backend/internals/configs"
	articleModel "sinafite_backend/internals/features/articles/model"
	contactModel "sinafite_backend/internals/features/contact/model"
	pageModel "sinafite_backend/internals/features/pages/model"
	serviceModel "sinafite_backend/internals/features/services/model"
	subscriberModel "sinafite_backend/internals/features/subscribers/model"
	userModel "sinafite_backend/internals/features/users/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("[INFO] connecting to PostgreSQL...")

	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=sinafite",
		configs.GetEnv("DB_USER"),
		configs.GetEnv("DB_PASSWORD"),
		configs.GetEnv("DB_HOST", "localhost"),
		configs.GetEnv("DB_PORT", "5432"),
		configs.GetEnv("DB_NAME"),
		configs.GetEnv("DB_SSLMODE", "disable"),
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	DB = db
	log.Println("[INFO] database connected")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate keeps the schema in sync with the models: one table per
// entity, integer keys, unique indexes on username, subscriber email and
// page slug. articles.author_id stays a plain column (weak reference).
func Migrate() {
	if err := DB.AutoMigrate(
		&userModel.UserModel{},
		&articleModel.ArticleModel{},
		&serviceModel.ServiceModel{},
		&contactModel.ContactMessageModel{},
		&subscriberModel.SubscriberModel{},
		&pageModel.PageModel{},
	); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
}
