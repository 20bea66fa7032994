package database

import (
	"fmt"
	"log"

	"github.com/clubdesk/clubdesk-api/internal/config"
	"github.com/clubdesk/clubdesk-api/internal/domain/entity"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.Store{},
		&entity.User{},
		&entity.Cast{},
		&entity.CastDailyPerformance{},
		&entity.StoreDailyPerformance{},
		&entity.IdempotencyKey{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData creates the initial store and manager account when they
// are configured via environment variables and do not exist yet.
func SeedDefaultData(db *gorm.DB) error {
	adminEmail := viper.GetString("ADMIN_EMAIL")
	adminPassword := viper.GetString("ADMIN_PASSWORD")
	adminName := viper.GetString("ADMIN_NAME")
	storeName := viper.GetString("STORE_NAME")

	if adminEmail == "" || adminPassword == "" {
		return nil
	}
	if adminName == "" {
		adminName = "Manager"
	}
	if storeName == "" {
		storeName = "Main Store"
	}

	var existing entity.User
	if err := db.Where("email = ?", adminEmail).First(&existing).Error; err == nil {
		return nil
	}

	store := entity.Store{Name: storeName}
	if err := db.Create(&store).Error; err != nil {
		return fmt.Errorf("failed to seed store: %w", err)
	}

	user := entity.User{
		StoreID: store.ID,
		Name:    adminName,
		Email:   adminEmail,
	}
	if err := user.SetPassword(adminPassword); err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}
	if err := db.Create(&user).Error; err != nil {
		return fmt.Errorf("failed to seed manager user: %w", err)
	}

	log.Printf("Seeded manager account %s for store %q", adminEmail, storeName)
	return nil
}
