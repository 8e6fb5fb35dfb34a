package config

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"HRDeskGo/models"
)

var DB *gorm.DB

// InitDB opens the MySQL connection and runs migrations.
func InitDB(config Config) error {
	dsn := config.GetDBConnString()

	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return err
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := migrateDB(); err != nil {
		return err
	}

	return nil
}

func migrateDB() error {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Task{},
		&models.Notification{},
		&models.Employee{},
		&models.Document{},
	)
	if err != nil {
		return fmt.Errorf("database migration failed: %w", err)
	}
	return seedDocuments()
}

// seedDocuments fills an empty documents table with the default catalog.
func seedDocuments() error {
	var count int64
	if err := DB.Model(&models.Document{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count documents: %w", err)
	}
	if count > 0 {
		return nil
	}
	docs := models.DefaultDocuments()
	if err := DB.Create(&docs).Error; err != nil {
		return fmt.Errorf("seed documents: %w", err)
	}
	return nil
}
