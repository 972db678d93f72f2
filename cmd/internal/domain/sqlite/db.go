package sqlite

import (
	"blogapi/cmd/internal/domain/entity"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const MemoryPath = ":memory:"

// Init opens the database at path (":memory:" is accepted) and migrates every entity.
func Init(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	// A single connection keeps ":memory:" databases alive and serializes writers.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	if path != MemoryPath {
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	err = db.AutoMigrate(&entity.User{}, &entity.Category{}, &entity.Post{}, &entity.Profile{})
	if err != nil {
		return nil, err
	}
	return db, nil
}
