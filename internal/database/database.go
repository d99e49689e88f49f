package database

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"bookstore/internal/config"
	"bookstore/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the configured database, migrates the schema and seeds
// the format reference rows.
func Open(cfg config.Database) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.DSN)
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger: logger.New(log.New(os.Stdout, "\r\n", log.LstdFlags), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	if err := SeedFormats(db); err != nil {
		return nil, err
	}

	log.Printf("Database initialized (%s)", cfg.Driver)
	return db, nil
}

// Migrate auto-migrates every model of the store.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Category{},
		&models.Tag{},
		&models.Format{},
		&models.Book{},
		&models.User{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return backfillSearchColumns(db)
}

// backfillSearchColumns fills the book search columns of rows written
// before those columns existed.
func backfillSearchColumns(db *gorm.DB) error {
	var books []models.Book
	err := db.Unscoped().
		Select("id", "title", "author").
		Where("search_title = '' OR search_author = ''").
		Find(&books).Error
	if err != nil {
		return fmt.Errorf("failed to find books without search columns: %w", err)
	}
	for _, b := range books {
		err := db.Unscoped().Model(&models.Book{ID: b.ID}).UpdateColumns(map[string]interface{}{
			"search_title":  models.SearchKey(b.Title),
			"search_author": models.SearchKey(b.Author),
		}).Error
		if err != nil {
			return fmt.Errorf("failed to backfill search columns of book %s: %w", b.ID, err)
		}
	}
	if len(books) > 0 {
		log.Printf("Backfilled search columns of %d books", len(books))
	}
	return nil
}

// SeedFormats inserts any missing format rows. It is safe to call repeatedly.
func SeedFormats(db *gorm.DB) error {
	for _, t := range models.FormatTypes {
		var existing models.Format
		err := db.Where("type = ?", t).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to look up format %s: %w", t, err)
		}
		if err := db.Create(&models.Format{Type: t}).Error; err != nil {
			return fmt.Errorf("failed to create format %s: %w", t, err)
		}
		log.Printf("Created format: %s", t)
	}
	return nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
