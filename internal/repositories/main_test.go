package repositories_test

import (
	"testing"
	"time"

	"github.com/hello-globe/backend/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setup in-memory DB
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	err = database.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Pin{},
		&models.Photo{},
		&models.Reaction{},
		&models.Friendship{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return database
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Email: username + "@example.com", Password: "x"}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to seed user %s: %v", username, err)
	}
	return user
}

func seedPin(t *testing.T, db *gorm.DB, userID uint, country string, lat, lon float64) *models.Pin {
	t.Helper()
	pin := &models.Pin{UserID: userID, Country: country, Latitude: lat, Longitude: lon}
	if err := db.Create(pin).Error; err != nil {
		t.Fatalf("failed to seed pin: %v", err)
	}
	return pin
}
