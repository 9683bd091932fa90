package repositories

import (
	"fmt"
	"sort"

	"github.com/hello-globe/backend/internal/models"
	"gorm.io/gorm"
)

// PhotoRepository defines the interface for pin photo operations
type PhotoRepository interface {
	AddPhotos(pin *models.Pin, imageURLs []string) ([]models.Photo, error)
	RemovePhotos(pinID uint, ids []uint) error
	CountForPin(pin *models.Pin) (int, error)
	GetGalleryForUser(userID uint) ([]models.GalleryItem, error)
}

// PostgresPhotoRepository implements PhotoRepository for PostgreSQL
type PostgresPhotoRepository struct {
	db *gorm.DB
}

// NewPostgresPhotoRepository creates a new PostgresPhotoRepository
func NewPostgresPhotoRepository(db *gorm.DB) *PostgresPhotoRepository {
	return &PostgresPhotoRepository{db: db}
}

// addPhotos inserts gallery photos for a pin, bounded by the remaining slot
// count: the cover image (if present) occupies one of the MaxPinPhotos slots.
// Candidates beyond the budget are discarded without error.
func addPhotos(tx *gorm.DB, pin *models.Pin, imageURLs []string) ([]models.Photo, error) {
	if len(imageURLs) == 0 {
		return nil, nil
	}

	var existing int64
	if err := tx.Model(&models.Photo{}).Where("pin_id = ?", pin.ID).Count(&existing).Error; err != nil {
		return nil, err
	}

	current := int(existing)
	if pin.CoverImageURL != "" {
		current++
	}
	remaining := models.MaxPinPhotos - current
	if remaining <= 0 {
		return nil, nil
	}
	if len(imageURLs) > remaining {
		imageURLs = imageURLs[:remaining]
	}

	photos := make([]models.Photo, 0, len(imageURLs))
	for _, url := range imageURLs {
		photos = append(photos, models.Photo{PinID: pin.ID, ImageURL: url})
	}
	if err := tx.Create(&photos).Error; err != nil {
		return nil, err
	}
	return photos, nil
}

// removePhotos deletes the given photo rows scoped to one pin. IDs belonging
// to other pins are ignored, never deleted.
func removePhotos(tx *gorm.DB, pinID uint, ids []uint) error {
	return tx.Unscoped().Where("pin_id = ? AND id IN ?", pinID, ids).Delete(&models.Photo{}).Error
}

// AddPhotos attaches gallery photos to a pin, honoring the slot budget.
func (r *PostgresPhotoRepository) AddPhotos(pin *models.Pin, imageURLs []string) ([]models.Photo, error) {
	var added []models.Photo
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var err error
		added, err = addPhotos(tx, pin, imageURLs)
		return err
	})
	return added, err
}

// RemovePhotos deletes photos by ID, scoped to the given pin only.
func (r *PostgresPhotoRepository) RemovePhotos(pinID uint, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return removePhotos(r.db, pinID, ids)
}

// CountForPin returns the total attachment count for a pin: cover plus
// gallery rows.
func (r *PostgresPhotoRepository) CountForPin(pin *models.Pin) (int, error) {
	var count int64
	if err := r.db.Model(&models.Photo{}).Where("pin_id = ?", pin.ID).Count(&count).Error; err != nil {
		return 0, err
	}
	total := int(count)
	if pin.CoverImageURL != "" {
		total++
	}
	return total, nil
}

// GetGalleryForUser flattens a user's covers and gallery photos into one
// list sorted newest first.
func (r *PostgresPhotoRepository) GetGalleryForUser(userID uint) ([]models.GalleryItem, error) {
	var pins []models.Pin
	if err := r.db.Preload("Photos").Where("user_id = ?", userID).Find(&pins).Error; err != nil {
		return nil, err
	}

	items := make([]models.GalleryItem, 0)
	for _, pin := range pins {
		if pin.CoverImageURL != "" {
			items = append(items, models.GalleryItem{
				ID:        fmt.Sprintf("cover-%d", pin.ID),
				PinID:     pin.ID,
				ImageURL:  pin.CoverImageURL,
				Caption:   pin.Caption,
				City:      pin.City,
				Country:   pin.Country,
				CreatedAt: pin.CreatedAt,
			})
		}
		for _, photo := range pin.Photos {
			items = append(items, models.GalleryItem{
				ID:        fmt.Sprintf("%d", photo.ID),
				PinID:     pin.ID,
				ImageURL:  photo.ImageURL,
				Caption:   pin.Caption,
				City:      pin.City,
				Country:   pin.Country,
				CreatedAt: photo.CreatedAt,
			})
		}
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}
