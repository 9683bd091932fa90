package repositories

import (
	"github.com/hello-globe/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PinRepository defines the interface for pin data operations
type PinRepository interface {
	CreatePinWithPhotos(pin *models.Pin, photoURLs []string) error
	UpdatePinWithPhotos(pin *models.Pin, deletePhotoIDs []uint, photoURLs []string) error
	GetPinByID(id uint) (*models.Pin, error)
	GetPinsByUser(userID uint) ([]models.Pin, error)
	FindPinsInBoundingBox(lat, lon, radius float64) ([]models.Pin, error)
	DeletePin(id, ownerID uint) error
}

// PostgresPinRepository implements PinRepository for PostgreSQL
type PostgresPinRepository struct {
	db *gorm.DB
}

// NewPostgresPinRepository creates a new PostgresPinRepository
func NewPostgresPinRepository(db *gorm.DB) *PostgresPinRepository {
	return &PostgresPinRepository{db: db}
}

// CreatePinWithPhotos persists a pin and its gallery photos in one
// transaction. The pin must already carry resolved coordinates; callers
// reject the whole operation on geocode failure, so no pin row ever exists
// without a location. Candidate photos beyond the attachment budget are
// silently discarded.
func (r *PostgresPinRepository) CreatePinWithPhotos(pin *models.Pin, photoURLs []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(pin).Error; err != nil {
			return err
		}
		added, err := addPhotos(tx, pin, photoURLs)
		if err != nil {
			return err
		}
		pin.Photos = append(pin.Photos, added...)
		return nil
	})
}

// UpdatePinWithPhotos saves an edited pin, removes the requested gallery
// photos, then adds new ones — all in one transaction. Deletions are applied
// before the remaining-slot count for additions is computed.
func (r *PostgresPinRepository) UpdatePinWithPhotos(pin *models.Pin, deletePhotoIDs []uint, photoURLs []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(pin).Error; err != nil {
			return err
		}
		if len(deletePhotoIDs) > 0 {
			if err := removePhotos(tx, pin.ID, deletePhotoIDs); err != nil {
				return err
			}
		}
		if _, err := addPhotos(tx, pin, photoURLs); err != nil {
			return err
		}
		// Reload the gallery so the caller sees the post-edit state.
		return tx.Where("pin_id = ?", pin.ID).Order("id").Find(&pin.Photos).Error
	})
}

// GetPinByID retrieves a pin with its gallery photos preloaded
func (r *PostgresPinRepository) GetPinByID(id uint) (*models.Pin, error) {
	var pin models.Pin
	if err := r.db.Preload("Photos").First(&pin, id).Error; err != nil {
		return nil, err
	}
	return &pin, nil
}

// GetPinsByUser retrieves all pins owned by a user, newest first
func (r *PostgresPinRepository) GetPinsByUser(userID uint) ([]models.Pin, error) {
	var pins []models.Pin
	if err := r.db.Preload("Photos").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&pins).Error; err != nil {
		return nil, err
	}
	return pins, nil
}

// FindPinsInBoundingBox returns pins inside the rectangle lat±radius,
// lon±radius. This is a plain coordinate filter, not geodesic distance.
func (r *PostgresPinRepository) FindPinsInBoundingBox(lat, lon, radius float64) ([]models.Pin, error) {
	var pins []models.Pin
	if err := r.db.
		Where("latitude BETWEEN ? AND ?", lat-radius, lat+radius).
		Where("longitude BETWEEN ? AND ?", lon-radius, lon+radius).
		Find(&pins).Error; err != nil {
		return nil, err
	}
	return pins, nil
}

// DeletePin removes a pin and cascades to its photos and reactions.
// Only the owner may delete.
func (r *PostgresPinRepository) DeletePin(id, ownerID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var pin models.Pin
		if err := tx.First(&pin, id).Error; err != nil {
			return err
		}
		if pin.UserID != ownerID {
			return ErrNotPinOwner
		}
		if err := tx.Unscoped().Where("pin_id = ?", id).Delete(&models.Photo{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("pin_id = ?", id).Delete(&models.Reaction{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&pin).Error
	})
}
