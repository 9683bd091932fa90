package repositories

import (
	"github.com/hello-globe/backend/internal/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	CreateUserWithProfile(user *models.User, profile *models.Profile) error
	GetUserByID(id uint) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	UpdateUser(user *models.User) error
	SearchUsers(query string, excludeID uint, limit int) ([]models.User, error)
	GetProfileByUserID(userID uint) (*models.Profile, error)
	UpdateProfile(profile *models.Profile) error
}

// PostgresUserRepository implements UserRepository for PostgreSQL
type PostgresUserRepository struct {
	db *gorm.DB
}

// NewPostgresUserRepository creates a new PostgresUserRepository
func NewPostgresUserRepository(db *gorm.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// CreateUserWithProfile creates a user and their profile in one transaction:
// either both rows persist or neither does.
func (r *PostgresUserRepository) CreateUserWithProfile(user *models.User, profile *models.Profile) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		profile.UserID = user.ID
		if profile.DisplayName == "" {
			profile.DisplayName = user.Username
		}
		return tx.Create(profile).Error
	})
}

// GetUserByID retrieves a user by ID
func (r *PostgresUserRepository) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByUsername retrieves a user by username
func (r *PostgresUserRepository) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by email address
func (r *PostgresUserRepository) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser updates an existing user
func (r *PostgresUserRepository) UpdateUser(user *models.User) error {
	return r.db.Save(user).Error
}

// SearchUsers finds users whose username contains the query (case-insensitive),
// excluding the searching user.
func (r *PostgresUserRepository) SearchUsers(query string, excludeID uint, limit int) ([]models.User, error) {
	var users []models.User
	if err := r.db.
		Where("LOWER(username) LIKE LOWER(?) AND id <> ?", "%"+query+"%", excludeID).
		Limit(limit).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// GetProfileByUserID retrieves the profile belonging to a user
func (r *PostgresUserRepository) GetProfileByUserID(userID uint) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile updates an existing profile
func (r *PostgresUserRepository) UpdateProfile(profile *models.Profile) error {
	return r.db.Save(profile).Error
}
