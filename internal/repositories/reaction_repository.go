package repositories

import (
	"github.com/hello-globe/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReactionRepository defines the interface for reaction data operations
type ReactionRepository interface {
	React(pinID, userID uint, emoji string) (*models.Reaction, error)
	CountsByEmoji(pinID uint) (map[string]int, error)
	GetUserReaction(pinID, userID uint) (string, error)
}

// PostgresReactionRepository implements ReactionRepository for PostgreSQL
type PostgresReactionRepository struct {
	db *gorm.DB
}

// NewPostgresReactionRepository creates a new PostgresReactionRepository
func NewPostgresReactionRepository(db *gorm.DB) *PostgresReactionRepository {
	return &PostgresReactionRepository{db: db}
}

// React upserts the user's reaction on a pin: a second reaction from the
// same user overwrites the emoji instead of creating a duplicate row. The
// conflict target is the (pin_id, user_id) unique index, so this holds under
// concurrent requests too.
func (r *PostgresReactionRepository) React(pinID, userID uint, emoji string) (*models.Reaction, error) {
	reaction := &models.Reaction{PinID: pinID, UserID: userID, Emoji: emoji}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "pin_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"emoji", "updated_at"}),
	}).Create(reaction).Error
	if err != nil {
		return nil, err
	}
	// The upsert path does not populate the row ID; fetch the stored row.
	var stored models.Reaction
	if err := r.db.Where("pin_id = ? AND user_id = ?", pinID, userID).First(&stored).Error; err != nil {
		return nil, err
	}
	return &stored, nil
}

// CountsByEmoji aggregates reaction counts per emoji for a pin
func (r *PostgresReactionRepository) CountsByEmoji(pinID uint) (map[string]int, error) {
	type row struct {
		Emoji string
		Count int
	}
	var rows []row
	if err := r.db.Model(&models.Reaction{}).
		Select("emoji, COUNT(*) as count").
		Where("pin_id = ?", pinID).
		Group("emoji").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, rw := range rows {
		counts[rw.Emoji] = rw.Count
	}
	return counts, nil
}

// GetUserReaction returns the emoji the user left on a pin, or "" if none.
func (r *PostgresReactionRepository) GetUserReaction(pinID, userID uint) (string, error) {
	var reaction models.Reaction
	err := r.db.Where("pin_id = ? AND user_id = ?", pinID, userID).First(&reaction).Error
	if err == gorm.ErrRecordNotFound {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return reaction.Emoji, nil
}
