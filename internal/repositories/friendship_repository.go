package repositories

import (
	"github.com/hello-globe/backend/internal/models"
	"gorm.io/gorm"
)

// FriendshipRepository defines the interface for friendship data operations
type FriendshipRepository interface {
	Request(fromID, toID uint) (*models.Friendship, error)
	Accept(requestID, actorID uint) (*models.Friendship, error)
	Reject(requestID, actorID uint) error
	Remove(friendshipID, actorID uint) error
	GetByID(id uint) (*models.Friendship, error)
	ListForUser(userID uint) (*models.FriendshipLists, error)
}

// PostgresFriendshipRepository implements FriendshipRepository for PostgreSQL
type PostgresFriendshipRepository struct {
	db *gorm.DB
}

// NewPostgresFriendshipRepository creates a new PostgresFriendshipRepository
func NewPostgresFriendshipRepository(db *gorm.DB) *PostgresFriendshipRepository {
	return &PostgresFriendshipRepository{db: db}
}

// Request creates a pending friendship directed from→to. If a row already
// exists between the pair in either direction, that row is returned as-is:
// a duplicate request is an idempotent no-op, not an error.
func (r *PostgresFriendshipRepository) Request(fromID, toID uint) (*models.Friendship, error) {
	if fromID == toID {
		return nil, ErrSelfRequest
	}

	var existing models.Friendship
	err := r.db.Where("pair_key = ?", models.PairKeyFor(fromID, toID)).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	friendship := &models.Friendship{
		FromUserID: fromID,
		ToUserID:   toID,
		Status:     models.FriendshipPending,
	}
	if err := r.db.Create(friendship).Error; err != nil {
		return nil, err
	}
	return friendship, nil
}

// Accept transitions a pending request to accepted. Only the recipient of
// the request may accept; anything else is reported as not found.
func (r *PostgresFriendshipRepository) Accept(requestID, actorID uint) (*models.Friendship, error) {
	var friendship models.Friendship
	err := r.db.Where("id = ? AND to_user_id = ? AND status = ?",
		requestID, actorID, models.FriendshipPending).First(&friendship).Error
	if err != nil {
		return nil, err
	}

	friendship.Status = models.FriendshipAccepted
	if err := r.db.Save(&friendship).Error; err != nil {
		return nil, err
	}
	return &friendship, nil
}

// Reject deletes a pending request addressed to the actor. There is no
// rejected state: after deletion a fresh request between the pair is allowed.
func (r *PostgresFriendshipRepository) Reject(requestID, actorID uint) error {
	var friendship models.Friendship
	err := r.db.Where("id = ? AND to_user_id = ? AND status = ?",
		requestID, actorID, models.FriendshipPending).First(&friendship).Error
	if err != nil {
		return err
	}
	// Hard delete so the pair-key unique index frees up for a new request.
	return r.db.Unscoped().Delete(&friendship).Error
}

// Remove deletes an accepted friendship ("unfriend"). Either party may
// remove it; anyone else gets ErrNotParticipant. A row that exists but is
// not accepted is reported as not found via ErrNotAccepted.
func (r *PostgresFriendshipRepository) Remove(friendshipID, actorID uint) error {
	var friendship models.Friendship
	if err := r.db.First(&friendship, friendshipID).Error; err != nil {
		return err
	}
	if friendship.Status != models.FriendshipAccepted {
		return ErrNotAccepted
	}
	if friendship.FromUserID != actorID && friendship.ToUserID != actorID {
		return ErrNotParticipant
	}
	return r.db.Unscoped().Delete(&friendship).Error
}

// GetByID retrieves a friendship row by ID
func (r *PostgresFriendshipRepository) GetByID(id uint) (*models.Friendship, error) {
	var friendship models.Friendship
	if err := r.db.First(&friendship, id).Error; err != nil {
		return nil, err
	}
	return &friendship, nil
}

// ListForUser builds the full friends view: accepted friendships (reported
// as the other party relative to the user), incoming pending requests, and
// outgoing pending requests.
func (r *PostgresFriendshipRepository) ListForUser(userID uint) (*models.FriendshipLists, error) {
	var accepted []models.Friendship
	if err := r.db.Where("(from_user_id = ? OR to_user_id = ?) AND status = ?",
		userID, userID, models.FriendshipAccepted).Find(&accepted).Error; err != nil {
		return nil, err
	}

	lists := &models.FriendshipLists{
		Friends:  make([]models.FriendEntry, 0, len(accepted)),
		Incoming: make([]models.IncomingRequest, 0),
		Outgoing: make([]models.OutgoingRequest, 0),
	}

	for _, f := range accepted {
		otherID := f.ToUserID
		if f.ToUserID == userID {
			otherID = f.FromUserID
		}
		username, err := r.usernameFor(otherID)
		if err != nil {
			return nil, err
		}
		lists.Friends = append(lists.Friends, models.FriendEntry{
			Username:     username,
			FriendshipID: f.ID,
		})
	}

	var incoming []models.Friendship
	if err := r.db.Where("to_user_id = ? AND status = ?",
		userID, models.FriendshipPending).Find(&incoming).Error; err != nil {
		return nil, err
	}
	for _, f := range incoming {
		username, err := r.usernameFor(f.FromUserID)
		if err != nil {
			return nil, err
		}
		lists.Incoming = append(lists.Incoming, models.IncomingRequest{ID: f.ID, FromUser: username})
	}

	var outgoing []models.Friendship
	if err := r.db.Where("from_user_id = ? AND status = ?",
		userID, models.FriendshipPending).Find(&outgoing).Error; err != nil {
		return nil, err
	}
	for _, f := range outgoing {
		username, err := r.usernameFor(f.ToUserID)
		if err != nil {
			return nil, err
		}
		lists.Outgoing = append(lists.Outgoing, models.OutgoingRequest{ID: f.ID, ToUser: username})
	}

	return lists, nil
}

func (r *PostgresFriendshipRepository) usernameFor(userID uint) (string, error) {
	var user models.User
	if err := r.db.Select("username").First(&user, userID).Error; err != nil {
		return "", err
	}
	return user.Username, nil
}
