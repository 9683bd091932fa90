package models

import (
	"fmt"

	"gorm.io/gorm"
)

const (
	FriendshipPending  = "pending"
	FriendshipAccepted = "accepted"
)

// Friendship is one directed row per unordered user pair: created pending by
// the requester, flipped to accepted by the recipient, deleted on reject or
// unfriend. PairKey is the canonical "min:max" of the two user IDs, so the
// unique index rules out a duplicate request in either direction.
type Friendship struct {
	gorm.Model `json:"-"`
	ID         uint   `json:"id" gorm:"primaryKey"`
	FromUserID uint   `json:"from_user_id" gorm:"index"`
	ToUserID   uint   `json:"to_user_id" gorm:"index"`
	Status     string `json:"status" gorm:"type:varchar(20);default:'pending'"`
	PairKey    string `json:"-" gorm:"uniqueIndex;size:64"`
}

// BeforeCreate derives the canonical pair key from the two user IDs.
func (f *Friendship) BeforeCreate(tx *gorm.DB) error {
	f.PairKey = PairKeyFor(f.FromUserID, f.ToUserID)
	return nil
}

// PairKeyFor returns the canonical key for an unordered user pair.
func PairKeyFor(a, b uint) string {
	if a > b {
		a, b = b, a
	}
	return fmt.Sprintf("%d:%d", a, b)
}

// FriendEntry is one accepted friend in a listing, carrying the friendship
// row ID so the client can unfriend.
type FriendEntry struct {
	Username     string `json:"username"`
	FriendshipID uint   `json:"friendship_id"`
}

// IncomingRequest is a pending request addressed to the user, keyed by the
// sender's username.
type IncomingRequest struct {
	ID       uint   `json:"id"`
	FromUser string `json:"from_user"`
}

// OutgoingRequest is a pending request the user has sent, keyed by the
// recipient's username.
type OutgoingRequest struct {
	ID     uint   `json:"id"`
	ToUser string `json:"to_user"`
}

// FriendshipLists is the full friends view for one user.
type FriendshipLists struct {
	Friends  []FriendEntry     `json:"friends"`
	Incoming []IncomingRequest `json:"incoming_requests"`
	Outgoing []OutgoingRequest `json:"outgoing_requests"`
}
