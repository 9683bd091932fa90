package repositories

import "errors"

// Sentinel errors surfaced by repositories so handlers can map them to
// HTTP statuses without string matching.
var (
	ErrSelfRequest    = errors.New("cannot send a friend request to yourself")
	ErrNotParticipant = errors.New("actor is not a party to this friendship")
	ErrNotAccepted    = errors.New("users are not friends")
	ErrNotPinOwner    = errors.New("actor does not own this pin")
)
