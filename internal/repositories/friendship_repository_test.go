package repositories_test

import (
	"testing"

	"github.com/hello-globe/backend/internal/models"
	"github.com/hello-globe/backend/internal/repositories"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestRequestCreatesPending(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewPostgresFriendshipRepository(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	friendship, err := repo.Request(alice.ID, bob.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.FriendshipPending, friendship.Status)
	assert.Equal(t, alice.ID, friendship.FromUserID)
	assert.Equal(t, bob.ID, friendship.ToUserID)
}

func TestRequestToSelfFails(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewPostgresFriendshipRepository(db)
	alice := seedUser(t, db, "alice")

	_, err := repo.Request(alice.ID, alice.ID)
	assert.ErrorIs(t, err, repositories.ErrSelfRequest)
}

func TestRequestIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewPostgresFriendshipRepository(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	first, err := repo.Request(alice.ID, bob.ID)
	assert.NoError(t, err)

	// same direction
	second, err := repo.Request(alice.ID, bob.ID)
	assert.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	// opposite direction also hits the existing row
	third, err := repo.Request(bob.ID, alice.ID)
	assert.NoError(t, err)
	assert.Equal(t, first.ID, third.ID)
	assert.Equal(t, models.FriendshipPending, third.Status)

	var count int64
	db.Model(&models.Friendship{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestAcceptOnlyByRecipient(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewPostgresFriendshipRepository(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	friendship, _ := repo.Request(alice.ID, bob.ID)

	// sender cannot accept their own request
	_, err := repo.Accept(friendship.ID, alice.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	accepted, err := repo.Accept(friendship.ID, bob.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.FriendshipAccepted, accepted.Status)
}

func TestRejectDeletesAndAllowsNewRequest(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewPostgresFriendshipRepository(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	friendship, _ := repo.Request(alice.ID, bob.ID)

	err := repo.Reject(friendship.ID, bob.ID)
	assert.NoError(t, err)

	var count int64
	db.Model(&models.Friendship{}).Count(&count)
	assert.Equal(t, int64(0), count)

	// a fresh request between the same pair works again
	again, err := repo.Request(alice.ID, bob.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.FriendshipPending, again.Status)
}

func TestRejectOnlyByRecipient(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewPostgresFriendshipRepository(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	friendship, _ := repo.Request(alice.ID, bob.ID)
	err := repo.Reject(friendship.ID, alice.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRemoveFriendship(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewPostgresFriendshipRepository(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	carol := seedUser(t, db, "carol")

	friendship, _ := repo.Request(alice.ID, bob.ID)

	// not accepted yet
	err := repo.Remove(friendship.ID, alice.ID)
	assert.ErrorIs(t, err, repositories.ErrNotAccepted)

	_, err = repo.Accept(friendship.ID, bob.ID)
	assert.NoError(t, err)

	// a third party cannot remove it
	err = repo.Remove(friendship.ID, carol.ID)
	assert.ErrorIs(t, err, repositories.ErrNotParticipant)

	// either party can
	err = repo.Remove(friendship.ID, alice.ID)
	assert.NoError(t, err)

	err = repo.Remove(friendship.ID, alice.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListForUserSymmetry(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewPostgresFriendshipRepository(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	carol := seedUser(t, db, "carol")

	friendship, _ := repo.Request(alice.ID, bob.ID)
	_, err := repo.Accept(friendship.ID, bob.ID)
	assert.NoError(t, err)

	// pending in both directions around carol
	_, _ = repo.Request(carol.ID, alice.ID)
	_, _ = repo.Request(bob.ID, carol.ID)

	aliceLists, err := repo.ListForUser(alice.ID)
	assert.NoError(t, err)
	assert.Len(t, aliceLists.Friends, 1)
	assert.Equal(t, "bob", aliceLists.Friends[0].Username)
	assert.Equal(t, friendship.ID, aliceLists.Friends[0].FriendshipID)
	assert.Len(t, aliceLists.Incoming, 1)
	assert.Equal(t, "carol", aliceLists.Incoming[0].FromUser)
	assert.Empty(t, aliceLists.Outgoing)

	bobLists, err := repo.ListForUser(bob.ID)
	assert.NoError(t, err)
	assert.Len(t, bobLists.Friends, 1)
	assert.Equal(t, "alice", bobLists.Friends[0].Username)
	assert.Len(t, bobLists.Outgoing, 1)
	assert.Equal(t, "carol", bobLists.Outgoing[0].ToUser)

	// after remove, neither side lists the other
	err = repo.Remove(friendship.ID, bob.ID)
	assert.NoError(t, err)

	aliceLists, _ = repo.ListForUser(alice.ID)
	assert.Empty(t, aliceLists.Friends)
	bobLists, _ = repo.ListForUser(bob.ID)
	assert.Empty(t, bobLists.Friends)
}
