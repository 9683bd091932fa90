package repositories_test

import (
	"testing"

	"github.com/hello-globe/backend/internal/models"
	"github.com/hello-globe/backend/internal/repositories"
	"github.com/stretchr/testify/assert"
)

func TestReactUpsert(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewPostgresReactionRepository(db)
	alice := seedUser(t, db, "alice")
	pin := seedPin(t, db, alice.ID, "France", 48.85, 2.35)

	first, err := repo.React(pin.ID, alice.ID, "like")
	assert.NoError(t, err)
	assert.Equal(t, "like", first.Emoji)

	// second reaction replaces the emoji, no duplicate row
	second, err := repo.React(pin.ID, alice.ID, "love")
	assert.NoError(t, err)
	assert.Equal(t, "love", second.Emoji)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	db.Model(&models.Reaction{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCountsByEmoji(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewPostgresReactionRepository(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	carol := seedUser(t, db, "carol")
	pin := seedPin(t, db, alice.ID, "France", 48.85, 2.35)
	other := seedPin(t, db, alice.ID, "Japan", 35.68, 139.69)

	_, _ = repo.React(pin.ID, alice.ID, "like")
	_, _ = repo.React(pin.ID, bob.ID, "like")
	_, _ = repo.React(pin.ID, carol.ID, "wow")
	_, _ = repo.React(other.ID, alice.ID, "laugh")

	counts, err := repo.CountsByEmoji(pin.ID)
	assert.NoError(t, err)
	assert.Equal(t, map[string]int{"like": 2, "wow": 1}, counts)
}

func TestGetUserReaction(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewPostgresReactionRepository(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	pin := seedPin(t, db, alice.ID, "France", 48.85, 2.35)

	_, _ = repo.React(pin.ID, alice.ID, "wow")

	emoji, err := repo.GetUserReaction(pin.ID, alice.ID)
	assert.NoError(t, err)
	assert.Equal(t, "wow", emoji)

	emoji, err = repo.GetUserReaction(pin.ID, bob.ID)
	assert.NoError(t, err)
	assert.Equal(t, "", emoji)
}
