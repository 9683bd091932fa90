package repositories_test

import (
	"testing"

	"github.com/hello-globe/backend/internal/models"
	"github.com/hello-globe/backend/internal/repositories"
	"github.com/stretchr/testify/assert"
)

func TestCreateUserWithProfile(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewPostgresUserRepository(db)

	user := &models.User{Username: "alice", Email: "alice@example.com", Password: "hash"}
	profile := &models.Profile{Bio: "globe trotter"}

	err := repo.CreateUserWithProfile(user, profile)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, profile.UserID)
	assert.Equal(t, "alice", profile.DisplayName)

	stored, err := repo.GetProfileByUserID(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, "globe trotter", stored.Bio)
}

func TestCreateUserWithProfileRollsBackTogether(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewPostgresUserRepository(db)

	first := &models.User{Username: "alice", Email: "alice@example.com", Password: "hash"}
	assert.NoError(t, repo.CreateUserWithProfile(first, &models.Profile{}))

	// duplicate username violates the unique index; neither row persists
	dup := &models.User{Username: "alice", Email: "other@example.com", Password: "hash"}
	err := repo.CreateUserWithProfile(dup, &models.Profile{})
	assert.Error(t, err)

	var users, profiles int64
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.Profile{}).Count(&profiles)
	assert.Equal(t, int64(1), users)
	assert.Equal(t, int64(1), profiles)
}

func TestSearchUsersExcludesSelf(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewPostgresUserRepository(db)

	alice := seedUser(t, db, "alice")
	seedUser(t, db, "alicia")
	seedUser(t, db, "bob")

	results, err := repo.SearchUsers("ali", alice.ID, 20)
	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, "alicia", results[0].Username)
}
