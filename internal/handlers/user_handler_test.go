package handlers_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/hello-globe/backend/internal/handlers"
	"github.com/hello-globe/backend/internal/models"
	"github.com/hello-globe/backend/internal/repositories"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newUserHandler(db *gorm.DB) *handlers.UserHandler {
	return handlers.NewUserHandler(
		repositories.NewPostgresUserRepository(db),
		&stubMediaStore{},
	)
}

func seedProfile(t *testing.T, db *gorm.DB, user *models.User, bio string) *models.Profile {
	t.Helper()
	profile := &models.Profile{UserID: user.ID, DisplayName: user.Username, Bio: bio}
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("failed to seed profile: %v", err)
	}
	return profile
}

func TestEditProfileClearsBioWhenSubmittedEmpty(t *testing.T) {
	db := setupTestDB(t)
	h := newUserHandler(db)
	alice := seedUser(t, db, "alice")
	seedProfile(t, db, alice, "wanderer")

	c, rec := formContext(t, http.MethodPost, "/api/profile/edit/", url.Values{"bio": {""}}, alice)
	assert.NoError(t, h.EditProfile(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var profile models.Profile
	assert.NoError(t, db.Where("user_id = ?", alice.ID).First(&profile).Error)
	assert.Equal(t, "", profile.Bio)
}

func TestEditProfileLeavesBioWhenFieldAbsent(t *testing.T) {
	db := setupTestDB(t)
	h := newUserHandler(db)
	alice := seedUser(t, db, "alice")
	seedProfile(t, db, alice, "wanderer")

	c, rec := formContext(t, http.MethodPost, "/api/profile/edit/", url.Values{}, alice)
	assert.NoError(t, h.EditProfile(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var profile models.Profile
	assert.NoError(t, db.Where("user_id = ?", alice.ID).First(&profile).Error)
	assert.Equal(t, "wanderer", profile.Bio)
}
