package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/hello-globe/backend/internal/media"
	"github.com/hello-globe/backend/internal/models"
	"github.com/hello-globe/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// UserHandler handles HTTP requests related to users and profiles
type UserHandler struct {
	userRepository repositories.UserRepository
	mediaStore     media.Store
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository, mediaStore media.Store) *UserHandler {
	return &UserHandler{
		userRepository: userRepo,
		mediaStore:     mediaStore,
	}
}

// RegisterProfileRoutes registers user profile-related routes
func (h *UserHandler) RegisterProfileRoutes(g *echo.Group) {
	g.GET("/profile/", h.GetProfile)
	g.POST("/profile/edit/", h.EditProfile)
}

// GetProfile returns the authenticated user's profile
func (h *UserHandler) GetProfile(c echo.Context) error {
	profile, err := h.userRepository.GetProfileByUserID(currentUserID(c))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Profile not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, profile)
}

// EditProfile updates the authenticated user's username, bio, and avatar
// from a multipart form. Only that user can modify their own profile.
func (h *UserHandler) EditProfile(c echo.Context) error {
	userID := currentUserID(c)

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"errors": formErrors(err)})
	}

	user, err := h.userRepository.GetUserByID(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Authenticated user not found in database")
	}

	profile, err := h.userRepository.GetProfileByUserID(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if req.Username != "" && req.Username != user.Username {
		if _, err := h.userRepository.GetUserByUsername(req.Username); err == nil {
			return echo.NewHTTPError(http.StatusConflict, "Username already taken")
		}
		user.Username = req.Username
		if err := h.userRepository.UpdateUser(user); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	// An empty submitted bio clears it; only an absent field leaves it alone.
	if form, err := c.FormParams(); err == nil {
		if _, ok := form["bio"]; ok {
			profile.Bio = req.Bio
		}
	}

	if avatar, err := c.FormFile("avatar"); err == nil && avatar != nil {
		url, err := h.mediaStore.Save("avatars", avatar)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		profile.AvatarURL = url
	}

	if err := h.userRepository.UpdateProfile(profile); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
