package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/hello-globe/backend/internal/models"
	"github.com/hello-globe/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// ReactionHandler handles HTTP requests related to emoji reactions
type ReactionHandler struct {
	reactionRepository repositories.ReactionRepository
	pinRepository      repositories.PinRepository
}

// NewReactionHandler creates a new ReactionHandler
func NewReactionHandler(reactionRepo repositories.ReactionRepository, pinRepo repositories.PinRepository) *ReactionHandler {
	return &ReactionHandler{
		reactionRepository: reactionRepo,
		pinRepository:      pinRepo,
	}
}

// RegisterReactionRoutes registers reaction-related routes
func (h *ReactionHandler) RegisterReactionRoutes(g *echo.Group) {
	g.POST("/react/:id/", h.React)
}

// React upserts the authenticated user's reaction on a pin: a repeat
// reaction replaces the emoji, it never duplicates the row.
func (h *ReactionHandler) React(c echo.Context) error {
	userID := currentUserID(c)

	pinID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid pin ID")
	}

	// Verify pin exists
	if _, err := h.pinRepository.GetPinByID(uint(pinID)); err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Pin not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	var req models.CreateReactionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"errors": formErrors(err)})
	}

	reaction, err := h.reactionRepository.React(uint(pinID), userID, req.Emoji)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"id":         reaction.ID,
		"pin_id":     reaction.PinID,
		"user_id":    reaction.UserID,
		"emoji":      reaction.Emoji,
		"emoji_icon": models.EmojiIcons[reaction.Emoji],
	})
}
