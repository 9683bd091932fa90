package handlers

import (
	"net/http"
	"strconv"

	"github.com/hello-globe/backend/internal/models"
	"github.com/hello-globe/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// FriendshipHandler handles HTTP requests related to friendships
type FriendshipHandler struct {
	friendshipRepository repositories.FriendshipRepository
	userRepository       repositories.UserRepository // To resolve usernames for lists
}

// NewFriendshipHandler creates a new FriendshipHandler
func NewFriendshipHandler(friendshipRepo repositories.FriendshipRepository, userRepo repositories.UserRepository) *FriendshipHandler {
	return &FriendshipHandler{
		friendshipRepository: friendshipRepo,
		userRepository:       userRepo,
	}
}

// RegisterFriendshipRoutes registers friendship-related routes
func (h *FriendshipHandler) RegisterFriendshipRoutes(g *echo.Group) {
	g.GET("/friends/search/", h.SearchUsers)
	g.POST("/friend-request/:username/", h.FriendRequest)
	g.POST("/friend-accept/:id/", h.FriendAccept)
	g.POST("/friend-reject/:id/", h.FriendReject)
	g.POST("/friend-remove/:id/", h.FriendRemove)
	g.GET("/friends/", h.FriendList)
}

// SearchUsers finds users by username substring, excluding the searcher.
// An empty query returns an empty result set.
func (h *FriendshipHandler) SearchUsers(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return c.JSON(http.StatusOK, echo.Map{"results": []echo.Map{}})
	}

	users, err := h.userRepository.SearchUsers(query, currentUserID(c), 20)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	results := make([]echo.Map, 0, len(users))
	for _, u := range users {
		results = append(results, echo.Map{
			"id":           u.ID,
			"username":     u.Username,
			"display_name": u.Username,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"results": results})
}

// FriendRequest sends a friend request to the named user. If any row already
// exists between the pair, its current status is returned and nothing new is
// created.
func (h *FriendshipHandler) FriendRequest(c echo.Context) error {
	userID := currentUserID(c)

	target, err := h.userRepository.GetUserByUsername(c.Param("username"))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	friendship, err := h.friendshipRepository.Request(userID, target.ID)
	if err != nil {
		if err == repositories.ErrSelfRequest {
			return echo.NewHTTPError(http.StatusBadRequest, "Cannot friend yourself")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if friendship.FromUserID != userID || friendship.Status != models.FriendshipPending {
		// Pre-existing row in either direction: report its status.
		return c.JSON(http.StatusOK, echo.Map{"status": friendship.Status})
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true, "status": friendship.Status})
}

// FriendAccept accepts a pending request addressed to the authenticated user
func (h *FriendshipHandler) FriendAccept(c echo.Context) error {
	requestID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request ID")
	}

	friendship, err := h.friendshipRepository.Accept(uint(requestID), currentUserID(c))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Friend request not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	fromUser, err := h.userRepository.GetUserByID(friendship.FromUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"id":        friendship.ID,
		"from_user": fromUser.Username,
		"to_user":   currentUsername(c),
		"status":    friendship.Status,
	})
}

// FriendReject deletes a pending request addressed to the authenticated
// user. A fresh request between the same pair is allowed afterwards.
func (h *FriendshipHandler) FriendReject(c echo.Context) error {
	requestID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request ID")
	}

	if err := h.friendshipRepository.Reject(uint(requestID), currentUserID(c)); err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Friend request not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

// FriendRemove unfriends: deletes an accepted friendship the authenticated
// user is a party to.
func (h *FriendshipHandler) FriendRemove(c echo.Context) error {
	friendshipID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid friendship ID")
	}

	err = h.friendshipRepository.Remove(uint(friendshipID), currentUserID(c))
	if err != nil {
		switch err {
		case gorm.ErrRecordNotFound, repositories.ErrNotAccepted:
			return echo.NewHTTPError(http.StatusNotFound, "Friendship not found")
		case repositories.ErrNotParticipant:
			return echo.NewHTTPError(http.StatusForbidden, "Not allowed")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

// FriendList returns the user's friends plus incoming and outgoing pending
// requests.
func (h *FriendshipHandler) FriendList(c echo.Context) error {
	lists, err := h.friendshipRepository.ListForUser(currentUserID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"friends":           lists.Friends,
		"incoming_requests": lists.Incoming,
		"outgoing_requests": lists.Outgoing,
		"friend_count":      len(lists.Friends),
	})
}
