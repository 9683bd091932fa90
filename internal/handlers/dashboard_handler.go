package handlers

import (
	"net/http"

	"github.com/hello-globe/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the staff-only popularity dashboard
type DashboardHandler struct {
	dashboardRepository repositories.DashboardRepository
	userRepository      repositories.UserRepository
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardRepo repositories.DashboardRepository, userRepo repositories.UserRepository) *DashboardHandler {
	return &DashboardHandler{
		dashboardRepository: dashboardRepo,
		userRepository:      userRepo,
	}
}

// RegisterDashboardRoutes registers dashboard-related routes
func (h *DashboardHandler) RegisterDashboardRoutes(g *echo.Group) {
	g.GET("/dashboard/popularity/", h.Popularity)
}

// Popularity reports the top 10 countries by pin count with each country's
// share of all pins, plus reaction counts grouped by the pin's country.
// Read-only and restricted to staff users.
func (h *DashboardHandler) Popularity(c echo.Context) error {
	user, err := h.userRepository.GetUserByID(currentUserID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Authenticated user not found in database")
	}
	if !user.IsStaff {
		return echo.NewHTTPError(http.StatusForbidden, "Staff only")
	}

	countryStats, totalPins, err := h.dashboardRepository.TopCountriesByPins(10)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	reactionStats, err := h.dashboardRepository.ReactionsByCountry()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"country_stats":  countryStats,
		"reaction_stats": reactionStats,
		"total_pins":     totalPins,
	})
}
