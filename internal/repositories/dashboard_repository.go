package repositories

import (
	"math"

	"github.com/hello-globe/backend/internal/models"
	"gorm.io/gorm"
)

// CountryPinStat is one row of the popularity dashboard: pins per country
// plus that country's share of all pins.
type CountryPinStat struct {
	Country  string  `json:"country"`
	PinCount int     `json:"pin_count"`
	Percent  float64 `json:"percent"`
}

// CountryReactionStat counts reactions grouped by the parent pin's country.
type CountryReactionStat struct {
	Country       string `json:"country"`
	ReactionCount int    `json:"reaction_count"`
}

// DashboardRepository defines read-only reporting queries over pins and
// reactions. No mutation happens here.
type DashboardRepository interface {
	TopCountriesByPins(limit int) ([]CountryPinStat, int, error)
	ReactionsByCountry() ([]CountryReactionStat, error)
}

// PostgresDashboardRepository implements DashboardRepository for PostgreSQL
type PostgresDashboardRepository struct {
	db *gorm.DB
}

// NewPostgresDashboardRepository creates a new PostgresDashboardRepository
func NewPostgresDashboardRepository(db *gorm.DB) *PostgresDashboardRepository {
	return &PostgresDashboardRepository{db: db}
}

// TopCountriesByPins groups pins by country, returning the top `limit`
// countries by pin count together with the total pin count. Percentages are
// shares of all pins (not just the listed ones), rounded to 2 decimals.
// Empty countries are reported as "Unknown".
func (r *PostgresDashboardRepository) TopCountriesByPins(limit int) ([]CountryPinStat, int, error) {
	type row struct {
		Country  string
		PinCount int
	}
	var rows []row
	if err := r.db.Model(&models.Pin{}).
		Select("country, COUNT(*) as pin_count").
		Group("country").
		Order("pin_count DESC").
		Scan(&rows).Error; err != nil {
		return nil, 0, err
	}

	total := 0
	for _, rw := range rows {
		total += rw.PinCount
	}

	if len(rows) > limit {
		rows = rows[:limit]
	}

	stats := make([]CountryPinStat, 0, len(rows))
	for _, rw := range rows {
		country := rw.Country
		if country == "" {
			country = "Unknown"
		}
		percent := 0.0
		if total > 0 {
			percent = math.Round(100*float64(rw.PinCount)/float64(total)*100) / 100
		}
		stats = append(stats, CountryPinStat{
			Country:  country,
			PinCount: rw.PinCount,
			Percent:  percent,
		})
	}
	return stats, total, nil
}

// ReactionsByCountry counts reactions grouped by the country of the pin they
// belong to, most-reacted countries first.
func (r *PostgresDashboardRepository) ReactionsByCountry() ([]CountryReactionStat, error) {
	type row struct {
		Country       string
		ReactionCount int
	}
	var rows []row
	if err := r.db.Model(&models.Reaction{}).
		Select("pins.country as country, COUNT(*) as reaction_count").
		Joins("JOIN pins ON pins.id = reactions.pin_id").
		Group("pins.country").
		Order("reaction_count DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	stats := make([]CountryReactionStat, 0, len(rows))
	for _, rw := range rows {
		country := rw.Country
		if country == "" {
			country = "Unknown"
		}
		stats = append(stats, CountryReactionStat{Country: country, ReactionCount: rw.ReactionCount})
	}
	return stats, nil
}
