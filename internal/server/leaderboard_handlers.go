package server

import (
	"pescart/internal/models"
	"pescart/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetLeaderboard handles GET /api/leaderboards/:type
// @Summary Leaderboard
// @Description Verified records ranked by weight. The type is echoed in X-Leaderboard-Type.
// @Tags leaderboards
// @Produce json
// @Param type path string true "Leaderboard type"
// @Param species query string false "Species or all"
// @Param county query string false "County or all"
// @Param waterType query string false "Water type or all"
// @Param limit query int false "Max entries (default 10, max 100)"
// @Param offset query int false "Entries to skip"
// @Success 200 {array} models.LeaderboardEntry
// @Failure 400 {object} models.ErrorResponse
// @Router /leaderboards/{type} [get]
func (s *Server) GetLeaderboard(c *fiber.Ctx) error {
	kind := c.Params("type")
	filter := models.LeaderboardFilter{
		Species:   c.Query("species"),
		County:    c.Query("county"),
		WaterType: c.Query("waterType"),
	}

	entries, err := s.leaderboardService.Leaderboard(c.UserContext(), kind, filter,
		c.QueryInt("limit", service.DefaultLeaderboardLimit), c.QueryInt("offset", 0))
	if err != nil {
		return fail(c, err)
	}

	c.Set("X-Leaderboard-Type", kind)
	return c.JSON(entries)
}

// GetUserProfile handles GET /api/users/:userId/profile
// @Summary User profile
// @Tags users
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} models.UserProfile
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{userId}/profile [get]
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	profile, err := s.leaderboardService.Profile(c.UserContext(), c.Params("userId"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(profile)
}

// GetStats handles GET /api/stats
// @Summary Site statistics
// @Tags stats
// @Produce json
// @Success 200 {object} models.GlobalStats
// @Router /stats [get]
func (s *Server) GetStats(c *fiber.Ctx) error {
	stats, err := s.leaderboardService.GlobalStats(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(stats)
}
