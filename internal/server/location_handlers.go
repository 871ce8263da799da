package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetLocations handles GET /api/fishing-locations
// @Summary Fishing locations
// @Tags locations
// @Produce json
// @Success 200 {array} models.FishingLocation
// @Router /fishing-locations [get]
func (s *Server) GetLocations(c *fiber.Ctx) error {
	locations, err := s.locationService.List(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(locations)
}

// GetLocation handles GET /api/fishing-locations/:id
// @Summary Fishing location by ID
// @Tags locations
// @Produce json
// @Param id path string true "Location ID"
// @Success 200 {object} models.FishingLocation
// @Failure 404 {object} models.ErrorResponse
// @Router /fishing-locations/{id} [get]
func (s *Server) GetLocation(c *fiber.Ctx) error {
	location, err := s.locationService.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(location)
}
