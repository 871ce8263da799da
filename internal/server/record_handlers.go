package server

import (
	"pescart/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetRecords handles GET /api/fishing-records
// @Summary Verified records
// @Description All verified records, newest first
// @Tags records
// @Produce json
// @Success 200 {array} models.FishingRecord
// @Router /fishing-records [get]
func (s *Server) GetRecords(c *fiber.Ctx) error {
	records, err := s.recordService.ListPublic(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(records)
}

// GetUserRecords handles GET /api/fishing-records/user/:userId
// @Summary Records of a user
// @Description All records of the user, verified or not, in submission order
// @Tags records
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {array} models.FishingRecord
// @Router /fishing-records/user/{userId} [get]
func (s *Server) GetUserRecords(c *fiber.Ctx) error {
	records, err := s.recordService.ListByUser(c.UserContext(), c.Params("userId"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(records)
}

// GetRecord handles GET /api/fishing-records/:id
// @Summary Record by ID
// @Description Unverified records are only visible to their owner and admins
// @Tags records
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} models.FishingRecord
// @Failure 404 {object} models.ErrorResponse
// @Router /fishing-records/{id} [get]
func (s *Server) GetRecord(c *fiber.Ctx) error {
	record, err := s.recordService.Get(c.UserContext(), currentUserID(c), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(record)
}

// CreateRecord handles POST /api/fishing-records
// @Summary Submit a record
// @Description Records start unverified and belong to the caller
// @Tags records
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{species=string,weight=string,length=number,location=string,locationId=string,county=string,waterType=string,dateCaught=string,description=string} true "Record"
// @Success 201 {object} models.FishingRecord
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /fishing-records [post]
func (s *Server) CreateRecord(c *fiber.Ctx) error {
	var req struct {
		Species     string        `json:"species"`
		Weight      decimalString `json:"weight"`
		Length      *float64      `json:"length"`
		Location    string        `json:"location"`
		LocationID  *string       `json:"locationId"`
		County      string        `json:"county"`
		WaterType   string        `json:"waterType"`
		DateCaught  string        `json:"dateCaught"`
		Description string        `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	record, err := s.recordService.Submit(c.UserContext(), currentUserID(c), service.SubmitRecordInput{
		Species:     req.Species,
		Weight:      string(req.Weight),
		Length:      req.Length,
		Location:    req.Location,
		LocationID:  req.LocationID,
		County:      req.County,
		WaterType:   req.WaterType,
		DateCaught:  req.DateCaught,
		Description: req.Description,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}
