package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetPendingRecords handles GET /api/admin/pending-records
// @Summary Pending records
// @Description Unverified records with submitter details, oldest first
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.PendingRecord
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /admin/pending-records [get]
func (s *Server) GetPendingRecords(c *fiber.Ctx) error {
	pending, err := s.recordService.Pending(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(pending)
}

// VerifyRecord handles POST /api/admin/verify-record/:recordId
// @Summary Approve or reject a record
// @Description approved=true verifies the record, approved=false deletes it
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param recordId path string true "Record ID"
// @Param request body object{approved=bool} true "Decision"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/verify-record/{recordId} [post]
func (s *Server) VerifyRecord(c *fiber.Ctx) error {
	var req struct {
		Approved *bool `json:"approved"`
	}
	if err := c.BodyParser(&req); err != nil || req.Approved == nil {
		return badRequest(c, "approved must be true or false")
	}

	id := c.Params("recordId")
	if *req.Approved {
		if err := s.recordService.Verify(c.UserContext(), id); err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"message": "Record approved"})
	}

	if err := s.recordService.Reject(c.UserContext(), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Record rejected and deleted"})
}
