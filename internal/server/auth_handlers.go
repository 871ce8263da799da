package server

import (
	"pescart/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Register handles POST /api/auth/register
// @Summary Register
// @Description Create an account and return a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body object{username=string,email=string,password=string,firstName=string,lastName=string} true "Registration"
// @Success 201 {object} service.AuthResult
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/register [post]
func (s *Server) Register(c *fiber.Ctx) error {
	var req struct {
		Username  string `json:"username"`
		Email     string `json:"email"`
		Password  string `json:"password"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	res, err := s.authService.Register(c.UserContext(), service.RegisterInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

// Login handles POST /api/auth/login
// @Summary Login
// @Description Authenticate with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body object{email=string,password=string} true "Credentials"
// @Success 200 {object} service.AuthResult
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	res, err := s.authService.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(res)
}

// Logout handles POST /api/auth/logout
// @Summary Logout
// @Description Revoke the presented token
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{message=string}
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/logout [post]
func (s *Server) Logout(c *fiber.Ctx) error {
	if err := s.authService.Logout(c.UserContext(), bearerToken(c)); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Logged out"})
}

// Me handles GET /api/auth/me
// @Summary Current user
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /auth/me [get]
func (s *Server) Me(c *fiber.Ctx) error {
	user, err := s.authService.Me(c.UserContext(), currentUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(user)
}
