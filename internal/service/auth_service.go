// Package service holds the domain logic behind the HTTP handlers.
package service

import (
	"context"
	"strings"

	"pescart/internal/models"
	"pescart/internal/observability"
	"pescart/internal/repository"
	"pescart/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

const invalidCredentials = "Invalid credentials"

// Authorizer decides whether a user may perform moderation.
type Authorizer interface {
	RequireAdmin(ctx context.Context, userID string) error
}

type AuthService struct {
	users      repository.UserRepository
	tokens     *TokenManager
	adminEmail string
}

type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// AuthResult is returned by register and login.
type AuthResult struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// NewAuthService builds the auth service. Accounts registered with
// adminEmail get the admin role.
func NewAuthService(users repository.UserRepository, tokens *TokenManager, adminEmail string) *AuthService {
	return &AuthService{
		users:      users,
		tokens:     tokens,
		adminEmail: normalizeEmail(adminEmail),
	}
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = normalizeEmail(in.Email)
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)

	if in.Username == "" || in.Email == "" || in.Password == "" {
		return nil, models.NewValidationError("Username, email, and password are required")
	}
	if err := validation.ValidateUsername(in.Username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateName("firstName", in.FirstName); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateName("lastName", in.LastName); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Username:  in.Username,
		Email:     in.Email,
		Password:  string(hash),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Role:      models.RoleUser,
	}
	if s.adminEmail != "" && user.Email == s.adminEmail {
		user.Role = models.RoleAdmin
	}

	if err := s.users.Create(ctx, user); err != nil {
		observability.RecordAuth("register", err)
		return nil, err
	}
	observability.RecordAuth("register", nil)

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return &AuthResult{User: user, Token: token}, nil
}

// Login answers unknown emails and wrong passwords identically.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, models.NewValidationError("Email and password are required")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		authErr := models.NewUnauthorizedError(invalidCredentials)
		observability.RecordAuth("login", authErr)
		return nil, authErr
	}
	observability.RecordAuth("login", nil)

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return &AuthResult{User: user, Token: token}, nil
}

func (s *AuthService) VerifyToken(ctx context.Context, token string) (*Claims, error) {
	return s.tokens.Verify(ctx, token)
}

func (s *AuthService) Me(ctx context.Context, userID string) (*models.User, error) {
	return s.users.GetByID(ctx, userID)
}

// Logout revokes the presented token. Without Redis nothing is recorded.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := s.tokens.Verify(ctx, token)
	if err != nil {
		return err
	}
	if err := s.tokens.Revoke(ctx, claims); err != nil {
		return models.NewInternalError(err)
	}
	observability.RecordAuth("logout", nil)
	return nil
}

func (s *AuthService) RequireAdmin(ctx context.Context, userID string) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if models.HasCode(err, models.CodeNotFound) {
			return models.NewForbiddenError("Admin access required")
		}
		return err
	}
	if !user.IsAdmin() {
		return models.NewForbiddenError("Admin access required")
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
