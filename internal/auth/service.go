package auth

import (
	"errors"
	"fmt"
	"time"

	"receptionist-backend/internal/config"
	"receptionist-backend/internal/database/models"
	apperrors "receptionist-backend/internal/errors"
	"receptionist-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Claims represents JWT token claims carrying the authenticated principal.
// TenantID is the single source of tenant context for every downstream
// repository call; it is never read from request payloads.
type Claims struct {
	UserID   uuid.UUID       `json:"user_id"`
	TenantID uuid.UUID       `json:"tenant_id"`
	Email    string          `json:"email"`
	Role     models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// AuthService handles signup, login and token validation
type AuthService struct {
	cfg       *config.Config
	tenants   repository.TenantRepositoryInterface
	users     repository.UserRepositoryInterface
	subs      repository.SubscriptionRepositoryInterface
	validator *validator.Validate
}

// NewAuthService creates a new auth service
func NewAuthService(
	cfg *config.Config,
	tenants repository.TenantRepositoryInterface,
	users repository.UserRepositoryInterface,
	subs repository.SubscriptionRepositoryInterface,
	validator *validator.Validate,
) *AuthService {
	return &AuthService{
		cfg:       cfg,
		tenants:   tenants,
		users:     users,
		subs:      subs,
		validator: validator,
	}
}

// RegisterRequest represents a tenant signup
type RegisterRequest struct {
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8"`
	BusinessName string `json:"businessName" validate:"required,min=1,max=200"`
	Slug         string `json:"slug" validate:"required,min=3,max=100"`
}

// LoginRequest represents a login attempt
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse represents the user part of auth responses
type UserResponse struct {
	ID       uuid.UUID       `json:"id"`
	TenantID *uuid.UUID      `json:"tenant_id,omitempty"`
	Email    string          `json:"email"`
	Name     string          `json:"name"`
	Role     models.UserRole `json:"role"`
}

// AuthResponse represents a successful register or login
type AuthResponse struct {
	Token  string       `json:"token"`
	User   UserResponse `json:"user"`
	Tenant *TenantInfo  `json:"tenant,omitempty"`
}

// TenantInfo is the tenant summary returned on signup
type TenantInfo struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

// Register creates a tenant, its owner user and a free subscription, then
// issues a token scoped to the new tenant. Slug and email are pre-checked
// for friendly errors; the database unique constraints remain the actual
// enforcement under concurrent signups.
func (s *AuthService) Register(req *RegisterRequest) (*AuthResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	existingUser, err := s.users.GetByEmail(req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user by email: %w", err)
	}
	if existingUser != nil {
		return nil, apperrors.ErrUserEmailExists
	}

	existingTenant, err := s.tenants.GetBySlug(req.Slug)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing tenant by slug: %w", err)
	}
	if existingTenant != nil {
		return nil, apperrors.ErrTenantSlugExists
	}

	tenant := &models.Tenant{
		Name: req.BusinessName,
		Slug: req.Slug,
	}
	if err := s.tenants.Create(tenant); err != nil {
		return nil, err
	}

	passwordHash, err := HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		TenantID:     &tenant.ID,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Name:         req.BusinessName + " Owner",
		Role:         models.UserRoleOwner,
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	sub := &models.Subscription{
		TenantID: tenant.ID,
		Plan:     models.SubscriptionPlanFree,
		Status:   "active",
	}
	if err := s.subs.Create(sub); err != nil {
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	token, err := s.GenerateJWT(user)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		Token: token,
		User:  toUserResponse(user),
		Tenant: &TenantInfo{
			ID:   tenant.ID,
			Name: tenant.Name,
			Slug: tenant.Slug,
		},
	}, nil
}

// Login verifies credentials and issues a token scoped to the user's tenant.
// An unknown email and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(req *LoginRequest) (*AuthResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	user, err := s.users.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !ComparePassword(user.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.GenerateJWT(user)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		Token: token,
		User:  toUserResponse(user),
	}, nil
}

// Me returns the profile of the authenticated user
func (s *AuthService) Me(userID uuid.UUID) (*UserResponse, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// GenerateJWT creates a signed token for the user
func (s *AuthService) GenerateJWT(user *models.User) (string, error) {
	if user.TenantID == nil {
		return "", apperrors.NewConfigurationError("user has no tenant")
	}

	now := time.Now()
	ttl := time.Duration(s.cfg.JWTTTLHours) * time.Hour
	claims := &Claims{
		UserID:   user.ID,
		TenantID: *user.TenantID,
		Email:    user.Email,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "receptionist-backend",
			Subject:   user.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// ValidateJWT parses and verifies a token, returning its claims
func (s *AuthService) ValidateJWT(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, apperrors.ErrInvalidToken
}

func toUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		TenantID: user.TenantID,
		Email:    user.Email,
		Name:     user.Name,
		Role:     user.Role,
	}
}
