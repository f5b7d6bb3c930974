package service

import (
	"fmt"
	"time"

	"github.com/mohanyaswanthkumar/hws-pfsd/internal/apperr"
	"github.com/mohanyaswanthkumar/hws-pfsd/internal/authz"
	"github.com/mohanyaswanthkumar/hws-pfsd/internal/models"
	"github.com/mohanyaswanthkumar/hws-pfsd/internal/notification"
	"github.com/mohanyaswanthkumar/hws-pfsd/pkg/logger"
	"github.com/mohanyaswanthkumar/hws-pfsd/pkg/utils"
)

type AuthService struct {
	userStore UserStore
	audit     AuditStore
	notifier  Notifier
	log       *logger.Logger
}

func NewAuthService(userStore UserStore, audit AuditStore, notifier Notifier, log *logger.Logger) *AuthService {
	return &AuthService{
		userStore: userStore,
		audit:     audit,
		notifier:  notifier,
		log:       log,
	}
}

// RegisterInput carries the fields accepted from a registration payload
type RegisterInput struct {
	Username     string
	Email        string
	Password     string
	Role         string
	Phone        string
	Address      string
	ProfilePhoto string
}

// LoginResponse represents the response structure for login
type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// Register creates a new user account and queues the welcome email
func (s *AuthService) Register(in RegisterInput) (*models.User, error) {
	if !authz.Role(in.Role).Valid() {
		return nil, apperr.ValidationField("role", "must be one of patient, doctor, admin")
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, apperr.Internal("failed to hash password", err)
	}

	user := &models.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         in.Role,
		Phone:        in.Phone,
		Address:      in.Address,
		ProfilePhoto: in.ProfilePhoto,
	}
	if err := s.userStore.CreateUser(user); err != nil {
		return nil, wrap("failed to create user", err)
	}

	userIDPtr := &user.ID
	_ = s.audit.CreateAuditLog(userIDPtr, models.AuditUserRegister, fmt.Sprintf("User %s registered as %s", user.Username, user.Role))

	s.notifier.Emit(notification.Intent{
		Event:     notification.EventWelcome,
		Recipient: user.Email,
		Fields:    map[string]string{"username": user.Username},
	})

	return user, nil
}

// Login authenticates a user and returns tokens
func (s *AuthService) Login(username, password string) (*LoginResponse, error) {
	// Find user by username
	user, err := s.userStore.FindUserByUsername(username)
	if err != nil {
		return nil, apperr.Unauthenticated("invalid credentials")
	}

	// Compare password
	if !utils.ComparePassword(user.PasswordHash, password) {
		return nil, apperr.Unauthenticated("invalid credentials")
	}

	// Generate access token
	accessToken, err := utils.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, apperr.Internal("failed to generate access token", err)
	}

	// Generate refresh token
	refreshToken, err := utils.GenerateRefreshToken()
	if err != nil {
		return nil, apperr.Internal("failed to generate refresh token", err)
	}

	// Hash and store refresh token
	tokenHash := utils.HashRefreshToken(refreshToken)
	refreshTokenModel := &models.RefreshToken{
		UserID:    user.ID,
		TokenHash: tokenHash,
		ExpiresAt: time.Now().Add(utils.GetRefreshTokenExpiry()),
	}

	if err := s.userStore.CreateRefreshToken(refreshTokenModel); err != nil {
		return nil, wrap("failed to store refresh token", err)
	}

	userIDPtr := &user.ID
	_ = s.audit.CreateAuditLog(userIDPtr, models.AuditUserLogin, fmt.Sprintf("User %s logged in", username))

	return &LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: UserResponse{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
			Role:     user.Role,
		},
	}, nil
}

// Refresh rotates a refresh token and issues a fresh access token
func (s *AuthService) Refresh(refreshToken string) (*LoginResponse, error) {
	tokenHash := utils.HashRefreshToken(refreshToken)

	stored, err := s.userStore.FindRefreshTokenByHash(tokenHash)
	if err != nil {
		return nil, apperr.Unauthenticated("invalid refresh token")
	}

	if time.Now().After(stored.ExpiresAt) {
		_ = s.userStore.RevokeRefreshToken(stored.ID)
		return nil, apperr.Unauthenticated("refresh token expired")
	}

	user := stored.User

	accessToken, err := utils.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, apperr.Internal("failed to generate access token", err)
	}

	// Rotate: revoke the used token and issue a new one
	newRefreshToken, err := utils.GenerateRefreshToken()
	if err != nil {
		return nil, apperr.Internal("failed to generate refresh token", err)
	}

	if err := s.userStore.RevokeRefreshToken(stored.ID); err != nil {
		return nil, wrap("failed to revoke refresh token", err)
	}

	newModel := &models.RefreshToken{
		UserID:    user.ID,
		TokenHash: utils.HashRefreshToken(newRefreshToken),
		ExpiresAt: time.Now().Add(utils.GetRefreshTokenExpiry()),
	}
	if err := s.userStore.CreateRefreshToken(newModel); err != nil {
		return nil, wrap("failed to store refresh token", err)
	}

	return &LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
		User: UserResponse{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
			Role:     user.Role,
		},
	}, nil
}

// Logout revokes the presented refresh token
func (s *AuthService) Logout(refreshToken string) error {
	tokenHash := utils.HashRefreshToken(refreshToken)
	if err := s.userStore.RevokeRefreshTokenByHash(tokenHash); err != nil {
		return wrap("failed to revoke refresh token", err)
	}
	_ = s.audit.CreateAuditLog(nil, models.AuditUserLogout, "Refresh token revoked")
	return nil
}
