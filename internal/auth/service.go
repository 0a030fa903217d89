// Copyright (c) 2026 Riwaya. All rights reserved.

/*
Package auth implements the identity and access management system.

It handles user registration, secure password hashing, and session lifecycle
management via JWT access tokens whose revocation state lives in Redis.

Architecture:

  - Service: Orchestrates business logic (Register, Login, Logout).
  - Repository: Abstracted interfaces for Postgres (Users) and Redis (Sessions).
  - Security: Leverages bcrypt hashing and HMAC-signed JWTs.
*/
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/riwaya/riwaya/internal/platform/apperr"
	"github.com/riwaya/riwaya/internal/platform/constants"
	"github.com/riwaya/riwaya/internal/platform/sec"
	"github.com/riwaya/riwaya/pkg/uuidv7"
)

// # Contracts & Types

// TokenProvider defines the contract for generating security tokens.
type TokenProvider interface {
	// GenerateAccessToken creates a signed JWT string for the given user.
	GenerateAccessToken(userID, username, role string, timeToLive time.Duration) (string, error)
}

// Service implements user authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, registration,
// or login logic must be reviewed carefully.
type Service struct {
	userRepository    UserRepository
	sessionRepository SessionRepository
	tokenProvider     TokenProvider
	logger            *slog.Logger
}

// NewService constructs a new auth [Service] with necessary dependencies.
func NewService(userRepo UserRepository, sessionRepo SessionRepository, tokenProv TokenProvider, logger *slog.Logger) *Service {
	return &Service{
		userRepository:    userRepo,
		sessionRepository: sessionRepo,
		tokenProvider:     tokenProv,
		logger:            logger,
	}
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new member.
type RegisterInput struct {
	Name     string
	Username string
	Email    string
	Password string
}

// LoginSession represents a successfully established user session.
type LoginSession struct {
	AccessToken string `json:"token"`
	User        *User  `json:"user"`
}

/*
Register validates, hashes, and persists a brand new user account, then logs
the member straight in.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *LoginSession: Token plus the created entity
  - err: Conflict (if identity exists) or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*LoginSession, error) {

	// Verify email uniqueness. Return a client-safe Conflict err.
	_, err := service.userRepository.FindByEmail(context, input.Email)
	if err == nil {
		return nil, apperr.Conflict("Email is already registered")
	}

	// Verify username uniqueness. Return a client-safe Conflict err.
	_, err = service.userRepository.FindByUsername(context, input.Username)
	if err == nil {
		return nil, apperr.Conflict("Username is already taken")
	}

	// Prevent storing plain-text passwords.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	// Time-sortable ID to prevent PG index fragmentation.
	user := &User{
		ID:           uuidv7.New(),
		Name:         input.Name,
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Role:         sec.RoleMember,
	}

	if err := service.userRepository.Create(context, user); err != nil {
		return nil, fmt.Errorf("auth_service_register_failed: %w", err)
	}

	service.logger.Info("user_registered",
		slog.String("user_id", user.ID),
		slog.String("username", user.Username),
	)

	return service.openSession(context, user)
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Login    string // Can be Username or Email
	Password string
}

/*
Login validates user credentials and issues an access token.

Description: Verifies identity, performs constant-time password comparison,
and marks the account's session as live.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *LoginSession: Transport-ready session identifiers
  - err: Unauthorized or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*LoginSession, error) {

	// Flexible login: look up by Email or Username.
	user, err := service.userRepository.FindByEmail(context, input.Login)
	if err != nil {
		user, err = service.userRepository.FindByUsername(context, input.Login)
	}

	// Generic message to prevent account enumeration.
	if err != nil {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	// bcrypt performs a constant-time comparison internally.
	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	service.logger.Info("user_logged_in", slog.String("user_id", user.ID))

	return service.openSession(context, user)
}

/*
Logout revokes the user's live session.

Description: Once the session record is gone, every token issued to the
account stops working even though it remains cryptographically valid.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - err: Revocation failures
*/
func (service *Service) Logout(context context.Context, userID string) error {
	if err := service.sessionRepository.Delete(context, userID); err != nil {
		return fmt.Errorf("auth_service_logout_failed: %w", err)
	}

	service.logger.Info("user_session_revoked", slog.String("user_id", userID))

	return nil
}

// # Session Helpers

// openSession issues an access token and records the live session.
func (service *Service) openSession(context context.Context, user *User) (*LoginSession, error) {
	accessToken, err := service.tokenProvider.GenerateAccessToken(
		user.ID, user.Username, string(user.Role), constants.AccessTokenTTL,
	)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	if err := service.sessionRepository.Set(context, user.ID, constants.SessionTTL); err != nil {
		return nil, fmt.Errorf("auth_service_session_creation_failed: %w", err)
	}

	return &LoginSession{AccessToken: accessToken, User: user}, nil
}
