// Copyright (c) 2026 Riwaya. All rights reserved.

/*
Package users implements profile management and the follow graph.

It owns the account profile (view, partial update, password change), the
paginated member directory, and the follow/unfollow flows that maintain the
denormalized follower counters.
*/
package users

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"time"

	"github.com/riwaya/riwaya/internal/platform/apperr"
	"github.com/riwaya/riwaya/internal/platform/constants"
	"github.com/riwaya/riwaya/internal/platform/sec"
	"github.com/riwaya/riwaya/internal/platform/storage"
	"github.com/riwaya/riwaya/pkg/pagination"
	"github.com/riwaya/riwaya/pkg/uuidv7"
)

// TokenProvider re-issues an access token after identity-bearing fields
// (username) change.
type TokenProvider interface {
	GenerateAccessToken(userID, username, role string, timeToLive time.Duration) (string, error)
}

// Service implements profile and follow-graph use cases.
type Service struct {
	repository    Repository
	uploader      storage.Uploader
	tokenProvider TokenProvider
	logger        *slog.Logger
}

// NewService constructs a new users [Service].
func NewService(repository Repository, uploader storage.Uploader, tokenProvider TokenProvider, logger *slog.Logger) *Service {
	return &Service{
		repository:    repository,
		uploader:      uploader,
		tokenProvider: tokenProvider,
		logger:        logger,
	}
}

// # Profile

// Me returns the caller's own profile.
func (service *Service) Me(context context.Context, userID string) (*User, error) {
	return service.repository.FindByID(context, userID)
}

// GetByID returns another member's profile.
func (service *Service) GetByID(context context.Context, id string) (*User, error) {
	return service.repository.FindByID(context, id)
}

// AvatarUpload carries an incoming avatar image.
type AvatarUpload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// UpdateMeInput is the partial profile update payload.
type UpdateMeInput struct {
	Name     *string
	Username *string
	Email    *string
	Bio      *string
	Avatar   *AvatarUpload
}

// UpdateMeResult is the updated profile plus a re-issued token when the
// username changed (the token embeds it).
type UpdateMeResult struct {
	User  *User   `json:"user"`
	Token *string `json:"token,omitempty"`
}

/*
UpdateMe applies a partial profile update.

Description: Uploads a new avatar when provided, verifies that a changed
username or email is not taken by ANOTHER account, and re-issues the access
token when the username changes.

Returns:
  - *UpdateMeResult: Fresh profile and optional new token
  - err: Conflict on identity collision, storage failures
*/
func (service *Service) UpdateMe(context context.Context, userID string, input UpdateMeInput) (*UpdateMeResult, error) {

	current, err := service.repository.FindByID(context, userID)
	if err != nil {
		return nil, err
	}

	if input.Username != nil && *input.Username != current.Username {
		if existing, err := service.repository.FindByUsername(context, *input.Username); err == nil && existing.ID != userID {
			return nil, apperr.Conflict("Username is already taken")
		}
	}

	if input.Email != nil && *input.Email != current.Email {
		if existing, err := service.repository.FindByEmail(context, *input.Email); err == nil && existing.ID != userID {
			return nil, apperr.Conflict("Email is already registered")
		}
	}

	update := UpdateProfileInput{
		Name:     input.Name,
		Username: input.Username,
		Email:    input.Email,
		Bio:      input.Bio,
	}

	if input.Avatar != nil {
		key := "avatars/" + uuidv7.New() + path.Ext(input.Avatar.Filename)
		avatarURL, err := service.uploader.Upload(context, key, input.Avatar.ContentType, input.Avatar.Body)
		if err != nil {
			return nil, fmt.Errorf("users_service_avatar_upload_failed: %w", err)
		}
		update.AvatarURL = &avatarURL
	}

	updated, err := service.repository.UpdateProfile(context, userID, update)
	if err != nil {
		return nil, err
	}

	service.logger.Info("user_profile_updated", slog.String("user_id", userID))

	result := &UpdateMeResult{User: updated}

	// Username lives inside the JWT; rotate the token so clients keep a
	// consistent identity.
	if input.Username != nil && *input.Username != current.Username {
		token, err := service.tokenProvider.GenerateAccessToken(
			updated.ID, updated.Username, string(updated.Role), constants.AccessTokenTTL,
		)
		if err != nil {
			return nil, fmt.Errorf("users_service_token_reissue_failed: %w", err)
		}
		result.Token = &token
	}

	return result, nil
}

/*
ChangePassword rotates the caller's password.

Returns:
  - err: Unauthorized when the current password does not match
*/
func (service *Service) ChangePassword(context context.Context, userID, currentPassword, newPassword string) error {
	user, err := service.repository.FindByID(context, userID)
	if err != nil {
		return err
	}

	if !sec.CheckPasswordHash(currentPassword, user.PasswordHash) {
		return apperr.Unauthorized("Current password is incorrect")
	}

	hashedPassword, err := sec.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("users_service_hash_failed: %w", err)
	}

	if err := service.repository.UpdatePassword(context, userID, hashedPassword); err != nil {
		return fmt.Errorf("users_service_change_password_failed: %w", err)
	}

	service.logger.Info("user_password_changed", slog.String("user_id", userID))

	return nil
}

// # Directory

// List returns one page of the member directory.
func (service *Service) List(context context.Context, request pagination.Request) ([]Public, pagination.Meta, error) {
	directive := pagination.Resolve(request)

	accounts, total, err := service.repository.List(context, directive)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	publics := make([]Public, 0, len(accounts))
	for _, account := range accounts {
		publics = append(publics, account.AsPublic())
	}

	return publics, directive.Summary(total), nil
}

// # Follow Graph

/*
Follow records that actorID follows targetID.

Description: Verifies the target exists, rejects self-follows, and inserts
the edge while bumping followerscount(target) and followingscount(actor) in
one transaction.

Returns:
  - err: Validation (self-follow), NotFound (target), Conflict (duplicate)
*/
func (service *Service) Follow(context context.Context, actorID, targetID string) error {
	if actorID == targetID {
		return apperr.ValidationError("You cannot follow yourself")
	}

	if _, err := service.repository.FindByID(context, targetID); err != nil {
		return err
	}

	created, err := service.repository.Follow(context, actorID, targetID)
	if err != nil {
		return err
	}
	if !created {
		return apperr.Conflict("Already following this user")
	}

	service.logger.Info("user_followed",
		slog.String("follower_id", actorID),
		slog.String("following_id", targetID),
	)

	return nil
}

/*
Unfollow removes the follow edge and decrements both counters, clamped at
zero.

Returns:
  - err: Conflict when no follow edge exists
*/
func (service *Service) Unfollow(context context.Context, actorID, targetID string) error {
	if actorID == targetID {
		return apperr.ValidationError("You cannot unfollow yourself")
	}

	removed, err := service.repository.Unfollow(context, actorID, targetID)
	if err != nil {
		return err
	}
	if !removed {
		return apperr.Conflict("Not following this user")
	}

	service.logger.Info("user_unfollowed",
		slog.String("follower_id", actorID),
		slog.String("following_id", targetID),
	)

	return nil
}
