// Copyright (c) 2026 Riwaya. All rights reserved.

package users

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riwaya/riwaya/internal/platform/apperr"
	"github.com/riwaya/riwaya/internal/platform/sec"
	"github.com/riwaya/riwaya/pkg/pagination"
)

// fakeRepository keeps profiles and the follow graph in memory.
type fakeRepository struct {
	users map[string]*User
	edges map[[2]string]bool
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		users: make(map[string]*User),
		edges: make(map[[2]string]bool),
	}
}

func (f *fakeRepository) FindByID(_ context.Context, id string) (*User, error) {
	if user, ok := f.users[id]; ok {
		return user, nil
	}
	return nil, apperr.NotFound("user")
}

func (f *fakeRepository) FindByUsername(_ context.Context, username string) (*User, error) {
	for _, user := range f.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, apperr.NotFound("user")
}

func (f *fakeRepository) FindByEmail(_ context.Context, email string) (*User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, apperr.NotFound("user")
}

func (f *fakeRepository) List(_ context.Context, _ pagination.Directive) ([]*User, int, error) {
	list := make([]*User, 0, len(f.users))
	for _, user := range f.users {
		list = append(list, user)
	}
	return list, len(list), nil
}

func (f *fakeRepository) UpdateProfile(_ context.Context, userID string, input UpdateProfileInput) (*User, error) {
	user, ok := f.users[userID]
	if !ok {
		return nil, apperr.NotFound("user")
	}
	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Username != nil {
		user.Username = *input.Username
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Bio != nil {
		user.Bio = input.Bio
	}
	if input.AvatarURL != nil {
		user.AvatarURL = input.AvatarURL
	}
	return user, nil
}

func (f *fakeRepository) UpdatePassword(_ context.Context, userID string, passwordHash string) error {
	user, ok := f.users[userID]
	if !ok {
		return apperr.NotFound("user")
	}
	user.PasswordHash = passwordHash
	return nil
}

func (f *fakeRepository) Follow(_ context.Context, followerID, followingID string) (bool, error) {
	key := [2]string{followerID, followingID}
	if f.edges[key] {
		return false, nil
	}
	f.edges[key] = true
	f.users[followingID].FollowersCount++
	f.users[followerID].FollowingsCount++
	return true, nil
}

func (f *fakeRepository) Unfollow(_ context.Context, followerID, followingID string) (bool, error) {
	key := [2]string{followerID, followingID}
	if !f.edges[key] {
		return false, nil
	}
	delete(f.edges, key)
	if f.users[followingID].FollowersCount > 0 {
		f.users[followingID].FollowersCount--
	}
	if f.users[followerID].FollowingsCount > 0 {
		f.users[followerID].FollowingsCount--
	}
	return true, nil
}

func seedService(t *testing.T) (*Service, *fakeRepository) {
	t.Helper()
	repo := newFakeRepository()
	repo.users["alice"] = &User{ID: "alice", Username: "alice", Email: "alice@riwaya.app", Role: sec.RoleMember}
	repo.users["bob"] = &User{ID: "bob", Username: "bob", Email: "bob@riwaya.app", Role: sec.RoleMember}
	return NewService(repo, nil, nil, slog.New(slog.NewTextHandler(io.Discard, nil))), repo
}

/*
TestFollow_UpdatesBothCounters verifies that one follow bumps the target's
follower counter and the actor's following counter exactly once.
*/
func TestFollow_UpdatesBothCounters(t *testing.T) {
	service, repo := seedService(t)

	require.NoError(t, service.Follow(context.Background(), "alice", "bob"))

	assert.Equal(t, int64(1), repo.users["bob"].FollowersCount)
	assert.Equal(t, int64(1), repo.users["alice"].FollowingsCount)
	assert.Equal(t, int64(0), repo.users["bob"].FollowingsCount)
}

/*
TestFollow_DuplicateIsConflict verifies that following twice surfaces a
Conflict and leaves the counters untouched.
*/
func TestFollow_DuplicateIsConflict(t *testing.T) {
	service, repo := seedService(t)

	require.NoError(t, service.Follow(context.Background(), "alice", "bob"))
	err := service.Follow(context.Background(), "alice", "bob")

	require.Error(t, err)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 409, appErr.HTTPStatus)
	assert.Equal(t, int64(1), repo.users["bob"].FollowersCount)
}

/*
TestFollow_SelfIsRejected verifies that self-follows are a validation error.
*/
func TestFollow_SelfIsRejected(t *testing.T) {
	service, _ := seedService(t)

	err := service.Follow(context.Background(), "alice", "alice")

	require.Error(t, err)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 400, appErr.HTTPStatus)
}

/*
TestFollow_MissingTarget verifies a follow of an unknown account is NotFound.
*/
func TestFollow_MissingTarget(t *testing.T) {
	service, _ := seedService(t)

	err := service.Follow(context.Background(), "alice", "ghost")

	require.Error(t, err)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 404, appErr.HTTPStatus)
}

/*
TestUnfollow_RoundTrip verifies follow then unfollow restores both counters.
*/
func TestUnfollow_RoundTrip(t *testing.T) {
	service, repo := seedService(t)

	require.NoError(t, service.Follow(context.Background(), "alice", "bob"))
	require.NoError(t, service.Unfollow(context.Background(), "alice", "bob"))

	assert.Equal(t, int64(0), repo.users["bob"].FollowersCount)
	assert.Equal(t, int64(0), repo.users["alice"].FollowingsCount)
}

/*
TestUnfollow_AbsentIsConflict verifies unfollowing without an edge conflicts.
*/
func TestUnfollow_AbsentIsConflict(t *testing.T) {
	service, _ := seedService(t)

	err := service.Unfollow(context.Background(), "alice", "bob")

	require.Error(t, err)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 409, appErr.HTTPStatus)
}
