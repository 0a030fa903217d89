// Copyright (c) 2026 Riwaya. All rights reserved.

package users

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/riwaya/riwaya/internal/platform/constants"
	"github.com/riwaya/riwaya/internal/platform/middleware"
	requestutil "github.com/riwaya/riwaya/internal/platform/request"
	"github.com/riwaya/riwaya/internal/platform/respond"
	"github.com/riwaya/riwaya/internal/platform/validate"
	"github.com/riwaya/riwaya/pkg/pagination"
	"github.com/riwaya/riwaya/pkg/pointer"
)

// Handler implements profile and follow-graph HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new users [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the users endpoints.
//
// # Endpoints
//   - GET    /              : Paginated member directory.
//   - GET    /me            : Caller's profile.
//   - PATCH  /me            : Partial profile update (JSON or multipart).
//   - PATCH  /me/password   : Password rotation.
//   - GET    /{id}          : Public profile.
//   - POST   /{id}/follow   : Follow a member.
//   - DELETE /{id}/follow   : Unfollow a member.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Get("/{id}", handler.get)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth())
		r.Get("/me", handler.me)
		r.Patch("/me", handler.updateMe)
		r.Patch("/me/password", handler.changePassword)
		r.Post("/{id}/follow", handler.follow)
		r.Delete("/{id}/follow", handler.unfollow)
	})

	return router
}

// # Profile Endpoints

func (handler *Handler) me(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.service.Me(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, "", user)
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	user, err := handler.service.GetByID(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, "", user.AsPublic())
}

type updateMeRequest struct {
	Name     *string `json:"name"`
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Bio      *string `json:"bio"`
}

/*
updateMe applies a partial profile update.

PATCH /api/v1/users/me

Accepts either a JSON body or a multipart form. The multipart form may carry
an "avatar" file alongside the text fields.
*/
func (handler *Handler) updateMe(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	input := UpdateMeInput{}

	if strings.HasPrefix(request.Header.Get("Content-Type"), "multipart/form-data") {
		if err := request.ParseMultipartForm(constants.MaxUploadBytes); err != nil {
			respond.Error(writer, request, validate.RequiredError("avatar", "Upload exceeds the size limit"))
			return
		}

		formValue := func(name string) *string {
			if values, ok := request.MultipartForm.Value[name]; ok && len(values) > 0 {
				return pointer.To(values[0])
			}
			return nil
		}
		input.Name = formValue(FieldName)
		input.Username = formValue(FieldUsername)
		input.Email = formValue(FieldEmail)
		input.Bio = formValue(FieldBio)

		if file, header, err := request.FormFile("avatar"); err == nil {
			defer file.Close()
			input.Avatar = &AvatarUpload{
				Filename:    header.Filename,
				ContentType: header.Header.Get("Content-Type"),
				Body:        file,
			}
		}
	} else {
		var body updateMeRequest
		if err := requestutil.DecodeJSON(request, &body); err != nil {
			respond.Error(writer, request, validate.ErrInvalidJSON)
			return
		}
		input.Name = body.Name
		input.Username = body.Username
		input.Email = body.Email
		input.Bio = body.Bio
	}

	validator := &validate.Validator{}
	if input.Username != nil {
		validator.MinLen(FieldUsername, *input.Username, 3).
			Alphanumeric(FieldUsername, *input.Username).
			Lowercase(FieldUsername, *input.Username)
	}
	if input.Email != nil {
		validator.Email(FieldEmail, *input.Email)
	}
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.UpdateMe(request.Context(), userID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, "Profile updated successfully", result)
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (handler *Handler) changePassword(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var body changePasswordRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldCurrentPassword, body.CurrentPassword).
		Required(FieldNewPassword, body.NewPassword).
		MinLen(FieldNewPassword, body.NewPassword, 8)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.ChangePassword(request.Context(), userID, body.CurrentPassword, body.NewPassword); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, "Password changed successfully", nil)
}

// # Directory Endpoints

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	members, meta, err := handler.service.List(request.Context(), pagination.FromRequest(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, "", members, meta)
}

// # Follow Endpoints

func (handler *Handler) follow(writer http.ResponseWriter, request *http.Request) {
	actorID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Follow(request.Context(), actorID, requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, "Followed successfully", nil)
}

func (handler *Handler) unfollow(writer http.ResponseWriter, request *http.Request) {
	actorID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Unfollow(request.Context(), actorID, requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, "Unfollowed successfully", nil)
}
