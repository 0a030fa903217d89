// Copyright (c) 2026 Riwaya. All rights reserved.

package tags

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/riwaya/riwaya/internal/platform/middleware"
	requestutil "github.com/riwaya/riwaya/internal/platform/request"
	"github.com/riwaya/riwaya/internal/platform/respond"
	"github.com/riwaya/riwaya/internal/platform/sec"
	"github.com/riwaya/riwaya/internal/platform/validate"
	"github.com/riwaya/riwaya/pkg/convert"
	"github.com/riwaya/riwaya/pkg/pagination"
)

const fieldName = "name"

// Handler implements the tag HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new tags [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the tag endpoints. Mutations require
// the moderator role.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Get("/{id}", handler.get)
	router.Get("/{id}/novels", handler.novels)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth())
		r.Use(middleware.RequireRole(sec.RoleModerator))
		r.Patch("/{id}", handler.update)
		r.Delete("/{id}", handler.remove)
	})

	return router
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	list, meta, err := handler.service.List(request.Context(), pagination.FromRequest(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, "", list, meta)
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	tag, err := handler.service.Get(request.Context(), convert.ToInt(requestutil.ID(request, "id")))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, "", tag)
}

func (handler *Handler) novels(writer http.ResponseWriter, request *http.Request) {
	list, meta, err := handler.service.Novels(request.Context(),
		convert.ToInt(requestutil.ID(request, "id")), pagination.FromRequest(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, "", list, meta)
}

type tagRequest struct {
	Name string `json:"name"`
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var body tagRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(fieldName, body.Name).MaxLen(fieldName, body.Name, 50)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	tag, err := handler.service.Update(request.Context(), convert.ToInt(requestutil.ID(request, "id")), body.Name)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, "Tag updated successfully", tag)
}

func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), convert.ToInt(requestutil.ID(request, "id"))); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
