// Copyright (c) 2026 Riwaya. All rights reserved.

package categories

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

// Handler implements the category HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new categories [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the category endpoints. Mutations
// require the moderator role.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Get("/{id}", handler.get)
	router.Get("/{id}/novels", handler.novels)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth())
		r.Use(middleware.RequireRole(sec.RoleModerator))
		r.Post("/", handler.create)
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
	category, err := handler.service.Get(request.Context(), convert.ToInt(requestutil.ID(request, "id")))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, "", category)
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

type categoryRequest struct {
	Name string `json:"name"`
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var body categoryRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(fieldName, body.Name).MaxLen(fieldName, body.Name, 100)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	category, err := handler.service.Create(request.Context(), body.Name)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, "Category created successfully", category)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var body categoryRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(fieldName, body.Name).MaxLen(fieldName, body.Name, 100)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	category, err := handler.service.Update(request.Context(), convert.ToInt(requestutil.ID(request, "id")), body.Name)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, "Category updated successfully", category)
}

func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), convert.ToInt(requestutil.ID(request, "id"))); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
