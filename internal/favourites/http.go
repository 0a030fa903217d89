// Copyright (c) 2026 Riwaya. All rights reserved.

package favourites

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/riwaya/riwaya/internal/platform/middleware"
	requestutil "github.com/riwaya/riwaya/internal/platform/request"
	"github.com/riwaya/riwaya/internal/platform/respond"
	"github.com/riwaya/riwaya/pkg/pagination"
)

// Handler implements the favourites HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new favourites [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the favourites endpoints. Every endpoint
// operates on the caller's own library, so the whole group requires auth.
//
// # Endpoints
//   - GET    /           : Paginated list of favourited novels.
//   - POST   /{novelId}  : Add a novel to favourites.
//   - DELETE /{novelId}  : Remove a novel from favourites.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth())

	router.Get("/", handler.list)
	router.Post("/{novelId}", handler.add)
	router.Delete("/{novelId}", handler.remove)

	return router
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	list, meta, err := handler.service.List(request.Context(), userID, pagination.FromRequest(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, "", list, meta)
}

func (handler *Handler) add(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Add(request.Context(), userID, requestutil.ID(request, "novelId")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, "Added to favourites", nil)
}

func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Remove(request.Context(), userID, requestutil.ID(request, "novelId")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, "Removed from favourites", nil)
}
