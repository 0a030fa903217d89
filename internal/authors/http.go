// Copyright (c) 2026 Riwaya. All rights reserved.

package authors

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/riwaya/riwaya/internal/platform/respond"
	"github.com/riwaya/riwaya/pkg/pagination"
)

// Handler implements the author directory HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new authors [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the author directory endpoints.
//
// # Endpoints
//   - GET /              : Paginated author directory.
//   - GET /most-popular  : Most-followed authors.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Get("/most-popular", handler.mostPopular)

	return router
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	authors, meta, err := handler.service.List(request.Context(), pagination.FromRequest(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, "", authors, meta)
}

func (handler *Handler) mostPopular(writer http.ResponseWriter, request *http.Request) {
	authors, err := handler.service.MostPopular(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, "", authors)
}
