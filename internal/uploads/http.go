// Copyright (c) 2026 Riwaya. All rights reserved.

package uploads

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/riwaya/riwaya/internal/platform/constants"
	"github.com/riwaya/riwaya/internal/platform/middleware"
	"github.com/riwaya/riwaya/internal/platform/respond"
	"github.com/riwaya/riwaya/internal/platform/validate"
)

// fieldFile is the multipart form field carrying the upload.
const fieldFile = "file"

// Handler implements the upload HTTP endpoint.
type Handler struct {
	service *Service
}

// NewHandler constructs a new uploads [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the upload endpoint.
//
// # Endpoints
//   - POST / : Store a multipart file and return its public URL.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth())

	router.Post("/", handler.upload)

	return router
}

func (handler *Handler) upload(writer http.ResponseWriter, request *http.Request) {
	if err := request.ParseMultipartForm(constants.MaxUploadBytes); err != nil {
		respond.Error(writer, request, validate.RequiredError(fieldFile, "Upload exceeds the size limit"))
		return
	}

	file, header, err := request.FormFile(fieldFile)
	if err != nil {
		respond.Error(writer, request, validate.RequiredError(fieldFile, "A file is required"))
		return
	}
	defer file.Close()

	result, err := handler.service.Store(request.Context(), header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, "File uploaded successfully", result)
}
