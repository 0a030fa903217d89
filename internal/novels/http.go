// Copyright (c) 2026 Riwaya. All rights reserved.

package novels

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/riwaya/riwaya/internal/platform/constants"
	"github.com/riwaya/riwaya/internal/platform/middleware"
	requestutil "github.com/riwaya/riwaya/internal/platform/request"
	"github.com/riwaya/riwaya/internal/platform/respond"
	"github.com/riwaya/riwaya/internal/platform/validate"
	"github.com/riwaya/riwaya/pkg/convert"
	"github.com/riwaya/riwaya/pkg/pagination"
	"github.com/riwaya/riwaya/pkg/pointer"
)

// Handler implements the novel catalog HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new novels [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the novels endpoints.
//
// # Endpoints
//   - GET    /                  : Paginated catalog, searchable by title.
//   - GET    /most-popular      : Top novels by view count.
//   - GET    /user/{userId}     : One account's novels.
//   - GET    /me                : Caller's own novels.
//   - GET    /{idOrSlug}        : Novel detail by UUID or slug.
//   - POST   /                  : Create (multipart, cover required).
//   - PATCH  /{id}              : Partial update, owner only.
//   - DELETE /{id}              : Delete, owner only.
//   - POST   /{id}/tags         : Attach one tag.
//   - POST   /{id}/tags/bulk    : Attach several tags.
//   - DELETE /{id}/tags/{tagId} : Detach a tag.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Get("/most-popular", handler.mostPopular)
	router.Get("/user/{userId}", handler.userNovels)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth())
		r.Get("/me", handler.myNovels)
		r.Post("/", handler.create)
		r.Patch("/{id}", handler.update)
		r.Delete("/{id}", handler.remove)
		r.Post("/{id}/tags", handler.addTag)
		r.Post("/{id}/tags/bulk", handler.addTags)
		r.Delete("/{id}/tags/{tagId}", handler.removeTag)
	})

	// Registered last so it does not shadow the fixed segments above.
	router.Get("/{idOrSlug}", handler.get)

	return router
}

// # Discovery Endpoints

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	list, meta, err := handler.service.List(request.Context(), pagination.FromRequest(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, "", list, meta)
}

func (handler *Handler) mostPopular(writer http.ResponseWriter, request *http.Request) {
	list, err := handler.service.MostPopular(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, "", list)
}

func (handler *Handler) userNovels(writer http.ResponseWriter, request *http.Request) {
	list, meta, err := handler.service.ListByAuthor(
		request.Context(), requestutil.ID(request, "userId"), pagination.FromRequest(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, "", list, meta)
}

func (handler *Handler) myNovels(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	list, meta, err := handler.service.ListByAuthor(request.Context(), userID, pagination.FromRequest(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, "", list, meta)
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	novel, err := handler.service.Get(request.Context(), requestutil.ID(request, "idOrSlug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, "", novel)
}

// # Lifecycle Endpoints

/*
create persists a new novel.

POST /api/v1/novels

The body is a multipart form: title, description, categoryId, and a "cover"
image file (required).
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := request.ParseMultipartForm(constants.MaxUploadBytes); err != nil {
		respond.Error(writer, request, validate.RequiredError(FieldCover, "Upload exceeds the size limit"))
		return
	}

	title := request.FormValue(FieldTitle)
	categoryID := convert.ToInt(request.FormValue(FieldCategoryID))

	validator := &validate.Validator{}
	validator.Required(FieldTitle, title).
		MaxLen(FieldTitle, title, 200).
		Custom(FieldCategoryID, categoryID <= 0, "A valid category is required")
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	input := CreateInput{
		AuthorID:   userID,
		Title:      title,
		CategoryID: categoryID,
	}
	if description := request.FormValue(FieldDescription); description != "" {
		input.Description = pointer.To(description)
	}

	if file, header, err := request.FormFile(FieldCover); err == nil {
		defer file.Close()
		input.Cover = &CoverUpload{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Body:        file,
		}
	}

	novel, err := handler.service.Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, "Novel created successfully", novel)
}

type updateNovelRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	CategoryID  *int    `json:"categoryId"`
	Status      *string `json:"status"`
}

/*
update applies a partial update to an owned novel.

PATCH /api/v1/novels/{id}

Accepts JSON, or a multipart form when a new cover image is included.
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	input := UpdateInput{}
	var newCover *CoverUpload

	if strings.HasPrefix(request.Header.Get("Content-Type"), "multipart/form-data") {
		if err := request.ParseMultipartForm(constants.MaxUploadBytes); err != nil {
			respond.Error(writer, request, validate.RequiredError(FieldCover, "Upload exceeds the size limit"))
			return
		}

		formValue := func(name string) *string {
			if values, ok := request.MultipartForm.Value[name]; ok && len(values) > 0 {
				return pointer.To(values[0])
			}
			return nil
		}
		input.Title = formValue(FieldTitle)
		input.Description = formValue(FieldDescription)
		input.Status = formValue(FieldStatus)
		if raw := formValue(FieldCategoryID); raw != nil {
			input.CategoryID = pointer.To(convert.ToInt(*raw))
		}

		if file, header, err := request.FormFile(FieldCover); err == nil {
			defer file.Close()
			newCover = &CoverUpload{
				Filename:    header.Filename,
				ContentType: header.Header.Get("Content-Type"),
				Body:        file,
			}
		}
	} else {
		var body updateNovelRequest
		if err := requestutil.DecodeJSON(request, &body); err != nil {
			respond.Error(writer, request, validate.ErrInvalidJSON)
			return
		}
		input.Title = body.Title
		input.Description = body.Description
		input.CategoryID = body.CategoryID
		input.Status = body.Status
	}

	novel, err := handler.service.Update(request.Context(), requestutil.ID(request, "id"), userID, input, newCover)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, "Novel updated successfully", novel)
}

func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), requestutil.ID(request, "id"), userID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// # Tag Endpoints

type addTagRequest struct {
	Name string `json:"name"`
}

type addTagsRequest struct {
	Names []string `json:"names"`
}

func (handler *Handler) addTag(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var body addTagRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldTagName, body.Name).MaxLen(FieldTagName, body.Name, 50)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.AddTag(request.Context(), requestutil.ID(request, "id"), userID, body.Name); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, "Tag attached successfully", nil)
}

func (handler *Handler) addTags(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var body addTagsRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if err := handler.service.AddTags(request.Context(), requestutil.ID(request, "id"), userID, body.Names); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, "Tags attached successfully", nil)
}

func (handler *Handler) removeTag(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	tagID := convert.ToInt(requestutil.ID(request, "tagId"))
	if err := handler.service.RemoveTag(request.Context(), requestutil.ID(request, "id"), userID, tagID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
