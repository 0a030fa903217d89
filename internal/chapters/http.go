// Copyright (c) 2026 Riwaya. All rights reserved.

package chapters

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/riwaya/riwaya/internal/platform/middleware"
	requestutil "github.com/riwaya/riwaya/internal/platform/request"
	"github.com/riwaya/riwaya/internal/platform/respond"
	"github.com/riwaya/riwaya/internal/platform/validate"
	"github.com/riwaya/riwaya/pkg/pagination"
)

// Handler implements the chapter HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new chapters [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the chapter endpoints.
//
// # Endpoints
//   - GET    /{id}                    : Chapter detail with counters.
//   - PATCH  /{id}                    : Update, novel owner only.
//   - DELETE /{id}                    : Delete, novel owner only.
//   - POST   /{id}/view               : Record one view per reader.
//   - POST   /{id}/like               : Toggle the reader's like.
//   - GET    /{id}/comments           : Paginated comments, newest first.
//   - POST   /{id}/comments           : Add a comment.
//   - PATCH  /comments/{commentId}    : Edit own comment.
//   - DELETE /comments/{commentId}    : Delete own comment.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/{id}", handler.get)
	router.Get("/{id}/comments", handler.listComments)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth())
		r.Patch("/{id}", handler.update)
		r.Delete("/{id}", handler.remove)
		r.Post("/{id}/view", handler.recordView)
		r.Post("/{id}/like", handler.toggleLike)
		r.Post("/{id}/comments", handler.createComment)
		r.Patch("/comments/{commentId}", handler.updateComment)
		r.Delete("/comments/{commentId}", handler.deleteComment)
	})

	return router
}

// NovelRoutes returns the routes nested under /novels/{novelId}/chapters.
func (handler *Handler) NovelRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listByNovel)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth())
		r.Post("/", handler.create)
	})

	return router
}

// # Reading Endpoints

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	chapter, err := handler.service.Get(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, "", chapter)
}

func (handler *Handler) listByNovel(writer http.ResponseWriter, request *http.Request) {
	list, err := handler.service.ListByNovel(request.Context(), requestutil.ID(request, "novelId"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, "", list)
}

// # Lifecycle Endpoints

type createChapterRequest struct {
	Title   string  `json:"title"`
	Content *string `json:"content"`
}

/*
create appends a chapter to an owned novel.

POST /api/v1/novels/{novelId}/chapters

The chapter number is assigned automatically: previous max + 1, first
chapter = 1.
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var body createChapterRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldTitle, body.Title).MaxLen(FieldTitle, body.Title, 200)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	chapter, err := handler.service.Create(request.Context(), CreateInput{
		NovelID: requestutil.ID(request, "novelId"),
		ActorID: userID,
		Title:   body.Title,
		Content: body.Content,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, "Chapter created successfully", chapter)
}

type updateChapterRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var body updateChapterRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	chapter, err := handler.service.Update(request.Context(), requestutil.ID(request, "id"), userID,
		ChapterUpdateInput{Title: body.Title, Content: body.Content})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, "Chapter updated successfully", chapter)
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

// # View & Like Endpoints

func (handler *Handler) recordView(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.RecordView(request.Context(), requestutil.ID(request, "id"), userID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, "View recorded", nil)
}

func (handler *Handler) toggleLike(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	liked, err := handler.service.ToggleLike(request.Context(), requestutil.ID(request, "id"), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, "", map[string]bool{"liked": liked})
}

// # Comment Endpoints

func (handler *Handler) listComments(writer http.ResponseWriter, request *http.Request) {
	list, meta, err := handler.service.ListComments(
		request.Context(), requestutil.ID(request, "id"), pagination.FromRequest(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, "", list, meta)
}

type commentRequest struct {
	Body string `json:"body"`
}

func (handler *Handler) createComment(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var body commentRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldBody, body.Body).MaxLen(FieldBody, body.Body, 2000)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	comment, err := handler.service.CreateComment(request.Context(), requestutil.ID(request, "id"), userID, body.Body)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, "Comment added successfully", comment)
}

func (handler *Handler) updateComment(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var body commentRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldBody, body.Body).MaxLen(FieldBody, body.Body, 2000)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	comment, err := handler.service.UpdateComment(request.Context(), requestutil.ID(request, "commentId"), userID, body.Body)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, "Comment updated successfully", comment)
}

func (handler *Handler) deleteComment(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteComment(request.Context(), requestutil.ID(request, "commentId"), userID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
