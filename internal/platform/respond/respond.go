// Copyright (c) 2026 Riwaya. All rights reserved.

// Package respond provides HTTP response helpers used by all API handlers.
//
// # Architecture
//
// This package centralizes the presentation logic for HTTP responses. Every
// response, success or error, follows the platform envelope:
//
//	{ "message": ..., "statusCode": ..., "data": ..., "pagination": ... }
//
// so mobile apps and SPAs can parse results uniformly.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/riwaya/riwaya/internal/platform/apperr"
	"github.com/riwaya/riwaya/internal/platform/ctxutil"
	"github.com/riwaya/riwaya/pkg/pagination"
)

// Envelope is the JSON envelope for successful responses.
type Envelope struct {
	Message    string           `json:"message,omitempty"`
	StatusCode int              `json:"statusCode"`
	Data       interface{}      `json:"data,omitempty"`
	Pagination *pagination.Meta `json:"pagination,omitempty"`
}

// ErrorEnvelope is the JSON envelope for error responses.
type ErrorEnvelope struct {
	Message    string              `json:"message"`
	StatusCode int                 `json:"statusCode"`
	Code       string              `json:"code"`
	Details    []apperr.FieldError `json:"details,omitempty"`
}

// JSON writes a JSON response with the given status code.
func JSON(writer http.ResponseWriter, statusCode int, payload interface{}) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// OK writes a 200 response with data wrapped in the standard envelope.
func OK(writer http.ResponseWriter, message string, data interface{}) {
	JSON(writer, http.StatusOK, Envelope{
		Message:    message,
		StatusCode: http.StatusOK,
		Data:       data,
	})
}

// Created writes a 201 response with data wrapped in the standard envelope.
func Created(writer http.ResponseWriter, message string, data interface{}) {
	JSON(writer, http.StatusCreated, Envelope{
		Message:    message,
		StatusCode: http.StatusCreated,
		Data:       data,
	})
}

// Paginated writes a 200 response with list data and a pagination summary.
func Paginated(writer http.ResponseWriter, message string, data interface{}, meta pagination.Meta) {
	JSON(writer, http.StatusOK, Envelope{
		Message:    message,
		StatusCode: http.StatusOK,
		Data:       data,
		Pagination: &meta,
	})
}

// NoContent writes a 204 No Content response.
func NoContent(writer http.ResponseWriter) {
	writer.WriteHeader(http.StatusNoContent)
}

// Error converts any Go error into a standardized JSON API error response.
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	var appError *apperr.AppError
	if !errors.As(err, &appError) {
		// Unexpected internal error: log full details but hide them from
		// the client.
		logger := ctxutil.GetLogger(request.Context())
		logger.ErrorContext(request.Context(), "unhandled_error",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
		)
		appError = apperr.Internal(err)
	}

	// Always log 5xx errors as they indicate server-side issues.
	if appError.HTTPStatus >= 500 {
		logger := ctxutil.GetLogger(request.Context())
		logger.ErrorContext(request.Context(), "api_server_error",
			slog.String("code", appError.Code),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
			slog.Any("cause", appError.Cause),
		)
	}

	JSON(writer, appError.HTTPStatus, ErrorEnvelope{
		Message:    appError.Message,
		StatusCode: appError.HTTPStatus,
		Code:       appError.Code,
		Details:    appError.Details,
	})
}
