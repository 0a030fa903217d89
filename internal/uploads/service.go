// Copyright (c) 2026 Riwaya. All rights reserved.

// Package uploads implements the generic file upload endpoint.
//
// Feature-specific uploads (covers, avatars) go through their own services so
// they can derive keys from the owning entity; this package covers everything
// else, filing objects under a shared prefix with generated names.
package uploads

import (
	"context"
	"io"
	"log/slog"
	"path"

	"github.com/riwaya/riwaya/internal/platform/storage"
	"github.com/riwaya/riwaya/pkg/uuidv7"
)

// keyPrefix is the object-store prefix for ad-hoc uploads.
const keyPrefix = "uploads/"

// Service stores uploaded files and hands back their public URLs.
type Service struct {
	uploader storage.Uploader
	logger   *slog.Logger
}

// NewService creates a new uploads Service.
func NewService(uploader storage.Uploader, logger *slog.Logger) *Service {
	return &Service{
		uploader: uploader,
		logger:   logger,
	}
}

// Result carries the stored object's location.
type Result struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

/*
Store uploads the file under a generated key, preserving the extension of the
original filename.

Parameters:
  - context: request-scoped context.
  - filename: the client-supplied filename, used only for its extension.
  - contentType: the MIME type reported by the client.
  - body: the file contents.

Returns:
  - *Result: the public URL and object key.
  - error: a storage error, if any.
*/
func (service *Service) Store(context context.Context, filename, contentType string, body io.Reader) (*Result, error) {
	key := keyPrefix + uuidv7.New() + path.Ext(filename)

	url, err := service.uploader.Upload(context, key, contentType, body)
	if err != nil {
		return nil, err
	}

	service.logger.Info("file_uploaded",
		slog.String("key", key),
		slog.String("content_type", contentType),
	)

	return &Result{URL: url, Key: key}, nil
}
