// Copyright (c) 2026 Riwaya. All rights reserved.

/*
Package storage provides object storage for user-uploaded media.

Covers, avatars, and generic uploads are written to an S3-compatible bucket
and served back through a public base URL. The package hides SDK details
behind a small Uploader interface so handlers and services stay testable.
*/
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// Uploader stores an object and returns its publicly reachable URL.
type Uploader interface {
	Upload(ctx context.Context, key string, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, key string) error
}

// Config carries the bucket coordinates and credentials.
type Config struct {
	Bucket        string
	Region        string
	Endpoint      string // empty for AWS proper; set for MinIO and friends
	AccessKey     string
	SecretKey     string
	PublicBaseURL string // base under which uploaded keys are served
}

// S3Store implements Uploader against an S3-compatible backend.
type S3Store struct {
	client        *s3.S3
	uploader      *s3manager.Uploader
	bucket        string
	publicBaseURL string
	logger        *slog.Logger
}

// NewS3Store builds the SDK session and verifies the bucket is reachable.
func NewS3Store(ctx context.Context, cfg Config, logger *slog.Logger) (*S3Store, error) {
	awsConfig := &aws.Config{
		Region:      aws.String(cfg.Region),
		Credentials: credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, ""),
	}
	if cfg.Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.Endpoint)
		// Path-style addressing is what most S3-compatible stores expect.
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}

	awsSession, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("storage: failed to create session: %w", err)
	}

	client := s3.New(awsSession)

	if _, err := client.HeadBucketWithContext(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(cfg.Bucket),
	}); err != nil {
		return nil, fmt.Errorf("storage: bucket %q unreachable: %w", cfg.Bucket, err)
	}

	logger.Info("object storage connected",
		slog.String("bucket", cfg.Bucket),
		slog.String("region", cfg.Region),
	)

	return &S3Store{
		client:        client,
		uploader:      s3manager.NewUploaderWithClient(client),
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
		logger:        logger,
	}, nil
}

// Upload writes the object and returns the URL it will be served from.
func (s *S3Store) Upload(ctx context.Context, key string, contentType string, body io.Reader) (string, error) {
	_, err := s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("storage: upload %q failed: %w", key, err)
	}

	return s.publicBaseURL + "/" + key, nil
}

// Delete removes the object. Missing keys are not an error.
func (s *S3Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("storage: delete %q failed: %w", key, err)
	}
	return nil
}
