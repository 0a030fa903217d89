// Copyright (c) 2026 Riwaya. All rights reserved.

package tags

import (
	"context"

	"github.com/riwaya/riwaya/internal/novels"
	"github.com/riwaya/riwaya/pkg/pagination"
)

// Repository is the persistent tag set.
type Repository interface {
	List(context context.Context, directive pagination.Directive) ([]*Tag, int, error)
	FindByID(context context.Context, id int) (*Tag, error)
	FindByName(context context.Context, name string) (*Tag, error)
	Update(context context.Context, tag *Tag) error
	Delete(context context.Context, id int) error
	NovelsByTag(context context.Context, tagID int, directive pagination.Directive) ([]*novels.Novel, int, error)
}
