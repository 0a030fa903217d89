// Copyright (c) 2026 Riwaya. All rights reserved.

package categories

import (
	"context"

	"github.com/riwaya/riwaya/internal/novels"
	"github.com/riwaya/riwaya/pkg/pagination"
)

// Repository is the persistent category shelf.
type Repository interface {
	List(context context.Context, directive pagination.Directive) ([]*Category, int, error)
	FindByID(context context.Context, id int) (*Category, error)
	FindByName(context context.Context, name string) (*Category, error)
	Create(context context.Context, category *Category) error
	Update(context context.Context, category *Category) error
	Delete(context context.Context, id int) error
	NovelsByCategory(context context.Context, categoryID int, directive pagination.Directive) ([]*novels.Novel, int, error)
}
