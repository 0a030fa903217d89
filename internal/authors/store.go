// Copyright (c) 2026 Riwaya. All rights reserved.

package authors

import (
	"context"

	"github.com/riwaya/riwaya/pkg/pagination"
)

// Repository is the read side of the author directory.
type Repository interface {
	List(context context.Context, directive pagination.Directive) ([]*Author, int, error)
	MostPopular(context context.Context, limit int) ([]*Author, error)
}
