// Copyright (c) 2026 Riwaya. All rights reserved.

package favourites

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/riwaya/riwaya/internal/novels"
	"github.com/riwaya/riwaya/internal/platform/counter"
	"github.com/riwaya/riwaya/internal/platform/database/schema"
	"github.com/riwaya/riwaya/internal/platform/dberr"
	"github.com/riwaya/riwaya/pkg/pagination"
)

// PostgresRepository implements Repository on pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a new Postgres-backed favourites Repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func favouriteEdge(db counter.Querier) counter.TableRelation {
	favourite := schema.LibraryFavourite
	return counter.TableRelation{
		DB:           db,
		Table:        favourite.Table,
		ActorColumn:  favourite.UserID,
		TargetColumn: favourite.NovelID,
	}
}

// List joins the caller's edges to the catalog, newest favourite first.
func (repository *PostgresRepository) List(context context.Context, userID string, directive pagination.Directive) ([]*novels.Novel, int, error) {
	favourite := schema.LibraryFavourite
	novel := schema.CoreNovel

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s = $1`,
		favourite.Table, favourite.UserID)
	total := 0
	if err := repository.db.QueryRow(context, countQuery, userID).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "favourites")
	}

	qualified := make([]string, 0, 13)
	for _, column := range []string{
		novel.ID, novel.AuthorID, novel.CategoryID, novel.Title, novel.Slug,
		novel.Description, novel.CoverURL, novel.Status,
		novel.ViewsCount, novel.LikesCount, novel.ChaptersCount,
		novel.CreatedAt, novel.UpdatedAt,
	} {
		qualified = append(qualified, "n."+column)
	}

	listQuery := fmt.Sprintf(
		`SELECT %s FROM %s f JOIN %s n ON n.%s = f.%s WHERE f.%s = $1 ORDER BY f.%s %s`,
		strings.Join(qualified, ", "), favourite.Table, novel.Table,
		novel.ID, favourite.NovelID, favourite.UserID,
		favourite.CreatedAt, directive.OrderDir,
	)
	if !directive.SkipLimit {
		listQuery += fmt.Sprintf(` LIMIT %d OFFSET %d`, directive.Limit, directive.Skip)
	}

	rows, err := repository.db.Query(context, listQuery, userID)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "favourites")
	}
	defer rows.Close()

	list := make([]*novels.Novel, 0)
	for rows.Next() {
		item := &novels.Novel{}
		err := rows.Scan(
			&item.ID, &item.AuthorID, &item.CategoryID, &item.Title, &item.Slug,
			&item.Description, &item.CoverURL, &item.Status,
			&item.ViewsCount, &item.LikesCount, &item.ChaptersCount,
			&item.CreatedAt, &item.UpdatedAt,
		)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "favourite")
		}
		list = append(list, item)
	}
	return list, total, nil
}

func (repository *PostgresRepository) Add(context context.Context, userID, novelID string) (bool, error) {
	added, err := favouriteEdge(repository.db).Create(context, userID, novelID)
	if err != nil {
		return false, dberr.Wrap(err, "favourite")
	}
	return added, nil
}

func (repository *PostgresRepository) Remove(context context.Context, userID, novelID string) (bool, error) {
	removed, err := favouriteEdge(repository.db).Delete(context, userID, novelID)
	if err != nil {
		return false, dberr.Wrap(err, "favourite")
	}
	return removed, nil
}

func (repository *PostgresRepository) NovelExists(context context.Context, novelID string) (bool, error) {
	novel := schema.CoreNovel
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`, novel.Table, novel.ID)

	exists := false
	if err := repository.db.QueryRow(context, query, novelID).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "novel")
	}
	return exists, nil
}
