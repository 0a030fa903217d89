// Copyright (c) 2026 Riwaya. All rights reserved.

package categories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/riwaya/riwaya/internal/novels"
	"github.com/riwaya/riwaya/internal/platform/database/schema"
	"github.com/riwaya/riwaya/internal/platform/dberr"
	"github.com/riwaya/riwaya/pkg/pagination"
)

// PostgresRepository implements Repository on pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a new Postgres-backed categories Repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) List(context context.Context, directive pagination.Directive) ([]*Category, int, error) {
	category := schema.CoreCategory

	whereClause := ""
	args := []any{}
	if directive.Search != "" {
		whereClause = fmt.Sprintf(`WHERE %s ILIKE $1`, category.Name)
		args = append(args, "%"+directive.Search+"%")
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s %s`, category.Table, whereClause)
	total := 0
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "categories")
	}

	orderColumn := directive.Order(category.ID, category.Name, category.CreatedAt)

	listQuery := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s %s ORDER BY %s %s`,
		category.ID, category.Name, category.Slug, category.CreatedAt,
		category.Table, whereClause, orderColumn, directive.OrderDir)
	if !directive.SkipLimit {
		listQuery += fmt.Sprintf(` LIMIT %d OFFSET %d`, directive.Limit, directive.Skip)
	}

	rows, err := repository.db.Query(context, listQuery, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "categories")
	}
	defer rows.Close()

	list := make([]*Category, 0)
	for rows.Next() {
		item := &Category{}
		if err := rows.Scan(&item.ID, &item.Name, &item.Slug, &item.CreatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "category")
		}
		list = append(list, item)
	}
	return list, total, nil
}

func (repository *PostgresRepository) FindByID(context context.Context, id int) (*Category, error) {
	return repository.findBy(context, schema.CoreCategory.ID, id)
}

func (repository *PostgresRepository) FindByName(context context.Context, name string) (*Category, error) {
	return repository.findBy(context, schema.CoreCategory.Name, name)
}

func (repository *PostgresRepository) findBy(context context.Context, column string, value any) (*Category, error) {
	category := schema.CoreCategory
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s WHERE %s = $1`,
		category.ID, category.Name, category.Slug, category.CreatedAt,
		category.Table, column)

	item := &Category{}
	err := repository.db.QueryRow(context, query, value).Scan(
		&item.ID, &item.Name, &item.Slug, &item.CreatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "category")
	}
	return item, nil
}

func (repository *PostgresRepository) Create(context context.Context, category *Category) error {
	table := schema.CoreCategory
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2) RETURNING %s, %s`,
		table.Table, table.Name, table.Slug, table.ID, table.CreatedAt)

	err := repository.db.QueryRow(context, query, category.Name, category.Slug).
		Scan(&category.ID, &category.CreatedAt)
	if err != nil {
		return dberr.Wrap(err, "category")
	}
	return nil
}

func (repository *PostgresRepository) Update(context context.Context, category *Category) error {
	table := schema.CoreCategory
	query := fmt.Sprintf(`UPDATE %s SET %s = $1, %s = $2 WHERE %s = $3`,
		table.Table, table.Name, table.Slug, table.ID)

	tag, err := repository.db.Exec(context, query, category.Name, category.Slug, category.ID)
	if err != nil {
		return dberr.Wrap(err, "category")
	}
	if tag.RowsAffected() == 0 {
		return dberr.Wrap(pgx.ErrNoRows, "category")
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id int) error {
	table := schema.CoreCategory
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, table.Table, table.ID)

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "category")
	}
	if tag.RowsAffected() == 0 {
		return dberr.Wrap(pgx.ErrNoRows, "category")
	}
	return nil
}

// NovelsByCategory pages through the novels filed under one category.
func (repository *PostgresRepository) NovelsByCategory(context context.Context, categoryID int, directive pagination.Directive) ([]*novels.Novel, int, error) {
	novel := schema.CoreNovel

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s = $1`, novel.Table, novel.CategoryID)
	total := 0
	if err := repository.db.QueryRow(context, countQuery, categoryID).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "novels")
	}

	orderColumn := directive.Order(novel.ID, novel.Title, novel.ViewsCount, novel.LikesCount, novel.CreatedAt)

	listQuery := fmt.Sprintf(
		`SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s FROM %s WHERE %s = $1 ORDER BY %s %s`,
		novel.ID, novel.AuthorID, novel.CategoryID, novel.Title, novel.Slug,
		novel.Description, novel.CoverURL, novel.Status,
		novel.ViewsCount, novel.LikesCount, novel.ChaptersCount,
		novel.CreatedAt, novel.UpdatedAt,
		novel.Table, novel.CategoryID, orderColumn, directive.OrderDir)
	if !directive.SkipLimit {
		listQuery += fmt.Sprintf(` LIMIT %d OFFSET %d`, directive.Limit, directive.Skip)
	}

	rows, err := repository.db.Query(context, listQuery, categoryID)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "novels")
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
			return nil, 0, dberr.Wrap(err, "novel")
		}
		list = append(list, item)
	}
	return list, total, nil
}
