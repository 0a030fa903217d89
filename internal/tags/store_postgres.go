// Copyright (c) 2026 Riwaya. All rights reserved.

package tags

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

// NewPostgresRepository creates a new Postgres-backed tags Repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) List(context context.Context, directive pagination.Directive) ([]*Tag, int, error) {
	tag := schema.CoreTag

	whereClause := ""
	args := []any{}
	if directive.Search != "" {
		whereClause = fmt.Sprintf(`WHERE %s ILIKE $1`, tag.Name)
		args = append(args, "%"+directive.Search+"%")
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s %s`, tag.Table, whereClause)
	total := 0
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "tags")
	}

	orderColumn := directive.Order(tag.ID, tag.Name, tag.CreatedAt)

	listQuery := fmt.Sprintf(`SELECT %s, %s, %s FROM %s %s ORDER BY %s %s`,
		tag.ID, tag.Name, tag.CreatedAt, tag.Table, whereClause, orderColumn, directive.OrderDir)
	if !directive.SkipLimit {
		listQuery += fmt.Sprintf(` LIMIT %d OFFSET %d`, directive.Limit, directive.Skip)
	}

	rows, err := repository.db.Query(context, listQuery, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "tags")
	}
	defer rows.Close()

	list := make([]*Tag, 0)
	for rows.Next() {
		item := &Tag{}
		if err := rows.Scan(&item.ID, &item.Name, &item.CreatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "tag")
		}
		list = append(list, item)
	}
	return list, total, nil
}

func (repository *PostgresRepository) FindByID(context context.Context, id int) (*Tag, error) {
	return repository.findBy(context, schema.CoreTag.ID, id)
}

func (repository *PostgresRepository) FindByName(context context.Context, name string) (*Tag, error) {
	return repository.findBy(context, schema.CoreTag.Name, name)
}

func (repository *PostgresRepository) findBy(context context.Context, column string, value any) (*Tag, error) {
	tag := schema.CoreTag
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s WHERE %s = $1`,
		tag.ID, tag.Name, tag.CreatedAt, tag.Table, column)

	item := &Tag{}
	if err := repository.db.QueryRow(context, query, value).Scan(&item.ID, &item.Name, &item.CreatedAt); err != nil {
		return nil, dberr.Wrap(err, "tag")
	}
	return item, nil
}

func (repository *PostgresRepository) Update(context context.Context, tag *Tag) error {
	table := schema.CoreTag
	query := fmt.Sprintf(`UPDATE %s SET %s = $1 WHERE %s = $2`, table.Table, table.Name, table.ID)

	commandTag, err := repository.db.Exec(context, query, tag.Name, tag.ID)
	if err != nil {
		return dberr.Wrap(err, "tag")
	}
	if commandTag.RowsAffected() == 0 {
		return dberr.Wrap(pgx.ErrNoRows, "tag")
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id int) error {
	table := schema.CoreTag
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, table.Table, table.ID)

	commandTag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "tag")
	}
	if commandTag.RowsAffected() == 0 {
		return dberr.Wrap(pgx.ErrNoRows, "tag")
	}
	return nil
}

// NovelsByTag pages through the novels carrying one tag.
func (repository *PostgresRepository) NovelsByTag(context context.Context, tagID int, directive pagination.Directive) ([]*novels.Novel, int, error) {
	novel := schema.CoreNovel
	link := schema.CoreNovelTag

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s = $1`, link.Table, link.TagID)
	total := 0
	if err := repository.db.QueryRow(context, countQuery, tagID).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "novels")
	}

	orderColumn := directive.Order(novel.ID, novel.Title, novel.ViewsCount, novel.LikesCount, novel.CreatedAt)

	listQuery := fmt.Sprintf(
		`SELECT n.%s, n.%s, n.%s, n.%s, n.%s, n.%s, n.%s, n.%s, n.%s, n.%s, n.%s, n.%s, n.%s
		 FROM %s n JOIN %s l ON l.%s = n.%s
		 WHERE l.%s = $1 ORDER BY n.%s %s`,
		novel.ID, novel.AuthorID, novel.CategoryID, novel.Title, novel.Slug,
		novel.Description, novel.CoverURL, novel.Status,
		novel.ViewsCount, novel.LikesCount, novel.ChaptersCount,
		novel.CreatedAt, novel.UpdatedAt,
		novel.Table, link.Table, link.NovelID, novel.ID,
		link.TagID, orderColumn, directive.OrderDir)
	if !directive.SkipLimit {
		listQuery += fmt.Sprintf(` LIMIT %d OFFSET %d`, directive.Limit, directive.Skip)
	}

	rows, err := repository.db.Query(context, listQuery, tagID)
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
