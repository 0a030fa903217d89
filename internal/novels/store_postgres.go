// Copyright (c) 2026 Riwaya. All rights reserved.

package novels

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/riwaya/riwaya/internal/platform/counter"
	"github.com/riwaya/riwaya/internal/platform/database/schema"
	"github.com/riwaya/riwaya/internal/platform/dberr"
	"github.com/riwaya/riwaya/pkg/pagination"
)

// PostgresRepository implements Repository on pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a new Postgres-backed novels Repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func novelColumns() string {
	novel := schema.CoreNovel
	return strings.Join([]string{
		novel.ID, novel.AuthorID, novel.CategoryID, novel.Title, novel.Slug,
		novel.Description, novel.CoverURL, novel.Status,
		novel.ViewsCount, novel.LikesCount, novel.ChaptersCount,
		novel.CreatedAt, novel.UpdatedAt,
	}, ", ")
}

func scanNovel(row pgx.Row) (*Novel, error) {
	novel := &Novel{}
	err := row.Scan(
		&novel.ID, &novel.AuthorID, &novel.CategoryID, &novel.Title, &novel.Slug,
		&novel.Description, &novel.CoverURL, &novel.Status,
		&novel.ViewsCount, &novel.LikesCount, &novel.ChaptersCount,
		&novel.CreatedAt, &novel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return novel, nil
}

// # Catalog Queries

func (repository *PostgresRepository) List(context context.Context, directive pagination.Directive) ([]*Novel, int, error) {
	novel := schema.CoreNovel

	whereClause := ""
	args := []any{}
	if directive.Search != "" {
		whereClause = fmt.Sprintf(`WHERE %s ILIKE $1`, novel.Title)
		args = append(args, "%"+directive.Search+"%")
	}

	return repository.page(context, whereClause, args, directive)
}

func (repository *PostgresRepository) ListByAuthor(context context.Context, authorID string, directive pagination.Directive) ([]*Novel, int, error) {
	whereClause := fmt.Sprintf(`WHERE %s = $1`, schema.CoreNovel.AuthorID)
	return repository.page(context, whereClause, []any{authorID}, directive)
}

// page runs the shared count + fetch pair for a filtered listing.
func (repository *PostgresRepository) page(context context.Context, whereClause string, args []any, directive pagination.Directive) ([]*Novel, int, error) {
	novel := schema.CoreNovel

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s %s`, novel.Table, whereClause)
	total := 0
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "novels")
	}

	orderColumn := directive.Order(novel.ID, novel.Title, novel.ViewsCount,
		novel.LikesCount, novel.ChaptersCount, novel.CreatedAt)

	listQuery := fmt.Sprintf(`SELECT %s FROM %s %s ORDER BY %s %s`,
		novelColumns(), novel.Table, whereClause, orderColumn, directive.OrderDir)
	if !directive.SkipLimit {
		listQuery += fmt.Sprintf(` LIMIT %d OFFSET %d`, directive.Limit, directive.Skip)
	}

	rows, err := repository.db.Query(context, listQuery, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "novels")
	}
	defer rows.Close()

	list := make([]*Novel, 0)
	for rows.Next() {
		item, err := scanNovel(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "novel")
		}
		list = append(list, item)
	}
	return list, total, nil
}

func (repository *PostgresRepository) MostPopular(context context.Context, limit int) ([]*Novel, error) {
	novel := schema.CoreNovel
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s DESC LIMIT $1`,
		novelColumns(), novel.Table, novel.ViewsCount)

	rows, err := repository.db.Query(context, query, limit)
	if err != nil {
		return nil, dberr.Wrap(err, "novels")
	}
	defer rows.Close()

	list := make([]*Novel, 0, limit)
	for rows.Next() {
		item, err := scanNovel(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "novel")
		}
		list = append(list, item)
	}
	return list, nil
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Novel, error) {
	return repository.findBy(context, schema.CoreNovel.ID, id)
}

func (repository *PostgresRepository) FindBySlug(context context.Context, slug string) (*Novel, error) {
	return repository.findBy(context, schema.CoreNovel.Slug, slug)
}

func (repository *PostgresRepository) findBy(context context.Context, column string, value string) (*Novel, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		novelColumns(), schema.CoreNovel.Table, column)

	novel, err := scanNovel(repository.db.QueryRow(context, query, value))
	if err != nil {
		return nil, dberr.Wrap(err, "novel")
	}

	tags, err := repository.TagsOf(context, novel.ID)
	if err != nil {
		return nil, err
	}
	novel.Tags = tags
	return novel, nil
}

// # Mutations

// Create inserts the row and bumps the owner's novelscount atomically.
func (repository *PostgresRepository) Create(context context.Context, novel *Novel) error {
	table := schema.CoreNovel
	account := schema.UserAccount

	insertQuery := fmt.Sprintf(
		`INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		table.Table,
		table.ID, table.AuthorID, table.CategoryID, table.Title,
		table.Slug, table.Description, table.CoverURL, table.Status,
	)

	err := pgx.BeginFunc(context, repository.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(context, insertQuery,
			novel.ID, novel.AuthorID, novel.CategoryID, novel.Title,
			novel.Slug, novel.Description, novel.CoverURL, novel.Status,
		); err != nil {
			return err
		}

		owned := counter.ColumnCounter{
			DB:        tx,
			Table:     account.Table,
			Column:    account.NovelsCount,
			KeyColumn: account.ID,
			Key:       novel.AuthorID,
		}
		return owned.Adjust(context, +1)
	})
	if err != nil {
		return dberr.Wrap(err, "novel")
	}
	return nil
}

func (repository *PostgresRepository) Update(context context.Context, novelID string, input UpdateInput) (*Novel, error) {
	table := schema.CoreNovel

	assignments := []string{}
	args := []any{}
	position := 1

	appendSet := func(column string, value any) {
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, position))
		args = append(args, value)
		position++
	}

	if input.Title != nil {
		appendSet(table.Title, *input.Title)
	}
	if input.Description != nil {
		appendSet(table.Description, *input.Description)
	}
	if input.CategoryID != nil {
		appendSet(table.CategoryID, *input.CategoryID)
	}
	if input.Status != nil {
		appendSet(table.Status, *input.Status)
	}
	if input.CoverURL != nil {
		appendSet(table.CoverURL, *input.CoverURL)
	}

	if len(assignments) == 0 {
		return repository.FindByID(context, novelID)
	}

	assignments = append(assignments, fmt.Sprintf("%s = now()", table.UpdatedAt))
	args = append(args, novelID)

	query := fmt.Sprintf(`UPDATE %s SET %s WHERE %s = $%d RETURNING %s`,
		table.Table, strings.Join(assignments, ", "), table.ID, position, novelColumns())

	novel, err := scanNovel(repository.db.QueryRow(context, query, args...))
	if err != nil {
		return nil, dberr.Wrap(err, "novel")
	}
	return novel, nil
}

// Delete removes the novel and decrements the owner's novelscount, clamped.
func (repository *PostgresRepository) Delete(context context.Context, novelID, authorID string) error {
	table := schema.CoreNovel
	account := schema.UserAccount

	deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, table.Table, table.ID)

	err := pgx.BeginFunc(context, repository.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(context, deleteQuery, novelID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return pgx.ErrNoRows
		}

		owned := counter.ColumnCounter{
			DB:        tx,
			Table:     account.Table,
			Column:    account.NovelsCount,
			KeyColumn: account.ID,
			Key:       authorID,
		}
		return owned.Adjust(context, -1)
	})
	if err != nil {
		return dberr.Wrap(err, "novel")
	}
	return nil
}

// # Category & Tags

func (repository *PostgresRepository) CategoryExists(context context.Context, categoryID int) (bool, error) {
	category := schema.CoreCategory
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`, category.Table, category.ID)

	exists := false
	if err := repository.db.QueryRow(context, query, categoryID).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "category")
	}
	return exists, nil
}

// AttachTag upserts the tag by name, then links it to the novel.
func (repository *PostgresRepository) AttachTag(context context.Context, novelID, tagName string) (bool, error) {
	tag := schema.CoreTag
	link := schema.CoreNovelTag

	upsertQuery := fmt.Sprintf(
		`INSERT INTO %s (%s) VALUES ($1) ON CONFLICT (%s) DO UPDATE SET %s = EXCLUDED.%s RETURNING %s`,
		tag.Table, tag.Name, tag.Name, tag.Name, tag.Name, tag.ID,
	)
	linkQuery := fmt.Sprintf(
		`INSERT INTO %s (%s, %s) VALUES ($1, $2) ON CONFLICT (%s, %s) DO NOTHING`,
		link.Table, link.NovelID, link.TagID, link.NovelID, link.TagID,
	)

	linked := false
	err := pgx.BeginFunc(context, repository.db, func(tx pgx.Tx) error {
		tagID := 0
		if err := tx.QueryRow(context, upsertQuery, tagName).Scan(&tagID); err != nil {
			return err
		}

		commandTag, err := tx.Exec(context, linkQuery, novelID, tagID)
		if err != nil {
			return err
		}
		linked = commandTag.RowsAffected() > 0
		return nil
	})
	if err != nil {
		return false, dberr.Wrap(err, "tag")
	}
	return linked, nil
}

func (repository *PostgresRepository) DetachTag(context context.Context, novelID string, tagID int) (bool, error) {
	link := schema.CoreNovelTag
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		link.Table, link.NovelID, link.TagID)

	commandTag, err := repository.db.Exec(context, query, novelID, tagID)
	if err != nil {
		return false, dberr.Wrap(err, "tag")
	}
	return commandTag.RowsAffected() > 0, nil
}

func (repository *PostgresRepository) TagsOf(context context.Context, novelID string) ([]Tag, error) {
	tag := schema.CoreTag
	link := schema.CoreNovelTag

	query := fmt.Sprintf(
		`SELECT t.%s, t.%s FROM %s t JOIN %s l ON l.%s = t.%s WHERE l.%s = $1 ORDER BY t.%s ASC`,
		tag.ID, tag.Name, tag.Table, link.Table, link.TagID, tag.ID, link.NovelID, tag.Name,
	)

	rows, err := repository.db.Query(context, query, novelID)
	if err != nil {
		return nil, dberr.Wrap(err, "tags")
	}
	defer rows.Close()

	tags := make([]Tag, 0)
	for rows.Next() {
		item := Tag{}
		if err := rows.Scan(&item.ID, &item.Name); err != nil {
			return nil, dberr.Wrap(err, "tag")
		}
		tags = append(tags, item)
	}
	return tags, nil
}
