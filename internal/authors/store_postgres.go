// Copyright (c) 2026 Riwaya. All rights reserved.

package authors

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/riwaya/riwaya/internal/platform/database/schema"
	"github.com/riwaya/riwaya/internal/platform/dberr"
	"github.com/riwaya/riwaya/pkg/pagination"
)

// PostgresRepository implements Repository on pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a new Postgres-backed authors Repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func authorColumns() string {
	account := schema.UserAccount
	return strings.Join([]string{
		account.ID, account.Name, account.Username, account.AvatarURL,
		account.Bio, account.FollowersCount, account.NovelsCount,
	}, ", ")
}

func scanAuthor(row pgx.Row) (*Author, error) {
	author := &Author{}
	err := row.Scan(
		&author.ID, &author.Name, &author.Username, &author.AvatarURL,
		&author.Bio, &author.FollowersCount, &author.NovelsCount,
	)
	if err != nil {
		return nil, err
	}
	return author, nil
}

// List pages through accounts that have published at least one novel.
func (repository *PostgresRepository) List(context context.Context, directive pagination.Directive) ([]*Author, int, error) {
	account := schema.UserAccount

	whereClause := fmt.Sprintf(`WHERE %s > 0`, account.NovelsCount)
	args := []any{}
	if directive.Search != "" {
		whereClause += fmt.Sprintf(` AND (%s ILIKE $1 OR %s ILIKE $1)`, account.Name, account.Username)
		args = append(args, "%"+directive.Search+"%")
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s %s`, account.Table, whereClause)
	total := 0
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "authors")
	}

	orderColumn := directive.Order(account.ID, account.Username, account.Name,
		account.FollowersCount, account.NovelsCount)

	listQuery := fmt.Sprintf(`SELECT %s FROM %s %s ORDER BY %s %s`,
		authorColumns(), account.Table, whereClause, orderColumn, directive.OrderDir)
	if !directive.SkipLimit {
		listQuery += fmt.Sprintf(` LIMIT %d OFFSET %d`, directive.Limit, directive.Skip)
	}

	rows, err := repository.db.Query(context, listQuery, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "authors")
	}
	defer rows.Close()

	list := make([]*Author, 0)
	for rows.Next() {
		author, err := scanAuthor(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "author")
		}
		list = append(list, author)
	}
	return list, total, nil
}

// MostPopular returns the most-followed publishing accounts.
func (repository *PostgresRepository) MostPopular(context context.Context, limit int) ([]*Author, error) {
	account := schema.UserAccount
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s > 0 ORDER BY %s DESC LIMIT $1`,
		authorColumns(), account.Table, account.NovelsCount, account.FollowersCount)

	rows, err := repository.db.Query(context, query, limit)
	if err != nil {
		return nil, dberr.Wrap(err, "authors")
	}
	defer rows.Close()

	list := make([]*Author, 0, limit)
	for rows.Next() {
		author, err := scanAuthor(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "author")
		}
		list = append(list, author)
	}
	return list, nil
}
