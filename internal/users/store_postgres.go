// Copyright (c) 2026 Riwaya. All rights reserved.

package users

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

// NewPostgresRepository creates a new Postgres-backed users Repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// profileColumns is the SELECT list shared by every profile query.
func profileColumns() string {
	account := schema.UserAccount
	return strings.Join([]string{
		account.ID, account.Name, account.Username, account.Email,
		account.Password, account.Role, account.AvatarURL, account.Bio,
		account.FollowersCount, account.FollowingsCount, account.NovelsCount,
		account.CreatedAt, account.UpdatedAt,
	}, ", ")
}

func scanUser(row pgx.Row) (*User, error) {
	user := &User{}
	err := row.Scan(
		&user.ID, &user.Name, &user.Username, &user.Email,
		&user.PasswordHash, &user.Role, &user.AvatarURL, &user.Bio,
		&user.FollowersCount, &user.FollowingsCount, &user.NovelsCount,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*User, error) {
	return repository.findBy(context, schema.UserAccount.ID, id)
}

func (repository *PostgresRepository) FindByUsername(context context.Context, username string) (*User, error) {
	return repository.findBy(context, schema.UserAccount.Username, username)
}

func (repository *PostgresRepository) FindByEmail(context context.Context, email string) (*User, error) {
	return repository.findBy(context, schema.UserAccount.Email, email)
}

func (repository *PostgresRepository) findBy(context context.Context, column string, value string) (*User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		profileColumns(), schema.UserAccount.Table, column)

	user, err := scanUser(repository.db.QueryRow(context, query, value))
	if err != nil {
		return nil, dberr.Wrap(err, "user")
	}
	return user, nil
}

// List returns one page of accounts, optionally filtered by a name or
// username substring.
func (repository *PostgresRepository) List(context context.Context, directive pagination.Directive) ([]*User, int, error) {
	account := schema.UserAccount

	whereClause := ""
	args := []any{}
	if directive.Search != "" {
		whereClause = fmt.Sprintf(`WHERE %s ILIKE $1 OR %s ILIKE $1`, account.Name, account.Username)
		args = append(args, "%"+directive.Search+"%")
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s %s`, account.Table, whereClause)
	total := 0
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "users")
	}

	orderColumn := directive.Order(account.ID, account.Username, account.Name,
		account.FollowersCount, account.NovelsCount, account.CreatedAt)

	listQuery := fmt.Sprintf(`SELECT %s FROM %s %s ORDER BY %s %s`,
		profileColumns(), account.Table, whereClause, orderColumn, directive.OrderDir)
	if !directive.SkipLimit {
		listQuery += fmt.Sprintf(` LIMIT %d OFFSET %d`, directive.Limit, directive.Skip)
	}

	rows, err := repository.db.Query(context, listQuery, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "users")
	}
	defer rows.Close()

	list := make([]*User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "user")
		}
		list = append(list, user)
	}
	return list, total, nil
}

// UpdateProfile applies the non-nil fields and returns the fresh profile.
func (repository *PostgresRepository) UpdateProfile(context context.Context, userID string, input UpdateProfileInput) (*User, error) {
	account := schema.UserAccount

	assignments := []string{}
	args := []any{}
	position := 1

	appendSet := func(column string, value *string) {
		if value == nil {
			return
		}
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, position))
		args = append(args, *value)
		position++
	}

	appendSet(account.Name, input.Name)
	appendSet(account.Username, input.Username)
	appendSet(account.Email, input.Email)
	appendSet(account.Bio, input.Bio)
	appendSet(account.AvatarURL, input.AvatarURL)

	if len(assignments) == 0 {
		return repository.FindByID(context, userID)
	}

	assignments = append(assignments, fmt.Sprintf("%s = now()", account.UpdatedAt))
	args = append(args, userID)

	query := fmt.Sprintf(`UPDATE %s SET %s WHERE %s = $%d RETURNING %s`,
		account.Table, strings.Join(assignments, ", "), account.ID, position, profileColumns())

	user, err := scanUser(repository.db.QueryRow(context, query, args...))
	if err != nil {
		return nil, dberr.Wrap(err, "user")
	}
	return user, nil
}

func (repository *PostgresRepository) UpdatePassword(context context.Context, userID string, passwordHash string) error {
	account := schema.UserAccount
	query := fmt.Sprintf(`UPDATE %s SET %s = $1, %s = now() WHERE %s = $2`,
		account.Table, account.Password, account.UpdatedAt, account.ID)

	tag, err := repository.db.Exec(context, query, passwordHash, userID)
	if err != nil {
		return dberr.Wrap(err, "user")
	}
	if tag.RowsAffected() == 0 {
		return dberr.Wrap(pgx.ErrNoRows, "user")
	}
	return nil
}

// Follow inserts the edge and bumps both denormalized counters atomically.
func (repository *PostgresRepository) Follow(context context.Context, followerID, followingID string) (bool, error) {
	created := false
	err := pgx.BeginFunc(context, repository.db, func(tx pgx.Tx) error {
		edge := followEdge(tx)
		var err error
		created, err = counter.RecordOnce(context, edge, followerID, followingID,
			followerCounter(tx, followingID),
			followingCounter(tx, followerID),
		)
		return err
	})
	if err != nil {
		return false, dberr.Wrap(err, "follow")
	}
	return created, nil
}

// Unfollow deletes the edge and decrements both counters, clamped at zero.
func (repository *PostgresRepository) Unfollow(context context.Context, followerID, followingID string) (bool, error) {
	removed := false
	err := pgx.BeginFunc(context, repository.db, func(tx pgx.Tx) error {
		edge := followEdge(tx)
		var err error
		removed, err = counter.Remove(context, edge, followerID, followingID,
			followerCounter(tx, followingID),
			followingCounter(tx, followerID),
		)
		return err
	})
	if err != nil {
		return false, dberr.Wrap(err, "follow")
	}
	return removed, nil
}

// followEdge binds the users.follow table to the given transaction.
func followEdge(tx counter.Querier) counter.TableRelation {
	follow := schema.UserFollow
	return counter.TableRelation{
		DB:           tx,
		Table:        follow.Table,
		ActorColumn:  follow.FollowerID,
		TargetColumn: follow.FollowingID,
	}
}

func followerCounter(tx counter.Querier, accountID string) counter.ColumnCounter {
	account := schema.UserAccount
	return counter.ColumnCounter{
		DB:        tx,
		Table:     account.Table,
		Column:    account.FollowersCount,
		KeyColumn: account.ID,
		Key:       accountID,
	}
}

func followingCounter(tx counter.Querier, accountID string) counter.ColumnCounter {
	account := schema.UserAccount
	return counter.ColumnCounter{
		DB:        tx,
		Table:     account.Table,
		Column:    account.FollowingsCount,
		KeyColumn: account.ID,
		Key:       accountID,
	}
}
