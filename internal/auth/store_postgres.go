// Copyright (c) 2026 Riwaya. All rights reserved.

package auth

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/riwaya/riwaya/internal/platform/database/schema"
	"github.com/riwaya/riwaya/internal/platform/dberr"
)

// PostgresUserRepository implements UserRepository on pgx.
type PostgresUserRepository struct {
	db *pgxpool.Pool
}

// NewPostgresUserRepository creates a new Postgres-backed UserRepository.
func NewPostgresUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (repository *PostgresUserRepository) Create(context context.Context, user *User) error {
	account := schema.UserAccount
	query := fmt.Sprintf(
		`INSERT INTO %s (%s, %s, %s, %s, %s, %s) VALUES ($1, $2, $3, $4, $5, $6)`,
		account.Table,
		account.ID, account.Name, account.Username, account.Email, account.Password, account.Role,
	)

	_, err := repository.db.Exec(context, query,
		user.ID, user.Name, user.Username, user.Email, user.PasswordHash, string(user.Role),
	)
	if err != nil {
		return dberr.Wrap(err, "account")
	}
	return nil
}

func (repository *PostgresUserRepository) FindByID(context context.Context, id string) (*User, error) {
	return repository.findBy(context, schema.UserAccount.ID, id)
}

func (repository *PostgresUserRepository) FindByEmail(context context.Context, email string) (*User, error) {
	return repository.findBy(context, schema.UserAccount.Email, email)
}

func (repository *PostgresUserRepository) FindByUsername(context context.Context, username string) (*User, error) {
	return repository.findBy(context, schema.UserAccount.Username, username)
}

func (repository *PostgresUserRepository) UpdatePassword(context context.Context, userID string, passwordHash string) error {
	account := schema.UserAccount
	query := fmt.Sprintf(`UPDATE %s SET %s = $1, %s = now() WHERE %s = $2`,
		account.Table, account.Password, account.UpdatedAt, account.ID)

	tag, err := repository.db.Exec(context, query, passwordHash, userID)
	if err != nil {
		return dberr.Wrap(err, "account")
	}
	if tag.RowsAffected() == 0 {
		return dberr.Wrap(pgx.ErrNoRows, "account")
	}
	return nil
}

// findBy fetches one account matching column = value.
func (repository *PostgresUserRepository) findBy(context context.Context, column string, value string) (*User, error) {
	account := schema.UserAccount
	query := fmt.Sprintf(
		`SELECT %s, %s, %s, %s, %s, %s, %s, %s FROM %s WHERE %s = $1`,
		account.ID, account.Name, account.Username, account.Email,
		account.Password, account.Role, account.AvatarURL, account.CreatedAt,
		account.Table, column,
	)

	user := &User{}
	err := repository.db.QueryRow(context, query, value).Scan(
		&user.ID, &user.Name, &user.Username, &user.Email,
		&user.PasswordHash, &user.Role, &user.AvatarURL, &user.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "account")
	}
	return user, nil
}
