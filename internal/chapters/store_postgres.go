// Copyright (c) 2026 Riwaya. All rights reserved.

package chapters

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

// NewPostgresRepository creates a new Postgres-backed chapters Repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func chapterColumns() string {
	chapter := schema.CoreChapter
	return strings.Join([]string{
		chapter.ID, chapter.NovelID, chapter.Number, chapter.Title, chapter.Content,
		chapter.ViewsCount, chapter.LikesCount, chapter.CommentsCount,
		chapter.CreatedAt, chapter.UpdatedAt,
	}, ", ")
}

func scanChapter(row pgx.Row) (*Chapter, error) {
	chapter := &Chapter{}
	err := row.Scan(
		&chapter.ID, &chapter.NovelID, &chapter.Number, &chapter.Title, &chapter.Content,
		&chapter.ViewsCount, &chapter.LikesCount, &chapter.CommentsCount,
		&chapter.CreatedAt, &chapter.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return chapter, nil
}

// # Chapter Queries

func (repository *PostgresRepository) ListByNovel(context context.Context, novelID string) ([]*Chapter, error) {
	chapter := schema.CoreChapter
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s ASC`,
		chapterColumns(), chapter.Table, chapter.NovelID, chapter.Number)

	rows, err := repository.db.Query(context, query, novelID)
	if err != nil {
		return nil, dberr.Wrap(err, "chapters")
	}
	defer rows.Close()

	list := make([]*Chapter, 0)
	for rows.Next() {
		item, err := scanChapter(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "chapter")
		}
		list = append(list, item)
	}
	return list, nil
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Chapter, error) {
	chapter := schema.CoreChapter
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		chapterColumns(), chapter.Table, chapter.ID)

	item, err := scanChapter(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "chapter")
	}
	return item, nil
}

func (repository *PostgresRepository) NovelOwner(context context.Context, novelID string) (string, error) {
	novel := schema.CoreNovel
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		novel.AuthorID, novel.Table, novel.ID)

	ownerID := ""
	if err := repository.db.QueryRow(context, query, novelID).Scan(&ownerID); err != nil {
		return "", dberr.Wrap(err, "novel")
	}
	return ownerID, nil
}

// # Chapter Lifecycle

// Create assigns the next sequential number and bumps chapterscount in one
// transaction. The per-novel unique index on (novelid, number) rejects the
// race where two inserts read the same max.
func (repository *PostgresRepository) Create(context context.Context, chapter *Chapter) error {
	table := schema.CoreChapter
	novel := schema.CoreNovel

	insertQuery := fmt.Sprintf(
		`INSERT INTO %s (%s, %s, %s, %s, %s)
		 VALUES ($1, $2, (SELECT COALESCE(MAX(%s), 0) + 1 FROM %s WHERE %s = $2), $3, $4)
		 RETURNING %s`,
		table.Table,
		table.ID, table.NovelID, table.Number, table.Title, table.Content,
		table.Number, table.Table, table.NovelID,
		table.Number,
	)

	err := pgx.BeginFunc(context, repository.db, func(tx pgx.Tx) error {
		if err := tx.QueryRow(context, insertQuery,
			chapter.ID, chapter.NovelID, chapter.Title, chapter.Content,
		).Scan(&chapter.Number); err != nil {
			return err
		}

		chaptersCount := counter.ColumnCounter{
			DB:        tx,
			Table:     novel.Table,
			Column:    novel.ChaptersCount,
			KeyColumn: novel.ID,
			Key:       chapter.NovelID,
		}
		return chaptersCount.Adjust(context, +1)
	})
	if err != nil {
		return dberr.Wrap(err, "chapter")
	}
	return nil
}

func (repository *PostgresRepository) Update(context context.Context, chapterID string, input ChapterUpdateInput) (*Chapter, error) {
	table := schema.CoreChapter

	assignments := []string{}
	args := []any{}
	position := 1

	if input.Title != nil {
		assignments = append(assignments, fmt.Sprintf("%s = $%d", table.Title, position))
		args = append(args, *input.Title)
		position++
	}
	if input.Content != nil {
		assignments = append(assignments, fmt.Sprintf("%s = $%d", table.Content, position))
		args = append(args, *input.Content)
		position++
	}

	if len(assignments) == 0 {
		return repository.FindByID(context, chapterID)
	}

	assignments = append(assignments, fmt.Sprintf("%s = now()", table.UpdatedAt))
	args = append(args, chapterID)

	query := fmt.Sprintf(`UPDATE %s SET %s WHERE %s = $%d RETURNING %s`,
		table.Table, strings.Join(assignments, ", "), table.ID, position, chapterColumns())

	chapter, err := scanChapter(repository.db.QueryRow(context, query, args...))
	if err != nil {
		return nil, dberr.Wrap(err, "chapter")
	}
	return chapter, nil
}

func (repository *PostgresRepository) Delete(context context.Context, chapterID, novelID string) error {
	table := schema.CoreChapter
	novel := schema.CoreNovel

	deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, table.Table, table.ID)

	err := pgx.BeginFunc(context, repository.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(context, deleteQuery, chapterID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return pgx.ErrNoRows
		}

		chaptersCount := counter.ColumnCounter{
			DB:        tx,
			Table:     novel.Table,
			Column:    novel.ChaptersCount,
			KeyColumn: novel.ID,
			Key:       novelID,
		}
		return chaptersCount.Adjust(context, -1)
	})
	if err != nil {
		return dberr.Wrap(err, "chapter")
	}
	return nil
}

// # Views & Likes

func (repository *PostgresRepository) RecordView(context context.Context, userID, chapterID, novelID string) (bool, error) {
	view := schema.SocialChapterView

	recorded := false
	err := pgx.BeginFunc(context, repository.db, func(tx pgx.Tx) error {
		relation := counter.TableRelation{
			DB:           tx,
			Table:        view.Table,
			ActorColumn:  view.UserID,
			TargetColumn: view.ChapterID,
		}

		var err error
		recorded, err = counter.RecordOnce(context, relation, userID, chapterID,
			chapterCounter(tx, schema.CoreChapter.ViewsCount, chapterID),
			novelCounter(tx, schema.CoreNovel.ViewsCount, novelID),
		)
		return err
	})
	if err != nil {
		return false, dberr.Wrap(err, "view")
	}
	return recorded, nil
}

func (repository *PostgresRepository) ToggleLike(context context.Context, userID, chapterID, novelID string) (bool, error) {
	like := schema.SocialChapterLike

	liked := false
	err := pgx.BeginFunc(context, repository.db, func(tx pgx.Tx) error {
		relation := counter.TableRelation{
			DB:           tx,
			Table:        like.Table,
			ActorColumn:  like.UserID,
			TargetColumn: like.ChapterID,
		}

		var err error
		liked, err = counter.Toggle(context, relation, userID, chapterID,
			chapterCounter(tx, schema.CoreChapter.LikesCount, chapterID),
			novelCounter(tx, schema.CoreNovel.LikesCount, novelID),
		)
		return err
	})
	if err != nil {
		return false, dberr.Wrap(err, "like")
	}
	return liked, nil
}

func chapterCounter(tx counter.Querier, column, chapterID string) counter.ColumnCounter {
	chapter := schema.CoreChapter
	return counter.ColumnCounter{
		DB:        tx,
		Table:     chapter.Table,
		Column:    column,
		KeyColumn: chapter.ID,
		Key:       chapterID,
	}
}

func novelCounter(tx counter.Querier, column, novelID string) counter.ColumnCounter {
	novel := schema.CoreNovel
	return counter.ColumnCounter{
		DB:        tx,
		Table:     novel.Table,
		Column:    column,
		KeyColumn: novel.ID,
		Key:       novelID,
	}
}

// # Comments

func commentColumns() string {
	comment := schema.SocialComment
	return strings.Join([]string{
		comment.ID, comment.UserID, comment.ChapterID, comment.Body,
		comment.CreatedAt, comment.UpdatedAt,
	}, ", ")
}

func scanComment(row pgx.Row) (*Comment, error) {
	comment := &Comment{}
	err := row.Scan(
		&comment.ID, &comment.UserID, &comment.ChapterID, &comment.Body,
		&comment.CreatedAt, &comment.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return comment, nil
}

func (repository *PostgresRepository) ListComments(context context.Context, chapterID string, directive pagination.Directive) ([]*Comment, int, error) {
	comment := schema.SocialComment

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s = $1`, comment.Table, comment.ChapterID)
	total := 0
	if err := repository.db.QueryRow(context, countQuery, chapterID).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "comments")
	}

	listQuery := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s DESC`,
		commentColumns(), comment.Table, comment.ChapterID, comment.ID)
	if !directive.SkipLimit {
		listQuery += fmt.Sprintf(` LIMIT %d OFFSET %d`, directive.Limit, directive.Skip)
	}

	rows, err := repository.db.Query(context, listQuery, chapterID)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "comments")
	}
	defer rows.Close()

	list := make([]*Comment, 0)
	for rows.Next() {
		item, err := scanComment(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "comment")
		}
		list = append(list, item)
	}
	return list, total, nil
}

func (repository *PostgresRepository) FindComment(context context.Context, commentID string) (*Comment, error) {
	comment := schema.SocialComment
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		commentColumns(), comment.Table, comment.ID)

	item, err := scanComment(repository.db.QueryRow(context, query, commentID))
	if err != nil {
		return nil, dberr.Wrap(err, "comment")
	}
	return item, nil
}

func (repository *PostgresRepository) CreateComment(context context.Context, comment *Comment) error {
	table := schema.SocialComment

	insertQuery := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s) VALUES ($1, $2, $3, $4)`,
		table.Table, table.ID, table.UserID, table.ChapterID, table.Body)

	err := pgx.BeginFunc(context, repository.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(context, insertQuery,
			comment.ID, comment.UserID, comment.ChapterID, comment.Body,
		); err != nil {
			return err
		}
		return chapterCounter(tx, schema.CoreChapter.CommentsCount, comment.ChapterID).Adjust(context, +1)
	})
	if err != nil {
		return dberr.Wrap(err, "comment")
	}
	return nil
}

func (repository *PostgresRepository) UpdateComment(context context.Context, commentID, body string) (*Comment, error) {
	table := schema.SocialComment
	query := fmt.Sprintf(`UPDATE %s SET %s = $1, %s = now() WHERE %s = $2 RETURNING %s`,
		table.Table, table.Body, table.UpdatedAt, table.ID, commentColumns())

	comment, err := scanComment(repository.db.QueryRow(context, query, body, commentID))
	if err != nil {
		return nil, dberr.Wrap(err, "comment")
	}
	return comment, nil
}

func (repository *PostgresRepository) DeleteComment(context context.Context, commentID, chapterID string) error {
	table := schema.SocialComment
	deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, table.Table, table.ID)

	err := pgx.BeginFunc(context, repository.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(context, deleteQuery, commentID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return pgx.ErrNoRows
		}
		return chapterCounter(tx, schema.CoreChapter.CommentsCount, chapterID).Adjust(context, -1)
	})
	if err != nil {
		return dberr.Wrap(err, "comment")
	}
	return nil
}
