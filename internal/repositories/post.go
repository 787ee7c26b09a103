package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/blog-platform/internal/logger"
	"github.com/sbilibin2017/blog-platform/internal/models"
)

type PostWriteRepository struct {
	db *sqlx.DB
}

func NewPostWriteRepository(db *sqlx.DB) *PostWriteRepository {
	return &PostWriteRepository{db: db}
}

// Save inserts a new post. imageURL is nil when no image was attached;
// created_at is defaulted by the database.
func (r *PostWriteRepository) Save(ctx context.Context, title, content string, imageURL *string, userID int64) error {
	const query = `
		INSERT INTO posts (title, content, image_url, user_id)
		VALUES ($1, $2, $3, $4)
	`
	args := []any{title, content, imageURL, userID}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// Log with query in single line
	logger.Log.Infow("post insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

type PostReadRepository struct {
	db *sqlx.DB
}

func NewPostReadRepository(db *sqlx.DB) *PostReadRepository {
	return &PostReadRepository{db: db}
}

// List returns all posts joined with the author's username, newest first.
func (r *PostReadRepository) List(ctx context.Context) ([]models.PostWithAuthor, error) {
	const query = `
		SELECT p.id, p.title, p.content, p.image_url, p.user_id, p.created_at, u.username
		FROM posts p
		JOIN users u ON p.user_id = u.id
		ORDER BY p.created_at DESC
	`

	posts := make([]models.PostWithAuthor, 0)
	err := r.db.SelectContext(ctx, &posts, query)

	// Log with query in single line
	logger.Log.Infow("post list",
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(posts),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return posts, nil
}
