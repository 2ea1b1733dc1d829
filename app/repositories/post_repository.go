package repositories

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/sulaimon23/blog-post/app/models"
)

// SQLitePostRepository implements PostRepository over database/sql.
type SQLitePostRepository struct {
	db *sql.DB
}

// NewSQLitePostRepository creates a new SQLitePostRepository.
func NewSQLitePostRepository(db *sql.DB) *SQLitePostRepository {
	return &SQLitePostRepository{db: db}
}

// Create generates an id and creation time, persists the post, and returns
// the stored record built from the insert values. No re-read is issued, so
// the result is valid even if the row is deleted concurrently.
func (r *SQLitePostRepository) Create(input *models.CreatePostInput) (*models.Post, error) {
	post := &models.Post{
		ID:        uuid.NewString(),
		UserID:    input.UserID,
		Title:     input.Title,
		Body:      input.Body,
		CreatedAt: time.Now().UTC(),
	}

	_, err := r.db.Exec(
		`INSERT INTO posts (id, user_id, title, body, created_at) VALUES (?, ?, ?, ?, ?)`,
		post.ID, post.UserID, post.Title, post.Body, post.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return post, nil
}

// GetByID retrieves a post by id, or ErrNotFound.
func (r *SQLitePostRepository) GetByID(id string) (*models.Post, error) {
	row := r.db.QueryRow(
		`SELECT id, user_id, title, body, created_at FROM posts WHERE id = ?`, id)

	var p models.Post
	err := row.Scan(&p.ID, &p.UserID, &p.Title, &p.Body, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListByUser retrieves all posts for a user, newest first. The ordering is
// stable across calls absent writes.
func (r *SQLitePostRepository) ListByUser(userID string) ([]*models.Post, error) {
	rows, err := r.db.Query(
		`SELECT id, user_id, title, body, created_at FROM posts
		 WHERE user_id = ? ORDER BY created_at DESC, id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []*models.Post{}
	for rows.Next() {
		var p models.Post
		if err := rows.Scan(&p.ID, &p.UserID, &p.Title, &p.Body, &p.CreatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, &p)
	}
	return posts, rows.Err()
}

// Delete removes a post by id. ErrNotFound distinguishes a missing row from
// a storage failure.
func (r *SQLitePostRepository) Delete(id string) error {
	res, err := r.db.Exec(`DELETE FROM posts WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
