package repositories

import "github.com/sulaimon23/blog-post/app/models"

// UserRepository defines the interface for user data access.
// Users are read-only; seeding happens outside the request path.
type UserRepository interface {
	List(pageNumber, pageSize int) ([]*models.User, error)
	Count() (int, error)
	GetByID(id string) (*models.User, error)
}

// PostRepository defines the interface for post data access.
type PostRepository interface {
	Create(input *models.CreatePostInput) (*models.Post, error)
	GetByID(id string) (*models.Post, error)
	ListByUser(userID string) ([]*models.Post, error)
	Delete(id string) error
}
