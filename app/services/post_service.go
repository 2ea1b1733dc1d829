package services

import (
	"github.com/sulaimon23/blog-post/app/models"
	"github.com/sulaimon23/blog-post/app/repositories"
)

// PostService handles business logic for blog posts.
type PostService struct {
	postRepo repositories.PostRepository
}

// NewPostService creates a new PostService.
func NewPostService(postRepo repositories.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// CreatePost validates and normalizes the input, then persists the post.
// Validation failures come back as models errors (ErrMissingFields,
// ErrEmptyFields, *TooLongError); the stored record carries the generated
// id and creation time.
func (s *PostService) CreatePost(input *models.CreatePostInput) (*models.Post, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	return s.postRepo.Create(input)
}

// GetPost retrieves a post by id.
func (s *PostService) GetPost(id string) (*models.Post, error) {
	return s.postRepo.GetByID(id)
}

// ListPostsByUser retrieves all posts belonging to a user.
func (s *PostService) ListPostsByUser(userID string) ([]*models.Post, error) {
	return s.postRepo.ListByUser(userID)
}

// DeletePost removes a post. Absence propagates as repositories.ErrNotFound.
func (s *PostService) DeletePost(id string) error {
	return s.postRepo.Delete(id)
}
