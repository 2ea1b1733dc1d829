package services

import (
	"github.com/sulaimon23/blog-post/app/models"
	"github.com/sulaimon23/blog-post/app/repositories"
)

// UserService handles business logic for the user directory.
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// ListUsers retrieves one page of users with their derived display address.
func (s *UserService) ListUsers(pageNumber, pageSize int) ([]*models.User, error) {
	users, err := s.userRepo.List(pageNumber, pageSize)
	if err != nil {
		return nil, err
	}
	for _, user := range users {
		user.FormattedAddress = user.Address().Format()
	}
	return users, nil
}

// CountUsers returns the total number of users.
func (s *UserService) CountUsers() (int, error) {
	return s.userRepo.Count()
}

// GetUser retrieves a single user with its derived display address.
// Absence propagates as repositories.ErrNotFound.
func (s *UserService) GetUser(id string) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	user.FormattedAddress = user.Address().Format()
	return user, nil
}
