package mock

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/sulaimon23/blog-post/app/models"
	"github.com/sulaimon23/blog-post/app/repositories"
)

type UserRepository struct {
	users map[string]*models.User
	mutex sync.RWMutex

	// ListErr, CountErr and GetErr force failures for error-path tests.
	ListErr  error
	CountErr error
	GetErr   error
}

type PostRepository struct {
	posts  map[string]*models.Post
	nextID int
	mutex  sync.RWMutex

	CreateErr error
	ListErr   error
	DeleteErr error
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]*models.User)}
}

func NewPostRepository() *PostRepository {
	return &PostRepository{posts: make(map[string]*models.Post), nextID: 1}
}

// Add seeds a user into the mock store.
func (m *UserRepository) Add(user *models.User) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.users[user.ID] = user
}

// UserRepository implementation

func (m *UserRepository) List(pageNumber, pageSize int) ([]*models.User, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}

	m.mutex.RLock()
	defer m.mutex.RUnlock()

	all := make([]*models.User, 0, len(m.users))
	for _, user := range m.users {
		all = append(all, user)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].Name < all[j].Name
	})

	offset := pageNumber * pageSize
	if offset >= len(all) {
		return []*models.User{}, nil
	}
	end := offset + pageSize
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (m *UserRepository) Count() (int, error) {
	if m.CountErr != nil {
		return 0, m.CountErr
	}

	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.users), nil
}

func (m *UserRepository) GetByID(id string) (*models.User, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}

	m.mutex.RLock()
	defer m.mutex.RUnlock()

	user, exists := m.users[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

// PostRepository implementation

func (m *PostRepository) Create(input *models.CreatePostInput) (*models.Post, error) {
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	post := &models.Post{
		ID:        fmt.Sprintf("post-%d", m.nextID),
		UserID:    input.UserID,
		Title:     input.Title,
		Body:      input.Body,
		CreatedAt: time.Now().UTC(),
	}
	m.nextID++
	m.posts[post.ID] = post
	return post, nil
}

func (m *PostRepository) GetByID(id string) (*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return post, nil
}

func (m *PostRepository) ListByUser(userID string) ([]*models.Post, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}

	m.mutex.RLock()
	defer m.mutex.RUnlock()

	posts := []*models.Post{}
	for _, post := range m.posts {
		if post.UserID == userID {
			posts = append(posts, post)
		}
	}
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].ID < posts[j].ID
	})
	return posts, nil
}

func (m *PostRepository) Delete(id string) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.posts, id)
	return nil
}
