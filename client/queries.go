package client

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/sulaimon23/blog-post/app/models"
)

const (
	// UsersStaleness is the freshness window for user pages, single users
	// and post lists.
	UsersStaleness = 30 * time.Second
	// CountStaleness is the freshness window for the users count.
	CountStaleness = 60 * time.Second
	// DefaultQueryRetries is how many times a failed query is re-attempted
	// on top of the transport-level retries.
	DefaultQueryRetries = 2
)

// Queries models each read as a cached, keyed query and each write as a
// mutation that invalidates the affected keys. While a query's cached
// result is fresh it is served without a network call. On fetch failure
// the last known result for the key, if any, is returned alongside the
// error so callers can keep showing previous data.
type Queries struct {
	client  *Client
	cache   *QueryCache
	retries int

	staleness      time.Duration
	countStaleness time.Duration

	mu   sync.RWMutex
	last map[string][]byte
}

// QueriesOption configures a Queries layer.
type QueriesOption func(*Queries)

// WithQueryRetries overrides the per-query retry budget.
func WithQueryRetries(n int) QueriesOption {
	return func(q *Queries) { q.retries = n }
}

// WithStaleness overrides the freshness windows.
func WithStaleness(users, count time.Duration) QueriesOption {
	return func(q *Queries) {
		q.staleness = users
		q.countStaleness = count
	}
}

// NewQueries creates a query layer over client and cache.
func NewQueries(client *Client, cache *QueryCache, opts ...QueriesOption) *Queries {
	q := &Queries{
		client:         client,
		cache:          cache,
		retries:        DefaultQueryRetries,
		staleness:      UsersStaleness,
		countStaleness: CountStaleness,
		last:           make(map[string][]byte),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

func usersKey(pageNumber, pageSize int) string {
	return fmt.Sprintf("users:%d:%d", pageNumber, pageSize)
}

func userKey(id string) string { return "user:" + id }

func postsKey(userID string) string { return "posts:" + userID }

const usersCountKey = "users:count"

// UsersPage returns one page of users.
func (q *Queries) UsersPage(ctx context.Context, pageNumber, pageSize int) ([]models.User, error) {
	var users []models.User
	err := q.run(ctx, usersKey(pageNumber, pageSize), q.staleness, &users,
		func(ctx context.Context) (interface{}, error) {
			return q.client.Users(ctx, pageNumber, pageSize)
		})
	return users, err
}

// UsersCount returns the total number of users.
func (q *Queries) UsersCount(ctx context.Context) (int, error) {
	var count int
	err := q.run(ctx, usersCountKey, q.countStaleness, &count,
		func(ctx context.Context) (interface{}, error) {
			return q.client.UsersCount(ctx)
		})
	return count, err
}

// User returns a single user by id.
func (q *Queries) User(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := q.run(ctx, userKey(id), q.staleness, &user,
		func(ctx context.Context) (interface{}, error) {
			return q.client.User(ctx, id)
		})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// PostsByUser returns all posts for a user.
func (q *Queries) PostsByUser(ctx context.Context, userID string) ([]models.Post, error) {
	var posts []models.Post
	err := q.run(ctx, postsKey(userID), q.staleness, &posts,
		func(ctx context.Context) (interface{}, error) {
			return q.client.PostsByUser(ctx, userID)
		})
	return posts, err
}

// CreatePost creates a post. On success the posts query for the author is
// invalidated so the next read refetches; on failure the cache is left
// untouched.
func (q *Queries) CreatePost(ctx context.Context, input models.CreatePostInput) (*models.Post, error) {
	post, err := q.client.CreatePost(ctx, input)
	if err != nil {
		return nil, err
	}
	q.invalidate(postsKey(input.UserID))
	return post, nil
}

// DeletePost deletes a post and invalidates the author's posts query.
func (q *Queries) DeletePost(ctx context.Context, userID, postID string) error {
	if err := q.client.DeletePost(ctx, postID); err != nil {
		return err
	}
	q.invalidate(postsKey(userID))
	return nil
}

// TotalPages derives the page count from a row count via ceiling division.
func TotalPages(count, pageSize int) int {
	if pageSize < 1 {
		return 0
	}
	return (count + pageSize - 1) / pageSize
}

// run serves out from the cache when fresh, otherwise fetches with a
// bounded number of attempts. Successful results are cached for ttl and
// remembered as the key's last known value.
func (q *Queries) run(ctx context.Context, key string, ttl time.Duration, out interface{},
	fetch func(context.Context) (interface{}, error)) error {

	if raw, ok := q.cache.Get(key); ok {
		return json.Unmarshal(raw, out)
	}

	var lastErr error
	for attempt := 0; attempt <= q.retries; attempt++ {
		if attempt > 0 {
			// Back off between re-attempts with the client's delay so a
			// struggling server is not hammered back-to-back.
			if err := q.client.wait(ctx, attempt); err != nil {
				return err
			}
		}
		value, err := fetch(ctx)
		if err != nil {
			lastErr = err
			continue
		}

		raw, err := json.Marshal(value)
		if err != nil {
			return err
		}
		if err := q.cache.Set(key, raw, ttl); err != nil {
			return err
		}
		q.remember(key, raw)
		return json.Unmarshal(raw, out)
	}

	// All attempts failed; surface the previous result, if any, next to
	// the error so the caller need not flash to empty.
	if raw, ok := q.lastKnown(key); ok {
		_ = json.Unmarshal(raw, out)
	}
	return lastErr
}

func (q *Queries) remember(key string, raw []byte) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.last[key] = raw
}

func (q *Queries) lastKnown(key string) ([]byte, bool) {
	q.mu.RLock()
	defer q.mu.RUnlock()
	raw, ok := q.last[key]
	return raw, ok
}

func (q *Queries) invalidate(key string) {
	_ = q.cache.Invalidate(key)
	q.mu.Lock()
	defer q.mu.Unlock()
	delete(q.last, key)
}
