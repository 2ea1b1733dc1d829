package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sulaimon23/blog-post/app/models"
	"github.com/sulaimon23/blog-post/app/repositories"
	"github.com/sulaimon23/blog-post/app/routes"
)

// apiServer runs the real router over a temp database and counts requests.
func apiServer(t *testing.T) (*httptest.Server, *atomic.Int32) {
	t.Helper()

	db, err := repositories.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	for _, row := range [][2]string{{"u1", "Alice"}, {"u2", "Bob"}, {"u3", "Carol"}} {
		_, err := db.Exec(
			`INSERT INTO users (id, name, username, email, phone) VALUES (?, ?, ?, ?, ?)`,
			row[0], row[1], "user-"+row[0], row[0]+"@example.com", "555-0100")
		require.NoError(t, err)
	}

	router := routes.SetupRoutes(db, zap.NewNop())

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		router.ServeHTTP(w, r)
	}))
	t.Cleanup(server.Close)
	return server, &calls
}

func newTestQueries(t *testing.T, baseURL string, opts ...QueriesOption) *Queries {
	t.Helper()

	cache, err := NewQueryCache()
	require.NoError(t, err)
	t.Cleanup(func() { cache.Close() })

	c := New(baseURL, WithMaxRetries(0), WithRetryDelay(time.Millisecond))
	return NewQueries(c, cache, opts...)
}

func TestQueriesFreshnessWindow(t *testing.T) {
	server, calls := apiServer(t)
	queries := newTestQueries(t, server.URL)
	ctx := context.Background()

	users, err := queries.UsersPage(ctx, 0, 4)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, int32(1), calls.Load())

	// Fresh result: served from cache, no second request.
	users, err = queries.UsersPage(ctx, 0, 4)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, int32(1), calls.Load())

	// A different key is a different query.
	_, err = queries.UsersPage(ctx, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestQueriesUsersCountAndTotalPages(t *testing.T) {
	server, calls := apiServer(t)
	queries := newTestQueries(t, server.URL)
	ctx := context.Background()

	count, err := queries.UsersCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	count, err = queries.UsersCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.Equal(t, int32(1), calls.Load())

	assert.Equal(t, 1, TotalPages(count, 4))
	assert.Equal(t, 3, TotalPages(count, 1))
	assert.Equal(t, 2, TotalPages(5, 4))
	assert.Equal(t, 0, TotalPages(0, 4))
}

func TestQueriesUser(t *testing.T) {
	server, _ := apiServer(t)
	queries := newTestQueries(t, server.URL)

	user, err := queries.User(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, models.NoAddress, user.FormattedAddress)

	_, err = queries.User(context.Background(), "zzz")
	require.Error(t, err)
	assert.EqualError(t, err, "User with ID zzz not found")
}

func TestQueriesMutationInvalidation(t *testing.T) {
	server, _ := apiServer(t)
	queries := newTestQueries(t, server.URL)
	ctx := context.Background()

	posts, err := queries.PostsByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, posts)

	created, err := queries.CreatePost(ctx, models.CreatePostInput{
		Title: "Hello", Body: "World", UserID: "u1",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	// The create invalidated the posts query, so this read refetches and
	// sees the new post immediately.
	posts, err = queries.PostsByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, created.ID, posts[0].ID)

	require.NoError(t, queries.DeletePost(ctx, "u1", created.ID))

	posts, err = queries.PostsByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestQueriesFailedMutationLeavesCache(t *testing.T) {
	server, calls := apiServer(t)
	queries := newTestQueries(t, server.URL)
	ctx := context.Background()

	posts, err := queries.PostsByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, posts)
	before := calls.Load()

	// Whitespace-only title is rejected server-side; 400 is not retried
	// here because the client's retry budget is zero in this test.
	_, err = queries.CreatePost(ctx, models.CreatePostInput{
		Title: "   ", Body: "World", UserID: "u1",
	})
	require.Error(t, err)
	assert.EqualError(t, err, "Title and body cannot be empty")

	// The posts query is still fresh: no refetch happens.
	_, err = queries.PostsByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, before+1, calls.Load())
}

func TestQueriesKeepPreviousDataOnError(t *testing.T) {
	if testing.Short() {
		t.Skip("waits out a TTL")
	}

	payload, err := json.Marshal([]models.User{{
		ID: "u1", Name: "Alice", Username: "alice",
		Email: "a@example.com", Phone: "555",
	}})
	require.NoError(t, err)

	var failing atomic.Bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if failing.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"error": "down for maintenance"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(payload)
	}))
	t.Cleanup(server.Close)

	queries := newTestQueries(t, server.URL,
		WithQueryRetries(0), WithStaleness(time.Second, time.Second))
	ctx := context.Background()

	users, err := queries.UsersPage(ctx, 0, 4)
	require.NoError(t, err)
	require.Len(t, users, 1)

	failing.Store(true)
	time.Sleep(2100 * time.Millisecond)

	// The fetch fails, but the previous page is still handed back next to
	// the normalized error so the caller does not flash to empty.
	users, err = queries.UsersPage(ctx, 0, 4)
	require.Error(t, err)
	assert.EqualError(t, err, "down for maintenance")
	require.Len(t, users, 1)
	assert.Equal(t, "Alice", users[0].Name)
}

func TestQueriesRetryBackoff(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	cache, err := NewQueryCache()
	require.NoError(t, err)
	t.Cleanup(func() { cache.Close() })

	const delay = 50 * time.Millisecond
	c := New(server.URL, WithMaxRetries(0), WithRetryDelay(delay))
	queries := NewQueries(c, cache, WithQueryRetries(2))

	start := time.Now()
	_, err = queries.UsersPage(context.Background(), 0, 4)
	elapsed := time.Since(start)

	require.Error(t, err)
	// Re-attempts wait 1x then 2x the client delay before firing.
	assert.GreaterOrEqual(t, elapsed, 3*delay)
}

func TestQueriesRetryStopsOnCanceledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	cache, err := NewQueryCache()
	require.NoError(t, err)
	t.Cleanup(func() { cache.Close() })

	c := New(server.URL, WithMaxRetries(0), WithRetryDelay(time.Minute))
	queries := NewQueries(c, cache, WithQueryRetries(2))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, err = queries.UsersPage(ctx, 0, 4)

	require.Error(t, err)
	assert.Less(t, time.Since(start), time.Second, "canceled context must not sit out the backoff")
}
