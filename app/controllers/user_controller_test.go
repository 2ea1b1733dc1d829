package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sulaimon23/blog-post/app/models"
	"github.com/sulaimon23/blog-post/app/repositories/mock"
	"github.com/sulaimon23/blog-post/app/services"
)

func setupUserRouter(repo *mock.UserRepository) *mux.Router {
	controller := NewUserController(services.NewUserService(repo), zap.NewNop())

	router := mux.NewRouter()
	router.HandleFunc("/users", controller.Index).Methods("GET")
	router.HandleFunc("/users/count", controller.Count).Methods("GET")
	router.HandleFunc("/users/{id}", controller.Show).Methods("GET")
	return router
}

func seedDirectory(repo *mock.UserRepository) {
	repo.Add(&models.User{
		ID: "u1", Name: "Alice", Username: "alice", Email: "alice@example.com",
		Phone: "555-0101", Street: "123 Main St", City: "New York",
	})
	repo.Add(&models.User{
		ID: "u2", Name: "Bob", Username: "bob", Email: "bob@example.com",
		Phone: "555-0102",
	})
	repo.Add(&models.User{
		ID: "u3", Name: "Carol", Username: "carol", Email: "carol@example.com",
		Phone: "555-0103",
	})
}

func TestUserControllerIndex(t *testing.T) {
	repo := mock.NewUserRepository()
	seedDirectory(repo)
	router := setupUserRouter(repo)

	t.Run("lists users with derived address", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

		var users []models.User
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
		require.Len(t, users, 3)
		assert.Equal(t, "Alice", users[0].Name)
		assert.Equal(t, "123 Main St, New York", users[0].FormattedAddress)
		assert.Equal(t, models.NoAddress, users[1].FormattedAddress)
	})

	t.Run("respects page size", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users?pageNumber=0&pageSize=2", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var users []models.User
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
		assert.Len(t, users, 2)
	})

	t.Run("non-numeric params fall back to defaults", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users?pageNumber=abc&pageSize=xyz", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var users []models.User
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
		assert.Len(t, users, 3)
	})

	t.Run("rejects out-of-range params", func(t *testing.T) {
		for _, query := range []string{"pageNumber=-1", "pageSize=0", "pageSize=-5"} {
			req := httptest.NewRequest(http.MethodGet, "/users?"+query, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code, query)

			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Contains(t, body["error"], "Invalid page number or page size")
		}
	})

	t.Run("page past the end is an empty array", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users?pageNumber=10&pageSize=4", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("storage failure is a generic 500", func(t *testing.T) {
		failing := mock.NewUserRepository()
		failing.ListErr = errors.New("disk on fire")
		router := setupUserRouter(failing)

		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Failed to fetch users", body["error"])
		assert.NotContains(t, body["error"], "disk on fire")
	})
}

func TestUserControllerCount(t *testing.T) {
	repo := mock.NewUserRepository()
	seedDirectory(repo)
	router := setupUserRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/users/count", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count": 3}`, w.Body.String())
}

func TestUserControllerShow(t *testing.T) {
	repo := mock.NewUserRepository()
	seedDirectory(repo)
	router := setupUserRouter(repo)

	t.Run("found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users/u1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var user models.User
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
		assert.Equal(t, "Alice", user.Name)
		assert.Equal(t, "123 Main St, New York", user.FormattedAddress)
	})

	t.Run("not found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users/unknown", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "User with ID unknown not found", body["error"])
	})
}
