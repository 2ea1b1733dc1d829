package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/sulaimon23/blog-post/app/repositories"
	"github.com/sulaimon23/blog-post/app/services"
)

const (
	// DefaultPageNumber is used when the pageNumber query param is absent
	// or non-numeric.
	DefaultPageNumber = 0
	// DefaultPageSize is used when the pageSize query param is absent or
	// non-numeric.
	DefaultPageSize = 4
)

// UserController handles HTTP requests for the user directory.
type UserController struct {
	userService *services.UserService
	logger      *zap.Logger
}

// NewUserController creates a new UserController.
func NewUserController(userService *services.UserService, logger *zap.Logger) *UserController {
	return &UserController{userService: userService, logger: logger}
}

// Index handles listing a page of users.
func (uc *UserController) Index(w http.ResponseWriter, r *http.Request) {
	pageNumber := queryInt(r, "pageNumber", DefaultPageNumber)
	pageSize := queryInt(r, "pageSize", DefaultPageSize)

	if pageNumber < 0 || pageSize < 1 {
		sendError(w, http.StatusBadRequest,
			"Invalid page number or page size. Page number must be >= 0 and page size must be >= 1.")
		return
	}

	users, err := uc.userService.ListUsers(pageNumber, pageSize)
	if err != nil {
		uc.logger.Error("failed to fetch users",
			zap.Int("pageNumber", pageNumber),
			zap.Int("pageSize", pageSize),
			zap.Error(err))
		sendError(w, http.StatusInternalServerError, "Failed to fetch users")
		return
	}

	sendJSON(w, http.StatusOK, users)
}

// Count handles returning the total number of users.
func (uc *UserController) Count(w http.ResponseWriter, r *http.Request) {
	count, err := uc.userService.CountUsers()
	if err != nil {
		uc.logger.Error("failed to fetch users count", zap.Error(err))
		sendError(w, http.StatusInternalServerError, "Failed to fetch users count")
		return
	}

	sendJSON(w, http.StatusOK, map[string]int{"count": count})
}

// Show handles fetching a single user by id.
func (uc *UserController) Show(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]

	user, err := uc.userService.GetUser(userID)
	if errors.Is(err, repositories.ErrNotFound) {
		sendError(w, http.StatusNotFound, fmt.Sprintf("User with ID %s not found", userID))
		return
	}
	if err != nil {
		uc.logger.Error("failed to fetch user", zap.String("userId", userID), zap.Error(err))
		sendError(w, http.StatusInternalServerError, "Failed to fetch user")
		return
	}

	sendJSON(w, http.StatusOK, user)
}

// queryInt parses an integer query parameter, falling back to def when the
// parameter is absent or not a number. Range checks are the caller's job.
func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
