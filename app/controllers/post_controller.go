package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/sulaimon23/blog-post/app/models"
	"github.com/sulaimon23/blog-post/app/repositories"
	"github.com/sulaimon23/blog-post/app/services"
)

// PostController handles HTTP requests for blog posts.
type PostController struct {
	postService *services.PostService
	logger      *zap.Logger
}

// NewPostController creates a new PostController.
func NewPostController(postService *services.PostService, logger *zap.Logger) *PostController {
	return &PostController{postService: postService, logger: logger}
}

// Index handles listing all posts for a user.
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		sendError(w, http.StatusBadRequest, "userId query parameter is required")
		return
	}

	posts, err := pc.postService.ListPostsByUser(userID)
	if err != nil {
		pc.logger.Error("failed to fetch posts", zap.String("userId", userID), zap.Error(err))
		sendError(w, http.StatusInternalServerError, "Failed to fetch posts")
		return
	}

	sendJSON(w, http.StatusOK, posts)
}

// Show handles fetching a single post by id.
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	post, err := pc.postService.GetPost(postID)
	if errors.Is(err, repositories.ErrNotFound) {
		sendError(w, http.StatusNotFound, fmt.Sprintf("Post with ID %s not found", postID))
		return
	}
	if err != nil {
		pc.logger.Error("failed to fetch post", zap.String("postId", postID), zap.Error(err))
		sendError(w, http.StatusInternalServerError, "Failed to fetch post")
		return
	}

	sendJSON(w, http.StatusOK, post)
}

// Create handles creating a new post.
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	var input models.CreatePostInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			sendError(w, http.StatusBadRequest, "Invalid data types. Title, body, and userId must be strings.")
			return
		}
		sendError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	post, err := pc.postService.CreatePost(&input)
	if isValidationError(err) {
		sendError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		pc.logger.Error("failed to create post", zap.String("userId", input.UserID), zap.Error(err))
		sendError(w, http.StatusInternalServerError, "Failed to create post")
		return
	}

	sendJSON(w, http.StatusCreated, post)
}

// Delete handles deleting a post by id.
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	err := pc.postService.DeletePost(postID)
	if errors.Is(err, repositories.ErrNotFound) {
		sendError(w, http.StatusNotFound, fmt.Sprintf("Post with ID %s not found", postID))
		return
	}
	if err != nil {
		pc.logger.Error("failed to delete post", zap.String("postId", postID), zap.Error(err))
		sendError(w, http.StatusInternalServerError, "Failed to delete post")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
