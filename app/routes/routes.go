package routes

import (
	"database/sql"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/sulaimon23/blog-post/app/controllers"
	"github.com/sulaimon23/blog-post/app/middleware"
	"github.com/sulaimon23/blog-post/app/repositories"
	"github.com/sulaimon23/blog-post/app/services"
)

// SetupRoutes wires repositories, services and controllers over the given
// database handle and returns the API handler.
func SetupRoutes(db *sql.DB, logger *zap.Logger) http.Handler {
	userRepo := repositories.NewSQLiteUserRepository(db)
	postRepo := repositories.NewSQLitePostRepository(db)

	userController := controllers.NewUserController(services.NewUserService(userRepo), logger)
	postController := controllers.NewPostController(services.NewPostService(postRepo), logger)

	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recoverer(logger))

	// Users endpoints (read-only). /count is registered before /{id} so it
	// is not captured as a user id.
	users := router.PathPrefix("/users").Subrouter()
	users.HandleFunc("/count", userController.Count).Methods("GET")
	users.HandleFunc("", userController.Index).Methods("GET")
	users.HandleFunc("/{id}", userController.Show).Methods("GET")

	// Posts endpoints
	posts := router.PathPrefix("/posts").Subrouter()
	posts.HandleFunc("", postController.Index).Methods("GET")
	posts.HandleFunc("", postController.Create).Methods("POST")
	posts.HandleFunc("/{id}", postController.Show).Methods("GET")
	posts.HandleFunc("/{id}", postController.Delete).Methods("DELETE")

	// CORS wraps the router rather than going through Use: mux only runs
	// Use middleware on matched routes, and no OPTIONS routes exist, so
	// browser preflights would otherwise miss the CORS headers entirely.
	return middleware.CORS(router)
}

// StartServer starts the HTTP server on the specified address with the given router.
func StartServer(addr string, router http.Handler) error {
	return http.ListenAndServe(addr, router)
}
