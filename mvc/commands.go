// Package mvc wires the blog application's commands: running the API
// server, seeding sample data, and cleaning the database.
package mvc

import (
	"bufio"
	"database/sql"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/sulaimon23/blog-post/app/repositories"
	"github.com/sulaimon23/blog-post/app/routes"
	"github.com/sulaimon23/blog-post/config"
)

// HandleCommand dispatches a CLI subcommand and returns a process exit code.
func HandleCommand(cmd string, args []string) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		return 1
	}

	switch cmd {
	case "serve":
		return serve(cfg)
	case "seed":
		return seed(cfg)
	case "clean":
		return clean(cfg, os.Stdin)
	default:
		fmt.Printf("Unknown command: %s\n", cmd)
		return 1
	}
}

func serve(cfg *config.Config) int {
	db, err := repositories.Open(cfg.DBPath)
	if err != nil {
		fmt.Printf("Error opening database: %v\n", err)
		return 1
	}
	defer db.Close()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Printf("Error creating logger: %v\n", err)
		return 1
	}
	defer logger.Sync()

	router := routes.SetupRoutes(db, logger)

	logger.Info("API server is running", zap.Int("port", cfg.Port))
	if err := routes.StartServer(cfg.Addr(), router); err != nil {
		logger.Error("server stopped", zap.Error(err))
		return 1
	}
	return 0
}

func seed(cfg *config.Config) int {
	db, err := repositories.Open(cfg.DBPath)
	if err != nil {
		fmt.Printf("Error opening database: %v\n", err)
		return 1
	}
	defer db.Close()

	n, err := seedSampleData(db)
	if err != nil {
		fmt.Printf("Error seeding database: %v\n", err)
		return 1
	}
	fmt.Printf("Seeded %d users into %s\n", n, cfg.DBPath)
	return 0
}

// clean removes the database file after an interactive confirmation.
func clean(cfg *config.Config, in *os.File) int {
	fmt.Printf("This will delete the database at %s. Continue? (y/N): ", cfg.DBPath)
	reader := bufio.NewReader(in)
	answer, _ := reader.ReadString('\n')
	answer = strings.TrimSpace(strings.ToLower(answer))
	if answer != "y" && answer != "yes" {
		fmt.Println("Aborted.")
		return 0
	}

	if err := os.Remove(cfg.DBPath); err != nil {
		if os.IsNotExist(err) {
			fmt.Println("Nothing to clean.")
			return 0
		}
		fmt.Printf("Error removing database: %v\n", err)
		return 1
	}
	fmt.Println("Database removed.")
	return 0
}

// countUsers reports how many users are present, used to keep seeding idempotent.
func countUsers(db *sql.DB) (int, error) {
	var n int
	err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&n)
	return n, err
}
