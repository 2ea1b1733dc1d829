package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sulaimon23/blog-post/mvc"
)

// CliVersion is the version reported by the version command.
const CliVersion = "1.0.0"

// exit is swapped out in tests so command failures don't kill the test binary.
var exit = os.Exit

func main() {
	RealMain()
}

// RealMain runs the CLI. It is separated from main so tests can drive it
// with a replaced exit function.
func RealMain() {
	if len(os.Args) < 2 {
		printHelp()
		exit(1)
		return
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("blog-post version %s\n", CliVersion)
	case "serve", "seed", "clean":
		if code := mvc.HandleCommand(cmd, os.Args[2:]); code != 0 {
			exit(code)
		}
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		exit(1)
	}
}

func printHelp() {
	helpText := `Usage: blog-post <command> [options]
Commands:
  help        Display this help message.
  version     Show version information.
  serve       Start the blog API server.
  seed        Populate the database with sample users and addresses.
  clean       Delete the database file (prompts for confirmation).
`
	fmt.Println(helpText)
}
