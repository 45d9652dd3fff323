// filepath: cmd/bookmarkhub/main.go
package main

import (
	"bookmarkhub/internal/cli"
)

// @title bookmarkhub API
// @version 1.0.0
// @description Bookmark sync API service information.
// @BasePath /
// @schemes http

func main() {
	// Delegate all execution to the CLI package
	cli.Execute()
}
