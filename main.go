package main

import (
	"github.com/mj1618/screencap/cmd"

	// Register the macOS platform backends.
	_ "github.com/mj1618/screencap/internal/platform/darwin"
)

func main() {
	cmd.Execute()
}
