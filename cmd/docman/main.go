package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"docman/internal/app"
	"docman/internal/git"
	"docman/internal/log"
)

var version = "dev"

func main() {
	// Set the app version for display in the UI
	app.Version = version

	if len(os.Args) > 1 && (os.Args[1] == "-v" || os.Args[1] == "--version") {
		fmt.Println("docman", version)
		return
	}

	root := "."
	if len(os.Args) > 1 {
		root = os.Args[1]
	}
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		fmt.Fprintf(os.Stderr, "docman: not a directory: %s\n", root)
		os.Exit(1)
	}

	log.Init()
	if os.Getenv("DOCMAN_DEBUG") != "" {
		log.SetDebug(true)
	}

	p := tea.NewProgram(
		app.New(root, git.NewShellRunner(root)),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
