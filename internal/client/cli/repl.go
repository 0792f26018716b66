package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Export(ctx context.Context, args []string) error
	Favorite(ctx context.Context, args []string) error
	NewArticle(ctx context.Context) error
	EditArticle(ctx context.Context, args []string) error
	DeleteArticle(ctx context.Context, args []string) error
	Profile(ctx context.Context) error
	UpdateProfile(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the blogctl CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Anonymous:
//	  - help           — show available commands
//	  - list | l       — list articles (next/prev/<page>)
//	  - show           — show a single article
//	  - export         — render an article to HTML
//	  - register       — create an account
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in, additionally:
//	  - favorite | fav — toggle a favorite
//	  - new            — compose a new article
//	  - edit           — edit an article
//	  - delete         — delete an article
//	  - profile        — show the current profile
//	  - update-profile — change profile settings
//	  - logout         — log out
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner, w io.Writer) {
	for {
		fmt.Fprintf(w, "blog %s> ", statusFn())
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, "Available commands: (l)ist, show, export, favorite, new, edit, delete, profile, update-profile, logout, exit")
			} else {
				fmt.Fprintln(w, "Available commands: (l)ist, show, export, register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "l", "list":
			_ = a.List(ctx, args)

		case "show":
			_ = a.Show(ctx, args)

		case "export":
			_ = a.Export(ctx, args)

		case "fav", "favorite":
			_ = a.Favorite(ctx, args)

		case "new":
			_ = a.NewArticle(ctx)

		case "edit":
			_ = a.EditArticle(ctx, args)

		case "delete":
			_ = a.DeleteArticle(ctx, args)

		case "profile":
			_ = a.Profile(ctx)

		case "update-profile":
			_ = a.UpdateProfile(ctx)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}
