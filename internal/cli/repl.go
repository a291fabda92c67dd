package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Reload(ctx context.Context) error
	Favorites(ctx context.Context) error
	Mine(ctx context.Context) error
	Submit(ctx context.Context) error
	Favorite(ctx context.Context, arg string) error
	Delete(ctx context.Context, arg string) error
}

// runREPL starts a read–eval–print loop over the scanner. It parses the
// first token of each line as the command and dispatches to methods on 'a'.
// The loop exits on scanner EOF or when the user types "exit" or "quit".
//
// Handlers report their own errors to the user; the loop ignores returned
// errors so one failed command never ends the session.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("snooze %s> ", statusFn()))
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
				printlnFn("Available commands: (l)ist, reload, favs, mine, submit, fav <n>, delete <n>, logout, exit")
			} else {
				printlnFn("Available commands: (l)ist, reload, register, login, exit")
			}

		case "register", "signup":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "reload":
			_ = a.Reload(ctx)

		case "favs", "favorites":
			_ = a.Favorites(ctx)

		case "mine":
			_ = a.Mine(ctx)

		case "submit":
			_ = a.Submit(ctx)

		case "fav":
			if len(args) == 0 {
				printlnFn("Usage: fav <n>")
				continue
			}
			_ = a.Favorite(ctx, args[0])

		case "delete":
			if len(args) == 0 {
				printlnFn("Usage: delete <n>")
				continue
			}
			_ = a.Delete(ctx, args[0])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
