package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	helpLoggedIn  = "Available commands: (l)ist, add, toggle <id>, delete <id>, filter, reload, logout, exit"
	helpLoggedOut = "Available commands: (l)ist, toggle <id>, delete <id>, filter, reload, login, exit"
	msgLoginFirst = "Please log in first"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	List(ctx context.Context) error
	Add(ctx context.Context) error
	Toggle(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Filter(ctx context.Context) error
	Reload(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL reads commands line by line from r and dispatches them to a. The
// prompt shows statusFn. It returns on EOF or when the user types "exit" or
// "quit".
//
//	help              show available commands
//	list | l          render the notes
//	add               add a note (asks for content and importance)
//	toggle <id>       flip the important flag of a note
//	delete <id>       delete a note
//	filter            switch between all and important notes
//	reload            fetch the notes from the server again
//	login | logout    manage the session
//	exit | quit       leave the program
//
// add needs a session. toggle and delete are always sent; the server decides
// whether they are allowed. Handler errors are not printed here; handlers
// report their own failures.
func runREPL(ctx context.Context, a execIface, statusFn func() string, r *bufio.Reader, w io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprintf(w, "notes %s> ", statusFn())

		line, err := r.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			fmt.Fprintln(w)
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, helpLoggedIn)
			} else {
				fmt.Fprintln(w, helpLoggedOut)
			}

		case "l", "list":
			_ = a.List(ctx)

		case "filter":
			_ = a.Filter(ctx)

		case "reload":
			_ = a.Reload(ctx)

		case "add":
			if !requireLogin(a, w) {
				continue
			}
			_ = a.Add(ctx)

		case "toggle", "delete":
			if len(args) != 1 {
				fmt.Fprintf(w, "Usage: %s <id>\n", cmd)
				continue
			}
			if cmd == "toggle" {
				_ = a.Toggle(ctx, args[0])
			} else {
				_ = a.Delete(ctx, args[0])
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}

		if err != nil {
			// last line had no trailing newline
			return
		}
	}
}

func requireLogin(a execIface, w io.Writer) bool {
	if a.isLoggedIn() {
		return true
	}
	fmt.Fprintln(w, msgLoginFirst)
	return false
}
