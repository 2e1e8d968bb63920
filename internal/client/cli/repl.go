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
	Show(ctx context.Context, name string) error
	Add(ctx context.Context, name string) error
	List(ctx context.Context) error
	Ping(ctx context.Context) error
}

// runREPL reads commands from scanner and dispatches them to a until the
// user types exit/quit or input ends.
//
//	Not logged in:  help, register, login, ping, exit | quit
//	Logged in:      help, show <name>, add <name>, (l)ist, logout, ping, exit | quit
//
// Destination names may contain spaces ("add Swiss Alps"). Command errors
// are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner, w io.Writer) {
	for {
		fmt.Fprintf(w, "wtg %s> ", statusFn())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, arg := parts[0], strings.Join(parts[1:], " ")

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, "Available commands: show <name>, add <name>, (l)ist, logout, ping, exit")
			} else {
				fmt.Fprintln(w, "Available commands: register, login, ping, exit")
			}

		case "register":
			err = a.Register(ctx)

		case "login":
			err = a.Login(ctx)

		case "logout":
			err = a.Logout(ctx)

		case "show":
			if arg == "" {
				fmt.Fprintln(w, "Usage: show <name>")
				continue
			}
			err = a.Show(ctx, arg)

		case "add":
			if arg == "" {
				fmt.Fprintln(w, "Usage: add <name>")
				continue
			}
			err = a.Add(ctx, arg)

		case "l", "list":
			err = a.List(ctx)

		case "ping":
			err = a.Ping(ctx)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}

		if err != nil {
			fmt.Fprintln(w, "Error:", err)
		}
	}
}
