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
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	ListTasks(ctx context.Context) error
	AddTask(ctx context.Context) error
	DoneTask(ctx context.Context, id string) error
	DeleteTask(ctx context.Context, id string) error
	ListAppointments(ctx context.Context) error
	AddAppointment(ctx context.Context) error
	DeleteAppointment(ctx context.Context, id string) error
	Today(ctx context.Context) error
	Pending(ctx context.Context) error
	Upcoming(ctx context.Context) error
	Ping(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the CareKeeper CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("ck %s> ", statusFn()))
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
				printlnFn("Available commands: tasks, addtask, done <id>, deltask <id>, appts, addappt, delappt <id>, today, pending, upcoming, profile, editprofile, ping, logout, exit")
			} else {
				printlnFn("Available commands: signup, login, ping, exit")
			}

		case "signup":
			_ = a.Signup(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "editprofile":
			_ = a.EditProfile(ctx)

		case "t", "tasks":
			_ = a.ListTasks(ctx)

		case "addtask":
			_ = a.AddTask(ctx)

		case "done":
			if len(args) == 0 {
				printlnFn("Usage: done <id>")
				continue
			}
			_ = a.DoneTask(ctx, args[0])

		case "deltask":
			if len(args) == 0 {
				printlnFn("Usage: deltask <id>")
				continue
			}
			_ = a.DeleteTask(ctx, args[0])

		case "a", "appts":
			_ = a.ListAppointments(ctx)

		case "addappt":
			_ = a.AddAppointment(ctx)

		case "delappt":
			if len(args) == 0 {
				printlnFn("Usage: delappt <id>")
				continue
			}
			_ = a.DeleteAppointment(ctx, args[0])

		case "today":
			_ = a.Today(ctx)

		case "pending":
			_ = a.Pending(ctx)

		case "upcoming":
			_ = a.Upcoming(ctx)

		case "ping":
			_ = a.Ping(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
