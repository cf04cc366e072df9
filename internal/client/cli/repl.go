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
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Search(ctx context.Context, term string) error
	AddToCart(ctx context.Context, arg string) error
	ShowCart(ctx context.Context) error
	RemoveFromCart(ctx context.Context, arg string) error
	Sell(ctx context.Context) error
	Delete(ctx context.Context, arg string) error
}

// runREPL starts a simple read-eval-print loop for the storefront CLI.
//
// It reads a line from the provided reader, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on EOF or when the user types "exit" or
// "quit". The reader is shared with the interactive prompts so buffered
// input is never lost between them.
//
// Any errors returned by command handlers are ignored here; handlers log
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("shop %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, search <term>, add <n>, cart, remove <n>, sell, delete <n>, logout, exit")
			} else {
				printlnFn("Available commands: (l)ist, search <term>, add <n>, cart, remove <n>, register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "search":
			_ = a.Search(ctx, strings.Join(args, " "))

		case "add":
			if len(args) == 0 {
				printlnFn("Usage: add <n>")
				continue
			}
			_ = a.AddToCart(ctx, args[0])

		case "cart":
			_ = a.ShowCart(ctx)

		case "remove":
			if len(args) == 0 {
				printlnFn("Usage: remove <n>")
				continue
			}
			_ = a.RemoveFromCart(ctx, args[0])

		case "sell":
			_ = a.Sell(ctx)

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
