package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/starterkit/internal/client/apiclient"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
type execIface interface {
	isAuthenticated() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Health(ctx context.Context) error
	Retry(ctx context.Context) error
	Status(ctx context.Context) error
	Protected(ctx context.Context) error
	Theme(ctx context.Context, args []string) error
	Env(ctx context.Context) error
}

// runREPL reads commands line by line from reader and dispatches them to a.
// The loop exits on EOF or when the user types "exit" or "quit". Errors from
// handlers are printed and the loop continues.
//
//	help                      show available commands
//	login | register | logout session management
//	health | retry            health check and re-run of the last request
//	status | protected        session details, guarded area
//	theme [light|dark|toggle] show or change the theme
//	env                       runtime configuration
//	exit | quit               leave the program
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("sk %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isAuthenticated() {
				printlnFn("Available commands: status, protected, health, retry, theme, env, logout, exit")
			} else {
				printlnFn("Available commands: login, register, status, protected, health, retry, theme, env, exit")
			}

		case "register":
			cmdErr = a.Register(ctx)

		case "login":
			cmdErr = a.Login(ctx)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "health":
			cmdErr = a.Health(ctx)

		case "retry":
			cmdErr = a.Retry(ctx)

		case "status":
			cmdErr = a.Status(ctx)

		case "protected":
			cmdErr = a.Protected(ctx)

		case "theme":
			cmdErr = a.Theme(ctx, args)

		case "env":
			cmdErr = a.Env(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("Error:", describeError(cmdErr))
		}
	}
}

// describeError renders API errors by their message and status.
func describeError(err error) string {
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Status == apiclient.StatusNetwork {
			return apiErr.Message
		}
		return fmt.Sprintf("%s (status %d)", apiErr.Message, apiErr.Status)
	}
	return err.Error()
}
