package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

var errUsage = errors.New("usage")

// execIface defines the command surface the REPL needs. The real App type
// satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context, args []string) error
	Logout(ctx context.Context) error
	Whoami() error
	Open(ctx context.Context, args []string) error
	List(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Add(ctx context.Context, args []string) error
	Update(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Approve(ctx context.Context, args []string) error
	Done(ctx context.Context, args []string) error
	Report(ctx context.Context, args []string) error
	Export(ctx context.Context, args []string) error
	Notif(ctx context.Context, args []string) error
}

const (
	helpGuest = "Available commands: login [username], open <path>, whoami, exit"
	helpUser  = `Available commands:
  open <path>                          navigate, e.g. open /trucks
  list <entity> [in|out]               fetch and list records
  show <entity> <id>                   show one record
  add <entity> [name=value ...]        create a record
  update <entity> <id> [name=value...] update a record
  delete <entity> <id>                 delete a record
  approve <orders|spj|request-assets> <id> <status> [remark]
  done <orders|spj> <id>               mark as completed
  report <TYPE> [from] [end]           generate a report
  export <TYPE> <pdf|excel> [from] [end]
  notif [list|unread|refs|read <id>|delete <id...>|category <c>|check]
  whoami, logout, exit`
)

// runREPL reads commands line by line from reader and dispatches them to a.
// The loop exits at end of input or on "exit"/"quit". Handler errors are
// printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("sitrack %s> ", statusFn()))
		line, readErr := reader.ReadString('\n')
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if readErr != nil {
				return
			}
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpUser)
			} else {
				printlnFn(helpGuest)
			}

		case "login":
			err = a.Login(ctx, args)

		case "logout":
			err = a.Logout(ctx)

		case "whoami":
			err = a.Whoami()

		case "open", "cd":
			err = a.Open(ctx, args)

		case "l", "list":
			err = a.List(ctx, args)

		case "show":
			err = a.Show(ctx, args)

		case "add":
			err = a.Add(ctx, args)

		case "update":
			err = a.Update(ctx, args)

		case "delete", "rm":
			err = a.Delete(ctx, args)

		case "approve":
			err = a.Approve(ctx, args)

		case "done":
			err = a.Done(ctx, args)

		case "report":
			err = a.Report(ctx, args)

		case "export":
			err = a.Export(ctx, args)

		case "notif":
			err = a.Notif(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("error:", err)
		}
		if readErr != nil {
			return
		}
	}
}
