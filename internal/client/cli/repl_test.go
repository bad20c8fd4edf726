package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  [][]string
	err   error
}

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args)
	return f.err
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Login(ctx context.Context, args []string) error {
	f.loggedIn = true
	return f.record("login", args)
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout", nil)
}
func (f *fakeExec) Whoami() error { return f.record("whoami", nil) }
func (f *fakeExec) Open(ctx context.Context, args []string) error {
	return f.record("open", args)
}
func (f *fakeExec) List(ctx context.Context, args []string) error {
	return f.record("list", args)
}
func (f *fakeExec) Show(ctx context.Context, args []string) error {
	return f.record("show", args)
}
func (f *fakeExec) Add(ctx context.Context, args []string) error {
	return f.record("add", args)
}
func (f *fakeExec) Update(ctx context.Context, args []string) error {
	return f.record("update", args)
}
func (f *fakeExec) Delete(ctx context.Context, args []string) error {
	return f.record("delete", args)
}
func (f *fakeExec) Approve(ctx context.Context, args []string) error {
	return f.record("approve", args)
}
func (f *fakeExec) Done(ctx context.Context, args []string) error {
	return f.record("done", args)
}
func (f *fakeExec) Report(ctx context.Context, args []string) error {
	return f.record("report", args)
}
func (f *fakeExec) Export(ctx context.Context, args []string) error {
	return f.record("export", args)
}
func (f *fakeExec) Notif(ctx context.Context, args []string) error {
	return f.record("notif", args)
}

func capturePrint(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestRunREPL_Dispatch(t *testing.T) {
	out := capturePrint(t)

	input := strings.Join([]string{
		"help",
		"login budi",
		"help",
		"open /trucks",
		"list trucks",
		"show trucks V-1",
		"add trucks vehicleBrand=Hino",
		"update trucks V-1 vehicleYear=2020",
		"rm trucks V-1",
		"approve orders O-1 1 ok",
		"done spj S-1",
		"report ALL_CUSTOMERS",
		"export ALL_CUSTOMERS pdf",
		"notif unread",
		"whoami",
		"foobar",
		"logout",
		"exit",
		"list never-reached",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewReader(strings.NewReader(input)))

	assert.Equal(t, []string{
		"login", "open", "list", "show", "add", "update", "delete",
		"approve", "done", "report", "export", "notif", "whoami", "logout",
	}, exec.calls)
	assert.Equal(t, []string{"budi"}, exec.args[0])
	assert.Equal(t, []string{"trucks", "V-1", "vehicleYear=2020"}, exec.args[5])
	assert.Contains(t, *out, helpGuest)
	assert.Contains(t, *out, helpUser)
	assert.Contains(t, *out, "Unknown command: foobar")
	assert.Contains(t, *out, "Bye!")
}

func TestRunREPL_PrintsHandlerErrorsAndStopsAtEOF(t *testing.T) {
	out := capturePrint(t)

	exec := &fakeExec{err: errors.New("boom")}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewReader(strings.NewReader("\n\nlist trucks")))

	assert.Equal(t, []string{"list"}, exec.calls)
	assert.Contains(t, *out, "error: boom")
	assert.NotContains(t, *out, "Bye!")
}
