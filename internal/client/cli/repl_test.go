package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	loggedIn bool
	err      error

	calls []string
}

func (f *fakeExec) record(call string) error {
	f.calls = append(f.calls, call)
	return f.err
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) List(ctx context.Context) error              { return f.record("list") }
func (f *fakeExec) Add(ctx context.Context) error               { return f.record("add") }
func (f *fakeExec) Edit(ctx context.Context, id string) error   { return f.record("edit " + id) }
func (f *fakeExec) Delete(ctx context.Context, id string) error { return f.record("delete " + id) }
func (f *fakeExec) Refresh(ctx context.Context) error           { return f.record("refresh") }
func (f *fakeExec) WhoAmI(ctx context.Context) error            { return f.record("whoami") }
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}

func capturePrintln(t *testing.T) *[]string {
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

func TestRunREPL_Commands(t *testing.T) {
	lines := capturePrintln(t)

	input := strings.Join([]string{
		"help",
		"list",
		"login",
		"help",
		"l",
		"add",
		"edit 3",
		"delete 7",
		"refresh",
		"whoami",
		"",
		"foobar",
		"logout",
		"exit",
		"list",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "(Ana)" }, rdr(input))

	require.Equal(t, []string{"login", "list", "add", "edit 3", "delete 7", "refresh", "whoami", "logout"}, exec.calls)
	require.Contains(t, *lines, "Please login first")
	require.Contains(t, *lines, "Available commands: login, exit")
	require.Contains(t, *lines, "Unknown command: foobar")
	require.Contains(t, *lines, "contacto (Ana)> ")
	require.Equal(t, "Bye!", (*lines)[len(*lines)-1])
}

func TestRunREPL_UsageAndQuit(t *testing.T) {
	lines := capturePrintln(t)

	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "" }, rdr("edit\ndelete\nquit\n"))

	require.Empty(t, exec.calls)
	require.Contains(t, *lines, "Usage: edit <id>")
	require.Contains(t, *lines, "Usage: delete <id>")
}

func TestRunREPL_StopsAtEOF(t *testing.T) {
	capturePrintln(t)

	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "" }, rdr("whoami"))

	require.Equal(t, []string{"whoami"}, exec.calls)
}

func TestRunREPL_ReportsErrors(t *testing.T) {
	lines := capturePrintln(t)

	exec := &fakeExec{loggedIn: true, err: errors.New("boom")}
	runREPL(context.Background(), exec, func() string { return "" }, rdr("add\nexit\n"))
	require.Contains(t, *lines, "Error: boom")

	*lines = nil
	exec.err = errReported
	runREPL(context.Background(), exec, func() string { return "" }, rdr("add\nexit\n"))
	for _, l := range *lines {
		require.NotContains(t, l, "Error:")
	}
}
