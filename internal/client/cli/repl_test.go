package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool
	calls    []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }

func (f *fakeExec) record(call string) error {
	f.calls = append(f.calls, call)
	return nil
}

func (f *fakeExec) List(ctx context.Context) error   { return f.record("list") }
func (f *fakeExec) Add(ctx context.Context) error    { return f.record("add") }
func (f *fakeExec) Filter(ctx context.Context) error { return f.record("filter") }
func (f *fakeExec) Reload(ctx context.Context) error { return f.record("reload") }
func (f *fakeExec) Toggle(ctx context.Context, id string) error {
	return f.record("toggle " + id)
}
func (f *fakeExec) Delete(ctx context.Context, id string) error {
	return f.record("delete " + id)
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}

func run(t *testing.T, exec *fakeExec, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	runREPL(context.Background(), exec, func() string { return "(status)" }, rdr(strings.Join(lines, "\n")), &out)
	return out.String()
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	exec := &fakeExec{}

	out := run(t, exec,
		"help",
		"add",
		"toggle 1",
		"login",
		"help",
		"add",
		"l",
		"toggle 3",
		"delete 2",
		"filter",
		"reload",
		"logout",
		"foobar",
		"exit",
		"list",
	)

	assert.Equal(t, []string{
		"toggle 1", "login", "add", "list", "toggle 3", "delete 2", "filter", "reload", "logout",
	}, exec.calls)

	assert.Contains(t, out, helpLoggedOut)
	assert.Contains(t, out, helpLoggedIn)
	assert.Contains(t, out, msgLoginFirst)
	assert.Contains(t, out, "Unknown command: foobar")
	assert.Contains(t, out, "notes (status)> ")
	assert.True(t, strings.HasSuffix(out, "Bye!\n"))
}

func TestRunREPL_OnlyAddNeedsLogin(t *testing.T) {
	exec := &fakeExec{}

	out := run(t, exec, "add", "toggle 1", "delete 1", "quit")

	assert.Equal(t, []string{"toggle 1", "delete 1"}, exec.calls)
	assert.Equal(t, 1, strings.Count(out, msgLoginFirst))
}

func TestRunREPL_UsageAndQuit(t *testing.T) {
	exec := &fakeExec{loggedIn: true}

	out := run(t, exec, "toggle", "delete 1 2", "quit")

	assert.Empty(t, exec.calls)
	assert.Contains(t, out, "Usage: toggle <id>")
	assert.Contains(t, out, "Usage: delete <id>")
}

func TestRunREPL_EOFWithoutNewline(t *testing.T) {
	exec := &fakeExec{}

	run(t, exec, "", "   ", "list")

	assert.Equal(t, []string{"list"}, exec.calls)
}

func TestRunREPL_CancelledContext(t *testing.T) {
	exec := &fakeExec{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	runREPL(ctx, exec, func() string { return "" }, rdr("list\n"), &out)

	assert.Empty(t, exec.calls)
	assert.Empty(t, out.String())
}
