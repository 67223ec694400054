package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	arg   string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Signup(ctx context.Context) error {
	f.calls = append(f.calls, "signup")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Profile(ctx context.Context) error {
	f.calls = append(f.calls, "profile")
	return nil
}
func (f *fakeExec) EditProfile(ctx context.Context) error {
	f.calls = append(f.calls, "editprofile")
	return nil
}
func (f *fakeExec) ListTasks(ctx context.Context) error {
	f.calls = append(f.calls, "tasks")
	return nil
}
func (f *fakeExec) AddTask(ctx context.Context) error {
	f.calls = append(f.calls, "addtask")
	return nil
}
func (f *fakeExec) DoneTask(ctx context.Context, id string) error {
	f.calls = append(f.calls, "done")
	f.arg = id
	return nil
}
func (f *fakeExec) DeleteTask(ctx context.Context, id string) error {
	f.calls = append(f.calls, "deltask")
	f.arg = id
	return nil
}
func (f *fakeExec) ListAppointments(ctx context.Context) error {
	f.calls = append(f.calls, "appts")
	return nil
}
func (f *fakeExec) AddAppointment(ctx context.Context) error {
	f.calls = append(f.calls, "addappt")
	return nil
}
func (f *fakeExec) DeleteAppointment(ctx context.Context, id string) error {
	f.calls = append(f.calls, "delappt")
	f.arg = id
	return nil
}
func (f *fakeExec) Today(ctx context.Context) error {
	f.calls = append(f.calls, "today")
	return nil
}
func (f *fakeExec) Pending(ctx context.Context) error {
	f.calls = append(f.calls, "pending")
	return nil
}
func (f *fakeExec) Upcoming(ctx context.Context) error {
	f.calls = append(f.calls, "upcoming")
	return nil
}
func (f *fakeExec) Ping(ctx context.Context) error {
	f.calls = append(f.calls, "ping")
	return nil
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"ping",
		"login",
		"help",
		"addtask",
		"tasks",
		"done t1",
		"today",
		"upcoming",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"ping", "login", "addtask", "tasks", "done", "today", "upcoming"}
	if len(exec.calls) < len(wantOrder) {
		t.Fatalf("few calls: %+v", exec.calls)
	}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
	if exec.arg != "t1" {
		t.Fatalf("done arg: got %q, want %q", exec.arg, "t1")
	}
}

func TestRunREPL_UsageAndQuit(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("done\ndeltask\ndelappt\nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
