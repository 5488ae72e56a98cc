package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/pneumatic/guestbook/internal/core/domain"
)

type countingNotifier struct {
	mu    sync.Mutex
	sent  []string
	err   error
	gotIt chan struct{}
}

func newCountingNotifier(capacity int) *countingNotifier {
	return &countingNotifier{gotIt: make(chan struct{}, capacity)}
}

func (n *countingNotifier) NotifyNewUser(_ context.Context, user *domain.User) error {
	n.mu.Lock()
	n.sent = append(n.sent, user.Username)
	n.mu.Unlock()
	n.gotIt <- struct{}{}
	return n.err
}

func (n *countingNotifier) sentNames() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.sent...)
}

func waitFor(t *testing.T, ch <-chan struct{}, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-ch:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for send %d of %d", i+1, n)
		}
	}
}

func TestDispatcher_SendsEnqueuedEvents(t *testing.T) {
	notifier := newCountingNotifier(8)
	d := NewDispatcher(2, 8, notifier, nil, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(&domain.User{Username: "alice"})
	d.Enqueue(&domain.User{Username: "bob"})

	waitFor(t, notifier.gotIt, 2)

	names := notifier.sentNames()
	if len(names) != 2 {
		t.Fatalf("expected 2 sends, got %d", len(names))
	}
}

func TestDispatcher_DropsWhenSaturated(t *testing.T) {
	notifier := newCountingNotifier(8)
	// No workers started: the channel fills and stays full.
	d := NewDispatcher(1, 2, notifier, nil, zerolog.Nop())

	for i := 0; i < 5; i++ {
		d.Enqueue(&domain.User{Username: "user"})
	}
	if got := len(d.jobs); got != 2 {
		t.Fatalf("expected a bounded queue of 2, got %d pending", got)
	}
}

type stubGuard struct {
	mu      sync.Mutex
	claimed map[string]bool
	err     error
}

func (g *stubGuard) FirstSend(_ context.Context, username string) (bool, error) {
	if g.err != nil {
		return false, g.err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.claimed == nil {
		g.claimed = make(map[string]bool)
	}
	if g.claimed[username] {
		return false, nil
	}
	g.claimed[username] = true
	return true, nil
}

func TestDispatcher_GuardSuppressesDuplicates(t *testing.T) {
	notifier := newCountingNotifier(8)
	guard := &stubGuard{}
	d := NewDispatcher(1, 8, notifier, guard, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(&domain.User{Username: "alice"})
	waitFor(t, notifier.gotIt, 1)
	d.Enqueue(&domain.User{Username: "alice"})
	d.Enqueue(&domain.User{Username: "bob"})
	waitFor(t, notifier.gotIt, 1)

	// Give the suppressed event a moment to drain through the worker.
	time.Sleep(50 * time.Millisecond)

	names := notifier.sentNames()
	if len(names) != 2 {
		t.Fatalf("expected duplicate to be suppressed, sends: %v", names)
	}
}

func TestDispatcher_GuardFailureStillSends(t *testing.T) {
	notifier := newCountingNotifier(8)
	guard := &stubGuard{err: errors.New("redis down")}
	d := NewDispatcher(1, 8, notifier, guard, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(&domain.User{Username: "alice"})
	waitFor(t, notifier.gotIt, 1)

	if names := notifier.sentNames(); len(names) != 1 {
		t.Fatalf("expected the send to proceed past a failing guard, got %v", names)
	}
}

func TestDispatcher_SendErrorIsSwallowed(t *testing.T) {
	notifier := newCountingNotifier(8)
	notifier.err = errors.New("relay unreachable")
	d := NewDispatcher(1, 8, notifier, nil, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(&domain.User{Username: "alice"})
	waitFor(t, notifier.gotIt, 1)
	// Nothing to assert beyond "no panic, no retry": the worker logs and
	// moves on.
	d.Enqueue(&domain.User{Username: "bob"})
	waitFor(t, notifier.gotIt, 1)
}
