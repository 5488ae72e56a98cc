package queue

import (
	"context"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/pneumatic/guestbook/internal/api/metrics"
	"github.com/pneumatic/guestbook/internal/core/domain"
	"github.com/pneumatic/guestbook/internal/core/ports"
)

const (
	defaultWorkers = 4
	defaultBuffer  = 64
	sendTimeout    = 30 * time.Second
)

// SendGuard decides whether a notification for a username may still be sent.
// Implementations are expected to be atomic so concurrent workers cannot
// both win the slot.
type SendGuard interface {
	FirstSend(ctx context.Context, username string) (bool, error)
}

// Dispatcher feeds registration events to a fixed pool of workers over one
// bounded channel. Sends happen outside the request cycle; each worker
// builds a fresh context per send rather than borrowing the request's.
// When the buffer is full the event is dropped and logged, never blocking
// the HTTP response.
type Dispatcher struct {
	jobs     chan *domain.User
	workers  int
	notifier ports.Notifier
	guard    SendGuard
	log      zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers workers sharing a
// buffer-sized channel. Non-positive values fall back to the defaults.
// guard may be nil, in which case every enqueued event is sent.
func NewDispatcher(numWorkers, buffer int, notifier ports.Notifier, guard SendGuard, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	return &Dispatcher{
		jobs:     make(chan *domain.User, buffer),
		workers:  numWorkers,
		notifier: notifier,
		guard:    guard,
		log:      log,
	}
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i := 0; i < d.workers; i++ {
		go d.runWorker(ctx, i)
	}
}

// Enqueue hands a new user to the worker pool. The call never blocks: when
// the buffer is full the notification is dropped, which is preferable to
// stalling the registration response.
func (d *Dispatcher) Enqueue(user *domain.User) {
	select {
	case d.jobs <- user:
		metrics.NotificationsEnqueuedTotal.Inc()
		metrics.NotificationsQueueDepth.Set(float64(len(d.jobs)))
	default:
		metrics.NotificationsDroppedTotal.Inc()
		d.log.Warn().
			Str("username", user.Username).
			Msg("notification queue full, dropping event")
	}
}

func (d *Dispatcher) runWorker(ctx context.Context, id int) {
	workerID := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case user, ok := <-d.jobs:
			if !ok {
				return
			}
			metrics.NotificationsQueueDepth.Set(float64(len(d.jobs)))
			d.send(user, workerID)
		}
	}
}

// send runs with its own deadline: the originating request has already been
// answered, so the worker re-establishes its own context.
func (d *Dispatcher) send(user *domain.User, workerID string) {
	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	if d.guard != nil {
		first, err := d.guard.FirstSend(ctx, user.Username)
		if err != nil {
			// Guard unavailable: send anyway, a duplicate mail beats
			// a lost one here.
			d.log.Warn().Err(err).
				Str("username", user.Username).
				Msg("send guard unavailable")
		} else if !first {
			metrics.NotificationsSkippedTotal.Inc()
			d.log.Debug().
				Str("username", user.Username).
				Msg("notification already sent, skipping")
			return
		}
	}

	if err := d.notifier.NotifyNewUser(ctx, user); err != nil {
		metrics.NotificationsErrorsTotal.Inc()
		d.log.Error().Err(err).
			Str("username", user.Username).
			Str("worker_id", workerID).
			Msg("notification send failed")
		return
	}
	metrics.NotificationsSentTotal.Inc()
}
