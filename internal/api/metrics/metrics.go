// Package metrics defines all custom Prometheus metrics for the guestbook
// service. It is the single source of truth for metric names, labels, and
// help strings. Metrics register themselves with the default registry at
// init time; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "guestbook"

// RegistrationsTotal counts form submissions by outcome.
// Label:
//   - result: "new" (row created), "known" (existing username), or
//     "invalid" (rejected by validation)
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of form submissions, by outcome.",
	},
	[]string{"result"},
)

// NotificationsEnqueuedTotal counts events accepted by the dispatcher.
var NotificationsEnqueuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_enqueued_total",
		Help:      "Total number of new-user events accepted by the notification queue.",
	},
)

// NotificationsDroppedTotal counts events rejected because the queue was full.
var NotificationsDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_dropped_total",
		Help:      "Total number of new-user events dropped because the queue buffer was full.",
	},
)

// NotificationsSentTotal counts successful relay handoffs.
var NotificationsSentTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_sent_total",
		Help:      "Total number of new-user notifications handed to the mail relay.",
	},
)

// NotificationsErrorsTotal counts failed send attempts. There is no retry,
// so every error here is a lost notification.
var NotificationsErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_errors_total",
		Help:      "Total number of notification sends that failed.",
	},
)

// NotificationsSkippedTotal counts sends suppressed by the dedup guard.
var NotificationsSkippedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_skipped_total",
		Help:      "Total number of notification sends suppressed as duplicates.",
	},
)

// NotificationsQueueDepth tracks the number of events waiting in the queue.
var NotificationsQueueDepth = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notifications_queue_depth",
		Help:      "Current number of events pending in the notification queue.",
	},
)
