package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ResultCreated     = "created"
	ResultInvalid     = "invalid"
	ResultFailed      = "failed"
	ResultRateLimited = "rate_limited"

	ResultSent    = "sent"
	ResultSkipped = "skipped"
)

var (
	LeadsSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nataliya_leads_submitted_total",
			Help: "Total number of lead submissions by outcome",
		},
		[]string{"result"},
	)

	Notifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nataliya_notifications_total",
			Help: "Total number of lead notifications by channel and outcome",
		},
		[]string{"channel", "result"},
	)
)
