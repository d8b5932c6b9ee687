// Package metrics holds the process-wide Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency by method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	BillsGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bills_generated_total",
		Help: "Bills created, by source (manual or auto).",
	}, []string{"source"})

	AutoGenerationRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bill_auto_generation_runs_total",
		Help: "Auto-generation runs by outcome.",
	}, []string{"outcome"})

	ReceiptsSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "receipts_sent_total",
		Help: "Receipt e-mails delivered.",
	})

	MailFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mail_failures_total",
		Help: "E-mail deliveries that failed, by kind.",
	}, []string{"kind"})
)
