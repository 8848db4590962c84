package handlers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	chatRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "readycleans_chat_requests_total",
		Help: "Chat messages received.",
	})
	chatFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "readycleans_chat_failures_total",
		Help: "Chat messages that did not get a model reply.",
	})
	intentsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "readycleans_payment_intents_created_total",
		Help: "Payment intents created at the provider.",
	})
	intentsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "readycleans_payment_intents_failed_total",
		Help: "Payment intent requests that failed.",
	})
	wizardTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "readycleans_wizard_transitions_total",
		Help: "Booking wizard actions by outcome.",
	}, []string{"action", "outcome"})
)
