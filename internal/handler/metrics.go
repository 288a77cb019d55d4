package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	checkoutsStarted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "food_order",
		Subsystem: "checkout",
		Name:      "started_total",
		Help:      "Checkout attempts started, by payment method.",
	}, []string{"method"})

	paymentCallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "food_order",
		Subsystem: "checkout",
		Name:      "payment_callbacks_total",
		Help:      "Payment gateway callbacks received, by status.",
	}, []string{"status"})

	ordersCancelled = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "food_order",
		Subsystem: "orders",
		Name:      "cancelled_total",
		Help:      "Orders cancelled by their owners.",
	})
)
