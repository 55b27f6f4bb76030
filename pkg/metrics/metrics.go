package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the cart-to-order checkout operation
	CheckoutDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "checkout_duration_seconds",
		Help:    "Latency of cart checkout into per-stand orders",
		Buckets: prometheus.DefBuckets,
	})

	// Orders created via checkout
	OrdersCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_created_total",
		Help: "Total number of orders created from checkouts",
	})

	// Order status transitions, labelled by target status
	StatusTransitions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "order_status_transitions_total",
		Help: "Total number of order status transitions",
	}, []string{"to"})
)

func Init() {
	prometheus.MustRegister(
		CheckoutDuration,
		OrdersCreated,
		StatusTransitions,
	)
}
