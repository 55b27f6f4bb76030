package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition_ForwardPath(t *testing.T) {
	path := []string{
		OrderPendingPayment,
		OrderPendingVerification,
		OrderVerified,
		OrderCooking,
		OrderReady,
		OrderCompleted,
	}

	for i := 0; i < len(path)-1; i++ {
		assert.True(t, CanTransition(path[i], path[i+1]), "%s -> %s", path[i], path[i+1])
	}
}

func TestCanTransition_NoSkipsOrBacktracking(t *testing.T) {
	assert.False(t, CanTransition(OrderPendingPayment, OrderVerified))
	assert.False(t, CanTransition(OrderPendingPayment, OrderCooking))
	assert.False(t, CanTransition(OrderVerified, OrderReady))
	assert.False(t, CanTransition(OrderCooking, OrderCompleted))

	assert.False(t, CanTransition(OrderCooking, OrderVerified))
	assert.False(t, CanTransition(OrderReady, OrderCooking))
}

func TestCanTransition_CancellationWindow(t *testing.T) {
	// buyer has not paid yet, nothing to refuse
	assert.False(t, CanTransition(OrderPendingPayment, OrderCancelled))

	for _, from := range []string{OrderPendingVerification, OrderVerified, OrderCooking, OrderReady} {
		assert.True(t, CanTransition(from, OrderCancelled), "%s should be cancellable", from)
	}
}

func TestCanTransition_TerminalStates(t *testing.T) {
	for _, terminal := range []string{OrderCompleted, OrderCancelled} {
		for _, to := range []string{
			OrderPendingPayment, OrderPendingVerification, OrderVerified,
			OrderCooking, OrderReady, OrderCompleted, OrderCancelled,
		} {
			assert.False(t, CanTransition(terminal, to), "%s -> %s", terminal, to)
		}
	}
}
