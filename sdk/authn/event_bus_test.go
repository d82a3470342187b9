package authn

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEventBusDeliversInSubscriptionOrder(t *testing.T) {
	bus := NewEventBus()
	delivered := []string{}
	bus.Subscribe(func() {
		delivered = append(delivered, "first")
	})
	bus.Subscribe(func() {
		delivered = append(delivered, "second")
	})
	bus.Publish()
	require.Equal(t, []string{"first", "second"}, delivered)
	bus.Publish()
	require.Equal(
		t,
		[]string{"first", "second", "first", "second"},
		delivered,
	)
}

func TestEventBusUnsubscribe(t *testing.T) {
	bus := NewEventBus()
	deliveries := 0
	unsubscribe := bus.Subscribe(func() {
		deliveries++
	})
	bus.Publish()
	require.Equal(t, 1, deliveries)
	unsubscribe()
	bus.Publish()
	require.Equal(t, 1, deliveries)
	// Unsubscribing twice is a safe no-op
	unsubscribe()
}

func TestEventBusPublishWithNoSubscribers(t *testing.T) {
	bus := NewEventBus()
	require.NotPanics(t, bus.Publish)
}

// A handler may unsubscribe itself mid-delivery without deadlocking.
func TestEventBusUnsubscribeDuringDelivery(t *testing.T) {
	bus := NewEventBus()
	deliveries := 0
	var unsubscribe func()
	unsubscribe = bus.Subscribe(func() {
		deliveries++
		unsubscribe()
	})
	bus.Publish()
	bus.Publish()
	require.Equal(t, 1, deliveries)
}
