package events

import (
	"testing"

	model "github.com/privacykit/consent-manager/internal/consent/model"
	"github.com/stretchr/testify/assert"
)

func TestPublishInvokesSubscribersInOrder(t *testing.T) {
	notifier := NewNotifier()

	var order []int
	notifier.Subscribe(EventConsentUpdated, func(Event) { order = append(order, 1) })
	notifier.Subscribe(EventConsentUpdated, func(Event) { order = append(order, 2) })
	notifier.Subscribe(EventConsentUpdated, func(Event) { order = append(order, 3) })

	notifier.Publish(Event{Type: EventConsentUpdated})

	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestPublishCarriesRecordPayload(t *testing.T) {
	notifier := NewNotifier()

	var received *model.ConsentRecord
	notifier.Subscribe(EventConsentUpdated, func(event Event) { received = event.Record })

	record := &model.ConsentRecord{ID: "r1", Version: "1.0"}
	notifier.Publish(Event{Type: EventConsentUpdated, Record: record})

	assert.Same(t, record, received)
}

func TestResetEventHasNoPayload(t *testing.T) {
	notifier := NewNotifier()

	resets := 0
	notifier.Subscribe(EventConsentReset, func(event Event) {
		resets++
		assert.Nil(t, event.Record)
	})

	notifier.Publish(Event{Type: EventConsentReset})

	assert.Equal(t, 1, resets)
}

func TestEventTypesAreIndependent(t *testing.T) {
	notifier := NewNotifier()

	updates, resets := 0, 0
	notifier.Subscribe(EventConsentUpdated, func(Event) { updates++ })
	notifier.Subscribe(EventConsentReset, func(Event) { resets++ })

	notifier.Publish(Event{Type: EventConsentUpdated})

	assert.Equal(t, 1, updates)
	assert.Equal(t, 0, resets)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	notifier := NewNotifier()

	calls := 0
	unsubscribe := notifier.Subscribe(EventConsentUpdated, func(Event) { calls++ })

	notifier.Publish(Event{Type: EventConsentUpdated})
	unsubscribe()
	notifier.Publish(Event{Type: EventConsentUpdated})

	assert.Equal(t, 1, calls)
}

func TestNoReplayForLateSubscribers(t *testing.T) {
	notifier := NewNotifier()

	notifier.Publish(Event{Type: EventConsentUpdated})

	calls := 0
	notifier.Subscribe(EventConsentUpdated, func(Event) { calls++ })

	assert.Equal(t, 0, calls, "a subscriber registered after an event fired never receives it")
}

func TestUnsubscribeDuringDispatchDoesNotDisturbInFlightFanout(t *testing.T) {
	notifier := NewNotifier()

	var order []int
	var unsubscribeSecond func()
	notifier.Subscribe(EventConsentUpdated, func(Event) {
		order = append(order, 1)
		unsubscribeSecond()
	})
	unsubscribeSecond = notifier.Subscribe(EventConsentUpdated, func(Event) { order = append(order, 2) })

	notifier.Publish(Event{Type: EventConsentUpdated})
	assert.Equal(t, []int{1, 2}, order, "in-flight dispatch still reaches the unsubscribed handler")

	notifier.Publish(Event{Type: EventConsentUpdated})
	assert.Equal(t, []int{1, 2, 1}, order, "later publishes skip it")
}

func TestPanickingHandlerDoesNotStopDispatch(t *testing.T) {
	notifier := NewNotifier()

	calls := 0
	notifier.Subscribe(EventConsentUpdated, func(Event) { panic("broken observer") })
	notifier.Subscribe(EventConsentUpdated, func(Event) { calls++ })

	assert.NotPanics(t, func() {
		notifier.Publish(Event{Type: EventConsentUpdated})
	})
	assert.Equal(t, 1, calls)
}
