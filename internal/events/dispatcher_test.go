package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherDeliversToAllHandlers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var seen []string
	d.Subscribe(EventPaymentRecorded, func(_ context.Context, e Event) error {
		seen = append(seen, "first:"+e.Subject)
		return errors.New("boom")
	})
	d.Subscribe(EventPaymentRecorded, func(_ context.Context, e Event) error {
		seen = append(seen, "second:"+e.Subject)
		return nil
	})
	d.Subscribe(EventUserRegistered, func(context.Context, Event) error {
		t.Fatal("unrelated handler called")
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventPaymentRecorded, Subject: "p1"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "boom")
	assert.Equal(t, []string{"first:p1", "second:p1"}, seen)
}

func TestDispatcherWithoutListeners(t *testing.T) {
	d := NewInMemoryDispatcher()
	assert.NoError(t, d.Publish(context.Background(), Event{Type: EventAccessDenied}))
}

func TestDispatcherRecoversPanickingSubscriber(t *testing.T) {
	d := NewInMemoryDispatcher()

	delivered := false
	d.Subscribe(EventAccessDenied, func(context.Context, Event) error {
		panic("subscriber bug")
	})
	d.Subscribe(EventAccessDenied, func(context.Context, Event) error {
		delivered = true
		return nil
	})
	d.Subscribe(EventAccessDenied, nil)

	err := d.Publish(context.Background(), Event{Type: EventAccessDenied})
	require.Error(t, err)
	assert.ErrorContains(t, err, "subscriber 0: panic: subscriber bug")
	assert.True(t, delivered)
}
