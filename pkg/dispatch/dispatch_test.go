package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AroraShreshth/wasender/pkg/events"
)

func TestDispatchRoutesByKind(t *testing.T) {
	d := New()

	var upserts, statuses, all []*events.Event
	d.On(events.MessagesUpsert, func(evt *events.Event) { upserts = append(upserts, evt) })
	d.On(events.SessionStatus, func(evt *events.Event) { statuses = append(statuses, evt) })
	d.OnAny(func(evt *events.Event) { all = append(all, evt) })

	d.Dispatch(&events.Event{Type: events.MessagesUpsert})
	d.Dispatch(&events.Event{Type: events.SessionStatus})
	d.Dispatch(&events.Event{Type: events.ChatsUpdate})

	assert.Len(t, upserts, 1)
	assert.Len(t, statuses, 1)
	assert.Len(t, all, 3)
}

func TestDispatchUnknownKindReachesCatchAll(t *testing.T) {
	d := New()

	var seen []*events.Event
	d.OnAny(func(evt *events.Event) { seen = append(seen, evt) })

	evt := &events.Event{Type: events.EventType("totally.new")}
	d.Dispatch(evt)

	require.Len(t, seen, 1)
	assert.Same(t, evt, seen[0])
}

func TestMultipleHandlersRunInOrder(t *testing.T) {
	d := New()

	var order []string
	d.On(events.MessagesUpsert, func(*events.Event) { order = append(order, "first") })
	d.On(events.MessagesUpsert, func(*events.Event) { order = append(order, "second") })

	d.Dispatch(&events.Event{Type: events.MessagesUpsert})
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestSubscribeReceivesEvents(t *testing.T) {
	d := New()
	ch := d.Subscribe()

	evt := &events.Event{Type: events.MessagesUpsert}
	d.Dispatch(evt)

	select {
	case got := <-ch:
		assert.Same(t, evt, got)
	default:
		t.Fatal("expected a buffered event on the observer channel")
	}

	d.Unsubscribe(ch)
	_, open := <-ch
	assert.False(t, open, "unsubscribed channel should be closed")
}

func TestSlowObserverDoesNotBlockDispatch(t *testing.T) {
	d := New()
	ch := d.Subscribe()

	// fill the observer buffer, then dispatch once more; the extra event is
	// dropped instead of blocking
	for i := 0; i < cap(ch)+10; i++ {
		d.Dispatch(&events.Event{Type: events.MessagesUpsert})
	}
	assert.Len(t, ch, cap(ch))
}
