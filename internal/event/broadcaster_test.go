package event

import (
	"testing"

	"github.com/safuramariyam/greenthumb/internal/model"
)

// TestPublishFansOut verifies every subscriber receives every event.
func TestPublishFansOut(t *testing.T) {
	b := NewBroadcaster()
	_, ch1 := b.Subscribe()
	_, ch2 := b.Subscribe()

	task := &model.CalendarTask{ID: 1, Title: "Water tomatoes"}
	b.Publish(model.Event{Type: model.EventTaskCreated, Task: task})
	b.Publish(model.Event{Type: model.EventTaskDeleted, TaskID: 1})

	for i, ch := range []<-chan model.Event{ch1, ch2} {
		ev := <-ch
		if ev.Type != model.EventTaskCreated || ev.Task == nil || ev.Task.ID != 1 {
			t.Errorf("subscriber %d first event = %+v", i, ev)
		}
		ev = <-ch
		if ev.Type != model.EventTaskDeleted || ev.TaskID != 1 {
			t.Errorf("subscriber %d second event = %+v", i, ev)
		}
	}
}

// TestSlowSubscriberIsEvicted verifies that a subscriber whose buffer fills
// is dropped and its channel closed, while faster subscribers keep receiving.
func TestSlowSubscriberIsEvicted(t *testing.T) {
	b := NewBroadcaster()
	_, slow := b.Subscribe()

	for i := 0; i <= subscriberBuffer; i++ {
		b.Publish(model.Event{Type: model.EventTaskUpdated, TaskID: i})
	}

	if got := b.Count(); got != 0 {
		t.Fatalf("Count = %d, want 0 after eviction", got)
	}

	// Drain the buffered events, then observe the close.
	received := 0
	for range slow {
		received++
	}
	if received != subscriberBuffer {
		t.Errorf("received %d buffered events, want %d", received, subscriberBuffer)
	}
}

// TestUnsubscribe verifies removal closes the channel and that a second
// Unsubscribe, or one after eviction, is harmless.
func TestUnsubscribe(t *testing.T) {
	b := NewBroadcaster()
	id, ch := b.Subscribe()

	b.Unsubscribe(id)
	if _, open := <-ch; open {
		t.Error("channel still open after Unsubscribe")
	}
	b.Unsubscribe(id)

	if got := b.Count(); got != 0 {
		t.Errorf("Count = %d, want 0", got)
	}

	// Publishing with no subscribers must not panic.
	b.Publish(model.Event{Type: model.EventTaskCreated})
}
