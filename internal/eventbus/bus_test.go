package eventbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishSubscribe(t *testing.T) {
	bus := New()
	_, ch := bus.Subscribe(4)

	bus.PublishNew(TypeTasksInjected, "EVT-001", map[string]string{"count": "25"})

	select {
	case got := <-ch:
		assert.Equal(t, TypeTasksInjected, got.Type)
		assert.Equal(t, "EVT-001", got.ResourceID)
		assert.Equal(t, "25", got.Metadata["count"])
		assert.NotEmpty(t, got.ID)
		assert.False(t, got.CreatedAt.IsZero())
	default:
		t.Fatal("expected a published event")
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	bus := New()
	id, ch := bus.Subscribe(1)

	bus.Unsubscribe(id)
	_, open := <-ch
	assert.False(t, open)

	// Publishing after unsubscribe must not panic.
	bus.PublishNew(TypeEventCreated, "EVT-001", nil)
}

func TestPublish_DropsWhenBufferFull(t *testing.T) {
	bus := New()
	_, ch := bus.Subscribe(1)

	bus.PublishNew(TypeEventCreated, "EVT-001", nil)
	bus.PublishNew(TypeEventCreated, "EVT-002", nil)

	got := <-ch
	require.Equal(t, "EVT-001", got.ResourceID)
	select {
	case extra := <-ch:
		t.Fatalf("expected second event to be dropped, got %s", extra.ResourceID)
	default:
	}
}
