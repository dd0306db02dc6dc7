package events

import (
	"context"
	"errors"
	"testing"
)

func TestBusPublishCallsHandlersInOrder(t *testing.T) {
	bus := NewBus()
	calls := make([]int, 0, 2)

	bus.Subscribe(ProfilesComputed, func(_ context.Context, _ Event) error {
		calls = append(calls, 1)
		return nil
	})
	bus.Subscribe(ProfilesComputed, func(_ context.Context, _ Event) error {
		calls = append(calls, 2)
		return nil
	})

	if err := bus.Publish(context.Background(), Event{Name: ProfilesComputed}); err != nil {
		t.Fatalf("publish returned error: %v", err)
	}

	if len(calls) != 2 || calls[0] != 1 || calls[1] != 2 {
		t.Fatalf("unexpected handler call sequence: %+v", calls)
	}
}

func TestBusPublishStopsOnFirstError(t *testing.T) {
	bus := NewBus()
	var calledSecond bool
	expectedErr := errors.New("handler failed")

	bus.Subscribe(ProfilesComputed, func(_ context.Context, _ Event) error {
		return expectedErr
	})
	bus.Subscribe(ProfilesComputed, func(_ context.Context, _ Event) error {
		calledSecond = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{Name: ProfilesComputed})
	if !errors.Is(err, expectedErr) {
		t.Fatalf("expected %v, got %v", expectedErr, err)
	}
	if calledSecond {
		t.Fatalf("expected second handler not to run")
	}
}

func TestBusPublishWithoutSubscribers(t *testing.T) {
	bus := NewBus()
	if bus.HasSubscribers(ProfilesComputed) {
		t.Fatalf("new bus should have no subscribers")
	}
	if err := bus.Publish(context.Background(), Event{Name: "Unknown"}); err != nil {
		t.Fatalf("publish without subscribers returned error: %v", err)
	}

	bus.Subscribe(ProfilesComputed, func(context.Context, Event) error { return nil })
	if !bus.HasSubscribers(ProfilesComputed) {
		t.Fatalf("expected subscriber to be registered")
	}
}
