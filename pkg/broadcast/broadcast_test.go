package broadcast_test

import (
	"context"
	"reflect"
	"testing"

	"task-console/pkg/broadcast"
)

func TestSignal(t *testing.T) {
	ctx := context.Background()

	t.Run("Order and once per notify", func(t *testing.T) {
		s := broadcast.New()
		var calls []string
		s.Subscribe(func(context.Context) { calls = append(calls, "a") })
		s.Subscribe(func(context.Context) { calls = append(calls, "b") })
		s.Subscribe(func(context.Context) { calls = append(calls, "c") })

		s.Notify(ctx)
		if want := []string{"a", "b", "c"}; !reflect.DeepEqual(calls, want) {
			t.Fatalf("expected %v, got %v", want, calls)
		}

		s.Notify(ctx)
		if len(calls) != 6 {
			t.Errorf("expected 6 calls after two notifies, got %d", len(calls))
		}
	})

	t.Run("Synchronous", func(t *testing.T) {
		s := broadcast.New()
		done := false
		s.Subscribe(func(context.Context) { done = true })
		s.Notify(ctx)
		if !done {
			t.Errorf("subscriber must have run before Notify returned")
		}
	})

	t.Run("No replay for late subscribers", func(t *testing.T) {
		s := broadcast.New()
		s.Notify(ctx)

		count := 0
		s.Subscribe(func(context.Context) { count++ })
		if count != 0 {
			t.Fatalf("late subscriber received a past notification")
		}
		s.Notify(ctx)
		if count != 1 {
			t.Errorf("expected 1 call, got %d", count)
		}
	})

	t.Run("Unsubscribe", func(t *testing.T) {
		s := broadcast.New()
		count := 0
		unsubscribe := s.Subscribe(func(context.Context) { count++ })
		if s.Len() != 1 {
			t.Fatalf("expected 1 subscriber, got %d", s.Len())
		}

		unsubscribe()
		unsubscribe()
		s.Notify(ctx)

		if count != 0 {
			t.Errorf("unsubscribed callback ran %d times", count)
		}
		if s.Len() != 0 {
			t.Errorf("expected 0 subscribers, got %d", s.Len())
		}
	})

	t.Run("Unsubscribe during notify", func(t *testing.T) {
		s := broadcast.New()
		var unsubscribe func()
		first, second := 0, 0
		unsubscribe = s.Subscribe(func(context.Context) {
			first++
			unsubscribe()
		})
		s.Subscribe(func(context.Context) { second++ })

		s.Notify(ctx)
		s.Notify(ctx)

		if first != 1 || second != 2 {
			t.Errorf("expected first=1 second=2, got first=%d second=%d", first, second)
		}
	})

	t.Run("Context passed through", func(t *testing.T) {
		type key struct{}
		s := broadcast.New()
		var got any
		s.Subscribe(func(c context.Context) { got = c.Value(key{}) })
		s.Notify(context.WithValue(ctx, key{}, "v"))
		if got != "v" {
			t.Errorf("expected context value to reach subscriber, got %v", got)
		}
	})
}
