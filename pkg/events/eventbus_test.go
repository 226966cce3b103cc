package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/TajHussain7/Kashi-Pizza-Home/pkg/logger"
)

// TestRetryWithBackoff_SuccessOnFirstAttempt verifies no retry occurs on success.
func TestRetryWithBackoff_SuccessOnFirstAttempt(t *testing.T) {
	calls := 0
	handler := func(_ context.Context, _ *message.Message) error {
		calls++
		return nil
	}
	msg := message.NewMessage("id", nil)
	err := retryWithBackoff(context.Background(), msg, handler, maxRetries, time.Millisecond, logger.NewNop())
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

// TestRetryWithBackoff_SuccessAfterRetries verifies retry continues until success.
func TestRetryWithBackoff_SuccessAfterRetries(t *testing.T) {
	calls := 0
	handler := func(_ context.Context, _ *message.Message) error {
		calls++
		if calls < 3 {
			return errors.New("transient error")
		}
		return nil
	}
	msg := message.NewMessage("id", nil)
	err := retryWithBackoff(context.Background(), msg, handler, maxRetries, time.Millisecond, logger.NewNop())
	if err != nil {
		t.Fatalf("expected nil after eventual success, got %v", err)
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

// TestRetryWithBackoff_ExhaustsRetries verifies an error is returned after all retries fail.
func TestRetryWithBackoff_ExhaustsRetries(t *testing.T) {
	calls := 0
	handler := func(_ context.Context, _ *message.Message) error {
		calls++
		return errors.New("permanent error")
	}
	msg := message.NewMessage("id", nil)
	err := retryWithBackoff(context.Background(), msg, handler, maxRetries, time.Millisecond, logger.NewNop())
	if err == nil {
		t.Fatal("expected error after exhausted retries")
	}
	if calls != maxRetries {
		t.Errorf("expected %d calls, got %d", maxRetries, calls)
	}
}

// TestRetryWithBackoff_ContextCancelled verifies retry stops when context is canceled.
func TestRetryWithBackoff_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // cancel immediately

	calls := 0
	handler := func(_ context.Context, _ *message.Message) error {
		calls++
		return errors.New("error")
	}
	msg := message.NewMessage("id", nil)
	err := retryWithBackoff(ctx, msg, handler, maxRetries, time.Second, logger.NewNop())
	if err == nil {
		t.Fatal("expected error from canceled context")
	}
	// Should have called handler once then exited on ctx.Done
	if calls != 1 {
		t.Errorf("expected 1 call before context cancel, got %d", calls)
	}
}

// TestPublishSubscribe_RoundTrip verifies a message published after subscribing
// is delivered to the handler and acked.
func TestPublishSubscribe_RoundTrip(t *testing.T) {
	bus := NewEventBus(logger.NewNop())
	defer bus.Close() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan []byte, 1)
	errCh, err := bus.Subscribe(ctx, "invoice.generated", func(_ context.Context, msg *message.Message) error {
		received <- msg.Payload
		return nil
	})
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	go func() {
		for range errCh {
		}
	}()

	if err := bus.Publish(ctx, "invoice.generated", message.NewMessage("id-1", []byte(`{"invoiceNumber":"INV-1"}`))); err != nil {
		t.Fatalf("publish: %v", err)
	}

	select {
	case payload := <-received:
		if string(payload) != `{"invoiceNumber":"INV-1"}` {
			t.Errorf("unexpected payload: %s", payload)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message delivery")
	}
}

// TestSubscribe_HandlerFailureForwardsError verifies exhausted retries surface
// on the error channel.
func TestSubscribe_HandlerFailureForwardsError(t *testing.T) {
	bus := NewEventBus(logger.NewNop())
	defer bus.Close() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh, err := bus.Subscribe(ctx, "invoice.generated", func(_ context.Context, _ *message.Message) error {
		return errors.New("handler failure")
	})
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	if err := bus.Publish(ctx, "invoice.generated", message.NewMessage("id-2", nil)); err != nil {
		t.Fatalf("publish: %v", err)
	}

	select {
	case got := <-errCh:
		if got == nil {
			t.Fatal("expected non-nil error from channel")
		}
	case <-time.After(10 * time.Second):
		t.Fatal("timed out waiting for handler error")
	}
}
