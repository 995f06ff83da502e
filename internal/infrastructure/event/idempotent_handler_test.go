package event

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/celebratech/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memoryStore is a minimal IdempotencyStore for testing
type memoryStore struct {
	seen map[string]bool
	err  error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{seen: make(map[string]bool)}
}

func (s *memoryStore) MarkProcessed(ctx context.Context, eventID string, ttl time.Duration) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	if s.seen[eventID] {
		return false, nil
	}
	s.seen[eventID] = true
	return true, nil
}

func (s *memoryStore) IsProcessed(ctx context.Context, eventID string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.seen[eventID], nil
}

func (s *memoryStore) Close() error { return nil }

func TestIdempotentHandler_ProcessesOnce(t *testing.T) {
	inner := newTestHandler("booking.completed")
	store := newMemoryStore()
	handler := NewIdempotentHandler(inner, store, zap.NewNop())

	event := newTestEvent("booking.completed")

	require.NoError(t, handler.Handle(context.Background(), event))
	require.NoError(t, handler.Handle(context.Background(), event))

	assert.Len(t, inner.getHandled(), 1)
	stats := handler.GetMetrics().Stats()
	assert.Equal(t, int64(1), stats.EventsProcessed)
	assert.Equal(t, int64(1), stats.EventsDuplicate)
}

func TestIdempotentHandler_DistinctEvents(t *testing.T) {
	inner := newTestHandler("booking.completed")
	store := newMemoryStore()
	handler := NewIdempotentHandler(inner, store, zap.NewNop())

	require.NoError(t, handler.Handle(context.Background(), newTestEvent("booking.completed")))
	require.NoError(t, handler.Handle(context.Background(), newTestEvent("booking.completed")))

	assert.Len(t, inner.getHandled(), 2)
}

func TestIdempotentHandler_Disabled(t *testing.T) {
	inner := newTestHandler("booking.completed")
	store := newMemoryStore()
	handler := NewIdempotentHandler(inner, store, zap.NewNop(),
		WithIdempotencyConfig(shared.IdempotencyConfig{Enabled: false}),
	)

	event := newTestEvent("booking.completed")
	require.NoError(t, handler.Handle(context.Background(), event))
	require.NoError(t, handler.Handle(context.Background(), event))

	// Without idempotency every delivery reaches the inner handler
	assert.Len(t, inner.getHandled(), 2)
}

func TestIdempotentHandler_StoreFailureProcessesAnyway(t *testing.T) {
	inner := newTestHandler("booking.completed")
	store := newMemoryStore()
	store.err = errors.New("store unavailable")
	handler := NewIdempotentHandler(inner, store, zap.NewNop())

	event := newTestEvent("booking.completed")
	require.NoError(t, handler.Handle(context.Background(), event))

	// Dropping an event is worse than a duplicate; failure falls through
	assert.Len(t, inner.getHandled(), 1)
}

func TestIdempotentHandler_InnerError(t *testing.T) {
	inner := newTestHandler("booking.completed")
	inner.setError(errors.New("handler failed"))
	store := newMemoryStore()
	handler := NewIdempotentHandler(inner, store, zap.NewNop())

	event := newTestEvent("booking.completed")
	err := handler.Handle(context.Background(), event)

	require.Error(t, err)
	assert.Equal(t, int64(1), handler.GetMetrics().Stats().EventsFailed)
}

func TestIdempotentHandler_EventTypes(t *testing.T) {
	inner := newTestHandler("booking.completed", "booking.cancelled")
	handler := NewIdempotentHandler(inner, newMemoryStore(), zap.NewNop())

	assert.Equal(t, []string{"booking.completed", "booking.cancelled"}, handler.EventTypes())
	assert.Equal(t, inner, handler.GetWrappedHandler())
}

func TestWrapHandlersWithIdempotency(t *testing.T) {
	handlers := []shared.EventHandler{
		newTestHandler("booking.completed"),
		newTestHandler("quote.accepted"),
	}

	wrapped := WrapHandlersWithIdempotency(handlers, newMemoryStore(), zap.NewNop())

	require.Len(t, wrapped, 2)
	for i, h := range wrapped {
		ih, ok := h.(*IdempotentHandler)
		require.True(t, ok)
		assert.Equal(t, handlers[i], ih.GetWrappedHandler())
	}
}
