package publisher

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "github.com/tfalohun/olera-sub001/pkg/domain"
	audit "github.com/tfalohun/olera-sub001/pkg/platform/audit"
	"github.com/tfalohun/olera-sub001/pkg/platform/audit/store/memory"
	"github.com/tfalohun/olera-sub001/pkg/platform/circuit"
	"github.com/tfalohun/olera-sub001/pkg/platform/sentinel"
)

type failingStore struct {
	mu    sync.Mutex
	calls int
}

func (s *failingStore) Append(context.Context, audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return errors.New("broker unreachable")
}

func TestPublisher_SyncMode(t *testing.T) {
	store := memory.NewInMemoryStore()
	pub := NewPublisher(store)
	defer pub.Close()

	userID := id.UserID(uuid.New())
	err := pub.Emit(context.Background(), audit.Event{
		UserID: userID,
		Action: string(audit.EventProvidersMatched),
		Count:  7,
	})
	require.NoError(t, err)

	events, err := pub.List(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, string(audit.EventProvidersMatched), events[0].Action)
	assert.Equal(t, audit.CategoryOperations, events[0].Category)
	assert.Equal(t, 7, events[0].Count)
}

func TestPublisher_AsyncDrainsOnClose(t *testing.T) {
	store := memory.NewInMemoryStore()
	pub := NewPublisher(store, WithAsyncBuffer(100))

	for range 10 {
		err := pub.Emit(context.Background(), audit.Event{
			Action: string(audit.EventEligibilityMatched),
			Region: "TX",
		})
		require.NoError(t, err)
	}

	pub.Close()

	events, err := store.ListByUser(context.Background(), id.UserID{})
	require.NoError(t, err)
	assert.Len(t, events, 10, "all events should be drained on close")
}

func TestPublisher_EmitAfterCloseFails(t *testing.T) {
	pub := NewPublisher(memory.NewInMemoryStore(), WithAsyncBuffer(1))
	pub.Close()
	pub.Close()

	err := pub.Emit(context.Background(), audit.Event{Action: string(audit.EventEligibilityMatched)})
	assert.ErrorIs(t, err, ErrClosed)
}

func TestPublisher_ConcurrentEmitDoesNotPanic(t *testing.T) {
	pub := NewPublisher(memory.NewInMemoryStore(), WithAsyncBuffer(1))
	defer pub.Close()

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := pub.Emit(context.Background(), audit.Event{Action: string(audit.EventProvidersMatched)})
			if err != nil {
				assert.ErrorIs(t, err, ErrBufferFull)
			}
		}()
	}
	wg.Wait()
}

func TestPublisher_StampsTimestamp(t *testing.T) {
	store := memory.NewInMemoryStore()
	pub := NewPublisher(store)
	defer pub.Close()

	before := time.Now()
	require.NoError(t, pub.Emit(context.Background(), audit.Event{Action: string(audit.EventEligibilityMatched)}))
	after := time.Now()

	events, err := pub.List(context.Background(), id.UserID{})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.False(t, events[0].Timestamp.Before(before))
	assert.False(t, events[0].Timestamp.After(after))
}

func TestPublisher_PreservesExistingTimestamp(t *testing.T) {
	store := memory.NewInMemoryStore()
	pub := NewPublisher(store)
	defer pub.Close()

	at := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	require.NoError(t, pub.Emit(context.Background(), audit.Event{
		Action:    string(audit.EventEligibilityMatched),
		Timestamp: at,
	}))

	events, err := pub.List(context.Background(), id.UserID{})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, at, events[0].Timestamp)
}

func TestPublisher_BreakerStopsCallingFailingStore(t *testing.T) {
	store := &failingStore{}
	breaker := circuit.New("audit-sink", circuit.WithFailureThreshold(2), circuit.WithCooldown(time.Hour))
	pub := NewPublisher(store, WithBreaker(breaker))
	defer pub.Close()

	for range 5 {
		_ = pub.Emit(context.Background(), audit.Event{Action: string(audit.EventProvidersMatched)})
	}

	assert.True(t, breaker.IsOpen())
	assert.Equal(t, 2, store.calls)

	err := pub.Emit(context.Background(), audit.Event{Action: string(audit.EventProvidersMatched)})
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.ErrorIs(t, err, sentinel.ErrUnavailable)
}

func TestPublisher_ListUnsupported(t *testing.T) {
	pub := NewPublisher(&failingStore{})
	defer pub.Close()

	_, err := pub.List(context.Background(), id.UserID{})
	assert.Error(t, err)
}
