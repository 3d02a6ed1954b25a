package reconcile

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"card-timers/core/database"
	"card-timers/core/state"
	"card-timers/core/state/mocks"
	"card-timers/core/swipe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupEngine(t *testing.T) (*Engine, *state.GormStore, *recordingPublisher) {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	store := state.NewGormStore(db)
	require.NoError(t, store.Migrate(context.Background()))

	pub := &recordingPublisher{}
	return NewEngine(store, pub, zap.NewNop()), store, pub
}

// recordingPublisher keeps every published swipe.
type recordingPublisher struct {
	mu     sync.Mutex
	swipes []swipe.Event
	err    error
	// onPublish runs before the swipe is kept.
	onPublish func(swipe.Event)
}

func (p *recordingPublisher) PublishSwipe(_ context.Context, ev swipe.Event) error {
	if p.onPublish != nil {
		p.onPublish(ev)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.swipes = append(p.swipes, ev)
	return p.err
}

func (p *recordingPublisher) PublishReset(context.Context, time.Time) error { return nil }
func (p *recordingPublisher) Close()                                      {}

func (p *recordingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.swipes)
}

func TestRecord_EndToEnd(t *testing.T) {
	engine, store, pub := setupEngine(t)
	ctx := context.Background()

	text := ":desktop: [Custom] [CardLogger] [3:15 PM EST] Alice swiped a card at Sewer Branch"
	c, ok := swipe.Extract(text)
	require.True(t, ok)

	sent := time.Date(2024, 1, 1, 20, 15, 0, 0, time.UTC)
	outcome, err := engine.RecordEvent(ctx, c.At(sent, "m1"))
	require.NoError(t, err)
	assert.Equal(t, Applied, outcome)

	got, err := store.GetMonument(ctx, "Sewer Branch")
	require.NoError(t, err)
	require.NotNil(t, got.LastSwipeAt)
	assert.Equal(t, "Sewer Branch", got.Name)
	assert.True(t, got.LastSwipeAt.Equal(sent))
	assert.Equal(t, "Alice", got.LastPlayer)
	assert.Equal(t, "m1", got.LastEventID)

	require.Equal(t, 1, pub.count())
	assert.Equal(t, "m1", pub.swipes[0].SourceEventID)
}

func TestRecord_Idempotent(t *testing.T) {
	engine, store, pub := setupEngine(t)
	ctx := context.Background()
	at := time.Date(2024, 1, 1, 20, 15, 0, 0, time.UTC)

	outcome, err := engine.Record(ctx, "Sewer Branch", at, "Alice", "m1")
	require.NoError(t, err)
	assert.Equal(t, Applied, outcome)
	first, err := store.GetMonument(ctx, "Sewer Branch")
	require.NoError(t, err)

	// Redelivery with a different player still counts as the same message.
	outcome, err = engine.Record(ctx, "Sewer Branch", at.Add(time.Minute), "Mallory", "m1")
	require.NoError(t, err)
	assert.Equal(t, SkippedDuplicate, outcome)

	second, err := store.GetMonument(ctx, "Sewer Branch")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, pub.count())
}

func TestRecord_LastWriteWinsByArrival(t *testing.T) {
	engine, store, _ := setupEngine(t)
	ctx := context.Background()
	t1 := time.Date(2024, 1, 1, 20, 15, 0, 0, time.UTC)
	t2 := t1.Add(-time.Hour)

	_, err := engine.Record(ctx, "Launch Site", t1, "Alice", "e1")
	require.NoError(t, err)
	outcome, err := engine.Record(ctx, "Launch Site", t2, "Bob", "e2")
	require.NoError(t, err)
	assert.Equal(t, Applied, outcome)

	got, err := store.GetMonument(ctx, "Launch Site")
	require.NoError(t, err)
	assert.Equal(t, "Bob", got.LastPlayer)
	assert.True(t, got.LastSwipeAt.Equal(t2))
	assert.Equal(t, "e2", got.LastEventID)
}

func TestRecord_CaseSensitiveIdentity(t *testing.T) {
	engine, store, _ := setupEngine(t)
	ctx := context.Background()
	at := time.Date(2024, 1, 1, 20, 15, 0, 0, time.UTC)

	_, err := engine.Record(ctx, "Sewer Branch", at, "Alice", "m1")
	require.NoError(t, err)
	_, err = engine.Record(ctx, "sewer branch", at, "Bob", "m2")
	require.NoError(t, err)

	all, err := store.ListMonuments(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Alice", all[0].LastPlayer)
	assert.Equal(t, "Bob", all[1].LastPlayer)
}

func TestRecord_NormalizesToUTC(t *testing.T) {
	engine, store, _ := setupEngine(t)
	ctx := context.Background()
	est := time.FixedZone("EST", -5*3600)

	_, err := engine.Record(ctx, "Dome", time.Date(2024, 1, 1, 15, 15, 0, 0, est), "Alice", "m1")
	require.NoError(t, err)

	got, err := store.GetMonument(ctx, "Dome")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, got.LastSwipeAt.Location())
	assert.Equal(t, 20, got.LastSwipeAt.Hour())
}

func TestRecord_InvalidEvent(t *testing.T) {
	engine, _, _ := setupEngine(t)
	ctx := context.Background()
	now := time.Now()

	tests := []struct {
		name                     string
		monument, player, source string
	}{
		{"Empty monument", "", "Alice", "m1"},
		{"Empty player", "Dome", "", "m1"},
		{"Empty source id", "Dome", "Alice", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.Record(ctx, tt.monument, now, tt.player, tt.source)
			assert.ErrorIs(t, err, ErrInvalidEvent)
		})
	}
}

func TestRecord_StoreUnavailable(t *testing.T) {
	store := new(mocks.Store)
	dbErr := errors.New("connection refused")
	store.On("UpdateMonument", mock.Anything, "Dome", mock.Anything).
		Return(state.MonumentState{}, false, errors.Join(state.ErrUnavailable, dbErr))

	pub := &recordingPublisher{}
	engine := NewEngine(store, pub, zap.NewNop())

	outcome, err := engine.Record(context.Background(), "Dome", time.Now(), "Alice", "m1")
	assert.ErrorIs(t, err, state.ErrUnavailable)
	assert.Equal(t, Outcome(0), outcome)
	assert.Equal(t, 0, pub.count())

	// The lock is released on failure.
	assert.Equal(t, 0, engine.locks.size())
	store.AssertExpectations(t)
}

func TestRecord_PublishFailureDoesNotFailCommit(t *testing.T) {
	engine, store, pub := setupEngine(t)
	pub.err = errors.New("nats down")
	ctx := context.Background()

	outcome, err := engine.Record(ctx, "Dome", time.Now(), "Alice", "m1")
	require.NoError(t, err)
	assert.Equal(t, Applied, outcome)

	got, err := store.GetMonument(ctx, "Dome")
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.LastPlayer)
}

func TestRecord_ConcurrentSameMonument(t *testing.T) {
	t.Run("Same message", func(t *testing.T) {
		engine, _, _ := setupEngine(t)
		at := time.Now()

		outcomes := make([]Outcome, 2)
		var wg sync.WaitGroup
		for i := range outcomes {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				o, err := engine.Record(context.Background(), "Airfield", at, "Alice", "m1")
				assert.NoError(t, err)
				outcomes[i] = o
			}(i)
		}
		wg.Wait()

		assert.ElementsMatch(t, []Outcome{Applied, SkippedDuplicate}, outcomes)
	})

	t.Run("Different messages", func(t *testing.T) {
		engine, store, _ := setupEngine(t)
		t1 := time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC)
		t2 := t1.Add(time.Minute)

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			o, err := engine.Record(context.Background(), "Airfield", t1, "Alice", "m1")
			assert.NoError(t, err)
			assert.Equal(t, Applied, o)
		}()
		go func() {
			defer wg.Done()
			o, err := engine.Record(context.Background(), "Airfield", t2, "Bob", "m2")
			assert.NoError(t, err)
			assert.Equal(t, Applied, o)
		}()
		wg.Wait()

		got, err := store.GetMonument(context.Background(), "Airfield")
		require.NoError(t, err)
		switch got.LastEventID {
		case "m1":
			assert.Equal(t, "Alice", got.LastPlayer)
			assert.True(t, got.LastSwipeAt.Equal(t1))
		case "m2":
			assert.Equal(t, "Bob", got.LastPlayer)
			assert.True(t, got.LastSwipeAt.Equal(t2))
		default:
			t.Fatalf("unexpected event id %q", got.LastEventID)
		}
	})
}

// blockingStore holds UpdateMonument for one monument until released.
type blockingStore struct {
	state.Store
	blockOn string
	entered chan struct{}
	release chan struct{}
}

func (s *blockingStore) UpdateMonument(ctx context.Context, name string, m state.Mutation) (state.MonumentState, bool, error) {
	if name == s.blockOn {
		close(s.entered)
		<-s.release
	}
	next, write := m(state.MonumentState{Name: name})
	return next, write, nil
}

func TestRecord_DifferentMonumentsDoNotBlock(t *testing.T) {
	store := &blockingStore{
		blockOn: "Airfield",
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	engine := NewEngine(store, nil, zap.NewNop())

	blocked := make(chan Outcome, 1)
	go func() {
		o, _ := engine.Record(context.Background(), "Airfield", time.Now(), "Alice", "m1")
		blocked <- o
	}()
	<-store.entered

	done := make(chan Outcome, 1)
	go func() {
		o, _ := engine.Record(context.Background(), "Dome", time.Now(), "Bob", "m2")
		done <- o
	}()

	select {
	case o := <-done:
		assert.Equal(t, Applied, o)
	case <-time.After(2 * time.Second):
		t.Fatal("update to a different monument was blocked")
	}

	close(store.release)
	assert.Equal(t, Applied, <-blocked)
}

func TestRecord_PublishesUnderMonumentLock(t *testing.T) {
	engine, store, pub := setupEngine(t)
	ctx := context.Background()

	var held []int
	pub.onPublish = func(swipe.Event) {
		held = append(held, engine.locks.size())
	}

	_, err := engine.Record(ctx, "Dome", time.Now(), "Alice", "m1")
	require.NoError(t, err)
	assert.Equal(t, []int{1}, held)
	assert.Equal(t, 0, engine.locks.size())
	pub.onPublish = nil

	// Publication order for one monument follows commit order.
	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := engine.Record(ctx, "Airfield", time.Now(), "Bob", SequencedID("m", i))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	got, err := store.GetMonument(ctx, "Airfield")
	require.NoError(t, err)
	pub.mu.Lock()
	last := pub.swipes[len(pub.swipes)-1]
	pub.mu.Unlock()
	assert.Equal(t, got.LastEventID, last.SourceEventID)
}

func TestRecordSequenced(t *testing.T) {
	engine, store, pub := setupEngine(t)
	ctx := context.Background()
	at := time.Date(2024, 1, 1, 20, 15, 0, 0, time.UTC)

	o, err := engine.RecordSequenced(ctx, "Dome", at, "Alice", "replay:abc", 1)
	require.NoError(t, err)
	assert.Equal(t, Applied, o)
	o, err = engine.RecordSequenced(ctx, "Dome", at.Add(time.Minute), "Bob", "replay:abc", 2)
	require.NoError(t, err)
	assert.Equal(t, Applied, o)
	first, err := store.GetMonument(ctx, "Dome")
	require.NoError(t, err)
	assert.Equal(t, "replay:abc:2", first.LastEventID)

	t.Run("Earlier position is skipped", func(t *testing.T) {
		o, err := engine.RecordSequenced(ctx, "Dome", at.Add(time.Hour), "Alice", "replay:abc", 1)
		require.NoError(t, err)
		assert.Equal(t, SkippedDuplicate, o)

		got, err := store.GetMonument(ctx, "Dome")
		require.NoError(t, err)
		assert.Equal(t, first, got)
	})

	t.Run("Other source applies", func(t *testing.T) {
		o, err := engine.RecordSequenced(ctx, "Dome", at, "Carol", "replay:def", 1)
		require.NoError(t, err)
		assert.Equal(t, Applied, o)
	})

	t.Run("Prefix of another source is not the same source", func(t *testing.T) {
		_, ok := sequenceOf("replay:abc:7", "replay:ab")
		assert.False(t, ok)
		n, ok := sequenceOf("replay:abc:7", "replay:abc")
		assert.True(t, ok)
		assert.Equal(t, 7, n)
	})

	t.Run("Empty source", func(t *testing.T) {
		_, err := engine.RecordSequenced(ctx, "Dome", at, "Alice", "", 1)
		assert.ErrorIs(t, err, ErrInvalidEvent)
	})

	assert.Equal(t, 3, pub.count())
}
