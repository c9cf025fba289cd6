package session_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/dmitrymomot/mongosession/pkg/session"
)

var errStoreDown = errors.New("connection refused")

// MockCollection is a mock implementation of session.Collection.
type MockCollection struct {
	mock.Mock
}

func (m *MockCollection) FindOne(ctx context.Context, id string) (*session.Record, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Record), args.Error(1)
}

func (m *MockCollection) Save(ctx context.Context, rec session.Record) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockCollection) Insert(ctx context.Context, rec session.Record) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockCollection) Remove(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCollection) RemoveExpired(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

// recordingObserver counts store events.
type recordingObserver struct {
	mu     sync.Mutex
	events map[session.EventKind]int
	purged int64
}

func newRecordingObserver() *recordingObserver {
	return &recordingObserver{events: make(map[session.EventKind]int)}
}

func (o *recordingObserver) SessionEvent(kind session.EventKind) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events[kind]++
}

func (o *recordingObserver) SessionsPurged(n int64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.purged += n
}

func (o *recordingObserver) count(kind session.EventKind) int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[kind]
}

// fakeClock is a settable time source.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// sequenceSource yields ids in order, then repeats the last one.
func sequenceSource(ids ...string) session.IDSource {
	var mu sync.Mutex
	i := 0
	return func() (string, error) {
		mu.Lock()
		defer mu.Unlock()
		id := ids[i]
		if i < len(ids)-1 {
			i++
		}
		return id, nil
	}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestStore(coll session.Collection, opts ...session.Option) *session.Store {
	return session.New(coll, append([]session.Option{session.WithLogger(quietLogger())}, opts...)...)
}
