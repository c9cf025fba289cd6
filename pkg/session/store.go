package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/dmitrymomot/mongosession/pkg/attrmap"
	"github.com/dmitrymomot/mongosession/pkg/logger"
)

// Store loads and saves sessions in a Collection. Concurrent operations are
// serialized by one lock for the whole store, so no two merges interleave.
type Store struct {
	mu          sync.Mutex
	coll        Collection
	gen         *Generator
	idSource    IDSource
	maxAttempts int
	logger      *slog.Logger
	observer    Observer
	now         func() time.Time
	expireAfter time.Duration
}

// New creates a Store persisting sessions in coll.
func New(coll Collection, opts ...Option) *Store {
	s := &Store{
		coll:        coll,
		idSource:    RandomSource(32),
		maxAttempts: DefaultMaxGenerateAttempts,
		logger:      slog.Default(),
		observer:    nopObserver{},
		now:         time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.gen = NewGenerator(coll, s.idSource)
	s.gen.maxAttempts = s.maxAttempts
	s.logger = s.logger.With(logger.Component("session.store"))

	return s
}

// Load returns the session stored under id, or a new empty session when id
// is empty or names no fresh record. A new session gets a generated id and
// an empty record.
//
// Store failures are logged and yield an unavailable handle (empty ID, empty
// data) with a nil error. Only ErrSessionCollision and ErrIDGeneration are
// returned.
func (s *Store) Load(ctx context.Context, mode Mode, id string) (*Handle, error) {
	defer s.lock(mode)()

	h, err := s.fetchOrCreate(ctx, id)
	switch {
	case err == nil:
		return h, nil
	case errors.Is(err, ErrSessionCollision), errors.Is(err, ErrIDGeneration):
		s.observer.SessionEvent(EventCollision)
		s.logger.ErrorContext(ctx, "failed to create session", logger.Error(err))
		return nil, err
	default:
		s.observer.SessionEvent(EventStoreFailure)
		s.logger.ErrorContext(ctx, "session store is unavailable", logger.SessionID(id), logger.Error(err))
		return &Handle{Data: attrmap.New(), baseline: attrmap.New()}, nil
	}
}

// Save merges the handle's edits into the stored session and writes it,
// returning the id the session now lives under.
//
// On success the handle takes the returned id and its data becomes the
// baseline, so a later Save applies only later edits. With Drop the record
// is deleted, the handle loses its id and ErrSessionDropped is returned.
// With Renew the record moves to a new id. If the handle's data is not a
// mapping the stored data is rewritten unchanged and the id is returned
// with ErrEditsDiscarded. Store failures are logged and reported as
// ErrSaveFailed.
func (s *Store) Save(ctx context.Context, mode Mode, h *Handle, opts SaveOptions) (string, error) {
	defer s.lock(mode)()

	if !h.Available() {
		s.logger.WarnContext(ctx, "cannot save session without id")
		return "", errors.Join(ErrSaveFailed, ErrNoSessionID)
	}

	id, err := s.mergeAndWrite(ctx, h, opts)
	switch {
	case err == nil:
		s.observer.SessionEvent(EventSaved)
		return id, nil
	case errors.Is(err, ErrSessionDropped):
		s.observer.SessionEvent(EventDropped)
		return "", ErrSessionDropped
	case errors.Is(err, ErrEditsDiscarded):
		s.observer.SessionEvent(EventEditsDiscarded)
		s.logger.WarnContext(ctx, "bad baseline or current session, edits discarded", logger.SessionID(id))
		return id, err
	case errors.Is(err, ErrSessionCollision), errors.Is(err, ErrIDGeneration):
		s.observer.SessionEvent(EventCollision)
		s.logger.ErrorContext(ctx, "failed to renew session", logger.SessionID(h.ID), logger.Error(err))
		return "", errors.Join(ErrSaveFailed, err)
	default:
		s.observer.SessionEvent(EventStoreFailure)
		s.logger.ErrorContext(ctx, "session store is unavailable", logger.SessionID(h.ID), logger.Error(err))
		return "", ErrSaveFailed
	}
}

// PurgeExpired deletes every record that expired before now. It is meant
// to be called by an external scheduler and does not take the store lock.
func (s *Store) PurgeExpired(ctx context.Context) (int64, error) {
	n, err := s.coll.RemoveExpired(ctx, s.now())
	if err != nil {
		return 0, err
	}
	s.observer.SessionsPurged(n)
	s.logger.InfoContext(ctx, "expired sessions purged", logger.Count(n))
	return n, nil
}

// Find returns the stored record for id without checking freshness.
func (s *Store) Find(ctx context.Context, id string) (*Record, error) {
	return s.coll.FindOne(ctx, id)
}

// Destroy deletes the record for id.
func (s *Store) Destroy(ctx context.Context, mode Mode, id string) error {
	defer s.lock(mode)()
	return s.coll.Remove(ctx, id)
}

// GenerateID returns an id that no stored record uses.
func (s *Store) GenerateID(ctx context.Context, mode Mode) (string, error) {
	defer s.lock(mode)()
	return s.gen.Generate(ctx)
}

// TTL returns the lifetime Save applies for opts. Zero means never.
func (s *Store) TTL(opts SaveOptions) time.Duration {
	d := opts.ExpireAfter
	if d == 0 {
		d = s.expireAfter
	}
	if d < 0 {
		return 0
	}
	return d
}

func (s *Store) lock(mode Mode) func() {
	if mode == SingleThreaded {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

// fetchOrCreate is Load without error recovery.
func (s *Store) fetchOrCreate(ctx context.Context, id string) (*Handle, error) {
	now := s.now()
	var data *attrmap.Map

	if id != "" {
		rec, err := s.coll.FindOne(ctx, id)
		switch {
		case err == nil && IsFresh(rec, now):
			data = attrmap.From(rec.Data)
		case err == nil, errors.Is(err, ErrRecordNotFound):
		default:
			return nil, err
		}
	}

	if data != nil {
		s.observer.SessionEvent(EventLoaded)
		return &Handle{ID: id, Data: data, baseline: data.Duplicate()}, nil
	}

	if id != "" {
		s.logger.DebugContext(ctx, "session not found, initializing", logger.SessionID(id))
	}

	newID, err := s.create(ctx, now)
	if err != nil {
		return nil, err
	}
	s.observer.SessionEvent(EventCreated)

	return &Handle{ID: newID, Data: attrmap.New(), baseline: attrmap.New()}, nil
}

// create generates an id and inserts an empty record under it.
func (s *Store) create(ctx context.Context, now time.Time) (string, error) {
	id, err := s.gen.Generate(ctx)
	if err != nil {
		return "", err
	}

	rec := Record{ID: id, Data: map[string]any{}}
	if d := s.TTL(SaveOptions{}); d > 0 {
		rec.ExpireAt = now.Add(d)
	}

	if err := s.coll.Insert(ctx, rec); err != nil {
		if errors.Is(err, ErrDuplicateID) {
			return "", errors.Join(ErrSessionCollision, err)
		}
		return "", err
	}
	return id, nil
}

// mergeAndWrite is Save without error recovery.
func (s *Store) mergeAndWrite(ctx context.Context, h *Handle, opts SaveOptions) (string, error) {
	now := s.now()
	id := h.ID

	persisted := attrmap.New()
	rec, err := s.coll.FindOne(ctx, id)
	switch {
	case err == nil:
		persisted = attrmap.From(rec.Data)
	case errors.Is(err, ErrRecordNotFound):
	default:
		return "", err
	}

	if opts.Drop || opts.Renew {
		if err := s.coll.Remove(ctx, id); err != nil {
			return "", err
		}
		if opts.Drop {
			h.ID = ""
			return "", ErrSessionDropped
		}
		if id, err = s.create(ctx, now); err != nil {
			return "", err
		}
		s.observer.SessionEvent(EventRenewed)
	}

	baseline := h.baseline
	if baseline == nil {
		baseline = attrmap.New()
	}

	var current any
	if h.Data != nil {
		current = h.Data
	}

	merged, changes, mergeErr := merge(baseline, current, persisted)
	if len(changes.deleted) > 0 {
		s.logger.DebugContext(ctx, "session keys deleted", logger.SessionID(id), logger.Keys(changes.deleted))
	}
	if len(changes.updated) > 0 {
		s.logger.DebugContext(ctx, "session keys updated", logger.SessionID(id), logger.Keys(changes.updated))
	}

	out := Record{ID: id, Data: merged.ToPlainMap()}
	if d := s.TTL(opts); d > 0 {
		out.ExpireAt = now.Add(d)
	}

	if err := s.coll.Save(ctx, out); err != nil {
		return "", err
	}

	h.ID = id
	if mergeErr != nil {
		return id, errors.Join(ErrEditsDiscarded, mergeErr)
	}
	h.baseline = h.Data.Duplicate()
	return id, nil
}
