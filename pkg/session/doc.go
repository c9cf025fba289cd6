// Package session implements a server-side session store. Session
// attributes live in a document Collection (MongoDB, Redis or memory); the
// client only holds an opaque id.
//
// # Architecture
//
// A Store loads and saves sessions. Saving does not overwrite: it merges the
// request's edits, computed against the attributes as loaded, into the
// record as it is stored now. Keys another request wrote in the meantime
// survive. Concurrent operations of one Store are serialized by a single
// lock; SingleThreaded mode skips it.
//
//	┌────────┐    id     ┌────────────┐
//	│ Client │ ────────► │  Transport │
//	└────────┘           └────────────┘
//	       ▲                   │
//	       │                   ▼
//	┌─────────────────────────────────┐
//	│       Manager (middleware)      │
//	└─────────────────────────────────┘
//	       │   Load / Save
//	       ▼
//	┌────────┐       ┌────────────┐
//	│ Store  │ ────► │ Collection │ (mongo, redis, memory)
//	└────────┘       └────────────┘
//
// # Usage
//
//	coll := session.NewMemoryCollection()
//	store := session.New(coll, session.WithExpireAfter(24*time.Hour))
//
//	cookieMgr, _ := cookie.New([]string{secret})
//	manager := session.NewManager(store, session.WithCookieManager(cookieMgr))
//
//	mux.Handle("/", manager.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
//	    h := session.MustFromContext(r.Context())
//	    n, _ := h.Data.Value("counter").(int)
//	    h.Data.Set("counter", n+1)
//	})))
//
// Handlers change how the session is saved with Renew, Drop, Defer and
// ExpireAfter on the request context.
//
// # Errors
//
// Load hides store outages: it logs them and returns a handle without id,
// which the middleware never saves. Save reports ErrSaveFailed,
// ErrSessionDropped or ErrEditsDiscarded; check them with errors.Is.
//
// # Expiry
//
// A record is fresh while its expiry is not in the past. Stale records are
// ignored by Load and deleted by PurgeExpired, which RunCleanup calls on a
// ticker.
package session
