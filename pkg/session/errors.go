package session

import "errors"

var (
	// ErrRecordNotFound is returned by a Collection when no record has the given id.
	ErrRecordNotFound = errors.New("session.record_not_found")

	// ErrDuplicateID is returned by Collection.Insert when the id is already taken.
	ErrDuplicateID = errors.New("session.duplicate_id")

	// ErrSessionCollision indicates the initial record of a new session could not
	// be created because another writer already owns the generated id.
	ErrSessionCollision = errors.New("session.collision")

	// ErrIDGeneration indicates the id source failed or kept producing taken ids.
	ErrIDGeneration = errors.New("session.id_generation_failed")

	// ErrSessionDropped is returned by Save when the drop option removed the session.
	ErrSessionDropped = errors.New("session.dropped")

	// ErrSaveFailed is returned by Save when the session could not be written.
	// The underlying store error is logged, not returned.
	ErrSaveFailed = errors.New("session.save_failed")

	// ErrEditsDiscarded is returned by Save together with the session id when the
	// request's edits could not be merged and the persisted data was kept as is.
	ErrEditsDiscarded = errors.New("session.edits_discarded")

	// ErrMalformedMergeInput is returned by Merge when baseline or current is not a mapping.
	ErrMalformedMergeInput = errors.New("session.malformed_merge_input")

	// ErrNoSessionID indicates the request carried no session id
	ErrNoSessionID = errors.New("session.no_id")
)
