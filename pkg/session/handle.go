package session

import "github.com/dmitrymomot/mongosession/pkg/attrmap"

// Handle is the in-flight session of one request. Load returns it, the
// request mutates Data, Save takes it back.
type Handle struct {
	// ID is the session id. It is empty when the store was unavailable.
	ID string
	// Data holds the session attributes the request reads and writes.
	Data *attrmap.Map

	// baseline is Data as loaded, the "before" side of the merge.
	baseline *attrmap.Map
}

// NewHandle builds a handle for data that did not come from Load. Its
// baseline is empty, so every key of data counts as an edit on Save.
func NewHandle(id string, data *attrmap.Map) *Handle {
	return &Handle{ID: id, Data: data}
}

// Available reports whether the handle is backed by a stored session.
func (h *Handle) Available() bool {
	return h != nil && h.ID != ""
}

// Baseline returns a copy of the attributes as they were loaded.
func (h *Handle) Baseline() *attrmap.Map {
	if h == nil {
		return attrmap.New()
	}
	return h.baseline.Duplicate()
}

// Modified reports whether Data differs from the loaded attributes.
func (h *Handle) Modified() bool {
	if h == nil {
		return false
	}
	return !h.Data.Equal(h.baseline.Duplicate())
}
