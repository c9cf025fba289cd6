package session

// EventKind names an outcome of a store operation.
type EventKind string

const (
	EventLoaded         EventKind = "loaded"
	EventCreated        EventKind = "created"
	EventSaved          EventKind = "saved"
	EventDropped        EventKind = "dropped"
	EventRenewed        EventKind = "renewed"
	EventCollision      EventKind = "collision"
	EventEditsDiscarded EventKind = "edits_discarded"
	EventStoreFailure   EventKind = "store_failure"
)

// Observer receives store events, for instance to export metrics.
// Implementations must be safe for concurrent use.
type Observer interface {
	SessionEvent(kind EventKind)
	SessionsPurged(n int64)
}

type nopObserver struct{}

func (nopObserver) SessionEvent(EventKind) {}
func (nopObserver) SessionsPurged(int64)   {}
