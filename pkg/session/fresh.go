package session

import "time"

// IsFresh reports whether rec is still valid at now. Records that never
// expire are always fresh; others are fresh while ExpireAt is not before now.
func IsFresh(rec *Record, now time.Time) bool {
	if rec == nil {
		return false
	}
	if rec.NeverExpires() {
		return true
	}
	return !rec.ExpireAt.Before(now)
}
