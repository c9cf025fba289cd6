package session

import (
	"github.com/dmitrymomot/mongosession/pkg/attrmap"
)

// Merge reconciles a request's edits with the persisted state of its session.
//
// Keys present in baseline but missing from current are deleted from
// persisted. Keys of current whose value differs from baseline, or that
// baseline lacks, are written into persisted. Everything else in persisted is
// left as it is, so keys written by concurrent requests survive.
//
// baseline and current may be *attrmap.Map or any map value. If either is
// not a mapping, persisted is returned unchanged together with
// ErrMalformedMergeInput. persisted is modified in place; a nil persisted is
// treated as empty.
func Merge(baseline, current any, persisted *attrmap.Map) (*attrmap.Map, error) {
	merged, _, err := merge(baseline, current, persisted)
	return merged, err
}

// mergeChanges lists the keys a merge touched.
type mergeChanges struct {
	deleted []string
	updated []string
}

func merge(baseline, current any, persisted *attrmap.Map) (*attrmap.Map, mergeChanges, error) {
	if persisted == nil {
		persisted = attrmap.New()
	}
	if !attrmap.IsMapShaped(baseline) || !attrmap.IsMapShaped(current) {
		return persisted, mergeChanges{}, ErrMalformedMergeInput
	}

	before := asMap(baseline)
	after := asMap(current)

	var changes mergeChanges
	for _, k := range before.Keys() {
		if !after.Has(k) {
			persisted.Delete(k)
			changes.deleted = append(changes.deleted, k)
		}
	}

	for k, v := range after.All() {
		old, ok := before.Get(k)
		if ok && attrmap.ValuesEqual(old, v) {
			continue
		}
		persisted.Set(k, v)
		changes.updated = append(changes.updated, k)
	}

	return persisted, changes, nil
}

func asMap(v any) *attrmap.Map {
	if m, ok := v.(*attrmap.Map); ok {
		return m
	}
	return attrmap.From(v)
}
