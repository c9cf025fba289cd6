package session

import "context"

// FetchOrCreate exposes Load without its error recovery.
func (s *Store) FetchOrCreate(ctx context.Context, id string) (*Handle, error) {
	return s.fetchOrCreate(ctx, id)
}

// MergeAndWrite exposes Save without its error recovery.
func (s *Store) MergeAndWrite(ctx context.Context, h *Handle, opts SaveOptions) (string, error) {
	return s.mergeAndWrite(ctx, h, opts)
}
