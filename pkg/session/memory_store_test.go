package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mongosession/pkg/session"
)

func TestMemoryCollection(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("find missing", func(t *testing.T) {
		coll := session.NewMemoryCollection()
		rec, err := coll.FindOne(ctx, "nope")
		assert.ErrorIs(t, err, session.ErrRecordNotFound)
		assert.Nil(t, rec)
	})

	t.Run("insert rejects duplicates", func(t *testing.T) {
		coll := session.NewMemoryCollection()
		require.NoError(t, coll.Insert(ctx, session.Record{ID: "a", Data: map[string]any{"n": 1}}))
		err := coll.Insert(ctx, session.Record{ID: "a", Data: map[string]any{"n": 2}})
		assert.ErrorIs(t, err, session.ErrDuplicateID)

		rec, err := coll.FindOne(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, 1, rec.Data["n"])
	})

	t.Run("save replaces", func(t *testing.T) {
		coll := session.NewMemoryCollection()
		require.NoError(t, coll.Save(ctx, session.Record{ID: "a", Data: map[string]any{"n": 1}}))
		require.NoError(t, coll.Save(ctx, session.Record{ID: "a", Data: map[string]any{"m": 2}, ExpireAt: now}))

		rec, err := coll.FindOne(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"m": 2}, rec.Data)
		assert.True(t, rec.ExpireAt.Equal(now))
	})

	t.Run("returns copies", func(t *testing.T) {
		coll := session.NewMemoryCollection()
		data := map[string]any{"nested": map[string]any{"k": "v"}}
		require.NoError(t, coll.Save(ctx, session.Record{ID: "a", Data: data}))
		data["nested"].(map[string]any)["k"] = "changed"

		rec, err := coll.FindOne(ctx, "a")
		require.NoError(t, err)
		rec.Data["added"] = true

		again, err := coll.FindOne(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"nested": map[string]any{"k": "v"}}, again.Data)
	})

	t.Run("copies typed slices", func(t *testing.T) {
		coll := session.NewMemoryCollection()
		tags := []string{"a"}
		require.NoError(t, coll.Save(ctx, session.Record{ID: "a", Data: map[string]any{"tags": tags, "raw": []byte("x")}}))
		tags[0] = "changed"

		rec, err := coll.FindOne(ctx, "a")
		require.NoError(t, err)
		rec.Data["tags"].([]string)[0] = "edited"
		rec.Data["raw"].([]byte)[0] = 'y'

		again, err := coll.FindOne(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, []string{"a"}, again.Data["tags"])
		assert.Equal(t, []byte("x"), again.Data["raw"])
	})

	t.Run("remove", func(t *testing.T) {
		coll := session.NewMemoryCollection()
		require.NoError(t, coll.Save(ctx, session.Record{ID: "a"}))
		require.NoError(t, coll.Remove(ctx, "a"))
		require.NoError(t, coll.Remove(ctx, "a"))
		assert.Equal(t, 0, coll.Len())
	})

	t.Run("remove expired", func(t *testing.T) {
		coll := session.NewMemoryCollection()
		require.NoError(t, coll.Save(ctx, session.Record{ID: "never"}))
		require.NoError(t, coll.Save(ctx, session.Record{ID: "old", ExpireAt: now.Add(-time.Minute)}))
		require.NoError(t, coll.Save(ctx, session.Record{ID: "edge", ExpireAt: now}))
		require.NoError(t, coll.Save(ctx, session.Record{ID: "later", ExpireAt: now.Add(time.Minute)}))

		n, err := coll.RemoveExpired(ctx, now)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
		assert.Equal(t, 3, coll.Len())

		_, err = coll.FindOne(ctx, "old")
		assert.ErrorIs(t, err, session.ErrRecordNotFound)
	})
}
