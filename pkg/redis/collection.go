package redis

import (
	"context"
	"errors"
	"io"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/mongosession/pkg/session"
)

// Collection stores session records in Redis. Each record is a YAML
// envelope under "<prefix>s:<id>"; the sorted set "<prefix>expiry" indexes
// expiring records by their expiry in unix milliseconds.
type Collection struct {
	db     redis.UniversalClient
	prefix string
	closer io.Closer
}

var _ session.Collection = (*Collection)(nil)

// CollectionOption is a functional option for Collection
type CollectionOption func(*Collection)

// WithKeyPrefix sets the key namespace, "session:" by default.
func WithKeyPrefix(prefix string) CollectionOption {
	return func(c *Collection) {
		if prefix != "" {
			c.prefix = prefix
		}
	}
}

// NewCollection creates a collection on an existing client. The client is
// not closed by Close.
func NewCollection(client redis.UniversalClient, opts ...CollectionOption) *Collection {
	c := &Collection{db: client, prefix: "session:"}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type envelope struct {
	Data     map[string]any `yaml:"data"`
	ExpireAt int64          `yaml:"expire_at"` // unix nanoseconds, 0 means never
}

func (c *Collection) recordKey(id string) string {
	return c.prefix + "s:" + id
}

func (c *Collection) indexKey() string {
	return c.prefix + "expiry"
}

func (c *Collection) FindOne(ctx context.Context, id string) (*session.Record, error) {
	raw, err := c.db.Get(ctx, c.recordKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, session.ErrRecordNotFound
		}
		return nil, errors.Join(ErrCommandFailed, err)
	}

	rec, err := decodeRecord(id, raw)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (c *Collection) Save(ctx context.Context, rec session.Record) error {
	payload, err := encodeRecord(rec)
	if err != nil {
		return err
	}

	pipe := c.db.TxPipeline()
	pipe.Set(ctx, c.recordKey(rec.ID), payload, 0)
	c.index(ctx, pipe, rec)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Join(ErrCommandFailed, err)
	}
	return nil
}

func (c *Collection) Insert(ctx context.Context, rec session.Record) error {
	payload, err := encodeRecord(rec)
	if err != nil {
		return err
	}

	ok, err := c.db.SetNX(ctx, c.recordKey(rec.ID), payload, 0).Result()
	if err != nil {
		return errors.Join(ErrCommandFailed, err)
	}
	if !ok {
		return session.ErrDuplicateID
	}

	if rec.NeverExpires() {
		return nil
	}
	pipe := c.db.Pipeline()
	c.index(ctx, pipe, rec)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Join(ErrCommandFailed, err)
	}
	return nil
}

func (c *Collection) Remove(ctx context.Context, id string) error {
	pipe := c.db.TxPipeline()
	pipe.Del(ctx, c.recordKey(id))
	pipe.ZRem(ctx, c.indexKey(), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Join(ErrCommandFailed, err)
	}
	return nil
}

// RemoveExpired deletes the records whose expiry is before before. The index
// is scored in milliseconds, so records scored in the millisecond of before
// are checked against their exact expiry.
func (c *Collection) RemoveExpired(ctx context.Context, before time.Time) (int64, error) {
	cutoff := before.UnixMilli()
	entries, err := c.db.ZRangeByScoreWithScores(ctx, c.indexKey(), &redis.ZRangeBy{
		Min: "-inf",
		Max: strconv.FormatInt(cutoff, 10),
	}).Result()
	if err != nil {
		return 0, errors.Join(ErrCommandFailed, err)
	}

	var keys []string
	var members []any
	for _, z := range entries {
		id, _ := z.Member.(string)
		if int64(z.Score) == cutoff {
			rec, err := c.FindOne(ctx, id)
			switch {
			case errors.Is(err, session.ErrRecordNotFound):
				members = append(members, id)
				continue
			case err != nil:
				return 0, err
			case rec.NeverExpires() || !rec.ExpireAt.Before(before):
				continue
			}
		}
		keys = append(keys, c.recordKey(id))
		members = append(members, id)
	}
	if len(members) == 0 {
		return 0, nil
	}

	pipe := c.db.TxPipeline()
	var deleted *redis.IntCmd
	if len(keys) > 0 {
		deleted = pipe.Del(ctx, keys...)
	}
	pipe.ZRem(ctx, c.indexKey(), members...)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, errors.Join(ErrCommandFailed, err)
	}
	if deleted == nil {
		return 0, nil
	}
	return deleted.Val(), nil
}

// Healthcheck pings the server.
func (c *Collection) Healthcheck(ctx context.Context) error {
	if err := c.db.Ping(ctx).Err(); err != nil {
		return errors.Join(ErrHealthcheckFailed, err)
	}
	return nil
}

// Close closes the client opened by Open.
func (c *Collection) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}

func (c *Collection) index(ctx context.Context, pipe redis.Pipeliner, rec session.Record) {
	if rec.NeverExpires() {
		pipe.ZRem(ctx, c.indexKey(), rec.ID)
		return
	}
	pipe.ZAdd(ctx, c.indexKey(), redis.Z{
		Score:  float64(rec.ExpireAt.UnixMilli()),
		Member: rec.ID,
	})
}

func encodeRecord(rec session.Record) ([]byte, error) {
	env := envelope{Data: rec.Data}
	if env.Data == nil {
		env.Data = map[string]any{}
	}
	if !rec.NeverExpires() {
		env.ExpireAt = rec.ExpireAt.UnixNano()
	}

	payload, err := yaml.Marshal(env)
	if err != nil {
		return nil, errors.Join(ErrCorruptRecord, err)
	}
	return payload, nil
}

func decodeRecord(id string, raw []byte) (session.Record, error) {
	var env envelope
	if err := yaml.Unmarshal(raw, &env); err != nil {
		return session.Record{}, errors.Join(ErrCorruptRecord, err)
	}

	rec := session.Record{ID: id, Data: env.Data}
	if rec.Data == nil {
		rec.Data = map[string]any{}
	}
	if env.ExpireAt != 0 {
		rec.ExpireAt = time.Unix(0, env.ExpireAt).UTC()
	}
	return rec, nil
}
