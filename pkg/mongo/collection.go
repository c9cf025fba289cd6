package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/mongosession/pkg/session"
)

const expireIndexName = "expire_1"

// Collection stores session records as documents
// {_id: id, data: {...}, expire: date}. Records that never expire have no
// expire field, so {expire: {$lt: t}} never matches them.
type Collection struct {
	coll   *mongo.Collection
	client *mongo.Client
}

var _ session.Collection = (*Collection)(nil)

// NewCollection wraps an existing driver collection.
func NewCollection(coll *mongo.Collection) *Collection {
	return &Collection{coll: coll}
}

// document is the stored shape. Expire is decoded loosely: a date, a
// missing field or the number 0 are all accepted.
type document struct {
	ID     string `bson:"_id"`
	Data   bson.M `bson:"data"`
	Expire any    `bson:"expire,omitempty"`
}

func (c *Collection) FindOne(ctx context.Context, id string) (*session.Record, error) {
	var doc document
	err := c.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, session.ErrRecordNotFound
		}
		return nil, errors.Join(ErrQueryFailed, err)
	}

	rec := decodeRecord(doc)
	return &rec, nil
}

func (c *Collection) Save(ctx context.Context, rec session.Record) error {
	_, err := c.coll.ReplaceOne(ctx,
		bson.D{{Key: "_id", Value: rec.ID}},
		encodeRecord(rec),
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return errors.Join(ErrQueryFailed, err)
	}
	return nil
}

func (c *Collection) Insert(ctx context.Context, rec session.Record) error {
	if _, err := c.coll.InsertOne(ctx, encodeRecord(rec)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.Join(session.ErrDuplicateID, err)
		}
		return errors.Join(ErrQueryFailed, err)
	}
	return nil
}

func (c *Collection) Remove(ctx context.Context, id string) error {
	if _, err := c.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}}); err != nil {
		return errors.Join(ErrQueryFailed, err)
	}
	return nil
}

func (c *Collection) RemoveExpired(ctx context.Context, before time.Time) (int64, error) {
	res, err := c.coll.DeleteMany(ctx, bson.D{{Key: "expire", Value: bson.D{{Key: "$lt", Value: before}}}})
	if err != nil {
		return 0, errors.Join(ErrQueryFailed, err)
	}
	return res.DeletedCount, nil
}

// EnsureIndexes creates the expire index used by RemoveExpired.
func (c *Collection) EnsureIndexes(ctx context.Context) error {
	_, err := c.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "expire", Value: 1}},
		Options: options.Index().SetName(expireIndexName),
	})
	if err != nil {
		return errors.Join(ErrQueryFailed, err)
	}
	return nil
}

// Drop removes the whole collection. Meant for tests.
func (c *Collection) Drop(ctx context.Context) error {
	return c.coll.Drop(ctx)
}

// Healthcheck pings the database the collection lives in.
func (c *Collection) Healthcheck(ctx context.Context) error {
	if err := c.coll.Database().RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		return errors.Join(ErrHealthcheckFailed, err)
	}
	return nil
}

// Close disconnects the client opened by Open. It is a no-op for
// collections built with NewCollection.
func (c *Collection) Close(ctx context.Context) error {
	if c.client == nil {
		return nil
	}
	return c.client.Disconnect(ctx)
}

func encodeRecord(rec session.Record) bson.D {
	data := rec.Data
	if data == nil {
		data = map[string]any{}
	}

	doc := bson.D{
		{Key: "_id", Value: rec.ID},
		{Key: "data", Value: data},
	}
	if !rec.NeverExpires() {
		doc = append(doc, bson.E{Key: "expire", Value: rec.ExpireAt.UTC()})
	}
	return doc
}

func decodeRecord(doc document) session.Record {
	rec := session.Record{
		ID:   doc.ID,
		Data: make(map[string]any, len(doc.Data)),
	}
	for k, v := range doc.Data {
		rec.Data[k] = plain(v)
	}

	switch exp := doc.Expire.(type) {
	case bson.DateTime:
		rec.ExpireAt = exp.Time().UTC()
	case time.Time:
		rec.ExpireAt = exp.UTC()
	}
	return rec
}

// plain turns driver types into the values session data is built from.
func plain(v any) any {
	switch x := v.(type) {
	case bson.D:
		m := make(map[string]any, len(x))
		for _, e := range x {
			m[e.Key] = plain(e.Value)
		}
		return m
	case bson.M:
		m := make(map[string]any, len(x))
		for k, e := range x {
			m[k] = plain(e)
		}
		return m
	case bson.A:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = plain(e)
		}
		return out
	case int32:
		return int(x)
	case int64:
		return int(x)
	case bson.DateTime:
		return x.Time().UTC()
	default:
		return x
	}
}
