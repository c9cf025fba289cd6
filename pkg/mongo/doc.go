// Package mongo stores sessions in a MongoDB collection.
//
// The collection is addressed by a server locator of the form
// host:port/database_name/collection_name (see ParseLocator). Every record is
// one document:
//
//	{ _id: "<session id>", data: { ...attributes }, expire: ISODate(...) }
//
// Sessions that never expire carry no expire field.
//
// # Usage
//
//	coll, err := mongo.Open(ctx, mongo.Config{Server: "localhost:27017/app/sessions", PoolSize: 5})
//	if err != nil {
//		return err
//	}
//	defer coll.Close(ctx)
//
//	store := session.New(coll)
//
// Open retries the connection RetryAttempts times and creates the index on
// expire that PurgeExpired relies on.
//
// # Errors
//
// Malformed locators yield ErrInvalidServer or ErrInvalidHostPort. Driver
// failures are joined with ErrQueryFailed; a missing document maps to
// session.ErrRecordNotFound and a duplicate _id on insert to
// session.ErrDuplicateID.
package mongo
