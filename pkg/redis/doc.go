// Package redis provides helpers for connecting to a Redis server and a
// session.Collection backed by it.
//
// The package wraps the go-redis client and adds:
//
//   - Connect, which retries the connection using the supplied configuration.
//   - Collection, which stores session records as YAML envelopes and keeps a
//     sorted set of expiry times so RemoveExpired does not scan the keyspace.
//   - Health-check helpers for liveness and readiness probes.
//
// Configuration is described by the Config struct whose fields can be
// populated from environment variables via github.com/caarlos0/env.
//
// # Usage
//
//	coll, err := redis.Open(ctx, redis.Config{
//	    ConnectionURL:  "redis://localhost:6379/0",
//	    KeyPrefix:      "app:session:",
//	    RetryAttempts:  3,
//	    RetryInterval:  5 * time.Second,
//	    ConnectTimeout: 30 * time.Second,
//	})
//	if err != nil {
//	    return err
//	}
//	defer coll.Close()
//
//	store := session.New(coll)
//
// NewCollection wraps a client the caller already owns.
package redis
