// Package mongosession wires a server-side session store from environment
// configuration: a MongoDB (or Redis, or in-memory) collection, the session
// engine, its logger and optional Prometheus metrics.
//
// # Usage
//
//	cfg, err := mongosession.LoadConfig()
//	if err != nil {
//		return err
//	}
//
//	svc, err := mongosession.Open(ctx, cfg, mongosession.WithRegisterer(prometheus.DefaultRegisterer))
//	if err != nil {
//		return err
//	}
//	defer svc.Close(ctx)
//
//	manager, err := svc.Manager()
//	if err != nil {
//		return err
//	}
//	http.ListenAndServe(":8080", manager.Middleware(app))
//
// Every variable is read with the MONGO_SESSION_ prefix, for instance
// MONGO_SESSION_SERVER=localhost:27017/mongo_session/sessions or
// MONGO_SESSION_LOG_LEVEL=debug. See Config for the full list.
package mongosession
