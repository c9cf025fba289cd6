// Command sessionctl administers a session store and can serve a demo
// application on top of it.
//
//	sessionctl purge
//	sessionctl show SESSION_ID
//	sessionctl drop SESSION_ID
//	sessionctl serve
//
// Configuration is read from MONGO_SESSION_* variables and optional
// .env files given with --env-file.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newApp(nil).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
