// Package cookie reads and writes HTTP cookies carrying session ids.
//
// A Manager is created with one or more secrets of at least 32 bytes and a
// set of default attributes (Path "/", HttpOnly, SameSite=Lax unless
// overridden). Signed cookies carry the base64 value followed by an
// HMAC-SHA256 signature; the first secret signs, every secret verifies, so
// secrets can be rotated without logging clients out.
//
//	man, err := cookie.New([]string{os.Getenv("COOKIE_SECRET")})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	man.SetSigned(w, "rack.session", id, cookie.WithMaxAge(3600))
//	id, err := man.GetSigned(r, "rack.session")
//
// # Errors
//
//   - ErrNoSecret / ErrSecretTooShort: construction failures.
//   - ErrCookieNotFound: the request has no such cookie.
//   - ErrInvalidFormat / ErrInvalidSignature: tampered or foreign values.
package cookie
