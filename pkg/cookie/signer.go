package cookie

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"strings"
)

const signatureSeparator = "|"

// signer signs with the first secret and verifies against all of them, so
// values signed before a rotation stay readable.
type signer struct {
	secrets [][]byte
}

func newSigner(secrets []string) signer {
	keys := make([][]byte, len(secrets))
	for i, s := range secrets {
		keys[i] = []byte(s)
	}
	return signer{secrets: keys}
}

func (s signer) mac(key []byte, value []byte) string {
	h := hmac.New(sha256.New, key)
	h.Write(value)
	return base64.RawURLEncoding.EncodeToString(h.Sum(nil))
}

// sign returns base64(value) + "|" + base64(hmac(value)).
func (s signer) sign(value string) string {
	raw := []byte(value)
	return base64.RawURLEncoding.EncodeToString(raw) + signatureSeparator + s.mac(s.secrets[0], raw)
}

func (s signer) verify(signed string) (string, error) {
	encoded, signature, ok := strings.Cut(signed, signatureSeparator)
	if !ok {
		return "", ErrInvalidFormat
	}

	value, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return "", ErrInvalidFormat
	}

	for _, key := range s.secrets {
		if subtle.ConstantTimeCompare([]byte(signature), []byte(s.mac(key, value))) == 1 {
			return string(value), nil
		}
	}
	return "", ErrInvalidSignature
}
