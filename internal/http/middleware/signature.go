package middleware

import (
	"bytes"
	"io"
	"net/http"

	"github.com/venuelaunch/venuelaunch/pkg/crypto"
)

// SignatureHeader is the HMAC-SHA256 signature of the request body, sent by
// the tracking SDK when it is configured with the shared secret.
const SignatureHeader = "X-Signature"

// SignatureMiddleware verifies HMAC-signed request bodies. Requests without
// the header pass through untouched: the browser portal cannot hold the
// secret, so signatures are tamper evidence for SDK traffic, not a gate.
// A request that does present a signature must present a valid one.
func SignatureMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			signature := r.Header.Get(SignatureHeader)
			if secret == "" || signature == "" || r.Body == nil {
				next.ServeHTTP(w, r)
				return
			}

			body, err := io.ReadAll(r.Body)
			if err != nil {
				http.Error(w, "Failed to read request body", http.StatusBadRequest)
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			if !crypto.VerifyHMAC(secret, body, signature) {
				http.Error(w, "Invalid request signature", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
