package api

import (
	"net/http"

	"github.com/owplatform/wallet/internal/auth"
)

// requireToken rejects requests whose authToken query parameter fails the
// verifier. The rejection is a business outcome: HTTP 200 with
// INVALID_TOKEN_ID and a null uuid, before the body is even read.
func requireToken(verifier auth.Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !verifier.Verify(r.URL.Query().Get("authToken")) {
				writeStatus(w, http.StatusOK, statusInvalidTokenID, nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
