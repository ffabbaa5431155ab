package auth

import (
	"net/http"

	"github.com/google/uuid"
)

// Middleware rejects requests without a valid bearer token and records
// the actor id in the request context. With an empty secret it becomes
// a no-op, which keeps local development from needing token plumbing.
func Middleware(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if len(secret) == 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ExtractBearer(r.Header.Get("Authorization"))

			claims, err := ParseToken(token, secret)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			actorID, err := uuid.Parse(claims.Subject)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actorID)))
		})
	}
}
