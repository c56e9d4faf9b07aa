package auth

import (
	"net/http"

	"github.com/rs/zerolog"
)

// Middleware resolves the caller identity and stores it on the request
// context. Resolution order:
//
//  1. Authorization bearer token, validated when a verifier is configured.
//     A present-but-invalid token is rejected with 401 rather than silently
//     downgraded to a weaker identity.
//  2. X-User-Id header, unverified.
//  3. The shared guest identity.
func Middleware(verifier *Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := resolve(verifier, r)
			if err != nil {
				zerolog.Ctx(r.Context()).Warn().
					Str("path", r.URL.Path).
					Err(err).
					Msg("rejected bearer token")
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"invalid or expired token"}`))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

func resolve(verifier *Verifier, r *http.Request) (Identity, error) {
	if header := r.Header.Get("Authorization"); header != "" && verifier != nil {
		token, err := TokenFromHeader(header)
		if err != nil {
			return Identity{}, err
		}
		claims, err := verifier.Verify(token)
		if err != nil {
			return Identity{}, err
		}
		return Identity{UserID: claims.Subject, Verified: true}, nil
	}

	if userID := r.Header.Get(UserIDHeader); userID != "" {
		return Identity{UserID: userID}, nil
	}

	return Identity{UserID: GuestUserID}, nil
}
