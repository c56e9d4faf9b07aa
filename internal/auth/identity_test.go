package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret, subject string, expiresAt time.Time) string {
	t.Helper()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func resolveRequest(t *testing.T, verifier *Verifier, mutate func(*http.Request)) (Identity, int) {
	t.Helper()

	var identity Identity
	handler := Middleware(verifier)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity = FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	mutate(req)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return identity, rec.Code
}

func TestResolveGuestByDefault(t *testing.T) {
	identity, code := resolveRequest(t, NewVerifier(testSecret), func(r *http.Request) {})

	require.Equal(t, http.StatusOK, code)
	require.Equal(t, GuestUserID, identity.UserID)
	require.False(t, identity.Verified)
}

func TestResolveHeaderFallback(t *testing.T) {
	identity, code := resolveRequest(t, NewVerifier(testSecret), func(r *http.Request) {
		r.Header.Set(UserIDHeader, "alice")
	})

	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "alice", identity.UserID)
	require.False(t, identity.Verified)
}

func TestResolveBearerToken(t *testing.T) {
	token := signToken(t, testSecret, "alice", time.Now().Add(time.Hour))

	identity, code := resolveRequest(t, NewVerifier(testSecret), func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
	})

	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "alice", identity.UserID)
	require.True(t, identity.Verified)
}

func TestResolveBearerTokenWinsOverHeader(t *testing.T) {
	token := signToken(t, testSecret, "alice", time.Now().Add(time.Hour))

	identity, _ := resolveRequest(t, NewVerifier(testSecret), func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
		r.Header.Set(UserIDHeader, "mallory")
	})

	require.Equal(t, "alice", identity.UserID)
}

func TestResolveRejectsBadToken(t *testing.T) {
	_, code := resolveRequest(t, NewVerifier(testSecret), func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer not-a-token")
	})

	require.Equal(t, http.StatusUnauthorized, code)
}

func TestResolveRejectsExpiredToken(t *testing.T) {
	token := signToken(t, testSecret, "alice", time.Now().Add(-time.Hour))

	_, code := resolveRequest(t, NewVerifier(testSecret), func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
	})

	require.Equal(t, http.StatusUnauthorized, code)
}

func TestResolveRejectsWrongSecret(t *testing.T) {
	token := signToken(t, "other-secret", "alice", time.Now().Add(time.Hour))

	_, code := resolveRequest(t, NewVerifier(testSecret), func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
	})

	require.Equal(t, http.StatusUnauthorized, code)
}

func TestNoVerifierIgnoresAuthorization(t *testing.T) {
	// Without a configured secret, bearer tokens cannot be validated; the
	// header fallback carries the request instead.
	identity, code := resolveRequest(t, nil, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer whatever")
		r.Header.Set(UserIDHeader, "alice")
	})

	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "alice", identity.UserID)
	require.False(t, identity.Verified)
}

func TestTokenFromHeader(t *testing.T) {
	token, err := TokenFromHeader("Bearer abc")
	require.NoError(t, err)
	require.Equal(t, "abc", token)

	_, err = TokenFromHeader("abc")
	require.ErrorIs(t, err, ErrMissingToken)

	_, err = TokenFromHeader("")
	require.ErrorIs(t, err, ErrMissingToken)
}

func TestVerifierRejectsEmptySubject(t *testing.T) {
	token := signToken(t, testSecret, "", time.Now().Add(time.Hour))

	_, err := NewVerifier(testSecret).Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewVerifierEmptySecret(t *testing.T) {
	require.Nil(t, NewVerifier(""))
}
