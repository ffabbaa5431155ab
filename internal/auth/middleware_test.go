package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustToken(t *testing.T, secret []byte, subject string) string {
	t.Helper()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)

	return token
}

func TestMiddleware(t *testing.T) {
	secret := []byte("test-secret")
	actorID := uuid.New()

	var gotActor uuid.NullUUID
	handler := Middleware(secret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotActor = ActorFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("NoToken", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/reconciliations", nil)
		resp := httptest.NewRecorder()

		handler.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusUnauthorized, resp.Code)
	})

	t.Run("BadSignature", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/reconciliations", nil)
		req.Header.Set("Authorization", "Bearer "+mustToken(t, []byte("other-secret"), actorID.String()))
		resp := httptest.NewRecorder()

		handler.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusUnauthorized, resp.Code)
	})

	t.Run("NonUUIDSubject", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/reconciliations", nil)
		req.Header.Set("Authorization", "Bearer "+mustToken(t, secret, "someone"))
		resp := httptest.NewRecorder()

		handler.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusUnauthorized, resp.Code)
	})

	t.Run("ValidToken", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/reconciliations", nil)
		req.Header.Set("Authorization", "Bearer "+mustToken(t, secret, actorID.String()))
		resp := httptest.NewRecorder()

		handler.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusOK, resp.Code)
		require.True(t, gotActor.Valid)
		assert.Equal(t, actorID, gotActor.UUID)
	})

	t.Run("EmptySecretDisablesAuth", func(t *testing.T) {
		open := Middleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/reconciliations", nil)
		resp := httptest.NewRecorder()

		open.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusOK, resp.Code)
	})
}

func TestExtractBearer(t *testing.T) {
	assert.Equal(t, "abc", ExtractBearer("Bearer abc"))
	assert.Equal(t, "abc", ExtractBearer("bearer abc"))
	assert.Equal(t, "", ExtractBearer(""))
	assert.Equal(t, "", ExtractBearer("Basic abc"))
	assert.Equal(t, "", ExtractBearer("Bearer"))
}
