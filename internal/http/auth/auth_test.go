package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/campus/internal/http/auth"
)

func TestMiddleware(t *testing.T) {
	v := auth.NewVerifier("s3cret")
	userID := uuid.New()

	valid, err := v.Sign(userID, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))})
	require.NoError(t, err)

	expired, err := v.Sign(userID, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour))})
	require.NoError(t, err)

	foreign, err := auth.NewVerifier("other").Sign(userID, jwt.RegisteredClaims{})
	require.NoError(t, err)

	tests := []struct {
		name     string
		verifier *auth.Verifier
		header   string
		wantCode int
		wantUser *uuid.UUID
	}{
		{name: "Valid token", verifier: v, header: "Bearer " + valid, wantCode: http.StatusOK, wantUser: &userID},
		{name: "Missing header", verifier: v, wantCode: http.StatusUnauthorized},
		{name: "Wrong scheme", verifier: v, header: "Basic abc", wantCode: http.StatusUnauthorized},
		{name: "Expired", verifier: v, header: "Bearer " + expired, wantCode: http.StatusUnauthorized},
		{name: "Wrong secret", verifier: v, header: "Bearer " + foreign, wantCode: http.StatusUnauthorized},
		{name: "Disabled", verifier: nil, wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got *uuid.UUID

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = auth.UserID(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rec := httptest.NewRecorder()
			auth.Middleware(tt.verifier)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantUser, got)
		})
	}
}

func TestVerify_RejectsNonUUIDSubject(t *testing.T) {
	v := auth.NewVerifier("s3cret")

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "42"}).SignedString([]byte("s3cret"))
	require.NoError(t, err)

	_, err = v.Verify(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
