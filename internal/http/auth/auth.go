package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/campus/internal/http/envelope"
)

var ErrInvalidToken = errors.New("invalid token")

type ctxKey struct{}

// Claims identifies the acting user by its id in the subject.
type Claims struct {
	jwt.RegisteredClaims
}

type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Sign issues an HS256 token for userID. Used by tests and tooling.
func (v *Verifier) Sign(userID uuid.UUID, claims jwt.RegisteredClaims) (string, error) {
	claims.Subject = userID.String()
	return jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{RegisteredClaims: claims}).SignedString(v.secret)
}

func (v *Verifier) Verify(token string) (uuid.UUID, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}

		return v.secret, nil
	})
	if err != nil || !parsed.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return uuid.Nil, ErrInvalidToken
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}

	return id, nil
}

// Middleware requires a valid bearer token and stores the user id on the
// request context. A nil verifier lets every request through anonymously.
func Middleware(v *Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if v == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || token == "" {
				envelope.Fail(w, r, http.StatusUnauthorized, "Missing bearer token.")
				return
			}

			id, err := v.Verify(strings.TrimSpace(token))
			if err != nil {
				envelope.Fail(w, r, http.StatusUnauthorized, "Invalid or expired token.")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), id)))
		})
	}
}

func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// UserID returns the authenticated user, or nil for anonymous requests.
func UserID(ctx context.Context) *uuid.UUID {
	id, ok := ctx.Value(ctxKey{}).(uuid.UUID)
	if !ok {
		return nil
	}

	return &id
}
