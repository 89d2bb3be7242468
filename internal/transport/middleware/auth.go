package middleware

import (
	"net/http"
	"strings"

	"github.com/heartmarshall/memorial-backend/internal/auth"
	"github.com/heartmarshall/memorial-backend/pkg/ctxutil"
)

// TokenVerifier validates a bearer token.
type TokenVerifier interface {
	Verify(token string) (auth.Identity, error)
}

// Auth puts the bearer's user id and role into the request context. Requests
// without a token pass through as anonymous; requests with a bad token are
// rejected.
func Auth(verifier TokenVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			id, err := verifier.Verify(token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "unauthorized", "invalid or expired token")
				return
			}

			ctx := ctxutil.WithUserID(r.Context(), id.UserID)
			if id.Role != "" {
				ctx = ctxutil.WithUserRole(ctx, id.Role)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken reports whether an Authorization header is present at all, so
// a malformed header is rejected rather than treated as anonymous.
func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	if h == "" {
		return "", false
	}
	scheme, token, found := strings.Cut(h, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", true
	}
	return strings.TrimSpace(token), true
}
