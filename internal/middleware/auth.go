package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/rahulbhardwaj94/IMDB-Clone/internal/session"
)

// Claims is the minimal identity data attached to an authenticated
// request.
type Claims struct {
	UserID   string
	Username string
}

// unexported, collision-proof context key
type claimsContextKeyType struct{}

var claimsKey = claimsContextKeyType{}

// ClaimsFromContext extracts the authenticated user's claims from context.
func ClaimsFromContext(ctx context.Context) (Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(Claims)
	return claims, ok
}

type AuthMiddleware struct {
	Store session.Store
}

func NewAuthMiddleware(store session.Store) *AuthMiddleware {
	return &AuthMiddleware{Store: store}
}

// RequireAuth resolves the session cookie and attaches claims to the
// request context. Anonymous or expired callers are redirected to the
// login form rather than rendered an error; a browser is the client.
func (a *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 1. Read session cookie
		cookie, err := r.Cookie(session.CookieName)
		if err != nil || cookie.Value == "" {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		sessionID := cookie.Value

		// 2. Load session
		sess, err := a.Store.Get(r.Context(), sessionID)
		if err != nil || sess == nil {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		// 3. Enforce session expiry
		if time.Now().After(sess.ExpiresAt) {
			_ = a.Store.Delete(r.Context(), sessionID)
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		// 4. Attach claims to context
		ctx := context.WithValue(r.Context(), claimsKey, Claims{
			UserID:   sess.UserID,
			Username: sess.Username,
		})

		// 5. Continue request
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
