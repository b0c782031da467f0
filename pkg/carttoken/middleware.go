package carttoken

import (
	"context"
	"net/http"
	"os"
)

type contextKey string

const cartIDKey contextKey = "cart_id"

// CartIDFromContext は context からカートIDを取得する
func CartIDFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(cartIDKey).(string)
	return v, ok
}

// WithCartID は context にカートIDをセットする
func WithCartID(ctx context.Context, cartID string) context.Context {
	return context.WithValue(ctx, cartIDKey, cartID)
}

// EnsureCart is middleware that resolves the caller's cart identity.
// A valid signed cookie keeps its cart ID; a missing or tampered cookie
// gets a fresh anonymous cart (never a 401 — carts need no account).
func EnsureCart(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var cartID string
			if cookie, err := r.Cookie(cartCookieName); err == nil {
				if id, err := VerifyToken(cookie.Value, secret); err == nil {
					cartID = id
				}
			}
			if cartID == "" {
				cartID = NewCartID()
				http.SetCookie(w, &http.Cookie{
					Name:     cartCookieName,
					Value:    CreateToken(cartID, secret),
					Path:     "/",
					MaxAge:   60 * 60 * 24, // 1 day
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
					Secure:   os.Getenv("ENV") == "production",
				})
			}

			ctx := WithCartID(r.Context(), cartID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
