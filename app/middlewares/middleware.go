package middlewares

import (
	"context"
	"log"
	"net/http"

	"github.com/velora-dev/go-storefront/app/helpers"
	"github.com/velora-dev/go-storefront/app/repositories"
	"github.com/velora-dev/go-storefront/app/utils/sessions"
)

// SessionMiddleware resolves the session's user and cart id and places both
// on the request context. Every request gets a cart id; the user is only
// present when logged in.
func SessionMiddleware(store sessions.SessionStore, userRepo repositories.UserRepositoryImpl) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			cartID, err := store.GetOrCreateCartID(w, r)
			if err != nil {
				log.Printf("SessionMiddleware: failed to resolve cart id: %v", err)
			}
			if cartID != "" {
				ctx = context.WithValue(ctx, helpers.ContextKeyCartID, cartID)
			}

			if userID := store.GetUserID(r); userID != "" {
				user, err := userRepo.FindByID(ctx, userID)
				if err != nil {
					log.Printf("SessionMiddleware: failed to load user %s: %v", userID, err)
				} else if user != nil {
					ctx = context.WithValue(ctx, helpers.ContextKeyUserID, user.ID)
					ctx = context.WithValue(ctx, helpers.ContextKeyUser, user)
				}
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CartCountMiddleware annotates the context with the cart's item count for
// the header badge.
func CartCountMiddleware(cartRepo repositories.CartRepositoryImpl) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cartID := helpers.CartID(r)
			if cartID == "" {
				next.ServeHTTP(w, r)
				return
			}
			count, err := cartRepo.GetCartItemCount(r.Context(), cartID)
			if err != nil {
				log.Printf("CartCountMiddleware: failed to count cart items: %v", err)
				next.ServeHTTP(w, r)
				return
			}
			ctx := context.WithValue(r.Context(), helpers.ContextKeyCartCount, count)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireLogin redirects guests to the login page.
func RequireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if helpers.CurrentUser(r) == nil {
			http.Redirect(w, r, "/login?status=error&message=Please+log+in+first", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
