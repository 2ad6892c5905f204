package helpers

import (
	"net/http"

	"github.com/velora-dev/go-storefront/app/models"
)

type contextKey string

const (
	ContextKeyUserID    contextKey = "userID"
	ContextKeyCartID    contextKey = "cartID"
	ContextKeyUser      contextKey = "userObject"
	ContextKeyCartCount contextKey = "cartCount"
)

// CurrentUser pulls the authenticated user off the request context; nil for
// guests.
func CurrentUser(r *http.Request) *models.User {
	if user, ok := r.Context().Value(ContextKeyUser).(*models.User); ok {
		return user
	}
	return nil
}

// CurrentMode resolves the storefront mode for the request.
func CurrentMode(r *http.Request) models.AccountMode {
	return CurrentUser(r).Mode()
}

// CartID returns the session cart id placed on the context by the session
// middleware.
func CartID(r *http.Request) string {
	if id, ok := r.Context().Value(ContextKeyCartID).(string); ok {
		return id
	}
	return ""
}
