package sessions

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const (
	sessionCookieName = "storefront-session"

	userIDSessionKey = "userID"
	cartIDSessionKey = "cartID"
)

type SessionStore interface {
	GetUserID(r *http.Request) string
	SetUserID(w http.ResponseWriter, r *http.Request, userID string) error
	ClearUserID(w http.ResponseWriter, r *http.Request) error

	GetOrCreateCartID(w http.ResponseWriter, r *http.Request) (string, error)
	ClearCartID(w http.ResponseWriter, r *http.Request) error

	ClearSession(w http.ResponseWriter, r *http.Request) error
}

type CookieSessionStore struct {
	store *sessions.CookieStore
}

func NewCookieSessionStore(keyPairs ...[]byte) *CookieSessionStore {
	store := sessions.NewCookieStore(keyPairs...)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(30 * 24 * time.Hour / time.Second),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}
	return &CookieSessionStore{store: store}
}

func (c *CookieSessionStore) getSession(r *http.Request) *sessions.Session {
	session, err := c.store.Get(r, sessionCookieName)
	if err != nil {
		// a stale or re-keyed cookie still yields a fresh session value
		log.Printf("sessions: error decoding session: %v", err)
	}
	return session
}

func (c *CookieSessionStore) GetUserID(r *http.Request) string {
	session := c.getSession(r)
	if session == nil {
		return ""
	}
	userID, _ := session.Values[userIDSessionKey].(string)
	return userID
}

func (c *CookieSessionStore) SetUserID(w http.ResponseWriter, r *http.Request, userID string) error {
	session := c.getSession(r)
	if session == nil {
		return nil
	}
	session.Values[userIDSessionKey] = userID
	return session.Save(r, w)
}

func (c *CookieSessionStore) ClearUserID(w http.ResponseWriter, r *http.Request) error {
	session := c.getSession(r)
	if session == nil {
		return nil
	}
	delete(session.Values, userIDSessionKey)
	return session.Save(r, w)
}

// GetOrCreateCartID returns the session's cart id, minting one on first
// use. The cart row itself is created lazily by the cart repository.
func (c *CookieSessionStore) GetOrCreateCartID(w http.ResponseWriter, r *http.Request) (string, error) {
	session := c.getSession(r)
	if session == nil {
		return "", nil
	}
	if cartID, ok := session.Values[cartIDSessionKey].(string); ok && cartID != "" {
		return cartID, nil
	}
	cartID := uuid.New().String()
	session.Values[cartIDSessionKey] = cartID
	if err := session.Save(r, w); err != nil {
		return "", err
	}
	return cartID, nil
}

func (c *CookieSessionStore) ClearCartID(w http.ResponseWriter, r *http.Request) error {
	session := c.getSession(r)
	if session == nil {
		return nil
	}
	delete(session.Values, cartIDSessionKey)
	return session.Save(r, w)
}

func (c *CookieSessionStore) ClearSession(w http.ResponseWriter, r *http.Request) error {
	session := c.getSession(r)
	if session == nil {
		return nil
	}
	session.Values = make(map[interface{}]interface{})
	session.Options.MaxAge = -1
	return session.Save(r, w)
}
