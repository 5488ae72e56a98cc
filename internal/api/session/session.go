// Package session wraps the cookie-backed visitor session. The full session
// content round-trips through a signed client-held cookie; the server keeps
// no state. Exactly two keys exist: the last submitted name and whether that
// name was already registered at submission time.
package session

import (
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"
	echosession "github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	cookieName = "guestbook_session"

	keyName  = "name"
	keyKnown = "known"
)

// State is the decoded visitor session.
type State struct {
	Name  string
	Known bool
}

// Middleware returns the cookie-store session middleware. secret signs the
// cookie; maxAge caps its lifetime in seconds.
func Middleware(secret string, maxAge int) echo.MiddlewareFunc {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return echosession.Middleware(store)
}

// Get decodes the visitor state from the request cookie. A missing or
// unreadable cookie yields the zero State, matching "new visitor" defaults.
func Get(c echo.Context) State {
	// A tampered or expired cookie yields a decode error together with a
	// fresh empty session; either way the defaults below apply.
	sess, _ := echosession.Get(cookieName, c)
	if sess == nil {
		return State{}
	}
	var state State
	if v, ok := sess.Values[keyName].(string); ok {
		state.Name = v
	}
	if v, ok := sess.Values[keyKnown].(bool); ok {
		state.Known = v
	}
	return state
}

// Save writes the visitor state back into the response cookie.
func Save(c echo.Context, state State) error {
	// Decode errors are ignored: writing over a tampered cookie replaces
	// it with a freshly signed one.
	sess, _ := echosession.Get(cookieName, c)
	if sess == nil {
		return fmt.Errorf("session middleware not installed")
	}
	sess.Values[keyName] = state.Name
	sess.Values[keyKnown] = state.Known
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}
