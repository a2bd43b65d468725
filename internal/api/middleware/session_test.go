package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pixelforge/agency-api/internal/core/domain"
	"github.com/pixelforge/agency-api/internal/core/ports"
)

type stubSessionStore struct {
	sessions map[string]*ports.Session
}

func (s *stubSessionStore) Create(_ context.Context, userID, username, role string) (*ports.Session, error) {
	sess := &ports.Session{ID: "sess-1", UserID: userID, Username: username, Role: role}
	s.sessions[sess.ID] = sess
	return sess, nil
}

func (s *stubSessionStore) Get(_ context.Context, id string) (*ports.Session, error) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return sess, nil
}

func (s *stubSessionStore) Delete(_ context.Context, id string) error {
	delete(s.sessions, id)
	return nil
}

func (s *stubSessionStore) TTL() time.Duration { return time.Hour }

const testCookie = "agency_session"

func sessionContext(store ports.SessionStore, cookieValue string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookieValue != "" {
		req.AddCookie(&http.Cookie{Name: testCookie, Value: cookieValue})
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSession_MissingCookie(t *testing.T) {
	store := &stubSessionStore{sessions: map[string]*ports.Session{}}
	c, _ := sessionContext(store, "")

	handler := Session(store, testCookie)(func(c echo.Context) error {
		t.Fatal("should not reach next handler")
		return nil
	})

	err := handler(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestSession_UnknownSession(t *testing.T) {
	store := &stubSessionStore{sessions: map[string]*ports.Session{}}
	c, _ := sessionContext(store, "stale-id")

	handler := Session(store, testCookie)(func(c echo.Context) error {
		t.Fatal("should not reach next handler")
		return nil
	})

	err := handler(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired session, got %v", err)
	}
}

func TestSession_InjectsIdentity(t *testing.T) {
	store := &stubSessionStore{sessions: map[string]*ports.Session{
		"good-id": {ID: "good-id", UserID: "user_1", Username: "alice", Role: "client"},
	}}
	c, rec := sessionContext(store, "good-id")

	called := false
	handler := Session(store, testCookie)(func(c echo.Context) error {
		called = true
		if c.Get("user_id") != "user_1" || c.Get("username") != "alice" || c.Get("role") != "client" {
			t.Errorf("identity not injected: %v %v %v", c.Get("user_id"), c.Get("username"), c.Get("role"))
		}
		if c.Get("session_id") != "good-id" {
			t.Errorf("session id not injected: %v", c.Get("session_id"))
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatal("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
