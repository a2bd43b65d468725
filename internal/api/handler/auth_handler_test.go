package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pixelforge/agency-api/internal/core/domain"
	"github.com/pixelforge/agency-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubAuthService struct {
	registerFn func(ctx context.Context, input ports.RegisterInput) (*domain.User, error)
	loginFn    func(ctx context.Context, usernameOrEmail, password string) (*domain.User, error)
	verifyFn   func(ctx context.Context, token string) (*domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAuthService) Login(ctx context.Context, usernameOrEmail, password string) (*domain.User, error) {
	return s.loginFn(ctx, usernameOrEmail, password)
}

func (s *stubAuthService) VerifyEmail(ctx context.Context, token string) (*domain.User, error) {
	return s.verifyFn(ctx, token)
}

func (s *stubAuthService) ResendVerification(context.Context, string) error { return nil }

func (s *stubAuthService) FederatedLogin(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrInvalidToken
}

func (s *stubAuthService) CreateClient(context.Context, ports.CreateClientInput) (*domain.User, error) {
	return nil, domain.ErrUserExists
}

func (s *stubAuthService) GetUser(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (s *stubAuthService) ListClients(context.Context) ([]*domain.User, error) { return nil, nil }

type memorySessionStore struct {
	sessions map[string]*ports.Session
	nextID   int
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{sessions: map[string]*ports.Session{}}
}

func (s *memorySessionStore) Create(_ context.Context, userID, username, role string) (*ports.Session, error) {
	s.nextID++
	sess := &ports.Session{ID: "sess-1", UserID: userID, Username: username, Role: role}
	s.sessions[sess.ID] = sess
	return sess, nil
}

func (s *memorySessionStore) Get(_ context.Context, id string) (*ports.Session, error) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return sess, nil
}

func (s *memorySessionStore) Delete(_ context.Context, id string) error {
	delete(s.sessions, id)
	return nil
}

func (s *memorySessionStore) TTL() time.Duration { return time.Hour }

func jsonContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// ---------------------------------------------------------------------------
// Register
// ---------------------------------------------------------------------------

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(_ context.Context, input ports.RegisterInput) (*domain.User, error) {
			if input.Username != "alice" || input.Email != "alice@example.com" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.User{ID: "user_1", Username: input.Username, Role: domain.RoleClient}, nil
		},
	}
	handler := NewAuthHandler(stub, newMemorySessionStore(), "agency_session", false)

	c, rec := jsonContext(t, http.MethodPost, "/api/register",
		`{"username":"alice","password":"correct-horse","email":"alice@example.com","display_name":"Alice"}`)

	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["username"] != "alice" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAuthHandler_Register_ValidationFailure(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput) (*domain.User, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub, newMemorySessionStore(), "agency_session", false)

	// password too short, email invalid
	c, _ := jsonContext(t, http.MethodPost, "/api/register",
		`{"username":"alice","password":"short","email":"not-an-email","display_name":"Alice"}`)

	err := handler.Register(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Register_UserExistsPassedThrough(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	handler := NewAuthHandler(stub, newMemorySessionStore(), "agency_session", false)

	c, _ := jsonContext(t, http.MethodPost, "/api/register",
		`{"username":"alice","password":"correct-horse","email":"alice@example.com","display_name":"Alice"}`)

	err := handler.Register(c)
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists to pass to the error handler, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Login and the session cookie
// ---------------------------------------------------------------------------

func TestAuthHandler_Login_SetsHTTPOnlyCookie(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, usernameOrEmail, password string) (*domain.User, error) {
			if usernameOrEmail != "alice" || password != "correct-horse" {
				return nil, domain.ErrInvalidCredentials
			}
			return &domain.User{ID: "user_1", Username: "alice", Role: domain.RoleClient}, nil
		},
	}
	store := newMemorySessionStore()
	handler := NewAuthHandler(stub, store, "agency_session", false)

	c, rec := jsonContext(t, http.MethodPost, "/api/login",
		`{"username":"alice","password":"correct-horse"}`)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected a session cookie, got %d cookies", len(cookies))
	}
	cookie := cookies[0]
	if cookie.Name != "agency_session" || cookie.Value == "" {
		t.Errorf("unexpected cookie: %+v", cookie)
	}
	if !cookie.HttpOnly {
		t.Error("session cookie must be HTTP-only")
	}
	if cookie.SameSite != http.SameSiteLaxMode {
		t.Error("session cookie must be SameSite=Lax")
	}

	sess, err := store.Get(context.Background(), cookie.Value)
	if err != nil {
		t.Fatalf("server-side session missing: %v", err)
	}
	if sess.UserID != "user_1" || sess.Role != domain.RoleClient {
		t.Errorf("unexpected session state: %+v", sess)
	}
}

func TestAuthHandler_Login_BadCredentialsNoCookie(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(context.Context, string, string) (*domain.User, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub, newMemorySessionStore(), "agency_session", false)

	c, rec := jsonContext(t, http.MethodPost, "/api/login",
		`{"username":"alice","password":"wrong"}`)

	err := handler.Login(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Error("no cookie may be set on failed login")
	}
}

// ---------------------------------------------------------------------------
// Logout
// ---------------------------------------------------------------------------

func TestAuthHandler_Logout_DestroysSessionAndExpiresCookie(t *testing.T) {
	store := newMemorySessionStore()
	sess, _ := store.Create(context.Background(), "user_1", "alice", domain.RoleClient)
	handler := NewAuthHandler(&stubAuthService{}, store, "agency_session", false)

	c, rec := jsonContext(t, http.MethodPost, "/api/logout", "")
	c.Set("session_id", sess.ID)

	if err := handler.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if _, err := store.Get(context.Background(), sess.ID); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Error("server-side session must be deleted")
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge != -1 {
		t.Fatalf("cookie must be expired: %+v", cookies)
	}
}

// ---------------------------------------------------------------------------
// Email verification
// ---------------------------------------------------------------------------

func TestAuthHandler_VerifyEmail_TokenFromQuery(t *testing.T) {
	stub := &stubAuthService{
		verifyFn: func(_ context.Context, token string) (*domain.User, error) {
			if token != "tok-123" {
				t.Fatalf("unexpected token %q", token)
			}
			return &domain.User{ID: "user_1", Verified: true}, nil
		},
	}
	handler := NewAuthHandler(stub, newMemorySessionStore(), "agency_session", false)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/verify-email?token=tok-123", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.VerifyEmail(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
