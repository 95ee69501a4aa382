package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/bizlink/portal-api/internal/core/domain"
	"github.com/bizlink/portal-api/internal/core/ports"
)

type stubIdentity struct {
	registerFn func(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error)
	loginFn    func(ctx context.Context, creds ports.Credentials) (*ports.AuthResult, error)
	simulateFn func(ctx context.Context, role domain.Role) (*ports.AuthResult, error)
	logoutFn   func(ctx context.Context) (*ports.AuthResult, error)
	listFn     func(ctx context.Context) ([]domain.User, error)
	sessionFn  func(ctx context.Context) (*domain.Session, error)
}

func (s *stubIdentity) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	return s.registerFn(ctx, input)
}

func (s *stubIdentity) Login(ctx context.Context, creds ports.Credentials) (*ports.AuthResult, error) {
	return s.loginFn(ctx, creds)
}

func (s *stubIdentity) SimulateLogin(ctx context.Context, role domain.Role) (*ports.AuthResult, error) {
	return s.simulateFn(ctx, role)
}

func (s *stubIdentity) Logout(ctx context.Context) (*ports.AuthResult, error) {
	return s.logoutFn(ctx)
}

func (s *stubIdentity) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.listFn(ctx)
}

func (s *stubIdentity) CurrentSession(ctx context.Context) (*domain.Session, error) {
	return s.sessionFn(ctx)
}

func newContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubIdentity{
		registerFn: func(_ context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
			if input.DisplayName != "Dana Whitfield" || input.Role != domain.RoleBusiness {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &ports.AuthResult{
				Success: true,
				User:    &domain.User{ID: "u1", Email: "dana.whitfield@bizlink.com", Role: domain.RoleBusiness},
				Message: "Registration successful",
			}, nil
		},
	}
	handler := NewAuthHandler(stub)

	body := `{"display_name":"Dana Whitfield","phone_number":"2025550110","password":"secret1","role":"business"}`
	c, rec := newContext(t, http.MethodPost, "/auth/register", body)

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
	if resp["success"] != true {
		t.Fatalf("expected success, got %+v", resp)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["email"] != "dana.whitfield@bizlink.com" {
		t.Fatalf("unexpected user payload: %+v", resp)
	}
}

func TestAuthHandler_Register_InvalidPhoneMessageSurfaces(t *testing.T) {
	stub := &stubIdentity{
		registerFn: func(context.Context, ports.RegisterInput) (*ports.AuthResult, error) {
			return &ports.AuthResult{
				Success: false,
				Message: domain.ErrInvalidPhone.Error(),
				Reason:  domain.ErrInvalidPhone,
			}, nil
		},
	}
	handler := NewAuthHandler(stub)

	body := `{"display_name":"Bo","phone_number":"12345","password":"secret1","role":"company"}`
	c, rec := newContext(t, http.MethodPost, "/auth/register", body)

	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "phone") {
		t.Fatalf("failure message must mention the phone number: %s", rec.Body.String())
	}
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	stub := &stubIdentity{
		registerFn: func(context.Context, ports.RegisterInput) (*ports.AuthResult, error) {
			return &ports.AuthResult{
				Success: false,
				Message: domain.ErrDuplicateUser.Error(),
				Reason:  domain.ErrDuplicateUser,
			}, nil
		},
	}
	handler := NewAuthHandler(stub)

	body := `{"display_name":"Dana Whitfield","phone_number":"2025550110","password":"secret1","role":"business"}`
	c, rec := newContext(t, http.MethodPost, "/auth/register", body)

	_ = handler.Register(c)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_RejectsUnknownRole(t *testing.T) {
	stub := &stubIdentity{
		registerFn: func(context.Context, ports.RegisterInput) (*ports.AuthResult, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	body := `{"display_name":"Bo","phone_number":"2025550110","password":"secret1","role":"admin"}`
	c, rec := newContext(t, http.MethodPost, "/auth/register", body)

	err := handler.Register(c)
	if err == nil {
		t.Fatalf("expected a validation error")
	}
	_ = rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubIdentity{
		loginFn: func(_ context.Context, creds ports.Credentials) (*ports.AuthResult, error) {
			if creds.Email != "sarah@mining.com" {
				t.Fatalf("unexpected email: %s", creds.Email)
			}
			return &ports.AuthResult{
				Success: true,
				User:    &domain.User{ID: "u1", Email: creds.Email, Role: domain.RoleProfessional},
				Message: "Login successful",
			}, nil
		},
	}
	handler := NewAuthHandler(stub)

	body := `{"email":"sarah@mining.com","password":"longenough"}`
	c, rec := newContext(t, http.MethodPost, "/auth/login", body)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_UserNotFound(t *testing.T) {
	stub := &stubIdentity{
		loginFn: func(context.Context, ports.Credentials) (*ports.AuthResult, error) {
			return &ports.AuthResult{
				Success: false,
				Message: domain.ErrUserNotFound.Error(),
				Reason:  domain.ErrUserNotFound,
			}, nil
		},
	}
	handler := NewAuthHandler(stub)

	body := `{"email":"ghost@example.com","password":"longenough"}`
	c, rec := newContext(t, http.MethodPost, "/auth/login", body)

	_ = handler.Login(c)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubIdentity{
		loginFn: func(context.Context, ports.Credentials) (*ports.AuthResult, error) {
			return &ports.AuthResult{
				Success: false,
				Message: domain.ErrInvalidCredentials.Error(),
				Reason:  domain.ErrInvalidCredentials,
			}, nil
		},
	}
	handler := NewAuthHandler(stub)

	body := `{"email":"sarah@mining.com","password":"short"}`
	c, rec := newContext(t, http.MethodPost, "/auth/login", body)

	_ = handler.Login(c)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthHandler_Simulate_NoSeedUser(t *testing.T) {
	stub := &stubIdentity{
		simulateFn: func(_ context.Context, role domain.Role) (*ports.AuthResult, error) {
			if role != domain.RoleProfessional {
				t.Fatalf("unexpected role: %s", role)
			}
			return &ports.AuthResult{
				Success: false,
				Message: domain.ErrNoSeedUser.Error(),
				Reason:  domain.ErrNoSeedUser,
			}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newContext(t, http.MethodPost, "/auth/simulate", `{"role":"professional"}`)

	_ = handler.Simulate(c)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestAuthHandler_Logout_AlwaysSucceeds(t *testing.T) {
	stub := &stubIdentity{
		logoutFn: func(context.Context) (*ports.AuthResult, error) {
			return &ports.AuthResult{Success: true, Message: "Logged out"}, nil
		},
	}
	handler := NewAuthHandler(stub)

	for i := 0; i < 2; i++ {
		c, rec := newContext(t, http.MethodPost, "/auth/logout", "")
		if err := handler.Logout(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("logout %d: expected 200, got %d", i, rec.Code)
		}
	}
}

func TestAuthHandler_CurrentSession_NoContentWhenAbsent(t *testing.T) {
	stub := &stubIdentity{
		sessionFn: func(context.Context) (*domain.Session, error) {
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newContext(t, http.MethodGet, "/auth/session", "")
	if err := handler.CurrentSession(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestAuthHandler_CurrentSession_ReturnsSession(t *testing.T) {
	sess := domain.NewSession(domain.User{ID: "u1", Email: "sarah@mining.com", Role: domain.RoleProfessional})
	stub := &stubIdentity{
		sessionFn: func(context.Context) (*domain.Session, error) {
			return sess, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newContext(t, http.MethodGet, "/auth/session", "")
	if err := handler.CurrentSession(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got domain.Session
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.User.Email != "sarah@mining.com" || len(got.NavigationLinks) == 0 {
		t.Fatalf("unexpected session payload: %+v", got)
	}
}

func TestAuthHandler_ListUsers(t *testing.T) {
	stub := &stubIdentity{
		listFn: func(context.Context) ([]domain.User, error) {
			return domain.SeedUsers(), nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newContext(t, http.MethodGet, "/auth/users", "")
	if err := handler.ListUsers(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var users []domain.User
	if err := json.Unmarshal(rec.Body.Bytes(), &users); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("expected 3 seed users, got %d", len(users))
	}
}
