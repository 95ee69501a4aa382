package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/bizlink/portal-api/internal/core/domain"
	"github.com/bizlink/portal-api/internal/core/ports"
)

const (
	minPhoneDigits = 10
	minPasswordLen = 6
)

// AuditPublisher abstracts the fire-and-forget audit pipeline.
type AuditPublisher interface {
	Publish(event ports.AuthEvent)
}

type identityService struct {
	catalog  ports.UserCatalog
	sessions ports.SessionStore
	audit    AuditPublisher
	log      zerolog.Logger

	// latency reproduces the artificial delay of the mock provider.
	// Zero disables it.
	latency time.Duration
}

// NewIdentityService wires the mock identity provider. audit may be nil
// when no pipeline is configured.
func NewIdentityService(
	catalog ports.UserCatalog,
	sessions ports.SessionStore,
	audit AuditPublisher,
	latency time.Duration,
	log zerolog.Logger,
) ports.IdentityService {
	return &identityService{
		catalog:  catalog,
		sessions: sessions,
		audit:    audit,
		latency:  latency,
		log:      log,
	}
}

func (s *identityService) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}

	// Validation happens before any storage write: a rejected
	// registration leaves both the catalog and the session slot as is.
	if len(in.PhoneNumber) < minPhoneDigits {
		s.emit(ports.AuthEventRegister, "", in.Role, "invalid_phone")
		return failure(domain.ErrInvalidPhone), nil
	}
	if len(in.Password) < minPasswordLen {
		s.emit(ports.AuthEventRegister, "", in.Role, "weak_password")
		return failure(domain.ErrWeakPassword), nil
	}
	if !in.Role.Valid() {
		s.emit(ports.AuthEventRegister, "", in.Role, "invalid_role")
		return failure(domain.ErrInvalidRole), nil
	}

	email := domain.DeriveEmail(in.DisplayName)
	switch _, err := s.catalog.FindByEmail(ctx, email); {
	case err == nil:
		s.emit(ports.AuthEventRegister, email, in.Role, "duplicate")
		return failure(domain.ErrDuplicateUser), nil
	case err != domain.ErrUserNotFound:
		return nil, fmt.Errorf("register: check email: %w", err)
	}

	user := &domain.User{
		ID:               newUserID(),
		Email:            email,
		DisplayName:      in.DisplayName,
		PhoneNumber:      in.PhoneNumber,
		BusinessCategory: in.BusinessCategory,
		Role:             in.Role,
		AvatarRef:        in.AvatarRef,
		CreatedAt:        time.Now().UTC(),
	}

	created, err := s.catalog.Create(ctx, user)
	if err != nil {
		if err == domain.ErrDuplicateUser {
			s.emit(ports.AuthEventRegister, email, in.Role, "duplicate")
			return failure(domain.ErrDuplicateUser), nil
		}
		return nil, fmt.Errorf("register: create user: %w", err)
	}

	if err := s.openSession(ctx, created); err != nil {
		return nil, err
	}

	s.log.Info().Str("email", created.Email).Str("role", string(created.Role)).Msg("account registered")
	s.emit(ports.AuthEventRegister, created.Email, created.Role, "success")
	return success(created, "Registration successful"), nil
}

func (s *identityService) Login(ctx context.Context, creds ports.Credentials) (*ports.AuthResult, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}

	user, err := s.catalog.FindByEmail(ctx, creds.Email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			s.emit(ports.AuthEventLogin, creds.Email, "", "user_not_found")
			return failure(domain.ErrUserNotFound), nil
		}
		return nil, fmt.Errorf("login: find user: %w", err)
	}

	// Mock credential rule carried over from the original provider: any
	// password of sufficient length is accepted. There is no stored
	// secret to compare against.
	if len(creds.Password) < minPasswordLen {
		s.emit(ports.AuthEventLogin, creds.Email, user.Role, "invalid_credentials")
		return failure(domain.ErrInvalidCredentials), nil
	}

	if err := s.openSession(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info().Str("email", user.Email).Str("role", string(user.Role)).Msg("user logged in")
	s.emit(ports.AuthEventLogin, user.Email, user.Role, "success")
	return success(user, "Login successful"), nil
}

func (s *identityService) SimulateLogin(ctx context.Context, role domain.Role) (*ports.AuthResult, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}

	if !role.Valid() {
		return failure(domain.ErrInvalidRole), nil
	}

	// Resolve the seed user before touching the session slot so a miss
	// leaves any existing session intact.
	user, err := s.catalog.FirstByRole(ctx, role)
	if err != nil {
		if err == domain.ErrNoSeedUser {
			s.emit(ports.AuthEventSimulateLogin, "", role, "no_seed_user")
			return failure(domain.ErrNoSeedUser), nil
		}
		return nil, fmt.Errorf("simulate login: find seed user: %w", err)
	}

	if err := s.openSession(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info().Str("email", user.Email).Str("role", string(role)).Msg("simulated login")
	s.emit(ports.AuthEventSimulateLogin, user.Email, role, "success")
	return success(user, "Simulated login as "+string(role)), nil
}

func (s *identityService) Logout(ctx context.Context) (*ports.AuthResult, error) {
	if err := s.sessions.Clear(ctx); err != nil {
		return nil, fmt.Errorf("logout: clear session: %w", err)
	}
	s.emit(ports.AuthEventLogout, "", "", "success")
	return &ports.AuthResult{Success: true, Message: "Logged out"}, nil
}

func (s *identityService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *identityService) CurrentSession(ctx context.Context) (*domain.Session, error) {
	return s.sessions.Load(ctx)
}

func (s *identityService) openSession(ctx context.Context, user *domain.User) error {
	if err := s.sessions.Save(ctx, domain.NewSession(*user)); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}

func (s *identityService) emit(eventType, email string, role domain.Role, outcome string) {
	if s.audit == nil {
		return
	}
	s.audit.Publish(ports.AuthEvent{
		Type:    eventType,
		Email:   email,
		Role:    role,
		Outcome: outcome,
		At:      time.Now().UTC(),
	})
}

func (s *identityService) simulateLatency(ctx context.Context) error {
	if s.latency <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(s.latency):
		return nil
	}
}

func success(user *domain.User, msg string) *ports.AuthResult {
	return &ports.AuthResult{Success: true, User: user, Message: msg}
}

func failure(reason error) *ports.AuthResult {
	return &ports.AuthResult{Success: false, Message: reason.Error(), Reason: reason}
}

func newUserID() string {
	buf := make([]byte, 8)
	_, _ = rand.Read(buf)
	return "usr_" + hex.EncodeToString(buf)
}
