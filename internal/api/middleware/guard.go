package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bizlink/portal-api/internal/api/metrics"
	"github.com/bizlink/portal-api/internal/core/domain"
	"github.com/bizlink/portal-api/internal/core/ports"
)

// LoginPath is where unauthenticated requests are sent.
const LoginPath = "/login"

// GuardState is the lifecycle of one guard evaluation.
type GuardState int

const (
	StateInitializing GuardState = iota
	StateAuthorized
	StateRedirecting
)

// Decision is the terminal outcome of a guard evaluation. Target is set
// only when State is StateRedirecting.
type Decision struct {
	State  GuardState
	Target string
}

// Evaluate applies the guard policy to a loaded session. It is pure: the
// session was read beforehand, exactly once per request.
//
//	no session        → redirect to /login
//	role not allowed  → redirect to the role's own home
//	otherwise         → authorized
//
// A malformed session never reaches this point; stores report it as nil.
func Evaluate(sess *domain.Session, allowed map[domain.Role]struct{}) Decision {
	if sess == nil || !sess.IsAuthenticated {
		return Decision{State: StateRedirecting, Target: LoginPath}
	}
	if _, ok := allowed[sess.User.Role]; !ok {
		return Decision{State: StateRedirecting, Target: sess.User.Role.Home()}
	}
	return Decision{State: StateAuthorized}
}

// Guard protects a route group with an allowed-roles policy. The session
// is loaded once, on entry; a session change elsewhere takes effect on
// the next request. Every failure mode is a silent redirect: the guard
// never surfaces an error to the client.
func Guard(store ports.SessionStore, allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, err := store.Load(c.Request().Context())
			if err != nil {
				// Unreachable storage reads as signed-out.
				sess = nil
			}

			switch decision := Evaluate(sess, allowed); decision.State {
			case StateAuthorized:
				metrics.GuardDecisionsTotal.WithLabelValues("authorized").Inc()
				c.Set("session", sess)
				return next(c)
			default:
				if decision.Target == LoginPath {
					metrics.GuardDecisionsTotal.WithLabelValues("redirect_login").Inc()
				} else {
					metrics.GuardDecisionsTotal.WithLabelValues("redirect_role_home").Inc()
				}
				return c.Redirect(http.StatusFound, decision.Target)
			}
		}
	}
}

// SessionFromContext returns the session injected by Guard, or nil when
// the handler is not behind a guard.
func SessionFromContext(c echo.Context) *domain.Session {
	sess, _ := c.Get("session").(*domain.Session)
	return sess
}
