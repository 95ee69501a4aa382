package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bizlink/portal-api/internal/core/domain"
	"github.com/bizlink/portal-api/internal/core/ports"
)

// AuthHandler exposes the mock identity provider over HTTP. Every domain
// outcome is rendered as the provider's structured result; the response
// status is derived from the failure reason so login/registration
// screens can show the message inline.
type AuthHandler struct {
	identity ports.IdentityService
}

func NewAuthHandler(identity ports.IdentityService) *AuthHandler {
	return &AuthHandler{identity: identity}
}

// Phone and password rules are deliberately absent here: the identity
// provider owns them and reports violations as structured results, not
// transport errors.
type registerRequest struct {
	DisplayName      string `json:"display_name" validate:"required"`
	PhoneNumber      string `json:"phone_number" validate:"required"`
	Password         string `json:"password" validate:"required"`
	BusinessCategory string `json:"business_category"`
	Role             string `json:"role" validate:"required,oneof=company business professional"`
	AvatarRef        string `json:"avatar_ref"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type simulateRequest struct {
	Role string `json:"role" validate:"required,oneof=company business professional"`
}

// Register handles POST /auth/register.
//
// @Summary      Register a new portal account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  ports.AuthResult
// @Failure      400   {object}  ports.AuthResult
// @Failure      409   {object}  ports.AuthResult
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.identity.Register(c.Request().Context(), ports.RegisterInput{
		DisplayName:      req.DisplayName,
		PhoneNumber:      req.PhoneNumber,
		Password:         req.Password,
		BusinessCategory: req.BusinessCategory,
		Role:             role,
		AvatarRef:        req.AvatarRef,
	})
	if err != nil {
		return err
	}
	if !result.Success {
		return c.JSON(statusForReason(result.Reason), result)
	}

	return c.JSON(http.StatusCreated, result)
}

// Login handles POST /auth/login.
//
// @Summary      Sign in with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  ports.AuthResult
// @Failure      401   {object}  ports.AuthResult
// @Failure      404   {object}  ports.AuthResult
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.identity.Login(c.Request().Context(), ports.Credentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	if !result.Success {
		return c.JSON(statusForReason(result.Reason), result)
	}

	return c.JSON(http.StatusOK, result)
}

// Simulate handles POST /auth/simulate — demo sign-in as the first seed
// account of a role, bypassing all credential checks.
//
// @Summary      Simulated login for role demos
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      simulateRequest  true  "Role to demo"
// @Success      200   {object}  ports.AuthResult
// @Failure      404   {object}  ports.AuthResult
// @Router       /auth/simulate [post]
func (h *AuthHandler) Simulate(c echo.Context) error {
	var req simulateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.identity.SimulateLogin(c.Request().Context(), role)
	if err != nil {
		return err
	}
	if !result.Success {
		return c.JSON(statusForReason(result.Reason), result)
	}

	return c.JSON(http.StatusOK, result)
}

// Logout handles POST /auth/logout. Always succeeds, with or without an
// active session.
//
// @Summary      Sign out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  ports.AuthResult
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	result, err := h.identity.Logout(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// ListUsers handles GET /auth/users — a read-only catalog snapshot.
//
// @Summary      List portal accounts
// @Tags         auth
// @Produce      json
// @Success      200  {array}  domain.User
// @Router       /auth/users [get]
func (h *AuthHandler) ListUsers(c echo.Context) error {
	users, err := h.identity.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	if users == nil {
		users = []domain.User{}
	}
	return c.JSON(http.StatusOK, users)
}

// CurrentSession handles GET /auth/session. Read-only: the header and
// profile chrome poll this to decide what to render. 204 when nobody is
// signed in.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  domain.Session
// @Success      204  "no active session"
// @Router       /auth/session [get]
func (h *AuthHandler) CurrentSession(c echo.Context) error {
	sess, err := h.identity.CurrentSession(c.Request().Context())
	if err != nil {
		return err
	}
	if sess == nil {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, sess)
}

func statusForReason(reason error) int {
	switch {
	case errors.Is(reason, domain.ErrInvalidPhone),
		errors.Is(reason, domain.ErrWeakPassword),
		errors.Is(reason, domain.ErrInvalidRole):
		return http.StatusBadRequest
	case errors.Is(reason, domain.ErrDuplicateUser):
		return http.StatusConflict
	case errors.Is(reason, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(reason, domain.ErrUserNotFound),
		errors.Is(reason, domain.ErrNoSeedUser):
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}
