package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bizlink/portal-api/internal/api/middleware"
	"github.com/bizlink/portal-api/internal/core/domain"
)

// PageHandler serves the role-specific screens. Pages are presentational
// stubs: they trust the route guard completely and perform no
// authorization of their own, only describing what the UI should render.
type PageHandler struct {
	role domain.Role
}

func NewPageHandler(role domain.Role) *PageHandler {
	return &PageHandler{role: role}
}

type pageResponse struct {
	Page       string           `json:"page"`
	Role       string           `json:"role"`
	User       domain.User      `json:"user"`
	Navigation []domain.NavLink `json:"navigation"`
}

// Render handles GET /<role>/:page for every link in the role's menu.
func (h *PageHandler) Render(c echo.Context) error {
	sess := middleware.SessionFromContext(c)

	return c.JSON(http.StatusOK, pageResponse{
		Page:       c.Param("page"),
		Role:       string(h.role),
		User:       sess.User,
		Navigation: sess.NavigationLinks,
	})
}

// Login handles GET /login — the landing stub guarded routes redirect to.
func Login(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"page":       "login",
		"navigation": domain.ResolveNavigation(""),
	})
}
