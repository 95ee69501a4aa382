package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bizlink/portal-api/internal/core/domain"
)

// NavigationHandler serves the shell menu for a role. The UI shell calls
// this to build its header; an absent or unknown role yields the public
// marketing menu.
type NavigationHandler struct{}

func NewNavigationHandler() *NavigationHandler {
	return &NavigationHandler{}
}

type navigationResponse struct {
	Role  string           `json:"role,omitempty"`
	Links []domain.NavLink `json:"links"`
}

// Resolve handles GET /navigation?role=<role>.
//
// @Summary      Navigation menu for a role
// @Tags         navigation
// @Produce      json
// @Param        role  query     string  false  "company, business, or professional; omit for the guest menu"
// @Success      200   {object}  navigationResponse
// @Router       /navigation [get]
func (h *NavigationHandler) Resolve(c echo.Context) error {
	role, err := domain.ParseRole(c.QueryParam("role"))
	if err != nil {
		// Guests and unknown roles both get the public menu.
		return c.JSON(http.StatusOK, navigationResponse{Links: domain.ResolveNavigation("")})
	}
	return c.JSON(http.StatusOK, navigationResponse{
		Role:  string(role),
		Links: domain.ResolveNavigation(role),
	})
}
