package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/nimbusid/identity-api/internal/core/domain"
)

func rbacContext(user *domain.User) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	if user != nil {
		c.Set(UserContextKey, user)
	}
	return c
}

func runGuard(c echo.Context, required ...domain.Role) (bool, error) {
	called := false
	err := RequireRoles(required...)(func(c echo.Context) error {
		called = true
		return nil
	})(c)
	return called, err
}

func TestRequireRoles_NoUser(t *testing.T) {
	called, err := runGuard(rbacContext(nil), domain.RoleAdmin)
	if called {
		t.Fatalf("guard admitted an unauthenticated request")
	}
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestRequireRoles_EmptyRequiredAdmitsAnyUser(t *testing.T) {
	user := &domain.User{ID: "u1", Roles: []domain.Role{domain.RoleUser}}
	called, err := runGuard(rbacContext(user))
	if err != nil || !called {
		t.Fatalf("empty required set should admit any authenticated user, got %v", err)
	}
}

func TestRequireRoles_Intersection(t *testing.T) {
	user := &domain.User{ID: "u1", Roles: []domain.Role{domain.RoleUser, domain.RoleAdmin}}
	called, err := runGuard(rbacContext(user), domain.RoleAdmin, domain.RoleSuperAdmin)
	if err != nil || !called {
		t.Fatalf("overlapping role sets should pass, got %v", err)
	}
}

func TestRequireRoles_Disjoint(t *testing.T) {
	user := &domain.User{ID: "u1", Roles: []domain.Role{domain.RoleUser}}
	called, err := runGuard(rbacContext(user), domain.RoleAdmin, domain.RoleSuperAdmin)
	if called {
		t.Fatalf("guard admitted a user without any required role")
	}
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %v", err)
	}
}
