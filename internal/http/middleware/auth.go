package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/venuelaunch/venuelaunch/internal/domain"
)

// Keys for storing auth material in the request context
type contextKey string

const (
	CMSTokenKey contextKey = "cms_token"
	CMSAdminKey contextKey = "cms_admin"
)

// CMSAuthMiddleware guards the CMS routes with Bearer token auth
type CMSAuthMiddleware struct {
	authService domain.CMSAuthService
}

// NewCMSAuthMiddleware creates a new CMS auth middleware
func NewCMSAuthMiddleware(authService domain.CMSAuthService) *CMSAuthMiddleware {
	return &CMSAuthMiddleware{authService: authService}
}

// RequireAuth verifies the Bearer token and puts both the raw token and the
// resolved admin into the request context.
func (m *CMSAuthMiddleware) RequireAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Authorization header is required", http.StatusUnauthorized)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				http.Error(w, "Invalid authorization header format", http.StatusUnauthorized)
				return
			}
			token := parts[1]

			admin, err := m.authService.VerifyToken(r.Context(), token)
			if err != nil {
				http.Error(w, "Invalid or expired token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), CMSTokenKey, token)
			ctx = context.WithValue(ctx, CMSAdminKey, admin)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole rejects authenticated admins whose role is not in the
// allow-list. Must be chained after RequireAuth.
func (m *CMSAuthMiddleware) RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			admin, ok := CMSAdminFromContext(r.Context())
			if !ok {
				http.Error(w, "Authorization header is required", http.StatusUnauthorized)
				return
			}
			if !admin.HasRole(roles...) {
				http.Error(w, "Insufficient permissions", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// CMSTokenFromContext returns the raw Bearer token stored by RequireAuth
func CMSTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(CMSTokenKey).(string)
	return token, ok
}

// CMSAdminFromContext returns the authenticated admin stored by RequireAuth
func CMSAdminFromContext(ctx context.Context) (*domain.CmsAdmin, bool) {
	admin, ok := ctx.Value(CMSAdminKey).(*domain.CmsAdmin)
	return admin, ok
}
