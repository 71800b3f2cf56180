package httpapi

import (
	"context"
	"net/http"
	"strings"

	"foodcourt-pos/pos-svc/internal/domain"
	"foodcourt-pos/pos-svc/internal/service"
)

type ctxKey int

const claimsKey ctxKey = iota

func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := bearerToken(r)
		if !ok {
			http.Error(w, "Missing bearer token", http.StatusUnauthorized)
			return
		}
		claims, err := h.svc.Tokens.Parse(raw)
		if err != nil {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) (string, bool) {
	raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	return raw, ok && raw != ""
}

// isSuperAdminRequest checks the bearer token of a route that sits outside
// the authenticated subrouter.
func (h *Handler) isSuperAdminRequest(r *http.Request) bool {
	raw, ok := bearerToken(r)
	if !ok {
		return false
	}
	claims, err := h.svc.Tokens.Parse(raw)
	return err == nil && claims.Role == domain.RoleSuperAdmin
}

func claimsFrom(ctx context.Context) *service.Claims {
	claims, _ := ctx.Value(claimsKey).(*service.Claims)
	return claims
}

func superAdminOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFrom(r.Context())
		if claims == nil || claims.Role != domain.RoleSuperAdmin {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		next(w, r)
	}
}

func (h *Handler) session(r *http.Request) *service.Session {
	claims := claimsFrom(r.Context())
	return h.svc.Sessions.Get(claims.Subject, claims.Role)
}
