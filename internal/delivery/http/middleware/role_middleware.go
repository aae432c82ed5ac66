package middleware

import (
	"net/http"

	"github.com/AMIROUNI/SymptomCheck-sub001/internal/domain/entity"
	"github.com/AMIROUNI/SymptomCheck-sub001/pkg/response"
)

// RequireRole creates a middleware that checks if the user has any of the
// required roles. The role is read from context (set by AuthMiddleware
// from the externally issued JWT claim) and is not re-validated here.
func RequireRole(allowedRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetRoleFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			allowed := false
			for _, allowedRole := range allowedRoles {
				if role == allowedRole {
					allowed = true
					break
				}
			}

			if !allowed {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequirePatient gates the booking-creation endpoint
func RequirePatient(next http.Handler) http.Handler {
	return RequireRole(entity.RolePatient)(next)
}

// RequireDoctor gates availability seeding
func RequireDoctor(next http.Handler) http.Handler {
	return RequireRole(entity.RoleDoctor)(next)
}

// RequireDoctorOrAdmin gates appointment status updates
func RequireDoctorOrAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleDoctor, entity.RoleAdmin)(next)
}
