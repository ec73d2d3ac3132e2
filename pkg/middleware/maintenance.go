package middleware

import (
	"context"
	"net/http"
	"strings"

	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

// MaintenanceChecker reports whether maintenance mode is on, plus the
// operator message to show.
type MaintenanceChecker interface {
	MaintenanceStatus(ctx context.Context) (bool, string, error)
}

// Routes that must stay reachable during maintenance so operators can turn
// it back off.
var maintenanceExempt = []string{
	"/health",
	"/api/auth/login",
	"/api/admin",
	"/api/system-settings",
}

// Maintenance returns 503 for all non-exempt routes while maintenance mode
// is on. The checker is expected to cache, since this runs on every request.
func Maintenance(checker MaintenanceChecker, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, prefix := range maintenanceExempt {
				if strings.HasPrefix(r.URL.Path, prefix) {
					next.ServeHTTP(w, r)
					return
				}
			}

			on, message, err := checker.MaintenanceStatus(r.Context())
			if err != nil {
				// Fail open: a broken settings read must not take the site down.
				logger.Error("maintenance check failed", zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}

			if on {
				utils.ResponseMaintenance(w, message)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
