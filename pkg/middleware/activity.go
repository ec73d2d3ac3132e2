package middleware

import (
	"context"
	"net/http"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Activity records each mutating request to the activity log. Writes happen
// after the response, off the request goroutine, and never fail the request.
func Activity(activityRepo repository.ActivityRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(rw, r)

			if r.Method == http.MethodGet || r.Method == http.MethodOptions {
				return
			}

			var userID *uuid.UUID
			if id, ok := utils.GetUserIDFromContext(r.Context()); ok {
				userID = &id
			}

			log := &entity.ActivityLog{
				UserID: userID,
				Action: r.Method + " " + r.URL.Path,
				Method: r.Method,
				Path:   r.URL.Path,
				Status: rw.statusCode,
				IP:     r.RemoteAddr,
			}
			log.ID = utils.GenerateUUID()
			log.CreatedAt = time.Now()

			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := activityRepo.CreateLog(ctx, log); err != nil {
					logger.Warn("failed to record activity", zap.Error(err))
				}
			}()
		})
	}
}
