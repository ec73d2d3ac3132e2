package adaptor

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel-booking/pkg/apperr"

	"go.uber.org/zap"
)

func TestHandleServiceErrorStatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: apperr.Validation("check-out must be after check-in"), want: http.StatusBadRequest},
		{name: "inventory", err: apperr.Inventory("no rooms available"), want: http.StatusBadRequest},
		{name: "usage exceeded", err: apperr.UsageExceeded("coupon usage limit reached"), want: http.StatusBadRequest},
		{name: "authentication", err: apperr.Authentication("invalid credentials"), want: http.StatusUnauthorized},
		{name: "authorization", err: apperr.Authorization("not your booking"), want: http.StatusForbidden},
		{name: "not found", err: apperr.NotFound("booking not found"), want: http.StatusNotFound},
		{name: "conflict", err: apperr.Conflict("booking already cancelled"), want: http.StatusConflict},
		{name: "internal", err: apperr.Internal("query failed", errors.New("boom")), want: http.StatusInternalServerError},
		{name: "untagged", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handleServiceError(w, zap.NewNop(), tt.err, "test")
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}
