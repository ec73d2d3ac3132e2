package adaptor

import (
	"net/http"

	"hotel-booking/pkg/apperr"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

// handleServiceError maps a service error's kind to an HTTP status. Internal
// errors are logged here once and never leak details to the client.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, op string) {
	switch apperr.KindOf(err) {
	case apperr.KindValidation, apperr.KindInventory, apperr.KindUsageExceeded:
		utils.ResponseBadRequest(w, err.Error(), nil)
	case apperr.KindAuthentication:
		utils.ResponseUnauthorized(w, err.Error())
	case apperr.KindAuthorization:
		utils.ResponseForbidden(w, err.Error())
	case apperr.KindNotFound:
		utils.ResponseNotFound(w, err.Error())
	case apperr.KindConflict:
		utils.ResponseConflict(w, err.Error())
	default:
		log.Error("service error", zap.String("op", op), zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
