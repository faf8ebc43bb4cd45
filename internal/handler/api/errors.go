package api

import (
	"errors"
	"net/http"

	"resort-checkout/internal/domain/checkout"
	"resort-checkout/internal/handler/httperr"
	"resort-checkout/internal/pkg/errs"
	"resort-checkout/internal/usecase/commands"
	"resort-checkout/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// abortWithCheckoutError maps usecase errors onto responses. A missing
// prerequisite is not an error for the client: it is sent back to the view of
// the stage the checkout is actually in.
func abortWithCheckoutError(c *gin.Context, id uuid.UUID, err error) {
	var fieldErr *shared.FieldError
	var remoteErr *shared.RemoteError

	switch {
	case errors.As(err, &fieldErr):
		msg := fieldErr.Message
		if msg == "" {
			msg = "Validation failed"
		}
		httperr.AbortWithFields(c, http.StatusUnprocessableEntity, err, msg, fieldErr.Fields, nil)
	case errs.Is(err, shared.ErrMissingPrerequisite) && id != uuid.Nil:
		_ = c.Error(err)
		c.Redirect(http.StatusSeeOther, checkoutLocation(id))
		c.Abort()
	case errs.Is(err, shared.ErrMissingPrerequisite):
		httperr.AbortWithError(c, http.StatusConflict, err, "Checkout is not at the required stage", nil)
	case errs.Is(err, shared.ErrCheckoutNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Checkout not found", nil)
	case errs.Is(err, shared.ErrNothingParked):
		httperr.AbortWithError(c, http.StatusNotFound, err, "No pending reservation to resume", nil)
	case errs.Is(err, checkout.ErrRequestInFlight):
		httperr.AbortWithError(c, http.StatusConflict, err, "A request is already being processed", nil)
	case errs.Is(err, checkout.ErrStaleResponse):
		httperr.AbortWithError(c, http.StatusConflict, err, "The checkout changed while the request was in flight", nil)
	case errs.Is(err, commands.ErrCheckoutFinished):
		httperr.AbortWithError(c, http.StatusConflict, err, "Checkout already confirmed", nil)
	case errs.Is(err, checkout.ErrCapacityGuard):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Selected capacity would exceed the allowed limit", nil)
	case errs.Is(err, checkout.ErrCapacityShortfall):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Selected cabins do not fit the whole party", nil)
	case errs.Is(err, checkout.ErrEmptySelection):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Select at least one cabin", nil)
	case errs.Is(err, checkout.ErrUnknownCabin):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Cabin is not among the available ones", nil)
	case errs.Is(err, checkout.ErrUnknownService):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Service is not in the catalog", nil)
	case errors.As(err, &remoteErr):
		status := remoteErr.StatusCode
		if status < 400 || status >= 500 {
			status = http.StatusUnprocessableEntity
		}
		httperr.AbortWithError(c, status, err, remoteErr.Message, nil)
	case errs.Is(err, shared.ErrRemoteTimeout):
		httperr.AbortWithError(c, http.StatusGatewayTimeout, err, "The booking service took too long, please try again", nil)
	case errs.Is(err, shared.ErrRemoteUnavailable):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "The booking service is unavailable, please try again", nil)
	case errs.Is(err, shared.ErrMailboxFailed):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "The reservation could not be saved for later, please try again", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func checkoutLocation(id uuid.UUID) string {
	return "/api/checkouts/" + id.String()
}

var (
	errUnauthenticated = errs.New("request is not authenticated")
	errInvalidID       = errs.New("invalid item id")
)
