package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rekberid/rekber/internal/pkg/models"
	"github.com/rekberid/rekber/internal/utils"
)

// domainErrorResponse maps settlement errors onto HTTP statuses. Conflicts
// (double settlement, replayed codes, resolved disputes) are 409 so callers
// can tell a lost race from a bad request.
func domainErrorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, models.ErrValidation),
		errors.Is(err, models.ErrInvalidAmount),
		errors.Is(err, models.ErrInsufficientBalance):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, models.ErrAlreadyLocked),
		errors.Is(err, models.ErrAlreadyTerminal),
		errors.Is(err, models.ErrAlreadyResolved),
		errors.Is(err, models.ErrAlreadyConfirmed):
		return utils.ErrorResponseHandler(c, http.StatusConflict, err.Error())
	case errors.Is(err, models.ErrGatewayTimeout):
		return utils.ServiceUnavailableResponse(c, err.Error())
	case errors.Is(err, models.ErrExternalService):
		return utils.ErrorResponseHandler(c, http.StatusBadGateway, err.Error())
	default:
		return utils.InternalServerErrorResponse(c, "Internal server error")
	}
}
