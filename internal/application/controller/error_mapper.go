package controller

import (
	"errors"
	"net/http"

	"weather-app/internal/domain/model"

	"github.com/labstack/echo/v4"
)

// writeError translates a domain error into an HTTP response. Unknown errors
// fall through as 500 without leaking wrapped internals beyond the message.
func writeError(c echo.Context, err error) error {
	status := http.StatusInternalServerError

	var domainErr *model.Error
	if errors.As(err, &domainErr) {
		switch domainErr.Kind {
		case model.KindValidation:
			status = http.StatusBadRequest
		case model.KindUniqueness:
			status = http.StatusConflict
		case model.KindNotFound:
			status = http.StatusNotFound
		case model.KindNoConnectivity:
			status = http.StatusServiceUnavailable
		case model.KindNetwork, model.KindParse, model.KindNoData:
			status = http.StatusBadGateway
		case model.KindQuotaExceeded:
			status = http.StatusTooManyRequests
		case model.KindHTTPStatus:
			status = upstreamStatus(domainErr.Status)
		}
	}

	return c.JSON(status, map[string]string{"error": err.Error()})
}

// upstreamStatus maps an OpenWeather status onto ours. Client errors other
// than 404 mean this service is misconfigured, not the caller.
func upstreamStatus(status int) int {
	if status == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}
