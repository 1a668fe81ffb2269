package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/janrakshak/floodwatch/internal/domain"
	"github.com/janrakshak/floodwatch/internal/sweep"
)

// errorResponse is the uniform error envelope for all API failures.
type errorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// httpErrorHandler maps domain sentinel errors onto HTTP status codes so
// handlers can return errors untranslated.
func (s *Server) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := err.Error()

	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		code = httpErr.Code
		if m, ok := httpErr.Message.(string); ok {
			msg = m
		}
	case errors.Is(err, domain.ErrLocationNotFound):
		code = http.StatusNotFound
	case errors.Is(err, domain.ErrUpstreamUnavailable),
		errors.Is(err, domain.ErrMalformedResponse):
		code = http.StatusBadGateway
	case errors.Is(err, domain.ErrMisalignedSeries):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, sweep.ErrNoSnapshot):
		code = http.StatusServiceUnavailable
	}

	if code >= http.StatusInternalServerError {
		s.logger.Error("request failed", "method", c.Request().Method, "path", c.Path(), "error", err)
	}

	if jsonErr := c.JSON(code, errorResponse{Message: msg, Code: code}); jsonErr != nil {
		s.logger.Error("write error response failed", "error", jsonErr)
	}
}
