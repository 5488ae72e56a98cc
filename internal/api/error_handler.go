package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Renders the static 404 page for unmatched routes.
//   - Renders the static 500 page for everything else, logging the real
//     cause internally without leaking it to the visitor.
//
// There is deliberately no mapping of domain errors to friendlier statuses:
// a uniqueness race on registration, for instance, surfaces as a plain 500.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
		}

		page := "500.html"
		if code == http.StatusNotFound {
			page = "404.html"
		} else {
			log.Error().
				Err(err).
				Str("method", c.Request().Method).
				Str("path", c.Request().URL.Path).
				Msg("unhandled error")
			code = http.StatusInternalServerError
		}

		if rerr := c.Render(code, page, nil); rerr != nil {
			// Rendering the error page itself failed; fall back to text.
			_ = c.String(code, http.StatusText(code))
		}
	}
}
