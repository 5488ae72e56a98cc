package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pneumatic/guestbook/internal/api/metrics"
	"github.com/pneumatic/guestbook/internal/api/session"
	"github.com/pneumatic/guestbook/internal/core/domain"
	"github.com/pneumatic/guestbook/internal/core/ports"
)

// IndexHandler serves the registration form and processes submissions.
type IndexHandler struct {
	registrations ports.RegistrationService
	log           zerolog.Logger
}

func NewIndexHandler(registrations ports.RegistrationService, log zerolog.Logger) *IndexHandler {
	return &IndexHandler{registrations: registrations, log: log}
}

// indexPage is the template context for index.html.
type indexPage struct {
	Name        string
	Known       bool
	Error       string
	CurrentTime time.Time
}

// Index renders the form, greeting the visitor recorded in the session.
func (h *IndexHandler) Index(c echo.Context) error {
	state := session.Get(c)
	return c.Render(http.StatusOK, "index.html", indexPage{
		Name:        state.Name,
		Known:       state.Known,
		CurrentTime: time.Now().UTC(),
	})
}

// Submit handles a form POST. A valid name is registered and the visitor is
// redirected back to the form so a refresh cannot resubmit. An invalid name
// re-renders the form with an inline message and leaves the session alone.
func (h *IndexHandler) Submit(c echo.Context) error {
	var form nameForm
	if err := c.Bind(&form); err != nil {
		return h.rerender(c, "name is required")
	}
	if err := c.Validate(&form); err != nil {
		return h.rerender(c, err.Error())
	}

	user, known, err := h.registrations.Register(c.Request().Context(), form.Name)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyName) {
			return h.rerender(c, "name is required")
		}
		return err
	}

	if err := session.Save(c, session.State{Name: user.Username, Known: known}); err != nil {
		return err
	}

	if known {
		metrics.RegistrationsTotal.WithLabelValues("known").Inc()
	} else {
		metrics.RegistrationsTotal.WithLabelValues("new").Inc()
		h.log.Info().Str("username", user.Username).Msg("new user registered")
	}

	return c.Redirect(http.StatusSeeOther, "/")
}

func (h *IndexHandler) rerender(c echo.Context, msg string) error {
	metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
	state := session.Get(c)
	return c.Render(http.StatusOK, "index.html", indexPage{
		Name:        state.Name,
		Known:       state.Known,
		Error:       msg,
		CurrentTime: time.Now().UTC(),
	})
}
