package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// GreetingHandler serves the static per-name greeting page.
type GreetingHandler struct{}

func NewGreetingHandler() *GreetingHandler {
	return &GreetingHandler{}
}

// User renders /user/:name with the path parameter.
func (h *GreetingHandler) User(c echo.Context) error {
	return c.Render(http.StatusOK, "user.html", struct{ Name string }{
		Name: c.Param("name"),
	})
}
