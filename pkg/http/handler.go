package http

import "github.com/labstack/echo/v4"

// Handler defines HTTP route registration interface.
type Handler interface {
	RegisterRoutes(e *echo.Echo)
}

// CompositeHandler registers several handlers on one server.
type CompositeHandler []Handler

func (h CompositeHandler) RegisterRoutes(e *echo.Echo) {
	for _, sub := range h {
		if sub != nil {
			sub.RegisterRoutes(e)
		}
	}
}
