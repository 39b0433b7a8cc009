package http

import "github.com/labstack/echo/v4"

// Handler is anything that can mount routes on the server. The API router
// and the individual endpoint groups all implement it.
type Handler interface {
	RegisterRoutes(e *echo.Echo)
}
