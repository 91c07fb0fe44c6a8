package middleware

import "github.com/labstack/echo/v4"

type Skipper func(c echo.Context) bool

var DefaultSkipper Skipper = func(c echo.Context) bool {
	return false
}

// Logger is the minimal structured logging surface the middleware needs.
// Satisfied by *logger.Logger from ct-go.
type Logger interface {
	Infow(template string, args ...interface{})
	Warnw(template string, args ...interface{})
	Errorw(template string, args ...interface{})
}
