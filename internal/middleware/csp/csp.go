package csp

import (
	"strings"

	"github.com/labstack/echo/v4"
)

// policy allows the hosted payment SDK's script, frame, and API origins.
var policy = strings.Join([]string{
	"default-src 'self'",
	"script-src 'self' 'unsafe-inline' https://www.paypal.com https://sandbox.paypal.com https://*.paypal.com https://*.paypalobjects.com",
	"connect-src 'self' https://sandbox.paypal.com https://*.paypal.com https://api.sandbox.paypal.com https://api.paypal.com",
	"frame-src https://sandbox.paypal.com https://*.paypal.com https://*.paypalobjects.com",
	"img-src 'self' data: https://*.paypal.com https://*.paypalobjects.com",
	"style-src 'self' 'unsafe-inline' https://*.paypal.com",
	"font-src 'self' https://*.paypal.com",
}, "; ")

// Middleware sets the Content-Security-Policy header on every response.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set("Content-Security-Policy", policy)
			return next(c)
		}
	}
}
