package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"wayfarer/pkg/appcontext"
)

const (
	// HeaderSessionID is the header key for the session id
	HeaderSessionID = "X-Session-ID"
	// HeaderWebSessionID is the header key for the browser session id
	HeaderWebSessionID = "X-Web-Session-ID"
)

func Context() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			req := c.Request()

			// get request id from header
			requestID := req.Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.New().String()
			}

			ctx := req.Context()
			ctx = appcontext.SetRequestID(ctx, requestID)
			ctx = appcontext.SetMethod(ctx, req.Method)
			ctx = appcontext.SetRoute(ctx, req.URL.Path)
			ctx = appcontext.SetRemoteIP(ctx, c.RealIP())
			ctx = appcontext.SetSessionID(ctx, req.Header.Get(HeaderSessionID))
			ctx = appcontext.SetWebSessionID(ctx, req.Header.Get(HeaderWebSessionID))

			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	}
}
