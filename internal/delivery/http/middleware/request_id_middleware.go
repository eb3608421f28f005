package middleware

import (
	delivctx "bookstore/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestID assigns each request an id, honoring one supplied by the caller,
// and echoes it back in the response header. The id also rides on the request
// context so usecases can stamp it into emitted events.
func RequestID(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(delivctx.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		delivctx.SetRequestID(c, requestID)
		c.Response().Header().Set(delivctx.HeaderXRequestID, requestID)

		ctx := delivctx.WithRequestID(c.Request().Context(), requestID)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
