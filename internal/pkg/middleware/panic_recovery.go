package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/rekberid/rekber/internal/pkg/logger"
	"github.com/rekberid/rekber/internal/utils"
)

// PanicRecoveryMiddleware recovers from panics in handlers, logs the stack
// trace and returns a 500 response instead of crashing the process
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					requestID := c.Response().Header().Get(RequestIDHeader)

					zapLogger.Error("Panic recovered",
						logger.String("request_id", requestID),
						logger.String("method", c.Request().Method),
						logger.String("path", c.Request().URL.Path),
						logger.String("panic", fmt.Sprintf("%v", r)),
						logger.String("stack", string(debug.Stack())),
					)

					err = utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Internal server error")
				}
			}()

			return next(c)
		}
	}
}
