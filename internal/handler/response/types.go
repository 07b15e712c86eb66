package response

import (
	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

func SendError(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, ErrorResponse{
		Message: message,
	})
}
