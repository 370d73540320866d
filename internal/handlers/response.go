package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eduassist/eduassist-backend/internal/services"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// RespondServiceError maps the generation error taxonomy onto HTTP
// statuses: bad input is the caller's fault, everything downstream of
// the gateway is a bad upstream.
func RespondServiceError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	var gatewayErr *services.GatewayError
	if errors.As(err, &gatewayErr) {
		RespondError(c, http.StatusBadGateway, "gateway_error", err)
		return
	}
	var malformedErr *services.MalformedGenerationError
	if errors.As(err, &malformedErr) {
		RespondError(c, http.StatusBadGateway, "malformed_generation", err)
		return
	}
	RespondError(c, http.StatusInternalServerError, "internal_error", err)
}
