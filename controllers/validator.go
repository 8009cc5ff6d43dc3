package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"product-service/models"
)

// Session headers set by the gateway's auth middleware.
const (
	HeaderUserID    = "X-User-ID"
	HeaderSessionID = "X-Session-ID"
)

// RequestValidator handles transport-level input validation. Domain
// validation lives in the pipeline, not here.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// ParseSession builds the session context from gateway headers and request
// metadata.
func (rv *RequestValidator) ParseSession(c *gin.Context) *models.SessionContext {
	return &models.SessionContext{
		UserID:         c.GetHeader(HeaderUserID),
		SessionID:      c.GetHeader(HeaderSessionID),
		IPAddress:      c.ClientIP(),
		UserAgent:      c.Request.UserAgent(),
		XForwardedFor:  c.GetHeader("X-Forwarded-For"),
		AcceptLanguage: c.GetHeader("Accept-Language"),
	}
}

// ValidateProductID checks that a path parameter is a well-formed product id.
func (rv *RequestValidator) ValidateProductID(id string) error {
	return rv.validate.Var(id, "required,uuid4")
}
