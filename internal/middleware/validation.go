package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// NewOpenAPIValidator creates a Gin middleware that validates incoming requests
// against the provided OpenAPI 3 spec. Requests failing a security
// requirement are rejected with 401, other invalid requests with 400.
// authFn checks credentials for operations that declare security; nil
// skips authentication.
func NewOpenAPIValidator(spec *openapi3.T, authFn openapi3filter.AuthenticationFunc) (gin.HandlerFunc, error) {
	// Reason: clear servers so the router matches paths without a server URL prefix
	spec.Servers = nil

	router, err := gorillamux.NewRouter(spec)
	if err != nil {
		return nil, fmt.Errorf("creating openapi router: %w", err)
	}

	if authFn == nil {
		authFn = openapi3filter.NoopAuthenticationFunc
	}

	return validatorHandler(router, authFn), nil
}

func validatorHandler(router routers.Router, authFn openapi3filter.AuthenticationFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		route, pathParams, err := router.FindRoute(c.Request)
		if err != nil {
			status := http.StatusNotFound
			msg := "route not found in API specification"
			if errors.Is(err, routers.ErrMethodNotAllowed) {
				status = http.StatusMethodNotAllowed
				msg = "method not allowed"
			}
			c.AbortWithStatusJSON(status, gin.H{"message": msg})
			return
		}

		input := &openapi3filter.RequestValidationInput{
			Request:    c.Request,
			PathParams: pathParams,
			Route:      route,
			Options: &openapi3filter.Options{
				AuthenticationFunc: authFn,
				MultiError:         false,
			},
		}

		if err := openapi3filter.ValidateRequest(c.Request.Context(), input); err != nil {
			var secErr *openapi3filter.SecurityRequirementsError
			if errors.As(err, &secErr) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"message": "authentication required",
				})
				return
			}

			log.WithError(err).WithField("path", c.Request.URL.Path).Warn("request validation failed")

			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"message": sanitizeValidationError(err),
			})
			return
		}

		c.Next()
	}
}

func sanitizeValidationError(err error) string {
	var reqErr *openapi3filter.RequestError
	if errors.As(err, &reqErr) && reqErr.Reason != "" {
		msg := reqErr.Reason
		var schemaErr *openapi3.SchemaError
		if errors.As(reqErr.Err, &schemaErr) {
			msg = schemaErr.Reason
			if field := strings.Join(schemaErr.JSONPointer(), "."); field != "" {
				msg = field + ": " + msg
			}
		}
		return msg
	}

	msg := err.Error()
	// Reason: kin-openapi wraps errors verbosely; trim to the useful part
	if idx := strings.Index(msg, "Schema:"); idx >= 0 {
		msg = strings.TrimSpace(msg[idx:])
	}
	return msg
}
