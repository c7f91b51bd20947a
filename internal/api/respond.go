package api

import (
	"errors"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"coachmarket/internal/domain"
	"coachmarket/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// respondError maps a service error onto the HTTP status taxonomy and aborts.
// Storage and unexpected failures are logged here and never echoed back.
func respondError(c *gin.Context, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": verr.Fields()})
	case errors.Is(err, service.ErrAlreadyEnrolled):
		abortWithError(c, http.StatusBadRequest, "Already enrolled in this program")
	case errors.Is(err, service.ErrAuthenticationFailed):
		abortWithError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, service.ErrInvalidToken):
		abortWithError(c, http.StatusUnauthorized, "Invalid or expired token")
	case errors.Is(err, domain.ErrPermission):
		abortWithError(c, http.StatusForbidden, "Permission denied")
	case errors.Is(err, domain.ErrNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrConflict):
		abortWithError(c, http.StatusConflict, err.Error())
	default:
		entry := log.WithError(err).WithFields(log.Fields{
			"method": c.Request.Method,
			"path":   c.FullPath(),
		})
		if principal, ok := principalFromContext(c); ok {
			entry = entry.WithField("userId", principal.UserID.Hex())
		}
		entry.Error("request failed")
		abortWithError(c, http.StatusInternalServerError, "Internal server error")
	}
}

// objectIDParam parses a hex ObjectID path parameter. Malformed ids cannot
// name an existing row, so they are reported as 404.
func objectIDParam(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		abortWithError(c, http.StatusNotFound, name+" not found")
		return primitive.NilObjectID, false
	}
	return id, true
}

// bindJSON decodes the request body. Binding-tag failures are reported per
// field under their JSON names; malformed JSON is reported against "body".
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			verr := &domain.ValidationError{}
			for _, fe := range fieldErrs {
				verr.Add(fe.Field(), bindingReason(fe))
			}
			respondError(c, verr)
			return false
		}
		respondError(c, domain.NewValidationError("body", err.Error()))
		return false
	}
	return true
}

func bindingReason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	default:
		return "failed " + fe.Tag() + " validation"
	}
}

var jsonFieldNames sync.Once

// useJSONFieldNames makes gin's validator name fields by their json tag.
func useJSONFieldNames() {
	jsonFieldNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})
}
