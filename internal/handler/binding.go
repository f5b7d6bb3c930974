package handler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/mohanyaswanthkumar/hws-pfsd/internal/apperr"
	"github.com/mohanyaswanthkumar/hws-pfsd/pkg/utils"
)

// bindJSON binds and validates the request body. On failure it writes the
// error response and returns false, so handlers can bail out with a single
// early return.
func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		utils.FailResponse(c, validationError(err))
		return false
	}
	return true
}

// validationError converts gin/validator binding failures into the
// field-keyed validation error the response layer knows how to render
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperr.ValidationField("body", "invalid request body")
	}

	fields := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		name := strings.ToLower(fe.Field())
		fields[name] = append(fields[name], validationMessage(fe))
	}
	return apperr.Validation(fields)
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "datetime":
		return "must match format " + fe.Param()
	default:
		return "failed " + fe.Tag() + " validation"
	}
}

// pathID parses the numeric :id path parameter. On failure it writes the
// error response and returns false.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.FailResponse(c, apperr.ValidationField("id", "invalid "+name+" ID"))
		return 0, false
	}
	return uint(id), true
}
