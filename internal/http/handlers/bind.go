package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func BindJSON(ctx *gin.Context, out interface{}) bool {
	err := ctx.ShouldBindJSON(out)

	if err != nil {
		RespondBadRequest(ctx, bindErrorLines(err))

		return false
	}

	return true
}

// bindErrorLines flattens bind failures into the guidance-line shape the
// rest of the API uses for 400s.
func bindErrorLines(err error) []string {
	var validatorError validator.ValidationErrors

	if errors.As(err, &validatorError) {
		lines := make([]string, 0, len(validatorError))

		for _, fieldError := range validatorError {
			lines = append(lines, strings.ToLower(fieldError.Field())+" "+validationMessage(fieldError.Tag(), fieldError.Param()))
		}
		return lines
	}

	var syntaxError *json.SyntaxError

	if errors.As(err, &syntaxError) {
		return []string{"request body is not valid JSON"}
	}

	var unmatchedTypeError *json.UnmarshalTypeError

	if errors.As(err, &unmatchedTypeError) {
		field := strings.TrimSpace(unmatchedTypeError.Field)

		if field == "" {
			field = "body"
		}

		return []string{fmt.Sprintf("%s must be of type %s", field, unmatchedTypeError.Type.String())}
	}

	return []string{"invalid request body"}
}

func validationMessage(rule, param string) string {
	switch rule {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + param
	case "max":
		return "must be at most " + param
	default:
		if param != "" {
			return fmt.Sprintf("failed %s validation (%s)", rule, param)
		}
		return "failed " + rule + " validation"
	}
}
