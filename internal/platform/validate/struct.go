// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/taibuivan/yomitube/internal/platform/apperr"
)

var (
	structValidator     *validator.Validate
	structValidatorOnce sync.Once
)

// engine returns the shared tag validator. Field names in errors are taken
// from the `json` tag so that clients see the same names they sent.
//
// Custom tags:
//
//   - username: a channel handle
//   - notblank: at least one non-whitespace character
func engine() *validator.Validate {
	structValidatorOnce.Do(func() {
		structValidator = validator.New(validator.WithRequiredStructEnabled())
		_ = structValidator.RegisterValidation("username", func(field validator.FieldLevel) bool {
			return usernamePattern.MatchString(field.Field().String())
		})
		_ = structValidator.RegisterValidation("notblank", func(field validator.FieldLevel) bool {
			return strings.TrimSpace(field.Field().String()) != ""
		})
		structValidator.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})
	})
	return structValidator
}

// Struct validates a tagged request DTO.
//
// # Example
//
//	type createTweetInput struct {
//	    Content string `json:"content" validate:"required,max=280"`
//	}
//
// It returns nil or a VALIDATION_ERROR [apperr.AppError] with one detail per
// failing field.
func Struct(target any) error {
	err := engine().Struct(target)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return apperr.Internal(err)
	}

	details := make([]apperr.FieldError, 0, len(fieldErrors))
	for _, fieldError := range fieldErrors {
		details = append(details, apperr.FieldError{
			Field:   fieldError.Field(),
			Message: describe(fieldError),
		})
	}

	return apperr.ValidationError("Validation failed", details...)
}

// describe renders a client-facing message for a failed tag.
func describe(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return "This field is required"
	case "notblank":
		return "Must not be blank"
	case "max":
		return fmt.Sprintf("Maximum %s characters", fieldError.Param())
	case "min":
		return fmt.Sprintf("Minimum %s characters", fieldError.Param())
	case "email":
		return "Must be a valid email address"
	case "url", "http_url":
		return "Must be a valid http(s) URL"
	case "uuid":
		return "Must be a valid UUID"
	case "username":
		return usernameMessage
	case "gte":
		return fmt.Sprintf("Must be at least %s", fieldError.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", strings.ReplaceAll(fieldError.Param(), " ", ", "))
	default:
		return fmt.Sprintf("Failed the %q rule", fieldError.Tag())
	}
}
