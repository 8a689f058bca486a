// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package validate turns bad input into a VALIDATION_ERROR [apperr.AppError].

Request bodies are checked with [Struct] through go-playground/validator tags.
Path parameters and rules that depend on runtime state go through the fluent
[Validator], which shares the same engine and collects every failure before
answering.
*/
package validate

import (
	"regexp"
	"strings"

	"github.com/taibuivan/yomitube/internal/platform/apperr"
)

// usernamePattern is a channel handle: 3-30 lowercase letters, digits, dots or underscores.
var usernamePattern = regexp.MustCompile(`^[a-z0-9_.]{3,30}$`)

const usernameMessage = "Must be 3-30 characters of lowercase letters, digits, dots or underscores"

// ErrInvalidJSON is returned when a request body cannot be decoded.
var ErrInvalidJSON = apperr.ValidationError("Invalid JSON payload")

// Validator accumulates field errors. Use one per operation; it is not safe
// for concurrent use.
type Validator struct {
	errs []apperr.FieldError
}

// Username checks a channel handle.
func (v *Validator) Username(field, value string) *Validator {
	if !usernamePattern.MatchString(value) {
		v.add(field, usernameMessage)
	}
	return v
}

// UUID checks an identifier, accepting either letter case.
func (v *Validator) UUID(field, value string) *Validator {
	if engine().Var(strings.ToLower(value), "uuid") != nil {
		v.add(field, "Must be a valid UUID")
	}
	return v
}

// Custom records message when failed is true.
//
//	v.Custom("kind", !kind.Valid(), "Unknown relation kind")
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed {
		v.add(field, message)
	}
	return v
}

// HasErrors reports whether any rule failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

// Err ends the chain: nil when every rule passed.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.ValidationError("Validation failed", v.errs...)
}

func (v *Validator) add(field, message string) {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
}
