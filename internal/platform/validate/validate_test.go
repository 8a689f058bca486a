// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/yomitube/internal/platform/apperr"
	"github.com/taibuivan/yomitube/internal/platform/validate"
)

/*
TestValidator_Username checks channel handle rules.
*/
func TestValidator_Username(t *testing.T) {
	tests := []struct {
		value   string
		isValid bool
	}{
		{"alice", true},
		{"bob_99", true},
		{"a.b.c", true},
		{"ab", false},
		{"Alice", false},
		{"with space", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			v := &validate.Validator{}
			v.Username("username", tt.value)
			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

func TestValidator_UUID(t *testing.T) {
	v := &validate.Validator{}
	v.UUID("videoId", "0190a6f4-6f0b-7c3e-9a51-3b1f0c2d4e5f").
		UUID("playlistId", "0190A6F4-6F0B-7C3E-9A51-3B1F0C2D4E5F").
		UUID("commentId", "not-a-uuid")

	err := v.Err()
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	require.Len(t, ae.Details, 1)
	assert.Equal(t, "commentId", ae.Details[0].Field)
}

/*
TestValidator_Accumulates checks that every failure in a chain is reported.
*/
func TestValidator_Accumulates(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		UUID("actorId", "").
		Custom("kind", true, "Unknown relation kind").
		Custom("other", false, "never reported").
		Err()

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.CodeValidation, ae.Code)
	require.Len(t, ae.Details, 2)
	assert.Equal(t, "kind", ae.Details[1].Field)
	assert.Equal(t, "Unknown relation kind", ae.Details[1].Message)
}

func TestValidator_Empty(t *testing.T) {
	v := &validate.Validator{}
	assert.False(t, v.HasErrors())
	assert.NoError(t, v.Err())
}

type tweetInput struct {
	Content string `json:"content" validate:"required,max=10"`
	Link    string `json:"link" validate:"omitempty,http_url"`
}

/*
TestStruct verifies tag-based validation and JSON field naming.
*/
func TestStruct(t *testing.T) {
	assert.NoError(t, validate.Struct(&tweetInput{Content: "hello"}))

	err := validate.Struct(&tweetInput{Content: "", Link: "nope"})
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.CodeValidation, ae.Code)
	require.Len(t, ae.Details, 2)
	assert.Equal(t, "content", ae.Details[0].Field)
	assert.Equal(t, "This field is required", ae.Details[0].Message)
	assert.Equal(t, "link", ae.Details[1].Field)

	err = validate.Struct(&tweetInput{Content: "this is far too long"})
	ae = apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "Maximum 10 characters", ae.Details[0].Message)
}

type signupInput struct {
	Handle string `json:"handle" validate:"required,username"`
}

func TestStruct_UsernameTag(t *testing.T) {
	assert.NoError(t, validate.Struct(&signupInput{Handle: "rin.codes"}))

	ae := apperr.As(validate.Struct(&signupInput{Handle: "Rin Codes"}))
	require.NotNil(t, ae)
	require.Len(t, ae.Details, 1)
	assert.Equal(t, "handle", ae.Details[0].Field)
	assert.Contains(t, ae.Details[0].Message, "lowercase")
}

type noteInput struct {
	Title *string `json:"title" validate:"omitempty,notblank"`
	Body  string  `json:"body"  validate:"notblank"`
}

func TestStruct_NotBlankTag(t *testing.T) {
	blank := " \t "
	filled := "x"

	assert.NoError(t, validate.Struct(&noteInput{Body: " hi "}))
	assert.NoError(t, validate.Struct(&noteInput{Title: &filled, Body: "hi"}))

	ae := apperr.As(validate.Struct(&noteInput{Title: &blank, Body: "   "}))
	require.NotNil(t, ae)
	require.Len(t, ae.Details, 2)
	assert.Equal(t, "title", ae.Details[0].Field)
	assert.Equal(t, "body", ae.Details[1].Field)
	assert.Equal(t, "Must not be blank", ae.Details[1].Message)
}
