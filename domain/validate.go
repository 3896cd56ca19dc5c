package domain

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Normalize trims surrounding whitespace from the fields.
func (in PostInput) Normalize() PostInput {
	return PostInput{
		Title:    strings.TrimSpace(in.Title),
		Contents: strings.TrimSpace(in.Contents),
	}
}

// Validate checks the input before it is sent.
func (in PostInput) Validate() error {
	return validationError(validate.Struct(in.Normalize()))
}

// Normalize trims surrounding whitespace from the contents.
func (in CommentInput) Normalize() CommentInput {
	in.Contents = strings.TrimSpace(in.Contents)
	return in
}

// Validate checks the input before it is sent.
func (in CommentInput) Validate() error {
	return validationError(validate.Struct(in.Normalize()))
}

func validationError(err error) error {
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}
	switch fe := fieldErrs[0]; fe.Field() {
	case "Title":
		return &ValidationError{Field: "title", Err: ErrEmptyTitle}
	case "Contents":
		return &ValidationError{Field: "contents", Err: ErrEmptyContents}
	default:
		return &ValidationError{Field: strings.ToLower(fe.Field()), Err: errors.New(fe.Tag())}
	}
}
