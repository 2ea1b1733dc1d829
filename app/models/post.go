package models

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	// MaxTitleLength is the longest accepted post title after trimming.
	MaxTitleLength = 150
	// MaxBodyLength is the longest accepted post body after trimming.
	MaxBodyLength = 1000
)

var (
	// ErrMissingFields is returned when a required create-post field is absent.
	ErrMissingFields = errors.New("title, body, and userId are required fields")
	// ErrEmptyFields is returned when title or body is whitespace-only.
	ErrEmptyFields = errors.New("Title and body cannot be empty")
)

// TooLongError reports a field that exceeds its length limit. It carries
// the limit and the observed length so callers can surface both.
type TooLongError struct {
	Field  string
	Limit  int
	Length int
}

func (e *TooLongError) Error() string {
	return fmt.Sprintf("%s exceeds maximum length of %d characters. Current length: %d",
		e.Field, e.Limit, e.Length)
}

// Validate checks the create-post input against the acceptance rules and
// normalizes it in place. The missing-field check runs before trimming, so
// a whitespace-only title is reported as empty rather than missing. Length
// limits apply to the trimmed form.
func (in *CreatePostInput) Validate() error {
	if err := validate.Struct(in); err != nil {
		return ErrMissingFields
	}

	in.Title = strings.TrimSpace(in.Title)
	in.Body = strings.TrimSpace(in.Body)

	if len(in.Title) == 0 || len(in.Body) == 0 {
		return ErrEmptyFields
	}

	if n := utf8.RuneCountInString(in.Title); n > MaxTitleLength {
		return &TooLongError{Field: "Title", Limit: MaxTitleLength, Length: n}
	}
	if n := utf8.RuneCountInString(in.Body); n > MaxBodyLength {
		return &TooLongError{Field: "Body", Limit: MaxBodyLength, Length: n}
	}

	return nil
}

// Validate checks that a stored post meets all record-level requirements.
func (p *Post) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}

	if p.CreatedAt.IsZero() {
		return errors.New("created_at cannot be zero")
	}

	return nil
}
