package domain

import (
	"errors"
	"fmt"
	"strings"
)

type ValidationError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// ValidationErrors collects every violation found in one rule set, in the
// order they were detected.
type ValidationErrors []ValidationError

func (ve *ValidationErrors) Add(field, reason string) {
	*ve = append(*ve, ValidationError{Field: field, Reason: reason})
}

func (ve ValidationErrors) Error() string {
	msgs := make([]string, 0, len(ve))
	for _, e := range ve {
		msgs = append(msgs, e.Error())
	}

	return "invalid rule set: " + strings.Join(msgs, "; ")
}

func (ve ValidationErrors) Fields() map[string][]string {
	out := make(map[string][]string, len(ve))
	for _, e := range ve {
		out[e.Field] = append(out[e.Field], e.Reason)
	}

	return out
}

func (ve ValidationErrors) Has(field string) bool {
	for _, e := range ve {
		if e.Field == field {
			return true
		}
	}

	return false
}

// AsValidation returns the collected violations carried by err, or nil.
func AsValidation(err error) ValidationErrors {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve
	}

	return nil
}

func IsValidation(err error) bool {
	return AsValidation(err) != nil
}

type InvalidRequestError struct {
	Field  string
	Reason string
}

func (e *InvalidRequestError) Error() string {
	return fmt.Sprintf("invalid request: %s: %s", e.Field, e.Reason)
}

func NewInvalidRequest(field, reason string) *InvalidRequestError {
	return &InvalidRequestError{Field: field, Reason: reason}
}

func IsInvalidRequest(err error) bool {
	var target *InvalidRequestError
	return errors.As(err, &target)
}

type ErrorKind string

const (
	KindUnavailable ErrorKind = "unavailable"
	KindNotFound    ErrorKind = "not_found"
	KindConflict    ErrorKind = "conflict"
)

type DomainError struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *DomainError) Error() string {
	switch {
	case e.Msg != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	case e.Msg != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	default:
		return string(e.Kind)
	}
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func NewUnavailable(msg string) *DomainError {
	return &DomainError{Kind: KindUnavailable, Msg: msg}
}

func NewNotFound(msg string) *DomainError {
	return &DomainError{Kind: KindNotFound, Msg: msg}
}

func NewConflict(msg string, err error) *DomainError {
	return &DomainError{Kind: KindConflict, Msg: msg, Err: err}
}

func isKind(err error, kind ErrorKind) bool {
	var target *DomainError
	return errors.As(err, &target) && target.Kind == kind
}

func IsUnavailable(err error) bool { return isKind(err, KindUnavailable) }
func IsNotFound(err error) bool    { return isKind(err, KindNotFound) }
func IsConflict(err error) bool    { return isKind(err, KindConflict) }
