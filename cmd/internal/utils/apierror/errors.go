package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse abstracts all API error responses to the user.
//
// This interface does not implement `error`, since its only purpose
// is to be used for API responses and not for logging circumstances.
//
// In general, the whole ErrorResponse can be sent for serialization.
type ErrorResponse interface {
	// Code is the HTTP status code to be returned.
	Code() int
}

// Kind is the outcome class of a failed action. Exactly one kind is
// reported per action, the first one hit in the handler ordering.
type Kind string

const (
	KindForbidden    Kind = "FORBIDDEN"
	KindNotFound     Kind = "NOT_FOUND"
	KindValidation   Kind = "VALIDATION"
	KindConflict     Kind = "CONFLICT"
	KindUnauthorized Kind = "UNAUTHORIZED"
	KindNotAllowed   Kind = "METHOD_NOT_ALLOWED"
	KindInternal     Kind = "INTERNAL"
)

type APIError struct {
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (a *APIError) Code() int {
	return a.Status
}

type StructuredError struct {
	Errors map[string][]string `json:"errors"`
	Status int                 `json:"-"`
}

func (s *StructuredError) Code() int {
	return s.Status
}

func (s *StructuredError) Add(field, problem string) {
	s.Errors[field] = append(s.Errors[field], problem)
}

// Empty reports whether no problem was recorded.
func (s *StructuredError) Empty() bool {
	return len(s.Errors) == 0
}

var (
	MalformedJSONError  = NewSimple(http.StatusBadRequest, "Malformed JSON body")
	InternalServerError = NewSimple(http.StatusInternalServerError, "Internal server error")

	NotFoundError         = NewSimple(http.StatusNotFound, "Resource not found")
	ForbiddenError        = NewSimple(http.StatusForbidden, "You do not have permission to perform this action")
	MethodNotAllowedError = NewSimple(http.StatusMethodNotAllowed, "Method not allowed")
	InvalidPageError      = NewSimple(http.StatusBadRequest, "Invalid page, pages are integers >= 1")

	/*
	 * Used for authentications
	 */
	InvalidAuthTokenError = NewSimple(http.StatusUnauthorized, "Invalid or expired authentication token")

	/*
	 * Uniqueness constraints
	 */
	ProfileExistsError  = NewSimple(http.StatusConflict, "User already has a profile")
	CategoryExistsError = NewSimple(http.StatusConflict, "Category with this tag already exists")
)

// KindOf classifies an ErrorResponse by its status code.
func KindOf(resp ErrorResponse) Kind {
	if resp == nil {
		return ""
	}

	switch resp.Code() {
	case http.StatusForbidden:
		return KindForbidden
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusBadRequest:
		return KindValidation
	case http.StatusConflict:
		return KindConflict
	case http.StatusUnauthorized:
		return KindUnauthorized
	case http.StatusMethodNotAllowed:
		return KindNotAllowed
	default:
		return KindInternal
	}
}

func FromValidationError(err error) *StructuredError {
	var ve validator.ValidationErrors
	ok := errors.As(err, &ve)
	if !ok {
		return nil
	}

	problems := NewStructured(http.StatusBadRequest)
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())

		switch fe.Tag() {
		case "required":
			problems.Add(field, "This field is required")
		case "min":
			problems.Add(field, "Value is too short, min: "+fe.Param())
		case "max":
			problems.Add(field, "Value is too long, max: "+fe.Param())
		case "nospaces":
			problems.Add(field, "Value must not contain whitespace")
		case "email":
			problems.Add(field, "Value must be a valid email address")

		default:
			problems.Add(field, "Invalid value provided")
		}
	}
	return problems
}

func NewSimple(status int, msg string, args ...any) *APIError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &APIError{Status: status, Message: msg}
}

func NewStructured(code int) *StructuredError {
	return &StructuredError{
		Errors: make(map[string][]string),
		Status: code,
	}
}

// NewFieldError builds a single-field validation error.
func NewFieldError(field, problem string) *StructuredError {
	s := NewStructured(http.StatusBadRequest)
	s.Add(field, problem)
	return s
}

func NewInvalidTypeError(field, dataType string) *StructuredError {
	return NewFieldError(field, "Invalid type, expected: "+dataType)
}

func NewUnknownCategoriesError(tags []string) *StructuredError {
	return NewFieldError("categories", "Unknown category tags: "+strings.Join(tags, ", "))
}
