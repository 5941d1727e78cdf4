package service

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"nftmarket/model"
)

// error kinds, the http layer maps them to status codes
var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrBusiness     = errors.New("business rule violated")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// Error a client facing error of a given kind
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Is(target error) bool { return target == e.Kind }

func NotFound(format string, a ...interface{}) error {
	return &Error{Kind: ErrNotFound, Msg: fmt.Sprintf(format, a...)}
}

func Business(format string, a ...interface{}) error {
	return &Error{Kind: ErrBusiness, Msg: fmt.Sprintf(format, a...)}
}

func Unauthorized(format string, a ...interface{}) error {
	return &Error{Kind: ErrUnauthorized, Msg: fmt.Sprintf(format, a...)}
}

func Forbidden(format string, a ...interface{}) error {
	return &Error{Kind: ErrForbidden, Msg: fmt.Sprintf(format, a...)}
}

// FieldError one invalid input field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError malformed input, carries every offending field
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func Invalid(field, message string) error {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

// illegal status changes are business rule violations
func transitionErr(err error) error {
	var illegal *model.ErrIllegalTransition
	if errors.As(err, &illegal) {
		return Business("%s", illegal.Error())
	}
	return err
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

var messages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"eth_addr": "must be a valid Ethereum address",
	"oneof":    "must be one of %s",
	"min":      "must be at least %s",
	"max":      "must be at most %s",
	"gte":      "must be at least %s",
	"lte":      "must be at most %s",
	"gt":       "must be greater than %s",
	"len":      "must have length %s",
	"dive":     "is invalid",
	"unique":   "must not contain duplicates",
	"url":      "must be a valid url",
}

// check runs struct validation and converts failures into a ValidationError
func (s *Service) check(v interface{}) error {
	err := s.validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.Wrap(err, "validate")
	}
	out := &ValidationError{}
	for _, fe := range verrs {
		msg, ok := messages[fe.Tag()]
		if !ok {
			msg = "failed " + fe.Tag()
		}
		if strings.Contains(msg, "%s") {
			msg = fmt.Sprintf(msg, fe.Param())
		}
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Message: msg})
	}
	return out
}
