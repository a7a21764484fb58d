package service

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is a single client-facing validation failure.
type FieldError struct {
	Param string `json:"param,omitempty"`
	Msg   string `json:"msg"`
}

// ValidationErrors is returned when a request fails shape validation. It is
// detected before any storage or hashing work.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Msg
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// messages maps "<json field>.<tag>" (or just "<json field>") to the text
// shown to clients.
var messages = map[string]string{
	"name":         "Please enter your name",
	"name.max":     "Name must be 255 characters or fewer",
	"email":        "Please enter a valid email",
	"email.max":    "Email must be 255 characters or fewer",
	"password.min": "Please enter a password with 6 or more characters",
	"password.max": "Please enter a password with 72 or fewer characters",
	"password":     "A password is required",
	"title":        "Title text is required",
	"title.max":    "Title must be 255 characters or fewer",
	"creator":      "Creator text is required",
	"creator.max":  "Creator must be 255 characters or fewer",
	"type":         "Type text is required",
	"type.max":     "Type must be 255 characters or fewer",
	"units":        "Unit text is required",
	"units.max":    "Units must be 64 characters or fewer",
	"progress":     "Progress text is required",
	"progress.max": "Progress must be 64 characters or fewer",
	"unitType":     "Unit type text is required",
	"unitType.max": "Unit type must be 64 characters or fewer",
}

type requestValidator struct {
	v *validator.Validate
}

func newRequestValidator() *requestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &requestValidator{v: v}
}

// Struct validates req and converts failures to ValidationErrors.
func (rv *requestValidator) Struct(req any) error {
	err := rv.v.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, FieldError{Param: fe.Field(), Msg: messageFor(fe.Field(), fe.Tag())})
	}
	return out
}

func messageFor(field, tag string) string {
	if msg, ok := messages[field+"."+tag]; ok {
		return msg
	}
	if msg, ok := messages[field]; ok {
		return msg
	}
	return field + " is invalid"
}

// trimPtr trims the string behind p, leaving nil untouched.
func trimPtr(p *string) *string {
	if p == nil {
		return nil
	}
	s := strings.TrimSpace(*p)
	return &s
}
