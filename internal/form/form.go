// Package form holds the login and join submissions and the constraints
// checked before a modal accepts them. Nothing is sent or stored.
package form

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures the shared validator; error keys use the `label` tag.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			if name := fld.Tag.Get("label"); name != "" {
				return name
			}
			return fld.Name
		})
		validateInst = v
	})
	return validateInst
}

// Login is the log in dialog.
type Login struct {
	Email    string `label:"Email" validate:"required,email"`
	Password string `label:"Password" validate:"required"`
}

// Join is the join event dialog. EventID is only collected when
// no event was preselected.
type Join struct {
	EventID     string `label:"Select event" validate:"required_without=Preselected"`
	Preselected string
	Name        string `label:"Your name" validate:"required"`
	Email       string `label:"Email" validate:"required,email"`
}

// FieldErrors maps a field label to a user-facing message.
type FieldErrors map[string]string

// OK reports whether there are no errors.
func (fe FieldErrors) OK() bool {
	return len(fe) == 0
}

func (fe FieldErrors) Error() string {
	parts := make([]string, 0, len(fe))
	for field, msg := range fe {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return strings.Join(parts, "; ")
}

// Validate checks the same constraints a browser enforces for required and
// type=email inputs. It returns nil when the submission is acceptable.
func Validate(v any) FieldErrors {
	err := validatorInstance().Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return FieldErrors{"form": err.Error()}
	}

	out := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_without":
		if fe.Field() == "Select event" {
			return "Choose an event"
		}
		return "Please fill out this field"
	case "email":
		return "Enter a valid email address"
	default:
		return fmt.Sprintf("failed %s", fe.Tag())
	}
}
