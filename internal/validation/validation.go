// Package validation checks hospital and person form submissions before they
// reach the service layer. Forms are bound by gin, whose validator/v10 engine is
// extended here with the staffing enums.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"anaesthesia-staffing-service/internal/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// rules are the custom tags used by the forms
var rules = map[string]validator.Func{
	"hospital_type": func(fl validator.FieldLevel) bool {
		return models.HospitalType(fl.Field().String()).Valid()
	},
	"grade": func(fl validator.FieldLevel) bool {
		return models.Grade(fl.Field().String()).Valid()
	},
	"gender": func(fl validator.FieldLevel) bool {
		return models.Gender(fl.Field().String()).Valid()
	},
}

// Register installs the custom rules and json field naming on gin's validator.
// It is safe to call more than once and panics if a rule cannot be installed,
// since every form using it would otherwise fail on an undefined tag.
func Register() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			panic("validation: gin validator engine is not validator/v10")
		}
		if err := registerRules(v, rules); err != nil {
			panic(err)
		}
	})
}

func registerRules(v *validator.Validate, rules map[string]validator.Func) error {
	v.RegisterTagNameFunc(jsonFieldName)
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("validation: register %q: %w", tag, err)
		}
	}
	return nil
}

// Struct validates a form outside of request binding
func Struct(form interface{}) error {
	Register()
	return Translate(binding.Validator.ValidateStruct(form))
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// ValidationError carries one message per invalid field, keyed by json name
type ValidationError struct {
	Fields map[string]string `json:"fields"`
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Translate converts validator errors into a ValidationError. Any other error
// (malformed JSON, wrong types) is returned unchanged; nil stays nil.
func Translate(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		if _, seen := fields[fe.Field()]; !seen {
			fields[fe.Field()] = message(fe)
		}
	}
	return &ValidationError{Fields: fields}
}

// labels name the required fields in messages
var labels = map[string]string{
	"name":          "Hospital name",
	"province":      "Province",
	"district":      "District",
	"allocation":    "Allocation",
	"first_name":    "First name",
	"last_name":     "Last name",
	"slmc_number":   "SLMC number",
	"national_id":   "National ID",
	"address":       "Address",
	"current_grade": "Grade",
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	label, ok := labels[field]
	if !ok {
		label = field
	}

	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "min":
		if field == "allocation" {
			return "Allocation must be 0 or greater"
		}
		return label + " is required"
	case "max":
		if field == "allocation" {
			return "Allocation seems too high"
		}
		if field == "name" {
			return "Name is too long"
		}
		if field == "province" || field == "district" {
			return label + " name is too long"
		}
		return label + " is too long"
	case "email":
		return "Please enter a valid email address"
	case "hospital_type":
		return "Please select a valid hospital type"
	case "grade":
		return "Please select a valid grade"
	case "gender":
		return "Please select a gender"
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}
