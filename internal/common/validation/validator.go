package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Struct validates a struct using its validate tags and returns a
// human-readable summary of the failing fields.
func Struct(s interface{}) error {
	return validate.Struct(s)
}

// Describe flattens validator errors into "field: rule" pairs for API responses.
func Describe(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fe.Field()+": "+fe.Tag())
	}
	return strings.Join(parts, ", ")
}

// TaskStatuses and TaskPriorities are the closed vocabularies accepted on
// task writes.
var (
	TaskStatuses   = []string{"todo", "in_progress", "completed", "blocked"}
	TaskPriorities = []string{"low", "medium", "high", "urgent"}
)

// OneOf reports whether value is in the allowed set.
func OneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if a == value {
			return true
		}
	}
	return false
}
