package types

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance. Struct tags on the input types
// carry the field constraints.
var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidationError reports per-field constraint violations. It is recovered
// locally by callers; no persisted state changes when one is returned.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, msg))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// CheckStruct validates v against its struct tags and converts validator
// output into a *ValidationError with human-readable per-field messages.
func CheckStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fieldMessage(fe)
	}
	return &ValidationError{Fields: fields}
}

// fieldMessage renders one violation the way the forms word them.
func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be %s characters or less", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be %s or greater", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// CheckComment enforces the comment length cap. Comments have no struct of
// their own; the cap is the only constraint. Counted in runes, matching the
// character-counting max tags on the other string fields.
func CheckComment(comment string) error {
	if utf8.RuneCountInString(comment) > MaxCommentLen {
		return &ValidationError{Fields: map[string]string{
			"Comment": fmt.Sprintf("Comment must be %d characters or less", MaxCommentLen),
		}}
	}
	return nil
}
