package dto

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors converts a gin binding error into a map from JSON field name to
// the list of violated constraint messages, as expected by API clients.
// Errors that are not validator.ValidationErrors (e.g. malformed JSON) are
// reported under the "body" pseudo-field.
func FieldErrors(obj interface{}, err error) map[string][]string {
	out := make(map[string][]string)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["body"] = []string{err.Error()}
		return out
	}

	t := reflect.TypeOf(obj)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for _, fe := range verrs {
		name := jsonFieldName(t, fe.StructField())
		out[name] = append(out[name], constraintMessage(fe))
	}
	return out
}

// jsonFieldName resolves the json tag for a struct field, falling back to the
// lowercased field name. Nested field errors are flattened by the child
// property name.
func jsonFieldName(t reflect.Type, structField string) string {
	if t.Kind() == reflect.Struct {
		if f, ok := t.FieldByName(structField); ok {
			tag := strings.Split(f.Tag.Get("json"), ",")[0]
			if tag != "" && tag != "-" {
				return tag
			}
		}
	}
	return strings.ToLower(structField)
}

func constraintMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "email":
		return "must be a valid email"
	case "min":
		return "min length " + fe.Param()
	case "oneof":
		return "must be one of " + fe.Param()
	default:
		return fe.Tag()
	}
}
