package adapter

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError locates one rule a document broke.
type ValidationError struct {
	Path   string
	Reason string
}

func (e ValidationError) Error() string {
	if e.Path == "" {
		return e.Reason
	}

	return e.Path + ": " + e.Reason
}

// ValidationErrors collects every rule a document broke.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Error()
	}

	return "invalid document: " + strings.Join(msgs, "; ")
}

// matrixRules is applied to code matrices on their own and through the
// Document struct tag.
const matrixRules = "required,min=1,uniformrows,dive,min=1"

func newDocumentValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
		if name == "" || name == "-" {
			return field.Name
		}

		return name
	})

	_ = v.RegisterValidation("uniformrows", validateUniformRows)

	return v
}

// validateUniformRows checks that every row of a table has the width of the
// first row.
func validateUniformRows(fl validator.FieldLevel) bool {
	table := fl.Field()
	if table.Kind() != reflect.Slice || table.Len() == 0 {
		return true
	}

	width := table.Index(0).Len()
	for i := 1; i < table.Len(); i++ {
		if table.Index(i).Len() != width {
			return false
		}
	}

	return true
}

// translateValidation converts validator failures into ValidationErrors.
// root names the part when the value was validated on its own.
func translateValidation(err error, root string) error {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := make(ValidationErrors, 0, len(fieldErrs))

	for _, fe := range fieldErrs {
		path := fe.Namespace()
		if _, rest, ok := strings.Cut(path, "."); ok {
			path = rest
		}

		if path == "" || strings.HasPrefix(path, "[") {
			path = root + path
		}

		out = append(out, ValidationError{Path: path, Reason: describeRule(fe)})
	}

	return out
}

func describeRule(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must hold at least %s entries", fe.Param())
	case "uniformrows":
		return "every row must have the width of the first row"
	default:
		return fmt.Sprintf("failed %q rule", fe.Tag())
	}
}
