// Package validate checks tool arguments against their `validate` struct tags
// and reports failures as ValidationErrors keyed by JSON field name.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	apierrors "github.com/olgasafonova/restoolbox-mcp-server/internal/errors"
	"github.com/olgasafonova/restoolbox-mcp-server/internal/num"
)

var (
	once     sync.Once
	instance *validator.Validate
)

func get() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})
		// Values validate as their underlying slice so `dive` reaches each element.
		v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
			if vals, ok := field.Interface().(num.Values); ok {
				return vals.Data
			}
			return nil
		}, num.Values{})
		instance = v
	})
	return instance
}

// Struct validates s and returns the first failure as a *errors.ValidationError.
func Struct(s any) error {
	err := get().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return apierrors.NewValidationError(fieldPath(fe), valueString(fe.Value()), message(fe))
	}
	return apierrors.NewValidationError("", "", err.Error())
}

// fieldPath strips the top-level struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func valueString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []float64:
		if len(x) > 8 {
			return fmt.Sprintf("%v...", x[:8])
		}
		return fmt.Sprint(x)
	default:
		return fmt.Sprint(x)
	}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lt":
		return "must be less than " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "min":
		if fe.Kind() == reflect.Slice {
			return "must contain at least " + fe.Param() + " items"
		}
		return "must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.Slice {
			return "must contain at most " + fe.Param() + " items"
		}
		return "must be at most " + fe.Param()
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}

// Defaulter is implemented by argument structs that fill in optional fields.
type Defaulter interface {
	ApplyDefaults()
}

// Args applies defaults to a (when it implements Defaulter) and validates it.
// a must be a pointer so the defaults are visible to the caller.
func Args(a any) error {
	if d, ok := a.(Defaulter); ok {
		d.ApplyDefaults()
	}
	return Struct(a)
}
