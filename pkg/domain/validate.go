package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate はパッケージ全体で共有するバリデータです。validator.Validate は並行利用に対して安全です。
var validate = validator.New()

// validateStruct は v を struct タグに従って検証し、違反があれば *ValidationError を返します。
func validateStruct(entity string, v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// InvalidValidationError など、入力そのものが構造体でない場合
		return &ValidationError{
			Entity: entity,
			Fields: []FieldError{{Field: entity, Rule: "type", Message: err.Error()}},
		}
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{
			Field:   trimRootNamespace(fe.StructNamespace()),
			Rule:    fe.Tag(),
			Param:   fe.Param(),
			Message: ruleMessage(fe.Tag(), fe.Param()),
		})
	}
	return &ValidationError{Entity: entity, Fields: fields}
}

// trimRootNamespace は "BusinessConcept.ColorPalette.Accent" を "ColorPalette.Accent" に変換します。
func trimRootNamespace(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func ruleMessage(tag, param string) string {
	switch tag {
	case "required":
		return "is required"
	case "eq":
		return fmt.Sprintf("must be %q", param)
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", strings.Join(strings.Fields(param), ", "))
	default:
		if param != "" {
			return fmt.Sprintf("failed on %s=%s", tag, param)
		}
		return fmt.Sprintf("failed on %s", tag)
	}
}
