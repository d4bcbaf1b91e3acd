package validator

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// В сообщениях об ошибках используем имена из json тегов
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerCustomValidations()
}

func registerCustomValidations() {
	// Дата в формате YYYY-MM-DD
	_ = validate.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		_, err := time.Parse("2006-01-02", fl.Field().String())
		return err == nil
	})
}

// Validate проверяет структуру и возвращает ошибки по полям
// nil, если ошибок нет
func Validate(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return map[string]string{"": err.Error()}
	}

	fields := make(map[string]string, len(vErrs))
	for _, fe := range vErrs {
		field := fe.Field()
		switch fe.Tag() {
		case "required":
			fields[field] = "обязательное поле"
		case "gte":
			fields[field] = "значение должно быть не меньше " + fe.Param()
		case "lte":
			fields[field] = "значение должно быть не больше " + fe.Param()
		case "uuid":
			fields[field] = "ожидается UUID"
		case "date":
			fields[field] = "ожидается дата в формате YYYY-MM-DD"
		default:
			fields[field] = "некорректное значение"
		}
	}
	return fields
}
