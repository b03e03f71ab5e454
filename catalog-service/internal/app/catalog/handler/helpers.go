package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"

	"productcatalog/catalog-service/internal/app/catalog/entity"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"
)

// priceScale - число знаков после запятой в колонке price
const priceScale = 2

// newValidator создает валидатор, понимающий decimal.Decimal как число
// notblank отклоняет строки из одних пробелов, decimals2 - цены с лишними знаками
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("decimals2", hasPriceScale)
	return v
}

// hasPriceScale проверяет, что значение хранится в NUMERIC(10,2) без округления
func hasPriceScale(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.Float32, reflect.Float64:
		return decimal.NewFromFloat(field.Float()).Exponent() >= -priceScale
	default:
		return false
	}
}

// parseID разбирает положительный числовой идентификатор из пути
func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// respondError отправляет ответ об ошибке
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, entity.ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
	})
}

// formatValidationError форматирует ошибки валидации
func formatValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		return validationErrors[0].Field() + " validation failed on '" + validationErrors[0].Tag() + "'"
	}
	return "Validation failed"
}
