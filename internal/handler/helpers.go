package handler

import (
	"errors"
	"net/http"
	"reflect"

	"kiosko/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails;
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// bindQueryAndValidate does the same for query-string filters.
func bindQueryAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// errorEnvelope carries the toast text plus the soft-failure flag.
type errorEnvelope struct {
	Detail  string `json:"detail"`
	Warning bool   `json:"warning,omitempty"`
}

// respondError maps the error taxonomy to an HTTP status. Untyped errors are
// treated as store failures and never leak their cause.
func respondError(c *gin.Context, err error) {
	env := errorEnvelope{Detail: err.Error()}
	var ae *apierror.Error
	if errors.As(err, &ae) {
		env.Warning = ae.Warning
	}

	switch apierror.KindOf(err) {
	case apierror.KindValidation:
		c.JSON(http.StatusUnprocessableEntity, env)
	case apierror.KindConflict:
		c.JSON(http.StatusConflict, env)
	case apierror.KindNotFound:
		c.JSON(http.StatusNotFound, env)
	default:
		c.JSON(http.StatusInternalServerError, env)
	}
}

