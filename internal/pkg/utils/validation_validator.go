package utils

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("emr_datetime", validateEmrDatetime)
	validate.RegisterValidation("procedure_outcome", validateProcedureOutcome)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateEmrDatetime(fl validator.FieldLevel) bool {
	_, err := time.Parse(time.RFC3339, fl.Field().String())
	return err == nil
}

func validateProcedureOutcome(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "SUCCESSFUL" || value == "PARTIALLY_SUCCESSFUL" || value == "NOT_SUCCESSFUL"
}
