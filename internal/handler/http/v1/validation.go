package v1

import (
	"github.com/go-playground/validator/v10"

	"github.com/DoctFaust/campus-info-system/internal/models"
)

// newValidator регистрирует проверки перечислений предметной области
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("incident_type", func(fl validator.FieldLevel) bool {
		return models.IncidentType(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("severity", func(fl validator.FieldLevel) bool {
		return models.Severity(fl.Field().String()).Valid()
	})
	return v
}
