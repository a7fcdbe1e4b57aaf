package validators

import (
	"fmt"
	"regexp"
	"strings"

	"ridepool/internal/utils"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Register custom validation functions
	validate.RegisterValidation("object_id", validateObjectID)
	validate.RegisterValidation("time_hhmm", validateTimeHHMM)
	validate.RegisterValidation("digits_only", validateDigitsOnly)
}

var digitsOnlyRegex = regexp.MustCompile(`^\d+$`)

// ValidationError represents a field validation error
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var messages []string
	for _, err := range v {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(messages, "; ")
}

// Fields returns a field -> message map for API error details.
func (v ValidationErrors) Fields() map[string]string {
	fields := make(map[string]string, len(v))
	for _, err := range v {
		fields[err.Field] = err.Message
	}
	return fields
}

// ValidateStruct validates a struct and returns detailed errors
func ValidateStruct(s interface{}) ValidationErrors {
	var validationErrors ValidationErrors

	err := validate.Struct(s)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			validationError := ValidationError{
				Field:   err.Field(),
				Tag:     err.Tag(),
				Value:   fmt.Sprintf("%v", err.Value()),
				Message: getErrorMessage(err),
			}
			validationErrors = append(validationErrors, validationError)
		}
	}

	return validationErrors
}

func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", err.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", err.Field(), err.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", err.Field(), err.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", err.Field(), err.Param())
	case "object_id":
		return "Invalid ID format"
	case "time_hhmm":
		return "Invalid time format (HH:MM)"
	case "digits_only":
		return fmt.Sprintf("%s must only contain digits", err.Field())
	default:
		return fmt.Sprintf("Validation failed for %s", err.Field())
	}
}

// Custom validation functions
func validateObjectID(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // Let required tag handle empty values
	}
	_, err := primitive.ObjectIDFromHex(value)
	return err == nil
}

func validateTimeHHMM(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return utils.IsValidHHMM(value)
}

func validateDigitsOnly(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return digitsOnlyRegex.MatchString(value)
}
