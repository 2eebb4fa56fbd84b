// -----------------------------------------------------------------------
// Runtime validation for every trust boundary: HTTP request bodies, router
// tool arguments, agent structured outputs, and the bundled scheme dataset.
// -----------------------------------------------------------------------

package schemas

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/neervaani/neerhub/internal/models"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks v against its struct validation tags. Failures are
// reported as *models.ValidationError with field-level detail.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// InvalidValidationError: v was not a validatable struct
		return fmt.Errorf("schema validation: %w", err)
	}

	details := make([]models.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, models.FieldError{
			Field: fe.Namespace(),
			Rule:  fe.Tag(),
			Value: fe.Param(),
		})
	}
	return &models.ValidationError{Details: details}
}
