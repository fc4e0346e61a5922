package services

import (
	"fmt"
	"strings"

	"club-app/internal/models"
	"club-app/internal/utils"
)

func validateModel(v interface{}) error {
	if err := utils.ValidateStruct(v); err != nil {
		errs := utils.ParseValidationErrors(err)
		return fmt.Errorf("%w: %s", models.ErrValidation, strings.Join(errs, " // "))
	}
	return nil
}
