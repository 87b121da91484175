package service

import (
	"errors"
	"fmt"
	"math"

	"badminton-directory-backend/internal/database/models"
	apperrors "badminton-directory-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

const (
	// DefaultPageSize is used by feeds when the caller sends no size
	DefaultPageSize = 10
	// MaxPageSize caps the size of any feed page
	MaxPageSize = 100
)

// validateStruct runs struct-tag validation and reports the first failing field
func validateStruct(v *validator.Validate, req interface{}) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return fmt.Errorf("validation failed: %w",
			apperrors.NewValidationError(fe.Field(), fmt.Sprintf("failed on the '%s' rule", fe.Tag())))
	}
	return fmt.Errorf("validation failed: %w", apperrors.NewValidationError("", err.Error()))
}

// normalizePage applies defaults and caps to zero-based page parameters
func normalizePage(page, size, defaultSize, maxSize int) (int, int, error) {
	if page < 0 {
		return 0, 0, apperrors.NewValidationError("page", "must not be negative")
	}
	if size < 0 {
		return 0, 0, apperrors.NewValidationError("size", "must not be negative")
	}
	if size == 0 {
		size = defaultSize
	}
	if size > maxSize {
		size = maxSize
	}
	if _, err := pageOffset(page, size); err != nil {
		return 0, 0, err
	}
	return page, size, nil
}

// pageOffset returns page*size, rejecting pages whose offset does not fit in an int
func pageOffset(page, size int) (int, error) {
	if page < 0 {
		return 0, apperrors.NewValidationError("page", "must not be negative")
	}
	if size > 0 && page > math.MaxInt/size {
		return 0, apperrors.NewValidationError("page", "is too large")
	}
	return page * size, nil
}

// checkEntityType rejects unknown listing types
func checkEntityType(et models.EntityType) error {
	if !et.IsValid() {
		return apperrors.NewValidationError("entity_type", fmt.Sprintf("unknown entity type %q", et))
	}
	return nil
}

// checkFactType rejects unknown pairs and pairs the listing type does not carry
func checkFactType(et models.EntityType, it models.InfoType) error {
	if err := checkEntityType(et); err != nil {
		return err
	}
	if !it.IsValid() {
		return apperrors.NewValidationError("info_type", fmt.Sprintf("unknown info type %q", it))
	}
	if !et.Supports(it) {
		return apperrors.NewValidationError("info_type", fmt.Sprintf("%s listings have no %s entries", et, it))
	}
	return nil
}
