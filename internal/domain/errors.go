package domain

import "errors"

var (
	// ErrNotFound is returned by repositories when the requested record does not exist
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput marks validation failures on entities and service inputs
	ErrInvalidInput = errors.New("invalid input")

	// ErrIngredientInUse is returned when deleting an ingredient that a recipe still uses
	ErrIngredientInUse = errors.New("ingredient is referenced by a recipe")

	// ErrDuplicateName is returned when an ingredient name is already registered
	ErrDuplicateName = errors.New("name already registered")
)
