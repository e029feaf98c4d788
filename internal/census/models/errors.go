package models

import dErrors "menagerie/pkg/domain-errors"

// Construction errors. Each is a distinct sentinel so callers can match with
// errors.Is; all carry CodeInvariantViolation.
var (
	ErrInvalidAnimalName  = dErrors.New(dErrors.CodeInvariantViolation, "Animal must have a valid name (non-empty string)")
	ErrInvalidPersonName  = dErrors.New(dErrors.CodeInvariantViolation, "Person must have a valid name (non-empty string)")
	ErrInvalidCountryName = dErrors.New(dErrors.CodeInvariantViolation, "Country must have a valid name (non-empty string)")

	ErrInvalidAnimalsCollection = dErrors.New(dErrors.CodeInvariantViolation, "Invalid collection of animals provided.")
	ErrInvalidPeopleCollection  = dErrors.New(dErrors.CodeInvariantViolation, "Invalid collection of people provided.")
)
