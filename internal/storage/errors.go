package storage

import "errors"

var (
	// ErrNotFound: the referenced donation or record does not exist in the
	// collection the operation targets.
	ErrNotFound = errors.New("not found")

	// ErrExpired: the live donation's deadline has passed; it can no longer
	// be accepted or claimed.
	ErrExpired = errors.New("donation has expired")

	// ErrAlreadyAssigned: the donation already has a volunteer attached.
	ErrAlreadyAssigned = errors.New("a volunteer is already assigned")

	// ErrNoVolunteerNeeded: the record is not in a state that accepts a
	// volunteer (self-pickup, or never flagged as needing one).
	ErrNoVolunteerNeeded = errors.New("donation does not need a volunteer")

	// ErrForbidden: the acting identity is not allowed to perform the
	// operation on this record.
	ErrForbidden = errors.New("operation not permitted for this user")

	// ErrAlreadyExists: a profile for this identity already exists.
	ErrAlreadyExists = errors.New("profile already exists")

	// ErrInvalidInput: the caller supplied a value outside the accepted
	// range or format.
	ErrInvalidInput = errors.New("invalid input")
)
