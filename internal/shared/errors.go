package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Store errors
	ErrNotFound = fmt.Errorf("record not found")

	// Domain errors
	ErrUserNotFound   = fmt.Errorf("user not found")
	ErrTitleNotFound  = fmt.Errorf("title not found")
	ErrEntryNotFound  = fmt.Errorf("watchlist entry not found")
	ErrDuplicateEmail = fmt.Errorf("email already in use")
	ErrDuplicateEntry = fmt.Errorf("title already on watchlist")

	// Input validation errors
	ErrInvalidStatus    = fmt.Errorf("invalid status: use watched, planning, or dropped")
	ErrInvalidTitleType = fmt.Errorf("invalid type: use movie, show, or anime")
	ErrInvalidRating    = fmt.Errorf("invalid rating: must be between 1 and 10")
	ErrNoFieldsToUpdate = fmt.Errorf("no fields to update")
	ErrMissingArgument  = fmt.Errorf("missing required argument")
	ErrInvalidArgument  = fmt.Errorf("invalid argument")
	ErrInvalidFlag      = fmt.Errorf("invalid flag value")

	// Authentication errors
	ErrInvalidCredentials = fmt.Errorf("invalid email or password")
	ErrNotAuthenticated   = fmt.Errorf("not logged in")
)
