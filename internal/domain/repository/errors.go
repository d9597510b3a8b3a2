package repository

import "errors"

// Storage-level outcomes the services translate into domain errors. The
// implementations map their driver's constraint errors onto these so the
// service layer never sees driver types.
var (
	ErrNotFound   = errors.New("record not found")
	ErrDuplicate  = errors.New("duplicate key")
	ErrRestricted = errors.New("foreign key restriction")
)
