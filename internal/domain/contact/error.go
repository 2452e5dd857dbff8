package contact

import (
	"errors"
)

var (
	ErrNotFound         = errors.New("contact not found")
	ErrInvalidData      = errors.New("invalid contact data")
	ErrDuplicateLocalID = errors.New("local id already in use")
	ErrContactDeleted   = errors.New("contact was deleted")
)
