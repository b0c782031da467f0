package repository

import "errors"

// ErrNotFound is returned when a requested record (a cart line or a catalog
// row) does not exist.
var ErrNotFound = errors.New("not found")
