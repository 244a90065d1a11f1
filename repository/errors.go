// Package repository provides data access for items and its error types.
package repository

import "errors"

// ErrItemNotFound is returned when no item matches the requested id.
var ErrItemNotFound = errors.New("item not found")
